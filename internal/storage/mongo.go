package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const opTimeout = 5 * time.Second

// findOptions translates ListOptions into driver find options. Zero and
// negative Skip/Limit values set nothing, leaving the query unbounded.
func (lo ListOptions) findOptions() *options.FindOptions {
	fo := options.Find()
	if lo.Skip > 0 {
		fo.SetSkip(lo.Skip)
	}
	if lo.Limit > 0 {
		fo.SetLimit(lo.Limit)
	}
	if lo.Sort != nil {
		fo.SetSort(lo.Sort)
	}
	return fo
}

type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo dials the server, pings it, and returns a Store over dbName.
func ConnectMongo(ctx context.Context, uri, dbName string, connectTimeout, socketTimeout time.Duration) (*Mongo, error) {
	if dbName == "" {
		return nil, errors.New("storage: database name is required")
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(connectTimeout).
		SetSocketTimeout(socketTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, &Error{Op: "connect", Collection: dbName, Err: err}
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, &Error{Op: "ping", Collection: dbName, Err: err}
	}

	return &Mongo{client: client, db: client.Database(dbName)}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// Drop removes a collection. Used by the populate tool, not part of the
// Store interface the services see.
func (m *Mongo) Drop(ctx context.Context, collection string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := m.db.Collection(collection).Drop(ctx); err != nil {
		return &Error{Op: "drop", Collection: collection, Err: err}
	}
	return nil
}

func (m *Mongo) Count(ctx context.Context, collection string, filter any) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	n, err := m.db.Collection(collection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, &Error{Op: "count", Collection: collection, Err: err}
	}
	return n, nil
}

func (m *Mongo) GetOne(ctx context.Context, collection string, filter any, out any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	err := m.db.Collection(collection).FindOne(ctx, filter).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNoDocument
	}
	if err != nil {
		return &Error{Op: "get_one", Collection: collection, Err: err}
	}
	return nil
}

func (m *Mongo) GetMany(ctx context.Context, collection string, filter any, lo ListOptions, out any) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}

	cur, err := m.db.Collection(collection).Find(ctx, filter, lo.findOptions())
	if err != nil {
		return &Error{Op: "get_many", Collection: collection, Err: err}
	}
	if err := cur.All(ctx, out); err != nil {
		return &Error{Op: "get_many", Collection: collection, Err: err}
	}
	return nil
}

func (m *Mongo) InsertOne(ctx context.Context, collection string, doc any) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	res, err := m.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &Error{Op: "insert_one", Collection: collection, Err: err}
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	// Documents seeded with their own _id (e.g. integer catalog ids) come
	// back as-is.
	return fmt.Sprintf("%v", res.InsertedID), nil
}
