// Package storage provides the narrow document-store interface the services
// consume and its MongoDB implementation.
package storage

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoDocument reports that a single-document lookup matched nothing.
// Absence is not a failure; callers translate it to an empty result.
var ErrNoDocument = errors.New("document not found")

// Error wraps a driver failure with the operation and collection it hit.
type Error struct {
	Op         string
	Collection string
	Err        error
}

func (e *Error) Error() string {
	return fmt.Sprintf("storage: %s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// ListOptions controls paging and ordering of GetMany.
// A Limit of zero or less means no limit.
type ListOptions struct {
	Skip  int64
	Limit int64
	Sort  bson.D
}

// Store is the document-store surface consumed by the services.
type Store interface {
	Count(ctx context.Context, collection string, filter any) (int64, error)
	GetOne(ctx context.Context, collection string, filter any, out any) error
	GetMany(ctx context.Context, collection string, filter any, opts ListOptions, out any) error
	InsertOne(ctx context.Context, collection string, doc any) (string, error)
}
