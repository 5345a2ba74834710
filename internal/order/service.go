package order

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kioskworks/kiosk-backend/internal/storage"
	"github.com/kioskworks/kiosk-backend/internal/validation"
)

const ordersCollection = "orders"

type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Create validates o and persists it, returning the storage-assigned
// identifier. Validation runs here regardless of what the boundary layer
// already checked, so an invalid shape can never reach the store.
func (s *Service) Create(ctx context.Context, o *Order) (string, error) {
	if o == nil {
		return "", validation.Error{Field: "order", Message: "order payload is required"}
	}
	o.ID = primitive.NilObjectID // pending orders carry no identifier
	o.Normalize()
	if err := o.Validate(); err != nil {
		return "", err
	}
	return s.store.InsertOne(ctx, ordersCollection, o)
}

// Orders returns every stored order in natural storage order. Documents are
// always decoded from their raw stored representation.
func (s *Service) Orders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := s.store.GetMany(ctx, ordersCollection, bson.M{}, storage.ListOptions{}, &orders); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := orders[i].Validate(); err != nil {
			// A stored order that fails domain validation is corrupt data,
			// not a bad request.
			return nil, &storage.Error{Op: "decode", Collection: ordersCollection, Err: err}
		}
	}
	return orders, nil
}

// Order looks an order up by the hex form of its storage identifier.
// A string that is not a valid identifier is a validation error; a valid
// identifier that matches nothing is (nil, nil).
func (s *Service) Order(ctx context.Context, id string) (*Order, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, validation.Error{Field: "order_id", Message: "not a valid order identifier"}
	}

	var o Order
	err = s.store.GetOne(ctx, ordersCollection, bson.M{"_id": oid}, &o)
	if errors.Is(err, storage.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := o.Validate(); err != nil {
		return nil, &storage.Error{Op: "decode", Collection: ordersCollection, Err: err}
	}
	return &o, nil
}
