package menu

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/kioskworks/kiosk-backend/internal/storage"
)

const (
	categoriesCollection = "categories"
	itemsCollection      = "menu_items"
)

// Service answers read-only catalog queries. It holds no state beyond the
// store handle; every call re-queries storage.
type Service struct {
	store storage.Store
}

func NewService(store storage.Store) *Service {
	return &Service{store: store}
}

// Categories returns every category. A stored document that fails domain
// validation aborts the whole call; no partial results.
func (s *Service) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.store.GetMany(ctx, categoriesCollection, bson.M{}, storage.ListOptions{}, &categories); err != nil {
		return nil, err
	}
	for _, c := range categories {
		if err := c.Validate(); err != nil {
			// A stored document that fails domain validation is corrupt
			// data, not a bad request.
			return nil, &storage.Error{Op: "decode", Collection: categoriesCollection, Err: err}
		}
	}
	return categories, nil
}

func (s *Service) CategoryItems(ctx context.Context, categoryID int) ([]Item, error) {
	return s.items(ctx, bson.M{"category_id": categoryID})
}

// Item looks an item up by its domain id. Absence is reported as (nil, nil).
func (s *Service) Item(ctx context.Context, itemID int) (*Item, error) {
	var item Item
	err := s.store.GetOne(ctx, itemsCollection, bson.M{"_id": itemID}, &item)
	if errors.Is(err, storage.ErrNoDocument) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := item.Validate(); err != nil {
		return nil, &storage.Error{Op: "decode", Collection: itemsCollection, Err: err}
	}
	return &item, nil
}

// FilteredItems returns the items matching filter. A nil filter (or one with
// no fields set) matches all items.
func (s *Service) FilteredItems(ctx context.Context, filter *ItemFilter) ([]Item, error) {
	if filter != nil {
		if err := filter.Validate(); err != nil {
			return nil, err
		}
	}
	return s.items(ctx, filter.Query())
}

func (s *Service) CountItems(ctx context.Context) (int64, error) {
	return s.store.Count(ctx, itemsCollection, bson.M{})
}

func (s *Service) CountCategories(ctx context.Context) (int64, error) {
	return s.store.Count(ctx, categoriesCollection, bson.M{})
}

func (s *Service) items(ctx context.Context, query bson.M) ([]Item, error) {
	var items []Item
	if err := s.store.GetMany(ctx, itemsCollection, query, storage.ListOptions{}, &items); err != nil {
		return nil, err
	}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, &storage.Error{Op: "decode", Collection: itemsCollection, Err: err}
		}
	}
	return items, nil
}
