package menu

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kioskworks/kiosk-backend/internal/validation"
)

// ItemFilter is a sparse search request over the catalog. Every field is
// optional; pointer fields distinguish "absent" from a zero value, so a
// category id of 0 filters like any other id.
type ItemFilter struct {
	Name       string   `form:"name" json:"name,omitempty"`
	CategoryID *int     `form:"category_id" json:"category_id,omitempty"`
	PriceFrom  *float64 `form:"price_from" json:"price_from,omitempty"`
	PriceTo    *float64 `form:"price_to" json:"price_to,omitempty"`
}

func (f *ItemFilter) Validate() error {
	if f.PriceFrom != nil && *f.PriceFrom <= 0 {
		return validation.Error{Field: "price_from", Message: "must be positive"}
	}
	if f.PriceTo != nil && *f.PriceTo <= 0 {
		return validation.Error{Field: "price_to", Message: "must be positive"}
	}
	if f.PriceFrom != nil && f.PriceTo != nil && *f.PriceFrom > *f.PriceTo {
		return validation.Error{Field: "price_from", Message: "must not exceed price_to"}
	}
	return nil
}

// Query builds the storage query as a conjunction of field constraints.
// An empty filter yields an empty query, which matches every item.
func (f *ItemFilter) Query() bson.M {
	query := bson.M{}
	if f == nil {
		return query
	}

	if f.Name != "" {
		query["name"] = primitive.Regex{Pattern: f.Name, Options: "i"}
	}
	if f.CategoryID != nil {
		query["category_id"] = *f.CategoryID
	}

	switch {
	case f.PriceFrom != nil && f.PriceTo != nil:
		query["price"] = bson.M{"$gte": *f.PriceFrom, "$lte": *f.PriceTo}
	case f.PriceFrom != nil:
		query["price"] = bson.M{"$gte": *f.PriceFrom}
	case f.PriceTo != nil:
		query["price"] = bson.M{"$lte": *f.PriceTo}
	}
	return query
}

// Empty reports whether no filter field is set.
func (f *ItemFilter) Empty() bool {
	return f == nil ||
		(f.Name == "" && f.CategoryID == nil && f.PriceFrom == nil && f.PriceTo == nil)
}
