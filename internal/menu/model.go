// Package menu holds the read-only catalog: categories, items and the
// filter-to-query translation used to search them.
package menu

import (
	"github.com/kioskworks/kiosk-backend/internal/validation"
)

// Category is immutable reference data seeded by the populate tool.
// The domain integer id doubles as the Mongo _id.
type Category struct {
	ID      int    `bson:"_id" json:"id"`
	Name    string `bson:"name" json:"name"`
	ImageID string `bson:"image_id" json:"image_id"`
}

func (c Category) Validate() error {
	if c.Name == "" {
		return validation.Error{Field: "name", Message: "category name is required"}
	}
	return nil
}

type Item struct {
	ID         int     `bson:"_id" json:"id"`
	CategoryID int     `bson:"category_id" json:"category_id"`
	Name       string  `bson:"name" json:"name"`
	ImageID    string  `bson:"image_id" json:"image_id"`
	Price      float64 `bson:"price" json:"price"`
}

func (i Item) Validate() error {
	if i.Name == "" {
		return validation.Error{Field: "name", Message: "item name is required"}
	}
	if i.Price <= 0 {
		return validation.Error{Field: "price", Message: "price must be positive"}
	}
	return nil
}
