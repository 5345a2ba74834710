// Package order models kiosk orders and their payment data, and provides
// the create/read service over them. Orders are immutable once persisted.
package order

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/kioskworks/kiosk-backend/internal/menu"
	"github.com/kioskworks/kiosk-backend/internal/validation"
)

// LineItem snapshots the ordered item together with the price it was sold
// at, so later catalog edits cannot change what a stored order says.
type LineItem struct {
	Item         menu.Item `bson:"item" json:"item"`
	Quantity     int       `bson:"quantity" json:"quantity"`
	PriceAtOrder float64   `bson:"price_at_order" json:"price_at_order"`
}

func (li LineItem) validate(idx int) error {
	field := func(name string) string { return fmt.Sprintf("items[%d].%s", idx, name) }

	if li.Quantity < 1 {
		return validation.Error{Field: field("quantity"), Message: "must be at least 1"}
	}
	if err := li.Item.Validate(); err != nil {
		if verr, ok := err.(validation.Error); ok {
			return validation.Error{Field: field("item." + verr.Field), Message: verr.Message}
		}
		return err
	}
	if li.PriceAtOrder <= 0 {
		return validation.Error{Field: field("price_at_order"), Message: "must be positive"}
	}
	return nil
}

// Order has two states: pending (zero ID, not yet stored) and persisted
// (ObjectID assigned by storage). The only transition is Service.Create.
type Order struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Total     float64            `bson:"total" json:"total"`
	CreatedAt string             `bson:"created_at" json:"created_at"`
	Items     []LineItem         `bson:"items" json:"items"`
	Payment   Payment            `bson:"payment" json:"payment"`
}

// Normalize fills derived fields a client may omit: a line item with no
// price snapshot takes the catalog price it was submitted with.
func (o *Order) Normalize() {
	for i := range o.Items {
		if o.Items[i].PriceAtOrder == 0 {
			o.Items[i].PriceAtOrder = o.Items[i].Item.Price
		}
	}
}

func (o *Order) Validate() error {
	if o.Total <= 0 {
		return validation.Error{Field: "total", Message: "must be positive"}
	}
	if o.CreatedAt == "" {
		return validation.Error{Field: "created_at", Message: "is required"}
	}
	if len(o.Items) == 0 {
		return validation.Error{Field: "items", Message: "order must contain at least one item"}
	}
	for i, li := range o.Items {
		if err := li.validate(i); err != nil {
			return err
		}
	}
	return o.Payment.Validate()
}
