package order

import (
	"github.com/kioskworks/kiosk-backend/internal/validation"
)

type PaymentType string

const (
	PaymentCard PaymentType = "card"
	PaymentPix  PaymentType = "pix"
)

// Payment is a tagged union discriminated by Type. The wire shape is flat:
// both variants' fields live at the top level and Validate enforces that
// exactly the fields of the named variant are present.
type Payment struct {
	Type   PaymentType `bson:"type" json:"type"`
	Amount float64     `bson:"amount" json:"amount"`

	// card
	CardNumber string `bson:"card_number,omitempty" json:"card_number,omitempty"`
	CardHolder string `bson:"card_holder,omitempty" json:"card_holder,omitempty"`
	CVV        string `bson:"cvv,omitempty" json:"cvv,omitempty"`

	// pix
	ClientName string `bson:"client_name,omitempty" json:"client_name,omitempty"`
	ClientID   string `bson:"client_id,omitempty" json:"client_id,omitempty"`
	PixCode    string `bson:"pix_code,omitempty" json:"pix_code,omitempty"`
	CreatedAt  string `bson:"created_at,omitempty" json:"created_at,omitempty"`

	// both variants carry an expiration date
	ExpirationDate string `bson:"expiration_date,omitempty" json:"expiration_date,omitempty"`
}

func (p Payment) Validate() error {
	if p.Amount <= 0 {
		return validation.Error{Field: "payment.amount", Message: "must be positive"}
	}

	switch p.Type {
	case PaymentCard:
		return p.validateCard()
	case PaymentPix:
		return p.validatePix()
	case "":
		return validation.Error{Field: "payment.type", Message: "payment type is required"}
	default:
		return validation.Error{Field: "payment.type", Message: "unknown payment type " + string(p.Type)}
	}
}

func (p Payment) validateCard() error {
	required := []struct{ field, value string }{
		{"payment.card_number", p.CardNumber},
		{"payment.card_holder", p.CardHolder},
		{"payment.expiration_date", p.ExpirationDate},
		{"payment.cvv", p.CVV},
	}
	for _, r := range required {
		if r.value == "" {
			return validation.Error{Field: r.field, Message: "required for card payments"}
		}
	}
	if p.ClientName != "" || p.ClientID != "" || p.PixCode != "" || p.CreatedAt != "" {
		return validation.Error{Field: "payment", Message: "pix fields are not allowed on a card payment"}
	}
	return nil
}

func (p Payment) validatePix() error {
	required := []struct{ field, value string }{
		{"payment.client_name", p.ClientName},
		{"payment.client_id", p.ClientID},
		{"payment.pix_code", p.PixCode},
		{"payment.created_at", p.CreatedAt},
		{"payment.expiration_date", p.ExpirationDate},
	}
	for _, r := range required {
		if r.value == "" {
			return validation.Error{Field: r.field, Message: "required for pix payments"}
		}
	}
	if p.CardNumber != "" || p.CardHolder != "" || p.CVV != "" {
		return validation.Error{Field: "payment", Message: "card fields are not allowed on a pix payment"}
	}
	return nil
}
