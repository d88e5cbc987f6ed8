package entity

import "github.com/google/uuid"

type OptionType string

const (
	OptionTypeQuantity OptionType = "quantity"
	OptionTypeWeight   OptionType = "weight"
	OptionTypePortion  OptionType = "portion"
)

// OrderOption describes one way a product can be ordered, e.g. per piece
// or by weight. Stored as JSONB on the product row.
type OrderOption struct {
	Type        OptionType `json:"type"`
	Label       string     `json:"label"`
	Description string     `json:"description,omitempty"`
}

type Product struct {
	BaseNoDelete
	CategoryID   uuid.UUID     `db:"category_id"`
	Name         string        `db:"name"`
	Image        string        `db:"image"`
	ImageHint    string        `db:"image_hint"`
	OrderOptions []OrderOption `db:"order_options"`
}
