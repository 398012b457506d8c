package model

// Product is a catalog item tracked by the in-memory store. ID is chosen by
// the caller and never changes after creation; Quantity is the only field the
// service mutates afterwards.
type Product struct {
	ID           string  `json:"id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Category     string  `json:"category"`
	Price        float64 `json:"price" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
	ReorderLevel int     `json:"reorder_level" validate:"gte=0"`
}
