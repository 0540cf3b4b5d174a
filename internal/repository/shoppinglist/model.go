package repository

import (
	"time"
)

type ShoppingListItemEntity struct {
	ID             string     `bson:"_id"`
	ProductID      string     `bson:"product_id"`
	QuantityUnitID string     `bson:"quantity_unit_id"`
	Amount         float64    `bson:"amount"`
	Done           bool       `bson:"done"`
	Note           string     `bson:"note,omitempty"`
	CreatedAt      *time.Time `bson:"created_at,omitempty"`
}
