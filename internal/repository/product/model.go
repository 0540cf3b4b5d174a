package repository

import (
	"time"
)

type ProductEntity struct {
	ID             string     `bson:"_id"`
	Name           string     `bson:"name"`
	ParentID       *string    `bson:"parent_id,omitempty"`
	StockUnitID    string     `bson:"stock_unit_id"`
	PurchaseUnitID string     `bson:"purchase_unit_id"`
	PriceUnitID    string     `bson:"price_unit_id"`
	MinStockAmount float64    `bson:"min_stock_amount"`
	HasOwnStock    bool       `bson:"has_own_stock"`
	CreatedAt      *time.Time `bson:"created_at,omitempty"`
	UpdatedAt      *time.Time `bson:"updated_at,omitempty"`
}
