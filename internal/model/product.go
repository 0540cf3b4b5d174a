package model

import "time"

type Product struct {
	// Globally unique identifier of the product.
	ID string
	// Human-readable product name.
	Name string
	// Parent product this one is a variant of, if any. Variant amounts
	// roll up into the parent's aggregated stock total.
	ParentID *string
	// Unit the on-hand stock amount is tracked in.
	StockUnitID string
	// Unit the product is usually purchased in.
	PurchaseUnitID string
	// Unit prices are recorded in.
	PriceUnitID string
	// Desired minimum amount on hand, in the stock unit. Zero disables
	// the below-minimum badge for this product.
	MinStockAmount float64
	// When true the product keeps its own stock and is excluded from the
	// parent's roll-up.
	HasOwnStock bool
	// Timestamp when the product was created.
	CreatedAt *time.Time
	// Timestamp when the product was last updated.
	UpdatedAt *time.Time
}
