package model

// StockRow is a product's raw on-hand amount as stored, in the product's
// stock unit, before any parent/child roll-up.
type StockRow struct {
	ProductID    string
	Amount       float64
	AmountOpened float64
}

// StockSnapshot is a product's stock position for one computation pass.
// Aggregated amounts include the amounts of variant products whose
// ParentID points at this product.
type StockSnapshot struct {
	ProductID              string
	Amount                 float64
	AmountOpened           float64
	AmountAggregated       float64
	AmountOpenedAggregated float64
}

// StockOverviewEntry is the per-product result of the stock-overview
// computation: how the aggregated amount compares to the configured
// minimum stock amount.
type StockOverviewEntry struct {
	ProductID                     string
	AmountAggregated              float64
	MinStockAmount                float64
	AmountMissingStockUnit        float64
	AmountOnShoppingListStockUnit float64
	Status                        FulfillmentStatus
	// ConversionUnresolved is set when a shopping-list amount had no
	// applicable conversion edge and was summed with factor 1.
	ConversionUnresolved bool
}
