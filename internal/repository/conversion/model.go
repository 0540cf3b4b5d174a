package repository

type ConversionEdgeEntity struct {
	ID         string  `bson:"_id"`
	ProductID  *string `bson:"product_id,omitempty"`
	FromUnitID string  `bson:"from_unit_id"`
	ToUnitID   string  `bson:"to_unit_id"`
	Factor     float64 `bson:"factor"`
}
