package repository

type StockRowEntity struct {
	ProductID    string  `bson:"_id"`
	Amount       float64 `bson:"amount"`
	AmountOpened float64 `bson:"amount_opened"`
}
