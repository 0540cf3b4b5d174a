package repository

import (
	"github.com/you-humble/household-pantry/internal/model"
)

func EntityToModel(e *StockRowEntity) *model.StockRow {
	if e == nil {
		return nil
	}

	return &model.StockRow{
		ProductID:    e.ProductID,
		Amount:       e.Amount,
		AmountOpened: e.AmountOpened,
	}
}

func EntityFromModel(s *model.StockRow) *StockRowEntity {
	if s == nil {
		return nil
	}

	return &StockRowEntity{
		ProductID:    s.ProductID,
		Amount:       s.Amount,
		AmountOpened: s.AmountOpened,
	}
}
