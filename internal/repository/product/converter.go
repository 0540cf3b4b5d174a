package repository

import (
	"github.com/you-humble/household-pantry/internal/model"
)

func EntityToModel(e *ProductEntity) *model.Product {
	if e == nil {
		return nil
	}

	return &model.Product{
		ID:             e.ID,
		Name:           e.Name,
		ParentID:       e.ParentID,
		StockUnitID:    e.StockUnitID,
		PurchaseUnitID: e.PurchaseUnitID,
		PriceUnitID:    e.PriceUnitID,
		MinStockAmount: e.MinStockAmount,
		HasOwnStock:    e.HasOwnStock,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func EntityFromModel(p *model.Product) *ProductEntity {
	if p == nil {
		return nil
	}

	return &ProductEntity{
		ID:             p.ID,
		Name:           p.Name,
		ParentID:       p.ParentID,
		StockUnitID:    p.StockUnitID,
		PurchaseUnitID: p.PurchaseUnitID,
		PriceUnitID:    p.PriceUnitID,
		MinStockAmount: p.MinStockAmount,
		HasOwnStock:    p.HasOwnStock,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
