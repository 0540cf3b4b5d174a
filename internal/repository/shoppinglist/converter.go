package repository

import (
	"github.com/you-humble/household-pantry/internal/model"
)

func EntityToModel(e *ShoppingListItemEntity) *model.ShoppingListItem {
	if e == nil {
		return nil
	}

	return &model.ShoppingListItem{
		ID:             e.ID,
		ProductID:      e.ProductID,
		QuantityUnitID: e.QuantityUnitID,
		Amount:         e.Amount,
		Done:           e.Done,
		Note:           e.Note,
		CreatedAt:      e.CreatedAt,
	}
}

func EntityFromModel(i *model.ShoppingListItem) *ShoppingListItemEntity {
	if i == nil {
		return nil
	}

	return &ShoppingListItemEntity{
		ID:             i.ID,
		ProductID:      i.ProductID,
		QuantityUnitID: i.QuantityUnitID,
		Amount:         i.Amount,
		Done:           i.Done,
		Note:           i.Note,
		CreatedAt:      i.CreatedAt,
	}
}
