package repository

import (
	"github.com/you-humble/household-pantry/internal/model"
)

func EntityToModel(e *RecipeEntity) *model.Recipe {
	if e == nil {
		return nil
	}

	out := &model.Recipe{
		ID:           e.ID,
		Name:         e.Name,
		BaseServings: e.BaseServings,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}

	out.Positions = make([]model.RecipePosition, 0, len(e.Positions))
	for _, p := range e.Positions {
		out.Positions = append(out.Positions, model.RecipePosition{
			ID:                         p.ID,
			RecipeID:                   e.ID,
			ProductID:                  p.ProductID,
			QuantityUnitID:             p.QuantityUnitID,
			Amount:                     p.Amount,
			VariableAmount:             p.VariableAmount,
			OnlyCheckSingleUnitInStock: p.OnlyCheckSingleUnitInStock,
			SkipStockCheck:             p.SkipStockCheck,
			Note:                       p.Note,
		})
	}

	return out
}

func EntityFromModel(r *model.Recipe) *RecipeEntity {
	if r == nil {
		return nil
	}

	out := &RecipeEntity{
		ID:           r.ID,
		Name:         r.Name,
		BaseServings: r.BaseServings,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}

	out.Positions = make([]RecipePositionEntity, 0, len(r.Positions))
	for _, p := range r.Positions {
		out.Positions = append(out.Positions, RecipePositionEntity{
			ID:                         p.ID,
			ProductID:                  p.ProductID,
			QuantityUnitID:             p.QuantityUnitID,
			Amount:                     p.Amount,
			VariableAmount:             p.VariableAmount,
			OnlyCheckSingleUnitInStock: p.OnlyCheckSingleUnitInStock,
			SkipStockCheck:             p.SkipStockCheck,
			Note:                       p.Note,
		})
	}

	return out
}
