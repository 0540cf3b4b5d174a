package repository

import (
	"github.com/you-humble/household-pantry/internal/model"
)

func EntityToModel(e *ConversionEdgeEntity) *model.ConversionEdge {
	if e == nil {
		return nil
	}

	return &model.ConversionEdge{
		ID:         e.ID,
		ProductID:  e.ProductID,
		FromUnitID: e.FromUnitID,
		ToUnitID:   e.ToUnitID,
		Factor:     e.Factor,
	}
}

func EntityFromModel(c *model.ConversionEdge) *ConversionEdgeEntity {
	if c == nil {
		return nil
	}

	return &ConversionEdgeEntity{
		ID:         c.ID,
		ProductID:  c.ProductID,
		FromUnitID: c.FromUnitID,
		ToUnitID:   c.ToUnitID,
		Factor:     c.Factor,
	}
}
