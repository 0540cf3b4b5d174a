package repository

import (
	"github.com/you-humble/household-pantry/internal/model"
)

func EntityToModel(e *QuantityUnitEntity) *model.QuantityUnit {
	if e == nil {
		return nil
	}

	return &model.QuantityUnit{
		ID:          e.ID,
		Name:        e.Name,
		NamePlural:  e.NamePlural,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func EntityFromModel(u *model.QuantityUnit) *QuantityUnitEntity {
	if u == nil {
		return nil
	}

	return &QuantityUnitEntity{
		ID:          u.ID,
		Name:        u.Name,
		NamePlural:  u.NamePlural,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
	}
}
