package repository

import (
	"time"
)

type RecipeEntity struct {
	ID           string                 `bson:"_id"`
	Name         string                 `bson:"name"`
	BaseServings float64                `bson:"base_servings"`
	Positions    []RecipePositionEntity `bson:"positions,omitempty"`
	CreatedAt    *time.Time             `bson:"created_at,omitempty"`
	UpdatedAt    *time.Time             `bson:"updated_at,omitempty"`
}

type RecipePositionEntity struct {
	ID                         string  `bson:"id"`
	ProductID                  string  `bson:"product_id"`
	QuantityUnitID             string  `bson:"quantity_unit_id"`
	Amount                     float64 `bson:"amount"`
	VariableAmount             *string `bson:"variable_amount,omitempty"`
	OnlyCheckSingleUnitInStock bool    `bson:"only_check_single_unit_in_stock"`
	SkipStockCheck             bool    `bson:"skip_stock_check"`
	Note                       string  `bson:"note,omitempty"`
}
