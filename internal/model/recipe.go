package model

import "time"

type Recipe struct {
	// Globally unique identifier of the recipe.
	ID string
	// Human-readable recipe name.
	Name string
	// Serving count the position amounts are authored for. Must be
	// positive; anything else makes the whole recipe invalid for
	// numeric fulfillment.
	BaseServings float64
	// Serving count the user wants to cook.
	DesiredServings float64
	// Ingredient lines of the recipe.
	Positions []RecipePosition
	// Timestamp when the recipe was created.
	CreatedAt *time.Time
	// Timestamp when the recipe was last updated.
	UpdatedAt *time.Time
}

type RecipePosition struct {
	ID       string
	RecipeID string
	// Product this line refers to.
	ProductID string
	// Unit the amount is expressed in.
	QuantityUnitID string
	// Numeric amount; meaningless when VariableAmount is set.
	Amount float64
	// Free-text amount such as "to taste". When set, numeric fulfillment
	// is disabled for this line.
	VariableAmount *string
	// Compare raw item counts and skip unit conversion.
	OnlyCheckSingleUnitInStock bool
	// Exclude this line from the stock check entirely.
	SkipStockCheck bool
	// Optional free-form note.
	Note string
}
