package model

import "errors"

var (
	ErrValidation            = errors.New("invalid argument")
	ErrRecipeNotFound        = errors.New("recipe not found")
	ErrProductNotFound       = errors.New("product not found")
	ErrInvalidRecipe         = errors.New("invalid recipe configuration")
	ErrInvalidConversionEdge = errors.New("invalid conversion edge")
)
