package model

type (
	FulfillmentStatus string
	PositionFault     string
)

const (
	// StatusNotChecked marks lines excluded from the numeric check
	// (variable-text amounts, skipped lines, faulted lines).
	StatusNotChecked FulfillmentStatus = "NOT_CHECKED"
	StatusFulfilled  FulfillmentStatus = "FULFILLED"
	// StatusInsufficientButOnList means stock is short but the pending
	// shopping-list amount covers the gap.
	StatusInsufficientButOnList FulfillmentStatus = "INSUFFICIENT_BUT_ON_LIST"
	StatusMissing               FulfillmentStatus = "MISSING"
)

const (
	FaultNone PositionFault = ""
	// FaultUnresolvedReference marks a line pointing at a product or
	// unit absent from the supplied catalogues.
	FaultUnresolvedReference PositionFault = "UNRESOLVED_REFERENCE"
	// FaultInvalidRecipe marks every line of a recipe whose base
	// servings are not positive.
	FaultInvalidRecipe PositionFault = "INVALID_RECIPE_CONFIGURATION"
)

// FulfillmentResult is the per-position outcome of a recipe fulfillment
// pass. All amounts are in the product's stock unit.
type FulfillmentResult struct {
	PositionID string
	ProductID  string

	AmountNeededStockUnit         float64
	AmountAvailableStockUnit      float64
	AmountMissingStockUnit        float64
	AmountOnShoppingListStockUnit float64

	Status FulfillmentStatus
	Fault  PositionFault

	// VariableAmount carries the free-text amount verbatim when the
	// line uses one.
	VariableAmount string
	// ConversionUnresolved is set when any needed conversion had no
	// applicable edge and the amount was passed through with factor 1.
	ConversionUnresolved bool
}

// RecipeFulfillment is the whole-recipe outcome: per-position results
// plus the deduplicated list of products to put on the shopping list.
type RecipeFulfillment struct {
	RecipeID        string
	BaseServings    float64
	DesiredServings float64

	PerPosition       []FulfillmentResult
	MissingProductIDs []string
}
