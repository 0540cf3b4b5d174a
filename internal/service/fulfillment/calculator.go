package fulfillment

import (
	"sort"

	"github.com/samber/lo"

	"github.com/you-humble/household-pantry/internal/model"
	"github.com/you-humble/household-pantry/internal/service/conversion"
)

// The calculator is a pure function of the snapshots it is handed: it
// never mutates them, holds no state and is safe to run concurrently.
// Every pass is a full re-derivation; faults on one line never abort
// the computation for its siblings.

// RecipeInput is one immutable computation pass for a recipe.
type RecipeInput struct {
	Recipe       model.Recipe
	Products     map[string]model.Product
	Units        map[string]model.QuantityUnit
	Stock        map[string]model.StockSnapshot
	ShoppingList map[string][]model.ShoppingListItem
	Conversions  *conversion.Catalog
}

// StockInput is one immutable computation pass for the stock overview.
type StockInput struct {
	Products     map[string]model.Product
	Stock        map[string]model.StockSnapshot
	ShoppingList map[string][]model.ShoppingListItem
	Conversions  *conversion.Catalog
}

// demand is the explicit decision of what a recipe line asks for, so
// the per-line state machine is exhaustive instead of a chain of
// nullable-field checks.
type demandKind int

const (
	demandNumeric demandKind = iota
	demandVariableText
	demandSkipped
)

type demand struct {
	kind demandKind
	text string
}

func classifyDemand(pos model.RecipePosition) demand {
	if pos.VariableAmount != nil {
		return demand{kind: demandVariableText, text: *pos.VariableAmount}
	}
	if pos.SkipStockCheck {
		return demand{kind: demandSkipped}
	}
	return demand{kind: demandNumeric}
}

// ComputeRecipeFulfillment computes per-position need/availability/
// missing amounts scaled to the recipe's desired servings, plus the
// deduplicated list of products that belong on the shopping list.
func ComputeRecipeFulfillment(in RecipeInput) *model.RecipeFulfillment {
	out := &model.RecipeFulfillment{
		RecipeID:        in.Recipe.ID,
		BaseServings:    in.Recipe.BaseServings,
		DesiredServings: in.Recipe.DesiredServings,
		PerPosition:     make([]model.FulfillmentResult, 0, len(in.Recipe.Positions)),
	}

	if in.Recipe.BaseServings <= 0 {
		for _, pos := range in.Recipe.Positions {
			out.PerPosition = append(out.PerPosition, model.FulfillmentResult{
				PositionID: pos.ID,
				ProductID:  pos.ProductID,
				Status:     model.StatusNotChecked,
				Fault:      model.FaultInvalidRecipe,
			})
		}
		return out
	}

	servingsRatio := in.Recipe.DesiredServings / in.Recipe.BaseServings

	missing := make([]string, 0)
	for _, pos := range in.Recipe.Positions {
		res := computePosition(in, pos, servingsRatio)
		out.PerPosition = append(out.PerPosition, res)

		if res.Status == model.StatusMissing || res.Status == model.StatusInsufficientButOnList {
			missing = append(missing, res.ProductID)
		}
	}

	out.MissingProductIDs = lo.Uniq(missing)
	return out
}

func computePosition(in RecipeInput, pos model.RecipePosition, servingsRatio float64) model.FulfillmentResult {
	res := model.FulfillmentResult{
		PositionID: pos.ID,
		ProductID:  pos.ProductID,
		Status:     model.StatusNotChecked,
	}

	d := classifyDemand(pos)
	if d.kind == demandVariableText {
		res.VariableAmount = d.text
		return res
	}

	product, ok := in.Products[pos.ProductID]
	if !ok {
		res.Fault = model.FaultUnresolvedReference
		return res
	}
	if _, ok := in.Units[pos.QuantityUnitID]; !ok {
		res.Fault = model.FaultUnresolvedReference
		return res
	}
	if _, ok := in.Units[product.StockUnitID]; !ok {
		res.Fault = model.FaultUnresolvedReference
		return res
	}

	recipeAmountNeeded := pos.Amount * servingsRatio

	if pos.OnlyCheckSingleUnitInStock {
		// Raw item counts are compared on purpose; the unit mismatch is
		// intentional for this flag.
		res.AmountNeededStockUnit = recipeAmountNeeded
	} else {
		factor, resolved := in.Conversions.FactorOr1(product.ID, pos.QuantityUnitID, product.StockUnitID)
		res.AmountNeededStockUnit = recipeAmountNeeded * factor
		res.ConversionUnresolved = !resolved
	}

	if d.kind == demandSkipped {
		return res
	}

	res.AmountAvailableStockUnit = in.Stock[pos.ProductID].AmountAggregated
	res.AmountMissingStockUnit = max(0, res.AmountNeededStockUnit-res.AmountAvailableStockUnit)

	onList, listResolved := pendingOnShoppingList(in.ShoppingList[pos.ProductID], product, in.Conversions)
	res.AmountOnShoppingListStockUnit = onList
	if !listResolved {
		res.ConversionUnresolved = true
	}

	res.Status = classifyStatus(res.AmountMissingStockUnit, res.AmountOnShoppingListStockUnit)
	return res
}

func classifyStatus(amountMissing, amountOnList float64) model.FulfillmentStatus {
	switch {
	case amountMissing == 0:
		return model.StatusFulfilled
	case amountOnList >= amountMissing:
		return model.StatusInsufficientButOnList
	default:
		return model.StatusMissing
	}
}

// pendingOnShoppingList converts and sums a product's pending list
// amounts into the product's stock unit. resolved is false when any
// entry passed through with factor 1.
func pendingOnShoppingList(
	items []model.ShoppingListItem,
	product model.Product,
	conversions *conversion.Catalog,
) (total float64, resolved bool) {
	resolved = true
	for _, item := range items {
		if item.Done {
			continue
		}
		factor, ok := conversions.FactorOr1(product.ID, item.QuantityUnitID, product.StockUnitID)
		if !ok {
			resolved = false
		}
		total += item.Amount * factor
	}
	return total, resolved
}

// ComputeStockOverview applies the fulfillment rules with a servings
// ratio of 1 and the product's configured minimum stock amount as the
// needed amount. Entries are ordered by product ID for deterministic
// output.
func ComputeStockOverview(in StockInput) []model.StockOverviewEntry {
	out := make([]model.StockOverviewEntry, 0, len(in.Products))

	for _, product := range in.Products {
		entry := model.StockOverviewEntry{
			ProductID:        product.ID,
			AmountAggregated: in.Stock[product.ID].AmountAggregated,
			MinStockAmount:   product.MinStockAmount,
		}

		entry.AmountMissingStockUnit = max(0, product.MinStockAmount-entry.AmountAggregated)

		onList, resolved := pendingOnShoppingList(in.ShoppingList[product.ID], product, in.Conversions)
		entry.AmountOnShoppingListStockUnit = onList
		entry.ConversionUnresolved = !resolved

		entry.Status = classifyStatus(entry.AmountMissingStockUnit, entry.AmountOnShoppingListStockUnit)

		out = append(out, entry)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out
}

// AggregateStock turns raw stock rows into snapshots with parent/child
// roll-up: a variant's amount counts towards its parent's aggregated
// total unless the variant tracks its own stock. Every product keeps
// its own row either way.
func AggregateStock(products map[string]model.Product, rows map[string]model.StockRow) map[string]model.StockSnapshot {
	out := make(map[string]model.StockSnapshot, len(products))

	for id := range products {
		row := rows[id]
		out[id] = model.StockSnapshot{
			ProductID:              id,
			Amount:                 row.Amount,
			AmountOpened:           row.AmountOpened,
			AmountAggregated:       row.Amount,
			AmountOpenedAggregated: row.AmountOpened,
		}
	}

	for id, product := range products {
		if product.ParentID == nil || product.HasOwnStock {
			continue
		}
		parent, ok := out[*product.ParentID]
		if !ok {
			continue
		}
		row := rows[id]
		parent.AmountAggregated += row.Amount
		parent.AmountOpenedAggregated += row.AmountOpened
		out[*product.ParentID] = parent
	}

	return out
}
