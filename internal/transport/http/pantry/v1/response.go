package http

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/household-pantry/internal/model"
)

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type positionFulfillment struct {
	PositionID           string  `json:"position_id"`
	ProductID            string  `json:"product_id"`
	AmountNeeded         float64 `json:"amount_needed_stock_unit"`
	AmountAvailable      float64 `json:"amount_available_stock_unit"`
	AmountMissing        float64 `json:"amount_missing_stock_unit"`
	AmountOnShoppingList float64 `json:"amount_on_shopping_list_stock_unit"`
	Status               string  `json:"status"`
	Fault                string  `json:"fault,omitempty"`
	VariableAmount       string  `json:"variable_amount,omitempty"`
	ConversionUnresolved bool    `json:"conversion_unresolved"`
}

type recipeFulfillmentResponse struct {
	RecipeID          string                `json:"recipe_id"`
	BaseServings      float64               `json:"base_servings"`
	DesiredServings   float64               `json:"desired_servings"`
	Positions         []positionFulfillment `json:"positions"`
	MissingProductIDs []string              `json:"missing_product_ids"`
}

type shoppingListItemResponse struct {
	ID             string     `json:"id"`
	ProductID      string     `json:"product_id"`
	QuantityUnitID string     `json:"quantity_unit_id"`
	Amount         float64    `json:"amount"`
	Note           string     `json:"note,omitempty"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

type addMissingResponse struct {
	RecipeID string                     `json:"recipe_id"`
	Items    []shoppingListItemResponse `json:"items"`
}

type stockOverviewEntryResponse struct {
	ProductID            string  `json:"product_id"`
	AmountAggregated     float64 `json:"amount_aggregated"`
	MinStockAmount       float64 `json:"min_stock_amount"`
	AmountMissing        float64 `json:"amount_missing_stock_unit"`
	AmountOnShoppingList float64 `json:"amount_on_shopping_list_stock_unit"`
	Status               string  `json:"status"`
	ConversionUnresolved bool    `json:"conversion_unresolved"`
}

type stockOverviewResponse struct {
	Entries []stockOverviewEntryResponse `json:"entries"`
}

func fulfillmentToResponse(res *model.RecipeFulfillment) recipeFulfillmentResponse {
	return recipeFulfillmentResponse{
		RecipeID:        res.RecipeID,
		BaseServings:    res.BaseServings,
		DesiredServings: res.DesiredServings,
		Positions: lo.Map(res.PerPosition, func(p model.FulfillmentResult, _ int) positionFulfillment {
			return positionFulfillment{
				PositionID:           p.PositionID,
				ProductID:            p.ProductID,
				AmountNeeded:         p.AmountNeededStockUnit,
				AmountAvailable:      p.AmountAvailableStockUnit,
				AmountMissing:        p.AmountMissingStockUnit,
				AmountOnShoppingList: p.AmountOnShoppingListStockUnit,
				Status:               string(p.Status),
				Fault:                string(p.Fault),
				VariableAmount:       p.VariableAmount,
				ConversionUnresolved: p.ConversionUnresolved,
			}
		}),
		MissingProductIDs: res.MissingProductIDs,
	}
}

func addMissingToResponse(res *model.AddMissingResult) addMissingResponse {
	return addMissingResponse{
		RecipeID: res.RecipeID,
		Items: lo.Map(res.Items, func(i model.ShoppingListItem, _ int) shoppingListItemResponse {
			return shoppingListItemResponse{
				ID:             i.ID,
				ProductID:      i.ProductID,
				QuantityUnitID: i.QuantityUnitID,
				Amount:         i.Amount,
				Note:           i.Note,
				CreatedAt:      i.CreatedAt,
			}
		}),
	}
}

func stockOverviewEntryToResponse(e model.StockOverviewEntry) stockOverviewEntryResponse {
	return stockOverviewEntryResponse{
		ProductID:            e.ProductID,
		AmountAggregated:     e.AmountAggregated,
		MinStockAmount:       e.MinStockAmount,
		AmountMissing:        e.AmountMissingStockUnit,
		AmountOnShoppingList: e.AmountOnShoppingListStockUnit,
		Status:               string(e.Status),
		ConversionUnresolved: e.ConversionUnresolved,
	}
}

func stockOverviewToResponse(entries []model.StockOverviewEntry) stockOverviewResponse {
	return stockOverviewResponse{
		Entries: lo.Map(entries, func(e model.StockOverviewEntry, _ int) stockOverviewEntryResponse {
			return stockOverviewEntryToResponse(e)
		}),
	}
}
