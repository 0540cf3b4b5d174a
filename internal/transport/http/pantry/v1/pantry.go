package http

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/household-pantry/internal/model"
	"github.com/you-humble/household-pantry/platform/logger"
)

type RecipeService interface {
	Fulfillment(
		ctx context.Context,
		recipeID string,
		desiredServings *float64,
	) (*model.RecipeFulfillment, error)
	AddMissingToShoppingList(
		ctx context.Context,
		recipeID string,
		desiredServings *float64,
	) (*model.AddMissingResult, error)
}

type StockService interface {
	Overview(ctx context.Context) ([]model.StockOverviewEntry, error)
	ProductStock(ctx context.Context, productID string) (*model.StockOverviewEntry, error)
}

type handler struct {
	recipes RecipeService
	stock   StockService
}

func NewPantryHandler(recipes RecipeService, stock StockService) *handler {
	return &handler{recipes: recipes, stock: stock}
}

func (h *handler) Register(r chi.Router) {
	r.Get("/api/v1/recipes/{recipe_id}/fulfillment", h.RecipeFulfillment)
	r.Post("/api/v1/recipes/{recipe_id}/shopping-list", h.AddMissingToShoppingList)
	r.Get("/api/v1/stock/overview", h.StockOverview)
	r.Get("/api/v1/products/{product_id}/stock", h.ProductStock)
}

func (h *handler) RecipeFulfillment(w http.ResponseWriter, r *http.Request) {
	servings, err := servingsParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid servings")
		return
	}

	res, err := h.recipes.Fulfillment(r.Context(), chi.URLParam(r, "recipe_id"), servings)
	if err != nil {
		mapError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, fulfillmentToResponse(res))
}

func (h *handler) AddMissingToShoppingList(w http.ResponseWriter, r *http.Request) {
	servings, err := servingsParam(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid servings")
		return
	}

	res, err := h.recipes.AddMissingToShoppingList(r.Context(), chi.URLParam(r, "recipe_id"), servings)
	if err != nil {
		mapError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, addMissingToResponse(res))
}

func (h *handler) StockOverview(w http.ResponseWriter, r *http.Request) {
	entries, err := h.stock.Overview(r.Context())
	if err != nil {
		mapError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stockOverviewToResponse(entries))
}

func (h *handler) ProductStock(w http.ResponseWriter, r *http.Request) {
	entry, err := h.stock.ProductStock(r.Context(), chi.URLParam(r, "product_id"))
	if err != nil {
		mapError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, stockOverviewEntryToResponse(*entry))
}

// servingsParam reads the optional servings query parameter. Absence
// means "as authored" and is reported as nil.
func servingsParam(r *http.Request) (*float64, error) {
	raw := r.URL.Query().Get("servings")
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, err
	}
	// ParseFloat accepts NaN and the infinities; none of them is a
	// serving count.
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, errors.New("servings must be finite")
	}
	return &v, nil
}

func mapError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, model.ErrValidation):
		writeError(w, r, http.StatusBadRequest, err.Error()) // 400
	case errors.Is(err, model.ErrRecipeNotFound),
		errors.Is(err, model.ErrProductNotFound):
		writeError(w, r, http.StatusNotFound, err.Error()) // 404
	case errors.Is(err, model.ErrInvalidRecipe),
		errors.Is(err, model.ErrInvalidConversionEdge):
		writeError(w, r, http.StatusUnprocessableEntity, err.Error()) // 422
	default:
		writeError(w, r, http.StatusInternalServerError, err.Error()) // 500
	}
}

func writeError(w http.ResponseWriter, r *http.Request, code int, message string) {
	writeJSON(w, r, code, errorResponse{Code: code, Message: message})
}

func writeJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error(r.Context(), "write json response", logger.ErrorF(err))
	}
}
