package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/household-pantry/internal/model"
)

type recipeServiceStub struct {
	fulfillment func(ctx context.Context, recipeID string, servings *float64) (*model.RecipeFulfillment, error)
	addMissing  func(ctx context.Context, recipeID string, servings *float64) (*model.AddMissingResult, error)
}

func (s recipeServiceStub) Fulfillment(ctx context.Context, recipeID string, servings *float64) (*model.RecipeFulfillment, error) {
	return s.fulfillment(ctx, recipeID, servings)
}

func (s recipeServiceStub) AddMissingToShoppingList(ctx context.Context, recipeID string, servings *float64) (*model.AddMissingResult, error) {
	return s.addMissing(ctx, recipeID, servings)
}

type stockServiceStub struct {
	overview     func(ctx context.Context) ([]model.StockOverviewEntry, error)
	productStock func(ctx context.Context, productID string) (*model.StockOverviewEntry, error)
}

func (s stockServiceStub) Overview(ctx context.Context) ([]model.StockOverviewEntry, error) {
	return s.overview(ctx)
}

func (s stockServiceStub) ProductStock(ctx context.Context, productID string) (*model.StockOverviewEntry, error) {
	return s.productStock(ctx, productID)
}

func newRouter(recipes RecipeService, stock StockService) *chi.Mux {
	r := chi.NewRouter()
	NewPantryHandler(recipes, stock).Register(r)
	return r
}

func TestRecipeFulfillmentEndpoint(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		target   string
		recipes  RecipeService
		wantCode int
		assert   func(t *testing.T, body []byte)
	}

	okService := recipeServiceStub{
		fulfillment: func(_ context.Context, recipeID string, servings *float64) (*model.RecipeFulfillment, error) {
			if recipeID != "rcp-1" {
				return nil, model.ErrRecipeNotFound
			}
			res := &model.RecipeFulfillment{
				RecipeID:     recipeID,
				BaseServings: 4,
				PerPosition: []model.FulfillmentResult{
					{PositionID: "pos-1", ProductID: "prod-1", Status: model.StatusFulfilled},
				},
			}
			res.DesiredServings = res.BaseServings
			if servings != nil {
				res.DesiredServings = *servings
			}
			return res, nil
		},
	}

	tests := []testCase{
		{
			name:     "success with servings",
			target:   "/api/v1/recipes/rcp-1/fulfillment?servings=8",
			recipes:  okService,
			wantCode: http.StatusOK,
			assert: func(t *testing.T, body []byte) {
				var res recipeFulfillmentResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "rcp-1", res.RecipeID)
				assert.InDelta(t, 8, res.DesiredServings, 1e-9)
				require.Len(t, res.Positions, 1)
				assert.Equal(t, string(model.StatusFulfilled), res.Positions[0].Status)
			},
		},
		{
			name:     "bad servings parameter",
			target:   "/api/v1/recipes/rcp-1/fulfillment?servings=soup",
			recipes:  okService,
			wantCode: http.StatusBadRequest,
			assert: func(t *testing.T, body []byte) {
				var res errorResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, http.StatusBadRequest, res.Code)
			},
		},
		{
			name:     "non-finite servings rejected",
			target:   "/api/v1/recipes/rcp-1/fulfillment?servings=NaN",
			recipes:  okService,
			wantCode: http.StatusBadRequest,
			assert: func(t *testing.T, body []byte) {
				var res errorResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, http.StatusBadRequest, res.Code)
			},
		},
		{
			name:     "infinite servings rejected",
			target:   "/api/v1/recipes/rcp-1/fulfillment?servings=%2BInf",
			recipes:  okService,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown recipe maps to 404",
			target:   "/api/v1/recipes/rcp-unknown/fulfillment",
			recipes:  okService,
			wantCode: http.StatusNotFound,
			assert: func(t *testing.T, body []byte) {
				var res errorResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Contains(t, res.Message, "not found")
			},
		},
		{
			name:   "validation error maps to 400",
			target: "/api/v1/recipes/rcp-1/fulfillment",
			recipes: recipeServiceStub{
				fulfillment: func(_ context.Context, _ string, _ *float64) (*model.RecipeFulfillment, error) {
					return nil, model.ErrValidation
				},
			},
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(tt.recipes, stockServiceStub{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.assert != nil {
				tt.assert(t, rec.Body.Bytes())
			}
		})
	}
}

func TestAddMissingToShoppingListEndpoint(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		recipes  RecipeService
		wantCode int
		assert   func(t *testing.T, body []byte)
	}

	tests := []testCase{
		{
			name: "created",
			recipes: recipeServiceStub{
				addMissing: func(_ context.Context, recipeID string, _ *float64) (*model.AddMissingResult, error) {
					return &model.AddMissingResult{
						RecipeID: recipeID,
						Items: []model.ShoppingListItem{
							{ID: "sli-1", ProductID: "prod-1", QuantityUnitID: "qu-1", Amount: 500},
						},
					}, nil
				},
			},
			wantCode: http.StatusCreated,
			assert: func(t *testing.T, body []byte) {
				var res addMissingResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "rcp-1", res.RecipeID)
				require.Len(t, res.Items, 1)
				assert.InDelta(t, 500, res.Items[0].Amount, 1e-9)
			},
		},
		{
			name: "invalid recipe maps to 422",
			recipes: recipeServiceStub{
				addMissing: func(_ context.Context, _ string, _ *float64) (*model.AddMissingResult, error) {
					return nil, model.ErrInvalidRecipe
				},
			},
			wantCode: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			router := newRouter(tt.recipes, stockServiceStub{})

			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(
				http.MethodPost, "/api/v1/recipes/rcp-1/shopping-list", nil,
			))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.assert != nil {
				tt.assert(t, rec.Body.Bytes())
			}
		})
	}
}

func TestStockOverviewEndpoint(t *testing.T) {
	t.Parallel()

	router := newRouter(recipeServiceStub{}, stockServiceStub{
		overview: func(_ context.Context) ([]model.StockOverviewEntry, error) {
			return []model.StockOverviewEntry{
				{ProductID: "prod-1", AmountAggregated: 600, MinStockAmount: 1000, AmountMissingStockUnit: 400, Status: model.StatusMissing},
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/stock/overview", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res stockOverviewResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Entries, 1)
	assert.Equal(t, "prod-1", res.Entries[0].ProductID)
	assert.InDelta(t, 400, res.Entries[0].AmountMissing, 1e-9)
	assert.Equal(t, string(model.StatusMissing), res.Entries[0].Status)
}

func TestProductStockEndpoint(t *testing.T) {
	t.Parallel()

	router := newRouter(recipeServiceStub{}, stockServiceStub{
		productStock: func(_ context.Context, productID string) (*model.StockOverviewEntry, error) {
			if productID != "prod-1" {
				return nil, model.ErrProductNotFound
			}
			return &model.StockOverviewEntry{
				ProductID:        productID,
				AmountAggregated: 600,
				MinStockAmount:   1000,
				Status:           model.StatusMissing,
			}, nil
		},
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-1/stock", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var res stockOverviewEntryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "prod-1", res.ProductID)
	assert.InDelta(t, 600, res.AmountAggregated, 1e-9)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/products/prod-unknown/stock", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
