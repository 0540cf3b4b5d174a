package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/household-pantry/internal/model"
	"github.com/you-humble/household-pantry/internal/service/mocks"
)

func TestServiceOverview(t *testing.T) {
	t.Parallel()

	const (
		unitGram     = "qu-g"
		unitKilogram = "qu-kg"
		flourID      = "prod-flour"
		flourBulkID  = "prod-flour-bulk"
		sugarID      = "prod-sugar"
	)

	type deps struct {
		products     *mocks.MockProductRepository
		units        *mocks.MockQuantityUnitRepository
		conversions  *mocks.MockConversionRepository
		stock        *mocks.MockStockRepository
		shoppingList *mocks.MockShoppingListRepository
	}

	newSvc := func(d deps) *service {
		return NewStockService(
			d.products,
			d.units,
			d.conversions,
			d.stock,
			d.shoppingList,
			time.Second,
		)
	}

	products := []model.Product{
		{ID: flourID, Name: "Flour", StockUnitID: unitGram, MinStockAmount: 1000},
		{ID: flourBulkID, Name: "Flour 5kg bag", ParentID: ptr(flourID), StockUnitID: unitGram},
		{ID: sugarID, Name: "Sugar", StockUnitID: unitGram, MinStockAmount: 500},
	}
	units := []model.QuantityUnit{
		{ID: unitGram, Name: "gram"},
		{ID: unitKilogram, Name: "kilogram"},
	}
	edges := []model.ConversionEdge{
		{ID: "conv-1", FromUnitID: unitKilogram, ToUnitID: unitGram, Factor: 1000},
	}
	rows := []model.StockRow{
		{ProductID: flourID, Amount: 400},
		{ProductID: flourBulkID, Amount: 200},
		{ProductID: sugarID, Amount: 100},
	}
	pending := []model.ShoppingListItem{
		{ID: "sli-1", ProductID: flourID, QuantityUnitID: unitKilogram, Amount: 0.5},
	}

	arrangeAll := func(d deps) {
		d.products.On("List", mock.Anything).Return(products, nil).Once()
		d.units.On("List", mock.Anything).Return(units, nil).Once()
		d.conversions.On("List", mock.Anything).Return(edges, nil).Once()
		d.stock.On("List", mock.Anything).Return(rows, nil).Once()
		d.shoppingList.On("ListPending", mock.Anything).Return(pending, nil).Once()
	}

	type testCase struct {
		name   string
		setup  func(d deps)
		assert func(t *testing.T, res []model.StockOverviewEntry, err error, d deps)
	}

	tests := []testCase{
		{
			name: "repository error: products read failed",
			setup: func(d deps) {
				d.products.
					On("List", mock.Anything).
					Return(([]model.Product)(nil), errors.New("db read failed")).
					Once()
			},
			assert: func(t *testing.T, res []model.StockOverviewEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorContains(t, err, "db read failed")
				assert.Nil(t, res)
			},
		},
		{
			name: "invalid catalog: bad conversion edge surfaces",
			setup: func(d deps) {
				d.products.On("List", mock.Anything).Return(products, nil).Once()
				d.units.On("List", mock.Anything).Return(units, nil).Once()
				d.conversions.
					On("List", mock.Anything).
					Return([]model.ConversionEdge{
						{ID: "conv-bad", FromUnitID: unitKilogram, ToUnitID: unitGram, Factor: 0},
					}, nil).
					Once()
			},
			assert: func(t *testing.T, res []model.StockOverviewEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidConversionEdge)
				assert.Nil(t, res)

				d.stock.AssertNotCalled(t, "List", mock.Anything)
			},
		},
		{
			name:  "success: child stock rolls into parent and pending items convert",
			setup: arrangeAll,
			assert: func(t *testing.T, res []model.StockOverviewEntry, err error, d deps) {
				require.NoError(t, err)
				require.Len(t, res, 3)

				byProduct := map[string]model.StockOverviewEntry{}
				for _, entry := range res {
					byProduct[entry.ProductID] = entry
				}

				flour := byProduct[flourID]
				assert.InDelta(t, 600, flour.AmountAggregated, 1e-9)
				assert.InDelta(t, 400, flour.AmountMissingStockUnit, 1e-9)
				assert.InDelta(t, 500, flour.AmountOnShoppingListStockUnit, 1e-9)
				assert.Equal(t, model.StatusInsufficientButOnList, flour.Status)

				sugar := byProduct[sugarID]
				assert.InDelta(t, 100, sugar.AmountAggregated, 1e-9)
				assert.InDelta(t, 400, sugar.AmountMissingStockUnit, 1e-9)
				assert.Equal(t, model.StatusMissing, sugar.Status)

				bulk := byProduct[flourBulkID]
				assert.Equal(t, model.StatusFulfilled, bulk.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				products:     mocks.NewMockProductRepository(t),
				units:        mocks.NewMockQuantityUnitRepository(t),
				conversions:  mocks.NewMockConversionRepository(t),
				stock:        mocks.NewMockStockRepository(t),
				shoppingList: mocks.NewMockShoppingListRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.Overview(context.Background())
			tt.assert(t, res, err, d)
		})
	}
}

func TestServiceProductStock(t *testing.T) {
	t.Parallel()

	const (
		unitGram = "qu-g"
		flourID  = "prod-flour"
	)

	type deps struct {
		products     *mocks.MockProductRepository
		units        *mocks.MockQuantityUnitRepository
		conversions  *mocks.MockConversionRepository
		stock        *mocks.MockStockRepository
		shoppingList *mocks.MockShoppingListRepository
	}

	newSvc := func(d deps) *service {
		return NewStockService(
			d.products,
			d.units,
			d.conversions,
			d.stock,
			d.shoppingList,
			time.Second,
		)
	}

	flour := &model.Product{ID: flourID, Name: "Flour", StockUnitID: unitGram, MinStockAmount: 1000}

	type testCase struct {
		name      string
		productID string
		setup     func(d deps)
		assert    func(t *testing.T, res *model.StockOverviewEntry, err error, d deps)
	}

	tests := []testCase{
		{
			name:      "validation error: empty product id after trim",
			productID: "   ",
			setup: func(d deps) {
				// No calls expected.
			},
			assert: func(t *testing.T, res *model.StockOverviewEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Nil(t, res)

				d.products.AssertNotCalled(t, "ProductByID", mock.Anything, mock.Anything)
			},
		},
		{
			name:      "unknown product",
			productID: "prod-unknown",
			setup: func(d deps) {
				d.products.
					On("ProductByID", mock.Anything, "prod-unknown").
					Return((*model.Product)(nil), model.ErrProductNotFound).
					Once()
			},
			assert: func(t *testing.T, res *model.StockOverviewEntry, err error, d deps) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrProductNotFound)
				assert.Nil(t, res)
			},
		},
		{
			name:      "success: entry for the requested product",
			productID: " " + flourID + " ",
			setup: func(d deps) {
				d.products.
					On("ProductByID", mock.Anything, flourID).
					Return(flour, nil).
					Once()
				d.products.On("List", mock.Anything).Return([]model.Product{*flour}, nil).Once()
				d.units.
					On("List", mock.Anything).
					Return([]model.QuantityUnit{{ID: unitGram, Name: "gram"}}, nil).
					Once()
				d.conversions.On("List", mock.Anything).Return([]model.ConversionEdge{}, nil).Once()
				d.stock.
					On("List", mock.Anything).
					Return([]model.StockRow{{ProductID: flourID, Amount: 400}}, nil).
					Once()
				d.shoppingList.On("ListPending", mock.Anything).Return([]model.ShoppingListItem{}, nil).Once()
			},
			assert: func(t *testing.T, res *model.StockOverviewEntry, err error, d deps) {
				require.NoError(t, err)
				require.NotNil(t, res)
				assert.Equal(t, flourID, res.ProductID)
				assert.InDelta(t, 400, res.AmountAggregated, 1e-9)
				assert.InDelta(t, 600, res.AmountMissingStockUnit, 1e-9)
				assert.Equal(t, model.StatusMissing, res.Status)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			d := deps{
				products:     mocks.NewMockProductRepository(t),
				units:        mocks.NewMockQuantityUnitRepository(t),
				conversions:  mocks.NewMockConversionRepository(t),
				stock:        mocks.NewMockStockRepository(t),
				shoppingList: mocks.NewMockShoppingListRepository(t),
			}
			if tt.setup != nil {
				tt.setup(d)
			}

			svc := newSvc(d)

			res, err := svc.ProductStock(context.Background(), tt.productID)
			tt.assert(t, res, err, d)
		})
	}
}

func ptr[T any](v T) *T { return &v }
