package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/household-pantry/internal/model"
	"github.com/you-humble/household-pantry/internal/service/conversion"
	"github.com/you-humble/household-pantry/internal/service/fulfillment"
	"github.com/you-humble/household-pantry/platform/logger"
)

type ProductRepository interface {
	ProductByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
}

type QuantityUnitRepository interface {
	List(ctx context.Context) ([]model.QuantityUnit, error)
}

type ConversionRepository interface {
	List(ctx context.Context) ([]model.ConversionEdge, error)
}

type StockRepository interface {
	List(ctx context.Context) ([]model.StockRow, error)
}

type ShoppingListRepository interface {
	ListPending(ctx context.Context) ([]model.ShoppingListItem, error)
}

type service struct {
	products     ProductRepository
	units        QuantityUnitRepository
	conversions  ConversionRepository
	stock        StockRepository
	shoppingList ShoppingListRepository

	readDBTimeout time.Duration
}

func NewStockService(
	products ProductRepository,
	units QuantityUnitRepository,
	conversions ConversionRepository,
	stock StockRepository,
	shoppingList ShoppingListRepository,
	readDBTimeout time.Duration,
) *service {
	return &service{
		products:      products,
		units:         units,
		conversions:   conversions,
		stock:         stock,
		shoppingList:  shoppingList,
		readDBTimeout: readDBTimeout,
	}
}

// Overview recomputes every product's below-minimum badge from the
// current snapshots.
func (s *service) Overview(ctx context.Context) ([]model.StockOverviewEntry, error) {
	const op = "stock.service.Overview"

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	entries, err := s.computeOverview(ctx)
	if err != nil {
		logger.Error(ctx, "compute stock overview", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// ProductStock is the single-product cut of the overview. The product
// must exist even when it has no stock rows.
func (s *service) ProductStock(ctx context.Context, productID string) (*model.StockOverviewEntry, error) {
	const op = "stock.service.ProductStock"
	log := logger.With(
		logger.String("product_id", productID),
	)

	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("product id must be non-empty"))
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	if _, err := s.products.ProductByID(ctx, productID); err != nil {
		log.Error(ctx, "product by id", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := s.computeOverview(ctx)
	if err != nil {
		log.Error(ctx, "compute stock overview", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range entries {
		if entries[i].ProductID == productID {
			return &entries[i], nil
		}
	}

	return nil, fmt.Errorf("%s: %w", op, model.ErrProductNotFound)
}

func (s *service) computeOverview(ctx context.Context) ([]model.StockOverviewEntry, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quantity units: %w", err)
	}

	edges, err := s.conversions.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list conversion edges: %w", err)
	}

	catalog, err := conversion.NewCatalog(units, edges)
	if err != nil {
		return nil, fmt.Errorf("build conversion catalog: %w", err)
	}

	rows, err := s.stock.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}

	pending, err := s.shoppingList.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending shopping list items: %w", err)
	}

	productsByID := lo.KeyBy(products, func(p model.Product) string { return p.ID })
	rowsByID := lo.KeyBy(rows, func(r model.StockRow) string { return r.ProductID })

	return fulfillment.ComputeStockOverview(fulfillment.StockInput{
		Products: productsByID,
		Stock:    fulfillment.AggregateStock(productsByID, rowsByID),
		ShoppingList: lo.GroupBy(pending, func(i model.ShoppingListItem) string {
			return i.ProductID
		}),
		Conversions: catalog,
	}), nil
}
