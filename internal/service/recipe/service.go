package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/household-pantry/internal/model"
	"github.com/you-humble/household-pantry/internal/service/conversion"
	"github.com/you-humble/household-pantry/internal/service/fulfillment"
	"github.com/you-humble/household-pantry/platform/logger"
)

type RecipeRepository interface {
	RecipeByID(ctx context.Context, id string) (*model.Recipe, error)
}

type ProductRepository interface {
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
	CreateBatch(ctx context.Context, items []model.ShoppingListItem) error
}

type ShoppingListUpdatedSender interface {
	SendShoppingListUpdated(ctx context.Context, event model.ShoppingListUpdated) error
}

type service struct {
	recipes      RecipeRepository
	products     ProductRepository
	units        QuantityUnitRepository
	conversions  ConversionRepository
	stock        StockRepository
	shoppingList ShoppingListRepository
	events       ShoppingListUpdatedSender

	readDBTimeout  time.Duration
	writeDBTimeout time.Duration
}

func NewRecipeService(
	recipes RecipeRepository,
	products ProductRepository,
	units QuantityUnitRepository,
	conversions ConversionRepository,
	stock StockRepository,
	shoppingList ShoppingListRepository,
	events ShoppingListUpdatedSender,
	readDBTimeout time.Duration,
	writeDBTimeout time.Duration,
) *service {
	return &service{
		recipes:        recipes,
		products:       products,
		units:          units,
		conversions:    conversions,
		stock:          stock,
		shoppingList:   shoppingList,
		events:         events,
		readDBTimeout:  readDBTimeout,
		writeDBTimeout: writeDBTimeout,
	}
}

// Fulfillment recomputes the recipe's fulfillment from the current
// snapshots. desiredServings nil means "as authored", i.e. the recipe's
// base servings.
func (s *service) Fulfillment(
	ctx context.Context,
	recipeID string,
	desiredServings *float64,
) (*model.RecipeFulfillment, error) {
	const op = "recipe.service.Fulfillment"
	log := logger.With(
		logger.String("recipe_id", recipeID),
	)

	in, err := s.loadRecipeInput(ctx, recipeID, desiredServings)
	if err != nil {
		log.Error(ctx, "load recipe input", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return fulfillment.ComputeRecipeFulfillment(*in), nil
}

// AddMissingToShoppingList queues the not-yet-covered missing amounts
// of the recipe's products as pending shopping-list items, in each
// product's stock unit, and publishes a shopping-list.updated event.
// Products whose gap is already covered by pending items get nothing.
func (s *service) AddMissingToShoppingList(
	ctx context.Context,
	recipeID string,
	desiredServings *float64,
) (*model.AddMissingResult, error) {
	const op = "recipe.service.AddMissingToShoppingList"
	log := logger.With(
		logger.String("recipe_id", recipeID),
	)

	in, err := s.loadRecipeInput(ctx, recipeID, desiredServings)
	if err != nil {
		log.Error(ctx, "load recipe input", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	result := fulfillment.ComputeRecipeFulfillment(*in)
	for _, res := range result.PerPosition {
		if res.Fault == model.FaultInvalidRecipe {
			log.Error(ctx, "recipe has non-positive base servings")
			return nil, fmt.Errorf("%s: %w", op, model.ErrInvalidRecipe)
		}
	}

	items := s.buildMissingItems(in, result)

	out := &model.AddMissingResult{RecipeID: recipeID, Items: items}
	if len(items) == 0 {
		return out, nil
	}

	wdbCtx, wdbCancel := context.WithTimeout(ctx, s.writeDBTimeout)
	defer wdbCancel()

	if err := s.shoppingList.CreateBatch(wdbCtx, items); err != nil {
		log.Error(ctx, "repository create shopping list items", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	event := model.ShoppingListUpdated{
		EventID:  uuid.New(),
		RecipeID: recipeID,
		ItemIDs: lo.Map(items, func(i model.ShoppingListItem, _ int) string {
			return i.ID
		}),
		ProductIDs: lo.Uniq(lo.Map(items, func(i model.ShoppingListItem, _ int) string {
			return i.ProductID
		})),
		OccurredAt: time.Now(),
	}
	if err := s.events.SendShoppingListUpdated(ctx, event); err != nil {
		// The items are already persisted; the event is advisory.
		log.Error(ctx, "send shopping_list_updated event", logger.ErrorF(err))
	}

	return out, nil
}

func (s *service) buildMissingItems(
	in *fulfillment.RecipeInput,
	result *model.RecipeFulfillment,
) []model.ShoppingListItem {
	missingByProduct := make(map[string]float64)
	onListByProduct := make(map[string]float64)
	for _, res := range result.PerPosition {
		if res.Status != model.StatusMissing && res.Status != model.StatusInsufficientButOnList {
			continue
		}
		missingByProduct[res.ProductID] += res.AmountMissingStockUnit
		onListByProduct[res.ProductID] = res.AmountOnShoppingListStockUnit
	}

	items := make([]model.ShoppingListItem, 0, len(missingByProduct))
	for _, productID := range result.MissingProductIDs {
		toAdd := missingByProduct[productID] - onListByProduct[productID]
		if toAdd <= 0 {
			continue
		}
		product := in.Products[productID]
		items = append(items, model.ShoppingListItem{
			ID:             uuid.NewString(),
			ProductID:      productID,
			QuantityUnitID: product.StockUnitID,
			Amount:         toAdd,
			Note:           fmt.Sprintf("for recipe %s", in.Recipe.Name),
		})
	}

	return items
}

func (s *service) loadRecipeInput(
	ctx context.Context,
	recipeID string,
	desiredServings *float64,
) (*fulfillment.RecipeInput, error) {
	recipeID = strings.TrimSpace(recipeID)
	if recipeID == "" {
		return nil, errors.Join(model.ErrValidation, errors.New("recipe id must be non-empty"))
	}
	if desiredServings != nil {
		if v := *desiredServings; v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, errors.Join(model.ErrValidation, errors.New("desired servings must be a non-negative finite number"))
		}
	}

	ctx, cancel := context.WithTimeout(ctx, s.readDBTimeout)
	defer cancel()

	recipe, err := s.recipes.RecipeByID(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("recipe by id: %w", err)
	}

	recipe.DesiredServings = recipe.BaseServings
	if desiredServings != nil {
		recipe.DesiredServings = *desiredServings
	}

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

	return &fulfillment.RecipeInput{
		Recipe:   *recipe,
		Products: productsByID,
		Units:    lo.KeyBy(units, func(u model.QuantityUnit) string { return u.ID }),
		Stock:    fulfillment.AggregateStock(productsByID, rowsByID),
		ShoppingList: lo.GroupBy(pending, func(i model.ShoppingListItem) string {
			return i.ProductID
		}),
		Conversions: catalog,
	}, nil
}
