// Package mocks provides testify mocks for the repository and producer
// interfaces declared by the service packages.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/you-humble/household-pantry/internal/model"
)

type testingT interface {
	mock.TestingT
	Cleanup(func())
}

type MockRecipeRepository struct {
	mock.Mock
}

func NewMockRecipeRepository(t testingT) *MockRecipeRepository {
	m := &MockRecipeRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockRecipeRepository) RecipeByID(ctx context.Context, id string) (*model.Recipe, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Recipe), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func NewMockProductRepository(t testingT) *MockProductRepository {
	m := &MockProductRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockProductRepository) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context) ([]model.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

type MockQuantityUnitRepository struct {
	mock.Mock
}

func NewMockQuantityUnitRepository(t testingT) *MockQuantityUnitRepository {
	m := &MockQuantityUnitRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockQuantityUnitRepository) List(ctx context.Context) ([]model.QuantityUnit, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.QuantityUnit), args.Error(1)
}

type MockConversionRepository struct {
	mock.Mock
}

func NewMockConversionRepository(t testingT) *MockConversionRepository {
	m := &MockConversionRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockConversionRepository) List(ctx context.Context) ([]model.ConversionEdge, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ConversionEdge), args.Error(1)
}

type MockStockRepository struct {
	mock.Mock
}

func NewMockStockRepository(t testingT) *MockStockRepository {
	m := &MockStockRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockStockRepository) List(ctx context.Context) ([]model.StockRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.StockRow), args.Error(1)
}

type MockShoppingListRepository struct {
	mock.Mock
}

func NewMockShoppingListRepository(t testingT) *MockShoppingListRepository {
	m := &MockShoppingListRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockShoppingListRepository) ListPending(ctx context.Context) ([]model.ShoppingListItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ShoppingListItem), args.Error(1)
}

func (m *MockShoppingListRepository) CreateBatch(ctx context.Context, items []model.ShoppingListItem) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

type MockShoppingListUpdatedSender struct {
	mock.Mock
}

func NewMockShoppingListUpdatedSender(t testingT) *MockShoppingListUpdatedSender {
	m := &MockShoppingListUpdatedSender{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockShoppingListUpdatedSender) SendShoppingListUpdated(ctx context.Context, event model.ShoppingListUpdated) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
