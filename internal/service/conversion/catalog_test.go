package conversion

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/household-pantry/internal/model"
)

func testUnits(ids ...string) []model.QuantityUnit {
	units := make([]model.QuantityUnit, 0, len(ids))
	for _, id := range ids {
		units = append(units, model.QuantityUnit{ID: id, Name: id})
	}
	return units
}

func TestNewCatalogValidation(t *testing.T) {
	t.Parallel()

	units := testUnits("g", "kg", "l")

	tests := []struct {
		name    string
		edges   []model.ConversionEdge
		wantErr string
	}{
		{
			name:  "valid edges load",
			edges: []model.ConversionEdge{{ID: "e1", FromUnitID: "kg", ToUnitID: "g", Factor: 1000}},
		},
		{
			name:    "zero factor rejected",
			edges:   []model.ConversionEdge{{ID: "e1", FromUnitID: "kg", ToUnitID: "g", Factor: 0}},
			wantErr: "not positive",
		},
		{
			name:    "negative factor rejected",
			edges:   []model.ConversionEdge{{ID: "e1", FromUnitID: "kg", ToUnitID: "g", Factor: -2}},
			wantErr: "not positive",
		},
		{
			name:    "self conversion rejected",
			edges:   []model.ConversionEdge{{ID: "e1", FromUnitID: "g", ToUnitID: "g", Factor: 1}},
			wantErr: "to itself",
		},
		{
			name:    "unknown unit rejected",
			edges:   []model.ConversionEdge{{ID: "e1", FromUnitID: "kg", ToUnitID: "oz", Factor: 35}},
			wantErr: "unknown to unit",
		},
		{
			name: "duplicate edge rejected",
			edges: []model.ConversionEdge{
				{ID: "e1", FromUnitID: "kg", ToUnitID: "g", Factor: 1000},
				{ID: "e2", FromUnitID: "kg", ToUnitID: "g", Factor: 500},
			},
			wantErr: "duplicate edge",
		},
		{
			name: "same pair for different products is fine",
			edges: []model.ConversionEdge{
				{ID: "e1", ProductID: lo.ToPtr("p1"), FromUnitID: "kg", ToUnitID: "g", Factor: 1000},
				{ID: "e2", ProductID: lo.ToPtr("p2"), FromUnitID: "kg", ToUnitID: "g", Factor: 900},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, err := NewCatalog(units, tt.edges)
			if tt.wantErr == "" {
				require.NoError(t, err)
				require.NotNil(t, c)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, model.ErrInvalidConversionEdge)
			assert.ErrorContains(t, err, tt.wantErr)
			assert.Nil(t, c)
		})
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	units := testUnits("g", "kg", "l", "ml", "piece")
	edges := []model.ConversionEdge{
		{ID: "e1", FromUnitID: "l", ToUnitID: "ml", Factor: 1000},
		{ID: "e2", ProductID: lo.ToPtr("flour"), FromUnitID: "kg", ToUnitID: "g", Factor: 1000},
		{ID: "e3", FromUnitID: "g", ToUnitID: "kg", Factor: 0.0004},
	}

	catalog, err := NewCatalog(units, edges)
	require.NoError(t, err)

	tests := []struct {
		name          string
		productID     string
		from, to      string
		wantNil       bool
		wantFactor    float64
		wantScope     model.ConversionScope
		wantDirection model.ConversionDirection
	}{
		{
			name:      "identity needs no edge",
			productID: "flour", from: "g", to: "g",
			wantFactor: 1, wantScope: model.ScopeIdentity, wantDirection: model.DirectionDirect,
		},
		{
			name:      "global direct",
			productID: "milk", from: "l", to: "ml",
			wantFactor: 1000, wantScope: model.ScopeGlobal, wantDirection: model.DirectionDirect,
		},
		{
			name:      "global inverted",
			productID: "milk", from: "ml", to: "l",
			wantFactor: 1.0 / 1000, wantScope: model.ScopeGlobal, wantDirection: model.DirectionInverted,
		},
		{
			// Scenario: the product-specific kg->g edge must win over the
			// conflicting global g->kg edge, even though the global one
			// would resolve via inversion.
			name:      "product edge overrides global inversion",
			productID: "flour", from: "kg", to: "g",
			wantFactor: 1000, wantScope: model.ScopeProduct, wantDirection: model.DirectionDirect,
		},
		{
			name:      "other products fall back to the global edge",
			productID: "sugar", from: "kg", to: "g",
			wantFactor: 1 / 0.0004, wantScope: model.ScopeGlobal, wantDirection: model.DirectionInverted,
		},
		{
			name:      "product inverse of a product edge",
			productID: "flour", from: "g", to: "kg",
			wantFactor: 1.0 / 1000, wantScope: model.ScopeProduct, wantDirection: model.DirectionInverted,
		},
		{
			name:      "no edge and no chaining",
			productID: "flour", from: "piece", to: "kg",
			wantNil:   true,
		},
		{
			name:      "no multi-hop through a third unit",
			productID: "milk", from: "l", to: "g",
			wantNil:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := catalog.Resolve(tt.productID, tt.from, tt.to)
			if tt.wantNil {
				assert.Nil(t, got)
				return
			}

			require.NotNil(t, got)
			assert.InEpsilon(t, tt.wantFactor, got.Factor, 1e-12)
			assert.Equal(t, tt.wantScope, got.Scope)
			assert.Equal(t, tt.wantDirection, got.Direction)
			assert.Equal(t, tt.productID, got.ProductID)
		})
	}
}

func TestFactorOr1(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(
		testUnits("l", "ml", "piece", "kg"),
		[]model.ConversionEdge{{ID: "e1", FromUnitID: "l", ToUnitID: "ml", Factor: 1000}},
	)
	require.NoError(t, err)

	factor, resolved := catalog.FactorOr1("milk", "l", "ml")
	assert.True(t, resolved)
	assert.InEpsilon(t, 1000.0, factor, 1e-12)

	// Unresolved conversions pass amounts through with factor 1 but say so.
	factor, resolved = catalog.FactorOr1("milk", "piece", "kg")
	assert.False(t, resolved)
	assert.Equal(t, 1.0, factor)
}

func TestInverseConsistency(t *testing.T) {
	t.Parallel()

	catalog, err := NewCatalog(
		testUnits("a", "b"),
		[]model.ConversionEdge{{ID: "e1", FromUnitID: "a", ToUnitID: "b", Factor: 7.5}},
	)
	require.NoError(t, err)

	forward := catalog.Resolve("p", "a", "b")
	backward := catalog.Resolve("p", "b", "a")
	require.NotNil(t, forward)
	require.NotNil(t, backward)
	assert.InEpsilon(t, 1.0, forward.Factor*backward.Factor, 1e-12)
}
