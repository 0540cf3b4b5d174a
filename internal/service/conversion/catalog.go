package conversion

import (
	"errors"
	"fmt"

	"github.com/you-humble/household-pantry/internal/model"
)

// Catalog resolves effective conversion factors between quantity units.
// Edges are indexed once at construction, so every resolution is a
// constant number of map lookups; the index is the memoization table and
// the catalog is immutable and safe for concurrent use.

type edgeKey struct {
	productID string // empty for global edges
	fromID    string
	toID      string
}

type Catalog struct {
	factors map[edgeKey]float64
}

// NewCatalog validates and indexes the given edges. Non-positive
// factors, self-conversions, unknown unit references and duplicate
// (product, from, to) edges are rejected here so resolution never has
// to deal with them.
func NewCatalog(units []model.QuantityUnit, edges []model.ConversionEdge) (*Catalog, error) {
	const op = "conversion.NewCatalog"

	known := make(map[string]struct{}, len(units))
	for _, u := range units {
		known[u.ID] = struct{}{}
	}

	factors := make(map[edgeKey]float64, len(edges))
	for _, e := range edges {
		if e.Factor <= 0 {
			return nil, errors.Join(model.ErrInvalidConversionEdge,
				fmt.Errorf("%s: edge %s: factor %v is not positive", op, e.ID, e.Factor))
		}
		if e.FromUnitID == e.ToUnitID {
			return nil, errors.Join(model.ErrInvalidConversionEdge,
				fmt.Errorf("%s: edge %s: converts unit %s to itself", op, e.ID, e.FromUnitID))
		}
		if _, ok := known[e.FromUnitID]; !ok {
			return nil, errors.Join(model.ErrInvalidConversionEdge,
				fmt.Errorf("%s: edge %s: unknown from unit %s", op, e.ID, e.FromUnitID))
		}
		if _, ok := known[e.ToUnitID]; !ok {
			return nil, errors.Join(model.ErrInvalidConversionEdge,
				fmt.Errorf("%s: edge %s: unknown to unit %s", op, e.ID, e.ToUnitID))
		}

		k := edgeKey{fromID: e.FromUnitID, toID: e.ToUnitID}
		if e.ProductID != nil {
			k.productID = *e.ProductID
		}
		if _, dup := factors[k]; dup {
			return nil, errors.Join(model.ErrInvalidConversionEdge,
				fmt.Errorf("%s: duplicate edge for (product=%q, from=%s, to=%s)",
					op, k.productID, k.fromID, k.toID))
		}
		factors[k] = e.Factor
	}

	return &Catalog{factors: factors}, nil
}

// Resolve returns the effective conversion between two units for a
// product, or nil when no single edge (in either direction) applies.
// Product-specific edges win over global ones, and a stored edge is
// usable inverted. No chaining through a third unit is attempted.
func (c *Catalog) Resolve(productID, fromID, toID string) *model.ResolvedConversion {
	if fromID == toID {
		return &model.ResolvedConversion{
			ProductID:  productID,
			FromUnitID: fromID,
			ToUnitID:   toID,
			Factor:     1,
			Scope:      model.ScopeIdentity,
			Direction:  model.DirectionDirect,
		}
	}

	lookups := []struct {
		key       edgeKey
		scope     model.ConversionScope
		direction model.ConversionDirection
	}{
		{edgeKey{productID, fromID, toID}, model.ScopeProduct, model.DirectionDirect},
		{edgeKey{productID, toID, fromID}, model.ScopeProduct, model.DirectionInverted},
		{edgeKey{"", fromID, toID}, model.ScopeGlobal, model.DirectionDirect},
		{edgeKey{"", toID, fromID}, model.ScopeGlobal, model.DirectionInverted},
	}

	for _, l := range lookups {
		f, ok := c.factors[l.key]
		if !ok {
			continue
		}
		if l.direction == model.DirectionInverted {
			f = 1 / f
		}
		return &model.ResolvedConversion{
			ProductID:  productID,
			FromUnitID: fromID,
			ToUnitID:   toID,
			Factor:     f,
			Scope:      l.scope,
			Direction:  l.direction,
		}
	}

	return nil
}

// FactorOr1 is the fallback form of Resolve: unresolved conversions
// yield factor 1 so amounts pass through unconverted, with resolved
// false so callers can surface the ambiguity instead of hiding it.
func (c *Catalog) FactorOr1(productID, fromID, toID string) (factor float64, resolved bool) {
	rc := c.Resolve(productID, fromID, toID)
	if rc == nil {
		return 1, false
	}
	return rc.Factor, true
}
