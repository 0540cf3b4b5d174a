package model

type (
	ConversionScope     string
	ConversionDirection string
)

const (
	// ScopeProduct marks a conversion backed by a product-specific edge.
	ScopeProduct ConversionScope = "PRODUCT"
	// ScopeGlobal marks a conversion backed by a global edge.
	ScopeGlobal ConversionScope = "GLOBAL"
	// ScopeIdentity marks the implicit unit-to-itself conversion.
	ScopeIdentity ConversionScope = "IDENTITY"
)

const (
	DirectionDirect   ConversionDirection = "DIRECT"
	DirectionInverted ConversionDirection = "INVERTED"
)

// ConversionEdge is a stored conversion factor between two quantity units.
// amountIn(toUnit) = amountIn(fromUnit) * Factor.
type ConversionEdge struct {
	ID string
	// Product the edge applies to; nil means the edge is global and
	// applies to every product without a more specific one.
	ProductID  *string
	FromUnitID string
	ToUnitID   string
	// Multiplicative factor, must be positive.
	Factor float64
}

// Global reports whether the edge applies to all products.
func (e ConversionEdge) Global() bool { return e.ProductID == nil }

// ResolvedConversion is the derived result of a resolution, including
// where the factor came from. It is never stored.
type ResolvedConversion struct {
	ProductID  string
	FromUnitID string
	ToUnitID   string
	Factor     float64
	Scope      ConversionScope
	Direction  ConversionDirection
}
