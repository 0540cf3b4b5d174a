package model

import "time"

type QuantityUnit struct {
	// Globally unique identifier of the unit.
	ID string
	// Singular display name (e.g. "gram").
	Name string
	// Plural display name (e.g. "grams").
	NamePlural string
	// Optional free-form description.
	Description string
	// Timestamp when the unit was created.
	CreatedAt *time.Time
}
