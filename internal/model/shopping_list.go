package model

import (
	"time"

	"github.com/google/uuid"
)

type ShoppingListItem struct {
	// Globally unique identifier of the list item.
	ID        string
	ProductID string
	// Unit the item's amount is expressed in; converted to the product's
	// stock unit during fulfillment aggregation.
	QuantityUnitID string
	Amount         float64
	// Done items are no longer pending and do not count towards
	// fulfillment.
	Done bool
	// Optional free-form note.
	Note      string
	CreatedAt *time.Time
}

// ShoppingListUpdated is the event published after missing recipe
// products have been queued on the shopping list.
type ShoppingListUpdated struct {
	EventID    uuid.UUID
	RecipeID   string
	ItemIDs    []string
	ProductIDs []string
	OccurredAt time.Time
}

// AddMissingResult reports what AddMissingToShoppingList created.
type AddMissingResult struct {
	RecipeID string
	Items    []ShoppingListItem
}
