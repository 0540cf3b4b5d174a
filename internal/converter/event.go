package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/you-humble/household-pantry/internal/model"
)

type shoppingListUpdatedEvent struct {
	EventID    string    `json:"event_id"`
	RecipeID   string    `json:"recipe_id"`
	ItemIDs    []string  `json:"item_ids"`
	ProductIDs []string  `json:"product_ids"`
	OccurredAt time.Time `json:"occurred_at"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) ShoppingListUpdatedToPayload(ev model.ShoppingListUpdated) ([]byte, error) {
	payload, err := json.Marshal(shoppingListUpdatedEvent{
		EventID:    ev.EventID.String(),
		RecipeID:   ev.RecipeID,
		ItemIDs:    ev.ItemIDs,
		ProductIDs: ev.ProductIDs,
		OccurredAt: ev.OccurredAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal shopping_list_updated: %w", err)
	}

	return payload, nil
}
