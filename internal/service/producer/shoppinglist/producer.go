package slproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/household-pantry/internal/model"
	"github.com/you-humble/household-pantry/platform/kafka"
)

type Converter interface {
	ShoppingListUpdatedToPayload(ev model.ShoppingListUpdated) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewShoppingListProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

func (s *service) SendShoppingListUpdated(ctx context.Context, event model.ShoppingListUpdated) error {
	payload, err := s.conv.ShoppingListUpdatedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter shopping_list_updated error: %w", err)
	}

	if err := s.producer.Send(ctx, event.EventID[:], payload); err != nil {
		return fmt.Errorf("producer to shopping-list.updated topic error: %w", err)
	}

	return nil
}
