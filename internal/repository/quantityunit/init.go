package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/household-pantry/internal/model"
)

type BatchCreator interface {
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, units []model.QuantityUnit) error
}

// QuantityUnitsBootstrap seeds a fresh database with the common
// household units. An already-populated collection is left alone.
func QuantityUnitsBootstrap(ctx context.Context, c BatchCreator) error {
	n, err := c.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	now := lo.ToPtr(time.Now())

	units := []model.QuantityUnit{
		{ID: uuid.NewString(), Name: "piece", NamePlural: "pieces", CreatedAt: now},
		{ID: uuid.NewString(), Name: "gram", NamePlural: "grams", CreatedAt: now},
		{ID: uuid.NewString(), Name: "kilogram", NamePlural: "kilograms", CreatedAt: now},
		{ID: uuid.NewString(), Name: "milliliter", NamePlural: "milliliters", CreatedAt: now},
		{ID: uuid.NewString(), Name: "liter", NamePlural: "liters", CreatedAt: now},
		{ID: uuid.NewString(), Name: "pack", NamePlural: "packs", CreatedAt: now},
		{ID: uuid.NewString(), Name: "can", NamePlural: "cans", CreatedAt: now},
		{ID: uuid.NewString(), Name: "bottle", NamePlural: "bottles", CreatedAt: now},
	}

	return c.CreateBatch(ctx, units)
}
