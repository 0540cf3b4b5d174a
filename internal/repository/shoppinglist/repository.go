package repository

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/you-humble/household-pantry/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewShoppingListRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

// ListPending returns all undone list items.
func (r *repository) ListPending(ctx context.Context) ([]model.ShoppingListItem, error) {
	const op = "repository.ListPending"

	cur, err := r.coll.Find(ctx, bson.M{"done": false})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]model.ShoppingListItem, 0)
	for cur.Next(ctx) {
		var ent ShoppingListItemEntity
		if err := cur.Decode(&ent); err != nil {
			return nil, fmt.Errorf("%s decode: %w", op, err)
		}
		out = append(out, *EntityToModel(&ent))
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s cursor: %w", op, err)
	}

	return out, nil
}

func (r *repository) CreateBatch(ctx context.Context, items []model.ShoppingListItem) error {
	const op = "repository.CreateBatch"

	docs := make([]any, 0, len(items))
	for i := range items {
		item := items[i]
		if item.ID == "" {
			return fmt.Errorf("%s: shopping list item ID is empty", op)
		}
		if item.CreatedAt == nil || item.CreatedAt.IsZero() {
			item.CreatedAt = lo.ToPtr(time.Now())
		}
		docs = append(docs, EntityFromModel(&item))
	}
	if len(docs) == 0 {
		return nil
	}

	_, err := r.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
