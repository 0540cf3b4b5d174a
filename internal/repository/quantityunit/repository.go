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

func NewQuantityUnitRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]model.QuantityUnit, error) {
	const op = "repository.List"

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			log.Printf("%s failed to close cursor: %s", op, cerr)
		}
	}()

	out := make([]model.QuantityUnit, 0)
	for cur.Next(ctx) {
		var ent QuantityUnitEntity
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

func (r *repository) Count(ctx context.Context) (int64, error) {
	const op = "repository.Count"

	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return n, nil
}

func (r *repository) CreateBatch(ctx context.Context, units []model.QuantityUnit) error {
	const op = "repository.CreateBatch"

	docs := make([]any, 0, len(units))
	for i := range units {
		u := units[i]
		if u.ID == "" {
			return fmt.Errorf("%s: quantity unit ID is empty", op)
		}
		if u.CreatedAt == nil || u.CreatedAt.IsZero() {
			u.CreatedAt = lo.ToPtr(time.Now())
		}
		docs = append(docs, EntityFromModel(&u))
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
