package repository

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/household-pantry/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewConversionRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) List(ctx context.Context) ([]model.ConversionEdge, error) {
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

	out := make([]model.ConversionEdge, 0)
	for cur.Next(ctx) {
		var ent ConversionEdgeEntity
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
