package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/you-humble/household-pantry/internal/model"
)

type repository struct {
	coll *mongo.Collection
}

func NewRecipeRepository(collection *mongo.Collection) *repository {
	return &repository{coll: collection}
}

func (r *repository) RecipeByID(ctx context.Context, id string) (*model.Recipe, error) {
	const op = "repository.RecipeByID"

	var ent RecipeEntity
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&ent)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return EntityToModel(&ent), nil
}
