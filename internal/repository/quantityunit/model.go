package repository

import (
	"time"
)

type QuantityUnitEntity struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	NamePlural  string     `bson:"name_plural"`
	Description string     `bson:"description,omitempty"`
	CreatedAt   *time.Time `bson:"created_at,omitempty"`
}
