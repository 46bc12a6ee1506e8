package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// One registry repo per code collection ("event-id", "guest-id").
type mongoRegistryRepo struct {
	col *mongo.Collection
}

func NewMongoRegistryRepository(col *mongo.Collection) RegistryRepository {
	return &mongoRegistryRepo{col: col}
}

func (r *mongoRegistryRepo) Add(code int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.col.InsertOne(ctx, CodeRecord{ID: code})
	return err
}
