package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoBudgetRepo struct {
	col *mongo.Collection
}

func NewMongoBudgetRepository(col *mongo.Collection) BudgetRepository {
	return &mongoBudgetRepo{col: col}
}

func (r *mongoBudgetRepo) GetAll() ([]Budget, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Budget
	for cur.Next(ctx) {
		var b Budget
		if err := cur.Decode(&b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, cur.Err()
}
