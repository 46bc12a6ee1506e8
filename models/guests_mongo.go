package models

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoGuestRepo struct {
	col *mongo.Collection
}

func NewMongoGuestRepository(col *mongo.Collection) GuestRepository {
	return &mongoGuestRepo{col: col}
}

func (r *mongoGuestRepo) GetAll() ([]Guest, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Guest
	for cur.Next(ctx) {
		var g Guest
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, cur.Err()
}

func (r *mongoGuestRepo) CountMatching(firstName, lastName, email string) (int64, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
	})
}

func (r *mongoGuestRepo) Create(g *Guest) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.col.InsertOne(ctx, g)
	return err
}

func (r *mongoGuestRepo) Delete(id string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func (r *mongoGuestRepo) Watch(ctx context.Context) (<-chan []Guest, error) {
	return watchCollection(ctx, r.col, r.GetAll)
}
