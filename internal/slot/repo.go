// Package slot provides the repository interface and MongoDB implementation for pickup slots.
package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound = errors.New("slot not found")
)

type Repository interface {
	List(ctx context.Context) ([]Slot, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*Slot, error)
	// IncrementBooked bumps the booked counter by one. The capacity check
	// happens in the placement service before this call, the two are not
	// atomic, this method is the seam where a conditional update would go.
	IncrementBooked(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, slots []Slot) error
}

type MongoRepo struct{ col *mongo.Collection }

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{col: db.Collection("slot")}
}

func (r *MongoRepo) List(ctx context.Context) ([]Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	defer cur.Close(ctx)

	out := []Slot{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("failed to decode slots: %w", err)
	}
	return out, nil
}

func (r *MongoRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s Slot
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get slot: %w", err)
	}
	return &s, nil
}

func (r *MongoRepo) IncrementBooked(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.col.UpdateByID(ctx, id, bson.M{"$inc": bson.M{"booked": 1}})
	if err != nil {
		return fmt.Errorf("failed to increment booked: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoRepo) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.col.CountDocuments(ctx, bson.M{})
}

func (r *MongoRepo) InsertMany(ctx context.Context, slots []Slot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	docs := make([]interface{}, 0, len(slots))
	for _, s := range slots {
		docs = append(docs, s)
	}
	if _, err := r.col.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert slots: %w", err)
	}
	return nil
}
