package staffRepo

import (
	"context"
	"fmt"
	"time"

	"akshara/database"
	"akshara/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StaffRepository provides read access to the leadership team records.
type StaffRepository interface {
	GetAll() ([]models.Founder, error)
	GetByID(id string) (*models.Founder, error)
	Seed(founders []models.Founder) error
}

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	coll *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	coll := database.MongoClient.Database("akshara").Collection("founders")
	return &MongoStaffRepo{coll: coll}
}

func (r *MongoStaffRepo) GetAll() ([]models.Founder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve founders: %w", err)
	}
	defer cursor.Close(ctx)
	var founders []models.Founder
	for cursor.Next(ctx) {
		var f models.Founder
		if err := cursor.Decode(&f); err != nil {
			return nil, fmt.Errorf("failed to decode founder: %w", err)
		}
		founders = append(founders, f)
	}
	return founders, nil
}

func (r *MongoStaffRepo) GetByID(id string) (*models.Founder, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	var founder models.Founder
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&founder); err != nil {
		return nil, fmt.Errorf("failed to fetch founder with id %s: %w", id, err)
	}
	return &founder, nil
}

// Seed upserts the built-in founder records so a fresh database serves content.
func (r *MongoStaffRepo) Seed(founders []models.Founder) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for _, f := range founders {
		filter := bson.M{"id": f.ID}
		update := bson.M{"$set": f}
		if _, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true)); err != nil {
			return fmt.Errorf("failed to seed founder %s: %w", f.ID, err)
		}
	}
	return nil
}
