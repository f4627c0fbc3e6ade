package contentRepo

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

// ContentRepository provides read access to published site content.
type ContentRepository interface {
	GetPrograms() ([]models.Program, error)
	GetEvents() ([]models.Event, error)
	GetBlogPosts() ([]models.BlogPost, error)
	Seed(programs []models.Program, events []models.Event, posts []models.BlogPost) error
}

// MongoContentRepo implements ContentRepository using MongoDB.
type MongoContentRepo struct {
	programs *mongo.Collection
	events   *mongo.Collection
	blog     *mongo.Collection
}

// NewMongoContentRepo creates a new instance of ContentRepository using MongoDB.
func NewMongoContentRepo() ContentRepository {
	db := database.MongoClient.Database("akshara")
	return &MongoContentRepo{
		programs: db.Collection("programs"),
		events:   db.Collection("events"),
		blog:     db.Collection("blog_posts"),
	}
}

func findAll[T any](coll *mongo.Collection, label string) ([]T, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	cursor, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"id": 1}))
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve %s: %w", label, err)
	}
	defer cursor.Close(ctx)
	var out []T
	for cursor.Next(ctx) {
		var item T
		if err := cursor.Decode(&item); err != nil {
			return nil, fmt.Errorf("failed to decode %s record: %w", label, err)
		}
		out = append(out, item)
	}
	return out, nil
}

func (r *MongoContentRepo) GetPrograms() ([]models.Program, error) {
	return findAll[models.Program](r.programs, "programs")
}

func (r *MongoContentRepo) GetEvents() ([]models.Event, error) {
	return findAll[models.Event](r.events, "events")
}

func (r *MongoContentRepo) GetBlogPosts() ([]models.BlogPost, error) {
	return findAll[models.BlogPost](r.blog, "blog posts")
}

func upsertByID(coll *mongo.Collection, id string, doc any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_, err := coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": doc}, options.Update().SetUpsert(true))
	return err
}

// Seed upserts the built-in content records so a fresh database serves content.
func (r *MongoContentRepo) Seed(programs []models.Program, events []models.Event, posts []models.BlogPost) error {
	for _, p := range programs {
		if err := upsertByID(r.programs, p.ID, p); err != nil {
			return fmt.Errorf("failed to seed program %s: %w", p.ID, err)
		}
	}
	for _, e := range events {
		if err := upsertByID(r.events, e.ID, e); err != nil {
			return fmt.Errorf("failed to seed event %s: %w", e.ID, err)
		}
	}
	for _, b := range posts {
		if err := upsertByID(r.blog, b.ID, b); err != nil {
			return fmt.Errorf("failed to seed blog post %s: %w", b.ID, err)
		}
	}
	return nil
}
