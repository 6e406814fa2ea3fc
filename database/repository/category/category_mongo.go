package categoryRepo

import (
	"context"
	"fmt"
	"time"

	"habi/database"
	"habi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCategoryRepo implements CategoryRepository using MongoDB.
type MongoCategoryRepo struct {
	coll *mongo.Collection
}

// NewMongoCategoryRepo creates a new instance of CategoryRepository using MongoDB.
func NewMongoCategoryRepo() CategoryRepository {
	coll := database.Collection("service_categories")
	repo := &MongoCategoryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoCategoryRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// List returns all categories ordered by display name.
func (r *MongoCategoryRepo) List(ctx context.Context) ([]models.ServiceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list service categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []models.ServiceCategory
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode service categories: %w", err)
	}
	return categories, nil
}

// GetByName returns the category with the given name, or nil when not found.
func (r *MongoCategoryRepo) GetByName(ctx context.Context, name string) (*models.ServiceCategory, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var category models.ServiceCategory
	if err := r.coll.FindOne(ctx, bson.M{"name": name}).Decode(&category); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch category %q: %w", name, err)
	}
	return &category, nil
}

// Seed inserts the given categories when the collection is empty.
func (r *MongoCategoryRepo) Seed(ctx context.Context, categories []models.ServiceCategory) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count service categories: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(categories))
	for _, c := range categories {
		docs = append(docs, c)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed service categories: %w", err)
	}
	return nil
}
