package laundryRepo

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

// LaundryRepository defines data access for the laundry sub-service menu.
type LaundryRepository interface {
	// List returns the full menu in stable id order.
	List(ctx context.Context) ([]models.LaundryService, error)
	// Seed inserts the given menu if the collection is empty.
	Seed(ctx context.Context, services []models.LaundryService) error
}

// MongoLaundryRepo implements LaundryRepository using MongoDB.
type MongoLaundryRepo struct {
	coll *mongo.Collection
}

// NewMongoLaundryRepo creates a new instance of LaundryRepository using MongoDB.
func NewMongoLaundryRepo() LaundryRepository {
	coll := database.Collection("laundry_services")
	repo := &MongoLaundryRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func (r *MongoLaundryRepo) ensureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// List returns the laundry menu in id order.
func (r *MongoLaundryRepo) List(ctx context.Context) ([]models.LaundryService, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list laundry services: %w", err)
	}
	defer cursor.Close(ctx)

	var services []models.LaundryService
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode laundry services: %w", err)
	}
	return services, nil
}

// Seed inserts the menu when the collection is empty.
func (r *MongoLaundryRepo) Seed(ctx context.Context, services []models.LaundryService) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("failed to count laundry services: %w", err)
	}
	if count > 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(services))
	for _, s := range services {
		docs = append(docs, s)
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to seed laundry services: %w", err)
	}
	return nil
}
