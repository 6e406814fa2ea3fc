package providerRepo

import (
	"context"
	"fmt"
	"time"

	"habi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// searchResultCap bounds the number of rows a free-text search may return.
const searchResultCap = 20

// ListByCategory returns up to limit verified providers whose category list
// contains the named category, ordered by rating descending.
func (r *MongoProviderRepo) ListByCategory(ctx context.Context, category string, limit int) ([]models.ServiceProvider, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"service_categories": category,
		"verified":           true,
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list providers for category %q: %w", category, err)
	}
	defer cursor.Close(ctx)

	var providers []models.ServiceProvider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}

// Search returns verified providers matching the criteria, ordered by rating
// descending and capped at searchResultCap.
func (r *MongoProviderRepo) Search(ctx context.Context, criteria SearchCriteria) ([]models.ServiceProvider, error) {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{"verified": true}
	if criteria.Term != "" {
		term := primitive.Regex{Pattern: criteria.Term, Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"business_name": term},
			bson.M{"description": term},
			bson.M{"service_categories": term},
		}
	}
	if criteria.Location != "" {
		filter["location"] = primitive.Regex{Pattern: criteria.Location, Options: "i"}
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating", Value: -1}}).
		SetLimit(searchResultCap)

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("provider search failed: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.ServiceProvider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode providers: %w", err)
	}
	return providers, nil
}
