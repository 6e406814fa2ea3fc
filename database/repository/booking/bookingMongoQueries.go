package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"habi/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ListByClient returns the client's bookings newest first, each joined with
// minimal provider display fields via a $lookup against service_providers.
func (r *MongoBookingRepo) ListByClient(ctx context.Context, clientID string) ([]models.BookingSummary, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"client_id": clientID}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "service_providers",
			"localField":   "provider_id",
			"foreignField": "id",
			"as":           "provider_docs",
		}}},
		bson.D{{Key: "$addFields", Value: bson.M{
			"provider": bson.M{"$first": "$provider_docs"},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"provider_docs":          0,
			"provider.id":            0,
			"provider.user_id":       0,
			"provider.description":   0,
			"provider.photos":        0,
			"provider.hourly_rate":   0,
			"provider.reviews_count": 0,
			"provider.verified":      0,
			"provider.created_at":    0,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for client %s: %w", clientID, err)
	}
	defer cursor.Close(ctx)

	var summaries []models.BookingSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return summaries, nil
}
