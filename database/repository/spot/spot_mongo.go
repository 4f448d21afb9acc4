package spotRepo

import (
	"context"
	"fmt"
	"time"

	"spotbook/config"
	"spotbook/database"
	"spotbook/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSpotRepo implements SpotRepository using MongoDB.
type MongoSpotRepo struct {
	coll *mongo.Collection
}

// NewMongoSpotRepo constructs a new instance of MongoSpotRepo.
func NewMongoSpotRepo() SpotRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoSpotRepo{
		coll: db.Collection("spots"),
	}
}

// GetByID retrieves a spot document by ID.
func (repo *MongoSpotRepo) GetByID(ctx context.Context, id string) (*models.Spot, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var spot models.Spot
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": id}).Decode(&spot)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching spot with id %s: %w", id, err)
	}
	return &spot, nil
}
