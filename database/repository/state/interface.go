// File: database/repository/state/interface.go
package stateRepo

import (
	"context"

	"fifty3/config"
	"fifty3/database"
	"fifty3/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// StateRepository reads and writes the single aggregate document that holds
// the entire application state.
type StateRepository interface {
	Get(ctx context.Context) (*models.Aggregate, error)
	Put(ctx context.Context, agg models.Aggregate) error
}

type mongoStateRepo struct {
	coll *mongo.Collection
}

// NewMongoStateRepo constructs a new MongoDB StateRepository.
func NewMongoStateRepo() StateRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoStateRepo{
		coll: db.Collection("state"),
	}
}
