// File: database/repository/state/state_mongo.go
package stateRepo

import (
	"context"
	"time"

	"fifty3/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// The aggregate lives under one fixed document id, matching the original
// Firestore layout (doc(db, "state", "main")).
const stateDocID = "main"

func (r *mongoStateRepo) Get(ctx context.Context) (*models.Aggregate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": stateDocID}
	var agg models.Aggregate
	err := r.coll.FindOne(ctx, filter).Decode(&agg)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

func (r *mongoStateRepo) Put(ctx context.Context, agg models.Aggregate) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"_id": stateDocID}
	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, filter, agg, opts)
	return err
}
