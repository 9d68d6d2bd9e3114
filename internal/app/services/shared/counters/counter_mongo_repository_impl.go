package counters

import (
	"context"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type counterDocument struct {
	Name  string `bson:"name"`
	Value int64  `bson:"value"`
}

type CounterMongoRepository struct {
	Collection *mongo.Collection
}

func NewCounterMongoRepository(db *mongo.Client, dbName string) contracts.CounterRepository {
	return &CounterMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionCounters),
	}
}

// Next atomically increments and returns the named counter. The upsert makes
// the first call on a fresh counter return 1.
func (r *CounterMongoRepository) Next(ctx context.Context, name string) (int64, error) {
	filter := bson.M{"name": name}
	update := bson.M{"$inc": bson.M{"value": int64(1)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc counterDocument
	if err := r.Collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return 0, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return doc.Value, nil
}
