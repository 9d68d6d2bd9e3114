package unavailability

import (
	"context"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UnavailabilityMongoRepository struct {
	Collection *mongo.Collection
}

func NewUnavailabilityMongoRepository(db *mongo.Client, dbName string) contracts.UnavailabilityRepository {
	return &UnavailabilityMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUnavailability),
	}
}

func (r *UnavailabilityMongoRepository) Insert(ctx context.Context, record *models.UnavailabilityRecord) (string, error) {
	result, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return record.UnavailabilityID, nil
}

func (r *UnavailabilityMongoRepository) FindByUnavailabilityID(ctx context.Context, unavailabilityID string) (*models.UnavailabilityRecord, error) {
	var record models.UnavailabilityRecord
	err := r.Collection.FindOne(ctx, bson.M{"unavailabilityId": unavailabilityID}).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}

func (r *UnavailabilityMongoRepository) FindByPractitioner(ctx context.Context, practitionerID string, includeInactive bool) ([]models.UnavailabilityRecord, error) {
	filter := bson.M{"practitionerId": practitionerID}
	if !includeInactive {
		filter["isActive"] = true
	}
	return r.findSorted(ctx, filter)
}

func (r *UnavailabilityMongoRepository) FindUpcomingByPractitioner(ctx context.Context, practitionerID, fromDate string, includeInactive bool) ([]models.UnavailabilityRecord, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"endDate":        bson.M{"$gte": fromDate},
	}
	if !includeInactive {
		filter["isActive"] = true
	}
	return r.findSorted(ctx, filter)
}

func (r *UnavailabilityMongoRepository) FindActiveCoveringDate(ctx context.Context, practitionerID, date string) ([]models.UnavailabilityRecord, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"isActive":       true,
		"startDate":      bson.M{"$lte": date},
		"endDate":        bson.M{"$gte": date},
	}
	return r.findSorted(ctx, filter)
}

func (r *UnavailabilityMongoRepository) FindActiveIntersectingRange(ctx context.Context, practitionerID, startDate, endDate string) ([]models.UnavailabilityRecord, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"isActive":       true,
		"startDate":      bson.M{"$lte": endDate},
		"endDate":        bson.M{"$gte": startDate},
	}
	return r.findSorted(ctx, filter)
}

func (r *UnavailabilityMongoRepository) Update(ctx context.Context, record *models.UnavailabilityRecord) error {
	filter := bson.M{"unavailabilityId": record.UnavailabilityID}
	update := bson.M{"$set": record}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *UnavailabilityMongoRepository) findSorted(ctx context.Context, filter bson.M) ([]models.UnavailabilityRecord, error) {
	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startDate", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var records []models.UnavailabilityRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}
