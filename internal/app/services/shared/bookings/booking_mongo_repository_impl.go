package bookings

import (
	"context"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// bookingKeyDocument is the projection used to build the booked-slot set.
// Booking documents are owned by the surrounding system; this repository
// only reads the fields slot aggregation needs.
type bookingKeyDocument struct {
	Date      string `bson:"date"`
	StartTime string `bson:"startTime"`
}

type BookingMongoRepository struct {
	Collection *mongo.Collection
}

func NewBookingMongoRepository(db *mongo.Client, dbName string) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionBookings),
	}
}

func (r *BookingMongoRepository) FindBookedStartKeys(ctx context.Context, practitionerID, locationID, fromDate, toDate string) (map[string]struct{}, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"status":         bson.M{"$in": constvars.ActiveBookingStatuses},
		"date":           bson.M{"$gte": fromDate, "$lte": toDate},
	}
	if locationID != "" {
		filter["locationId"] = locationID
	}

	cursor, err := r.Collection.Find(ctx, filter)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	keys := map[string]struct{}{}
	for cursor.Next(ctx) {
		var doc bookingKeyDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, exceptions.ErrMongoDBIterateDocuments(err)
		}
		keys[doc.Date+"_"+doc.StartTime] = struct{}{}
	}
	if err := cursor.Err(); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return keys, nil
}

func (r *BookingMongoRepository) CountActiveByPair(ctx context.Context, practitionerID, locationID string) (int64, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"locationId":     locationID,
		"status":         bson.M{"$in": constvars.ActiveBookingStatuses},
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
