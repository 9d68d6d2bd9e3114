package assignments

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

type AssignmentMongoRepository struct {
	Collection *mongo.Collection
}

func NewAssignmentMongoRepository(db *mongo.Client, dbName string) contracts.AssignmentRepository {
	return &AssignmentMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionLocationAssignments),
	}
}

func (r *AssignmentMongoRepository) Insert(ctx context.Context, assignment *models.LocationAssignment) (string, error) {
	result, err := r.Collection.InsertOne(ctx, assignment)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return assignment.AssignmentID, nil
}

func (r *AssignmentMongoRepository) FindByPair(ctx context.Context, practitionerID, locationID string) (*models.LocationAssignment, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"locationId":     locationID,
	}
	var assignment models.LocationAssignment
	err := r.Collection.FindOne(ctx, filter).Decode(&assignment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &assignment, nil
}

func (r *AssignmentMongoRepository) FindByPractitioner(ctx context.Context, practitionerID string, activeOnly bool) ([]models.LocationAssignment, error) {
	filter := bson.M{"practitionerId": practitionerID}
	if activeOnly {
		filter["isActive"] = true
	}

	cursor, err := r.Collection.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "locationId", Value: 1}}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var assignments []models.LocationAssignment
	if err := cursor.All(ctx, &assignments); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return assignments, nil
}

func (r *AssignmentMongoRepository) Update(ctx context.Context, assignment *models.LocationAssignment) error {
	filter := bson.M{
		"practitionerId": assignment.PractitionerID,
		"locationId":     assignment.LocationID,
	}
	update := bson.M{"$set": assignment}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
