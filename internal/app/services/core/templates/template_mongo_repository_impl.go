package templates

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

type TemplateMongoRepository struct {
	Collection *mongo.Collection
}

func NewTemplateMongoRepository(db *mongo.Client, dbName string) contracts.SlotTemplateRepository {
	return &TemplateMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionSlotTemplates),
	}
}

func (r *TemplateMongoRepository) Insert(ctx context.Context, template *models.SlotTemplate) (string, error) {
	result, err := r.Collection.InsertOne(ctx, template)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return template.TemplateID, nil
}

func (r *TemplateMongoRepository) FindByTemplateID(ctx context.Context, templateID string) (*models.SlotTemplate, error) {
	var template models.SlotTemplate
	err := r.Collection.FindOne(ctx, bson.M{"templateId": templateID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &template, nil
}

func (r *TemplateMongoRepository) FindWithFilter(ctx context.Context, filter contracts.TemplateFilter) ([]models.SlotTemplate, error) {
	query := bson.M{}
	if filter.PractitionerID != "" {
		query["practitionerId"] = filter.PractitionerID
	}
	if filter.LocationID != "" {
		query["locationId"] = filter.LocationID
	}
	if filter.DayOfWeek != "" {
		query["dayOfWeek"] = filter.DayOfWeek
	}
	if filter.Modality != "" {
		query["modality"] = filter.Modality
	}
	if filter.IsActive != nil {
		query["isActive"] = *filter.IsActive
	}

	sort := bson.D{{Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}}
	cursor, err := r.Collection.Find(ctx, query, options.Find().SetSort(sort))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var templates []models.SlotTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return templates, nil
}

func (r *TemplateMongoRepository) Update(ctx context.Context, template *models.SlotTemplate) error {
	filter := bson.M{"templateId": template.TemplateID}
	update := bson.M{"$set": template}
	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *TemplateMongoRepository) CountActiveByPair(ctx context.Context, practitionerID, locationID, modality string) (int64, error) {
	filter := bson.M{
		"practitionerId": practitionerID,
		"locationId":     locationID,
		"isActive":       true,
	}
	if modality != "" {
		filter["modality"] = modality
	}
	count, err := r.Collection.CountDocuments(ctx, filter)
	if err != nil {
		return 0, exceptions.ErrMongoDBCountDocuments(err)
	}
	return count, nil
}
