package contracts

import (
	"context"

	"medibook-service/internal/app/models"
)

// TemplateFilter narrows template queries. Zero-value fields are ignored.
type TemplateFilter struct {
	PractitionerID string
	LocationID     string
	DayOfWeek      string
	Modality       string
	IsActive       *bool
}

type SlotTemplateRepository interface {
	Insert(ctx context.Context, template *models.SlotTemplate) (string, error)
	FindByTemplateID(ctx context.Context, templateID string) (*models.SlotTemplate, error)
	FindWithFilter(ctx context.Context, filter TemplateFilter) ([]models.SlotTemplate, error)
	Update(ctx context.Context, template *models.SlotTemplate) error
	CountActiveByPair(ctx context.Context, practitionerID, locationID, modality string) (int64, error)
}
