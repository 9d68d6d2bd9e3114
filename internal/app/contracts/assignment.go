package contracts

import (
	"context"

	"medibook-service/internal/app/models"
)

type AssignmentRepository interface {
	Insert(ctx context.Context, assignment *models.LocationAssignment) (string, error)
	FindByPair(ctx context.Context, practitionerID, locationID string) (*models.LocationAssignment, error)
	FindByPractitioner(ctx context.Context, practitionerID string, activeOnly bool) ([]models.LocationAssignment, error)
	Update(ctx context.Context, assignment *models.LocationAssignment) error
}
