package contracts

import (
	"context"

	"medibook-service/internal/app/models"
)

type UnavailabilityRepository interface {
	Insert(ctx context.Context, record *models.UnavailabilityRecord) (string, error)
	FindByUnavailabilityID(ctx context.Context, unavailabilityID string) (*models.UnavailabilityRecord, error)
	FindByPractitioner(ctx context.Context, practitionerID string, includeInactive bool) ([]models.UnavailabilityRecord, error)
	// FindUpcomingByPractitioner returns records whose endDate has not
	// passed fromDate, restricted to active ones unless includeInactive.
	FindUpcomingByPractitioner(ctx context.Context, practitionerID, fromDate string, includeInactive bool) ([]models.UnavailabilityRecord, error)
	// FindActiveCoveringDate returns active records whose inclusive
	// [startDate, endDate] range contains date.
	FindActiveCoveringDate(ctx context.Context, practitionerID, date string) ([]models.UnavailabilityRecord, error)
	// FindActiveIntersectingRange returns active records whose date range
	// intersects the inclusive [startDate, endDate] window.
	FindActiveIntersectingRange(ctx context.Context, practitionerID, startDate, endDate string) ([]models.UnavailabilityRecord, error)
	Update(ctx context.Context, record *models.UnavailabilityRecord) error
}
