package availability

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/responses"
)

// UnavailabilityChecker is the pair of blocking queries slot generation
// needs from the unavailability ledger.
type UnavailabilityChecker interface {
	// IsBlocked answers for one slot start time.
	IsBlocked(ctx context.Context, practitionerID, date, clockTime, locationID string) (bool, error)
	// IsDayFullyBlocked answers for the whole day: true only when an
	// applicable all-day record covers the date.
	IsDayFullyBlocked(ctx context.Context, practitionerID, date, locationID string) (bool, error)
}

type AvailabilityUsecase interface {
	// GetAvailability aggregates bookable slots over a rolling window
	// starting today. An empty locationID aggregates REMOTE templates
	// across all locations; a set locationID selects IN_PERSON templates
	// at that location.
	GetAvailability(ctx context.Context, practitionerID, locationID string) ([]responses.DayAvailability, error)

	// GenerateForTemplate expands one template for one date. Unlike
	// aggregation it surfaces an error when the template is inactive.
	GenerateForTemplate(ctx context.Context, templateID, date string) ([]models.GeneratedInterval, error)
}
