package unavailability

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
)

// UnavailabilityUsecase owns the unavailability ledger: CRUD over exception
// periods plus the blocking queries slot generation is built on.
type UnavailabilityUsecase interface {
	Create(ctx context.Context, request *requests.CreateUnavailability) (*models.UnavailabilityRecord, error)
	FindByID(ctx context.Context, unavailabilityID string) (*models.UnavailabilityRecord, error)
	FindByPractitioner(ctx context.Context, practitionerID string, includeInactive, upcomingOnly bool) ([]models.UnavailabilityRecord, error)
	Update(ctx context.Context, unavailabilityID string, request *requests.UpdateUnavailability) (*models.UnavailabilityRecord, error)
	SoftDelete(ctx context.Context, unavailabilityID string) error

	// IsBlocked reports whether the practitioner cannot be booked on the
	// date. clockTime and locationID may be empty: an empty clockTime asks
	// whether any applicable record touches the date at all, an empty
	// locationID ignores location scoping.
	IsBlocked(ctx context.Context, practitionerID, date, clockTime, locationID string) (bool, error)

	// IsDayFullyBlocked reports whether an applicable all-day record
	// covers the date. Time-scoped records never fully block a day; they
	// only remove the slots they overlap.
	IsDayFullyBlocked(ctx context.Context, practitionerID, date, locationID string) (bool, error)

	// BlockedDatesInRange returns the sorted, de-duplicated ISO dates in
	// the inclusive [startDate, endDate] window on which at least one
	// active record touches the practitioner.
	BlockedDatesInRange(ctx context.Context, practitionerID, startDate, endDate, locationID string) ([]string, error)
}
