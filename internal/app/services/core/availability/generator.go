package availability

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
)

// SlotGenerator expands one template for one calendar date into the ordered
// list of bookable intervals, net of blocked dates, validity bounds and the
// unavailability ledger.
type SlotGenerator struct {
	Checker UnavailabilityChecker
}

func NewSlotGenerator(checker UnavailabilityChecker) *SlotGenerator {
	return &SlotGenerator{Checker: checker}
}

// Generate walks the template's time window in slot-sized steps. A window
// that does not divide evenly drops the trailing partial interval; no
// interval ever crosses the template's end boundary.
func (g *SlotGenerator) Generate(ctx context.Context, template *models.SlotTemplate, date string) ([]models.GeneratedInterval, error) {
	if !template.IsActive {
		return nil, exceptions.ErrTemplateInactive(template.TemplateID)
	}
	if template.IsDateBlocked(date) {
		return []models.GeneratedInterval{}, nil
	}
	if !template.IsDateInValidityWindow(date) {
		return []models.GeneratedInterval{}, nil
	}

	// Only an all-day record empties the date outright; time-scoped
	// records are applied per slot start below.
	wholeDayBlocked, err := g.Checker.IsDayFullyBlocked(ctx, template.PractitionerID, date, template.LocationID)
	if err != nil {
		return nil, err
	}
	if wholeDayBlocked {
		return []models.GeneratedInterval{}, nil
	}

	dayOfWeek, err := utils.WeekdayOf(date)
	if err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err)
	}
	if dayOfWeek != template.DayOfWeek {
		return []models.GeneratedInterval{}, nil
	}

	startMinutes, err := utils.ParseClockTime(template.StartTime)
	if err != nil {
		return nil, exceptions.ErrInvalidClockFormat(err)
	}
	endMinutes, err := utils.ParseClockTime(template.EndTime)
	if err != nil {
		return nil, exceptions.ErrInvalidClockFormat(err)
	}

	intervals := []models.GeneratedInterval{}
	for cursor := startMinutes; cursor+template.SlotDurationMinutes <= endMinutes; cursor += template.SlotDurationMinutes {
		slotStart := utils.FormatClockTime(cursor)
		blocked, err := g.Checker.IsBlocked(ctx, template.PractitionerID, date, slotStart, template.LocationID)
		if err != nil {
			return nil, err
		}
		if blocked {
			continue
		}
		intervals = append(intervals, models.GeneratedInterval{
			StartTime:       slotStart,
			EndTime:         utils.FormatClockTime(cursor + template.SlotDurationMinutes),
			DurationMinutes: template.SlotDurationMinutes,
			Fee:             template.FeeAmount,
			Modality:        template.Modality,
			IsAvailable:     true,
		})
	}
	return intervals, nil
}
