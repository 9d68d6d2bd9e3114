package availability

import (
	"context"
	"testing"

	"medibook-service/internal/app/models"
	"medibook-service/internal/app/services/core/unavailability"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockRule marks one (date, clockTime) pair as blocked. An empty clockTime
// stands for an all-day block.
type blockRule struct {
	date      string
	clockTime string
}

type fakeChecker struct {
	rules []blockRule
}

func (f *fakeChecker) IsBlocked(_ context.Context, _, date, clockTime, _ string) (bool, error) {
	for _, rule := range f.rules {
		if rule.date == date && rule.clockTime == clockTime {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeChecker) IsDayFullyBlocked(_ context.Context, _, date, _ string) (bool, error) {
	for _, rule := range f.rules {
		if rule.date == date && rule.clockTime == "" {
			return true, nil
		}
	}
	return false, nil
}

// 2025-03-10 is a Monday.
func mondayTemplate() *models.SlotTemplate {
	return &models.SlotTemplate{
		TemplateID:          "SL00001",
		PractitionerID:      "pr-1",
		LocationID:          "loc-x",
		DayOfWeek:           "MONDAY",
		StartTime:           "09:00",
		EndTime:             "11:00",
		SlotDurationMinutes: 30,
		FeeAmount:           150,
		Modality:            "IN_PERSON",
		IsActive:            true,
		BlockedDates:        []string{},
	}
}

func TestSlotGeneratorGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Clean Monday yields four half-hour slots", func(t *testing.T) {
		generator := NewSlotGenerator(&fakeChecker{})

		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-10")
		require.NoError(t, err)
		require.Len(t, intervals, 4)

		starts := make([]string, 0, len(intervals))
		for _, interval := range intervals {
			starts = append(starts, interval.StartTime)
			assert.True(t, interval.IsAvailable)
			assert.Equal(t, 30, interval.DurationMinutes)
			assert.Equal(t, float64(150), interval.Fee)
		}
		assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, starts)
		assert.Equal(t, "11:00", intervals[3].EndTime)
	})

	t.Run("Sub-day unavailability drops covered starts", func(t *testing.T) {
		// A 09:30-10:30 block removes the 09:30 and 10:00 starts.
		generator := NewSlotGenerator(&fakeChecker{rules: []blockRule{
			{date: "2025-03-10", clockTime: "09:30"},
			{date: "2025-03-10", clockTime: "10:00"},
		}})

		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-10")
		require.NoError(t, err)
		require.Len(t, intervals, 2)
		assert.Equal(t, "09:00", intervals[0].StartTime)
		assert.Equal(t, "10:30", intervals[1].StartTime)
	})

	t.Run("Inactive template is an error, not empty", func(t *testing.T) {
		template := mondayTemplate()
		template.IsActive = false
		generator := NewSlotGenerator(&fakeChecker{})

		_, err := generator.Generate(ctx, template, "2025-03-10")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Blocked date yields empty list", func(t *testing.T) {
		template := mondayTemplate()
		template.BlockedDates = []string{"2025-03-10"}
		generator := NewSlotGenerator(&fakeChecker{})

		intervals, err := generator.Generate(ctx, template, "2025-03-10")
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("Date outside validity window yields empty list", func(t *testing.T) {
		template := mondayTemplate()
		template.ValidFrom = "2025-03-17"
		generator := NewSlotGenerator(&fakeChecker{})

		intervals, err := generator.Generate(ctx, template, "2025-03-10")
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("Whole-day unavailability yields empty list", func(t *testing.T) {
		generator := NewSlotGenerator(&fakeChecker{rules: []blockRule{
			{date: "2025-03-10", clockTime: ""},
		}})

		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-10")
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("Weekday mismatch yields empty list", func(t *testing.T) {
		generator := NewSlotGenerator(&fakeChecker{})

		// 2025-03-11 is a Tuesday.
		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-11")
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("Trailing partial interval is dropped", func(t *testing.T) {
		template := mondayTemplate()
		template.EndTime = "10:45"
		generator := NewSlotGenerator(&fakeChecker{})

		intervals, err := generator.Generate(ctx, template, "2025-03-10")
		require.NoError(t, err)
		require.Len(t, intervals, 3)
		assert.Equal(t, "10:30", intervals[2].EndTime, "no interval crosses the end boundary")
	})
}

type ledgerRepositoryStub struct {
	records []models.UnavailabilityRecord
}

func (s *ledgerRepositoryStub) Insert(_ context.Context, record *models.UnavailabilityRecord) (string, error) {
	s.records = append(s.records, *record)
	return record.UnavailabilityID, nil
}

func (s *ledgerRepositoryStub) FindByUnavailabilityID(_ context.Context, unavailabilityID string) (*models.UnavailabilityRecord, error) {
	for i := range s.records {
		if s.records[i].UnavailabilityID == unavailabilityID {
			record := s.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (s *ledgerRepositoryStub) FindByPractitioner(_ context.Context, practitionerID string, includeInactive bool) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range s.records {
		if record.PractitionerID == practitionerID && (includeInactive || record.IsActive) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *ledgerRepositoryStub) FindUpcomingByPractitioner(_ context.Context, practitionerID, fromDate string, includeInactive bool) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range s.records {
		if record.PractitionerID == practitionerID && record.EndDate >= fromDate && (includeInactive || record.IsActive) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *ledgerRepositoryStub) FindActiveCoveringDate(_ context.Context, practitionerID, date string) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range s.records {
		if record.PractitionerID == practitionerID && record.IsActive &&
			record.StartDate <= date && record.EndDate >= date {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *ledgerRepositoryStub) FindActiveIntersectingRange(_ context.Context, practitionerID, startDate, endDate string) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range s.records {
		if record.PractitionerID == practitionerID && record.IsActive &&
			record.StartDate <= endDate && record.EndDate >= startDate {
			out = append(out, record)
		}
	}
	return out, nil
}

func (s *ledgerRepositoryStub) Update(_ context.Context, record *models.UnavailabilityRecord) error {
	for i := range s.records {
		if s.records[i].UnavailabilityID == record.UnavailabilityID {
			s.records[i] = *record
		}
	}
	return nil
}

type counterStub struct {
	value int64
}

func (s *counterStub) Next(_ context.Context, _ string) (int64, error) {
	s.value++
	return s.value, nil
}

// Runs the generator against the real unavailability rules instead of the
// package fake, so the two blocking queries are exercised together.
func TestSlotGeneratorWithLedger(t *testing.T) {
	ctx := context.Background()

	newLedger := func(records ...models.UnavailabilityRecord) unavailability.UnavailabilityUsecase {
		return unavailability.NewUnavailabilityUsecase(
			&ledgerRepositoryStub{records: records},
			&counterStub{},
			&fakeRedisRepository{},
			zap.NewNop(),
		)
	}

	t.Run("Timed record removes only the covered starts", func(t *testing.T) {
		ledger := newLedger(models.UnavailabilityRecord{
			UnavailabilityID: "UN00001",
			PractitionerID:   "pr-1",
			StartDate:        "2025-03-10",
			EndDate:          "2025-03-10",
			StartTime:        "09:30",
			EndTime:          "10:30",
			IsActive:         true,
		})
		generator := NewSlotGenerator(ledger)

		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-10")
		require.NoError(t, err)
		require.Len(t, intervals, 2)
		assert.Equal(t, "09:00", intervals[0].StartTime)
		assert.Equal(t, "10:30", intervals[1].StartTime)
	})

	t.Run("All-day record empties the date", func(t *testing.T) {
		ledger := newLedger(models.UnavailabilityRecord{
			UnavailabilityID: "UN00001",
			PractitionerID:   "pr-1",
			StartDate:        "2025-03-09",
			EndDate:          "2025-03-11",
			IsAllDay:         true,
			IsActive:         true,
		})
		generator := NewSlotGenerator(ledger)

		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-10")
		require.NoError(t, err)
		assert.Empty(t, intervals)
	})

	t.Run("Timed record scoped to another location blocks nothing", func(t *testing.T) {
		ledger := newLedger(models.UnavailabilityRecord{
			UnavailabilityID:    "UN00001",
			PractitionerID:      "pr-1",
			StartDate:           "2025-03-10",
			EndDate:             "2025-03-10",
			StartTime:           "09:30",
			EndTime:             "10:30",
			AffectedLocationIDs: []string{"loc-y"},
			IsActive:            true,
		})
		generator := NewSlotGenerator(ledger)

		intervals, err := generator.Generate(ctx, mondayTemplate(), "2025-03-10")
		require.NoError(t, err)
		require.Len(t, intervals, 4)
	})
}
