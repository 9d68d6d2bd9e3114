package unavailability

import (
	"context"
	"testing"
	"time"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeUnavailabilityRepository struct {
	records []models.UnavailabilityRecord
}

func (f *fakeUnavailabilityRepository) Insert(_ context.Context, record *models.UnavailabilityRecord) (string, error) {
	f.records = append(f.records, *record)
	return record.UnavailabilityID, nil
}

func (f *fakeUnavailabilityRepository) FindByUnavailabilityID(_ context.Context, unavailabilityID string) (*models.UnavailabilityRecord, error) {
	for i := range f.records {
		if f.records[i].UnavailabilityID == unavailabilityID {
			record := f.records[i]
			return &record, nil
		}
	}
	return nil, nil
}

func (f *fakeUnavailabilityRepository) FindByPractitioner(_ context.Context, practitionerID string, includeInactive bool) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range f.records {
		if record.PractitionerID != practitionerID {
			continue
		}
		if !includeInactive && !record.IsActive {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (f *fakeUnavailabilityRepository) FindUpcomingByPractitioner(_ context.Context, practitionerID, fromDate string, includeInactive bool) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range f.records {
		if record.PractitionerID == practitionerID && record.EndDate >= fromDate && (includeInactive || record.IsActive) {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeUnavailabilityRepository) FindActiveCoveringDate(_ context.Context, practitionerID, date string) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range f.records {
		if record.PractitionerID == practitionerID && record.IsActive && record.StartDate <= date && record.EndDate >= date {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeUnavailabilityRepository) FindActiveIntersectingRange(_ context.Context, practitionerID, startDate, endDate string) ([]models.UnavailabilityRecord, error) {
	var out []models.UnavailabilityRecord
	for _, record := range f.records {
		if record.PractitionerID == practitionerID && record.IsActive && record.StartDate <= endDate && record.EndDate >= startDate {
			out = append(out, record)
		}
	}
	return out, nil
}

func (f *fakeUnavailabilityRepository) Update(_ context.Context, record *models.UnavailabilityRecord) error {
	for i := range f.records {
		if f.records[i].UnavailabilityID == record.UnavailabilityID {
			f.records[i] = *record
			return nil
		}
	}
	return nil
}

type fakeCounterRepository struct {
	value int64
}

func (f *fakeCounterRepository) Next(_ context.Context, _ string) (int64, error) {
	f.value++
	return f.value, nil
}

type fakeRedisRepository struct {
	store          map[string]string
	deletePatterns []string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: map[string]string{}}
}

func (f *fakeRedisRepository) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	f.store[key] = "set"
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func (f *fakeRedisRepository) DeleteByPattern(_ context.Context, pattern string) error {
	f.deletePatterns = append(f.deletePatterns, pattern)
	return nil
}

func newTestUsecase(repo *fakeUnavailabilityRepository) UnavailabilityUsecase {
	return NewUnavailabilityUsecase(repo, &fakeCounterRepository{}, newFakeRedisRepository(), zap.NewNop())
}

func TestUnavailabilityCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Issues counter IDs and defaults", func(t *testing.T) {
		repo := &fakeUnavailabilityRepository{}
		uc := newTestUsecase(repo)

		record, err := uc.Create(ctx, &requests.CreateUnavailability{
			PractitionerID: "pr-1",
			StartDate:      "2025-03-10",
			EndDate:        "2025-03-12",
		})
		require.NoError(t, err)
		assert.Equal(t, "UN00001", record.UnavailabilityID)
		assert.True(t, record.IsAllDay, "no time pair means whole-day")
		assert.True(t, record.IsActive)
		assert.Equal(t, "NONE", record.RecurrenceTag)
		assert.NotNil(t, record.AffectedLocationIDs)
	})

	t.Run("Rejects inverted date range", func(t *testing.T) {
		uc := newTestUsecase(&fakeUnavailabilityRepository{})

		_, err := uc.Create(ctx, &requests.CreateUnavailability{
			PractitionerID: "pr-1",
			StartDate:      "2025-03-12",
			EndDate:        "2025-03-10",
		})
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Rejects half-specified time pair", func(t *testing.T) {
		uc := newTestUsecase(&fakeUnavailabilityRepository{})

		_, err := uc.Create(ctx, &requests.CreateUnavailability{
			PractitionerID: "pr-1",
			StartDate:      "2025-03-10",
			EndDate:        "2025-03-10",
			StartTime:      "09:00",
		})
		assert.Error(t, err)
	})

	t.Run("Timed record is not all-day by default", func(t *testing.T) {
		uc := newTestUsecase(&fakeUnavailabilityRepository{})

		record, err := uc.Create(ctx, &requests.CreateUnavailability{
			PractitionerID: "pr-1",
			StartDate:      "2025-03-10",
			EndDate:        "2025-03-10",
			StartTime:      "09:00",
			EndTime:        "12:00",
		})
		require.NoError(t, err)
		assert.False(t, record.IsAllDay)
	})
}

func TestUnavailabilityIsBlocked(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUnavailabilityRepository{records: []models.UnavailabilityRecord{
		{
			UnavailabilityID:    "UN00001",
			PractitionerID:      "pr-1",
			StartDate:           "2025-03-10",
			EndDate:             "2025-03-10",
			StartTime:           "09:30",
			EndTime:             "10:30",
			IsActive:            true,
			AffectedLocationIDs: []string{},
		},
		{
			UnavailabilityID:    "UN00002",
			PractitionerID:      "pr-1",
			StartDate:           "2025-04-01",
			EndDate:             "2025-04-03",
			IsAllDay:            true,
			IsActive:            true,
			AffectedLocationIDs: []string{"loc-x"},
		},
	}}
	uc := newTestUsecase(repo)

	t.Run("No record covers the date", func(t *testing.T) {
		blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-03-11", "09:30", "")
		require.NoError(t, err)
		assert.False(t, blocked)
	})

	t.Run("Empty clock time asks about the whole day", func(t *testing.T) {
		blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-03-10", "", "")
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("Half-open time containment", func(t *testing.T) {
		cases := map[string]bool{
			"09:00": false,
			"09:30": true,
			"10:00": true,
			"10:29": true,
			"10:30": false,
		}
		for clock, want := range cases {
			blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-03-10", clock, "")
			require.NoError(t, err)
			assert.Equal(t, want, blocked, "time %s", clock)
		}
	})

	t.Run("Location-scoped record ignores other locations", func(t *testing.T) {
		blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-04-02", "09:00", "loc-y")
		require.NoError(t, err)
		assert.False(t, blocked)

		blocked, err = uc.IsBlocked(ctx, "pr-1", "2025-04-02", "09:00", "loc-x")
		require.NoError(t, err)
		assert.True(t, blocked, "all-day record blocks any time at its location")
	})

	t.Run("Empty location matches scoped records", func(t *testing.T) {
		blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-04-02", "", "")
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("Inactive records never block", func(t *testing.T) {
		repo := &fakeUnavailabilityRepository{records: []models.UnavailabilityRecord{{
			UnavailabilityID: "UN00009",
			PractitionerID:   "pr-1",
			StartDate:        "2025-03-10",
			EndDate:          "2025-03-10",
			IsAllDay:         true,
			IsActive:         false,
		}}}
		uc := newTestUsecase(repo)

		blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-03-10", "", "")
		require.NoError(t, err)
		assert.False(t, blocked)
	})
}

func TestBlockedDatesInRange(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUnavailabilityRepository{records: []models.UnavailabilityRecord{
		{
			UnavailabilityID: "UN00001",
			PractitionerID:   "pr-1",
			StartDate:        "2025-03-08",
			EndDate:          "2025-03-11",
			IsAllDay:         true,
			IsActive:         true,
		},
		{
			UnavailabilityID: "UN00002",
			PractitionerID:   "pr-1",
			StartDate:        "2025-03-10",
			EndDate:          "2025-03-14",
			StartTime:        "09:00",
			EndTime:          "12:00",
			IsActive:         true,
		},
	}}
	uc := newTestUsecase(repo)

	t.Run("Clamps to the query window and de-duplicates", func(t *testing.T) {
		dates, err := uc.BlockedDatesInRange(ctx, "pr-1", "2025-03-09", "2025-03-12", "")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-09", "2025-03-10", "2025-03-11", "2025-03-12"}, dates)
	})

	t.Run("Empty result for untouched window", func(t *testing.T) {
		dates, err := uc.BlockedDatesInRange(ctx, "pr-1", "2025-05-01", "2025-05-07", "")
		require.NoError(t, err)
		assert.Empty(t, dates)
	})
}

func TestUnavailabilitySoftDelete(t *testing.T) {
	ctx := context.Background()

	repo := &fakeUnavailabilityRepository{records: []models.UnavailabilityRecord{{
		UnavailabilityID: "UN00001",
		PractitionerID:   "pr-1",
		StartDate:        "2025-03-10",
		EndDate:          "2025-03-10",
		IsAllDay:         true,
		IsActive:         true,
	}}}
	uc := newTestUsecase(repo)

	require.NoError(t, uc.SoftDelete(ctx, "UN00001"))
	assert.False(t, repo.records[0].IsActive)

	blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-03-10", "", "")
	require.NoError(t, err)
	assert.False(t, blocked, "soft-deleted records stop blocking")

	err = uc.SoftDelete(ctx, "UN99999")
	assert.Error(t, err)
}

func TestIsDayFullyBlocked(t *testing.T) {
	ctx := context.Background()

	timed := models.UnavailabilityRecord{
		UnavailabilityID: "UN00001",
		PractitionerID:   "pr-1",
		StartDate:        "2025-03-10",
		EndDate:          "2025-03-10",
		StartTime:        "09:30",
		EndTime:          "10:30",
		IsActive:         true,
	}
	allDay := models.UnavailabilityRecord{
		UnavailabilityID: "UN00002",
		PractitionerID:   "pr-1",
		StartDate:        "2025-03-11",
		EndDate:          "2025-03-11",
		IsAllDay:         true,
		IsActive:         true,
	}
	scopedAllDay := models.UnavailabilityRecord{
		UnavailabilityID:    "UN00003",
		PractitionerID:      "pr-1",
		StartDate:           "2025-03-12",
		EndDate:             "2025-03-12",
		IsAllDay:            true,
		AffectedLocationIDs: []string{"loc-y"},
		IsActive:            true,
	}
	uc := newTestUsecase(&fakeUnavailabilityRepository{records: []models.UnavailabilityRecord{timed, allDay, scopedAllDay}})

	t.Run("Timed record does not fully block its day", func(t *testing.T) {
		fully, err := uc.IsDayFullyBlocked(ctx, "pr-1", "2025-03-10", "loc-x")
		require.NoError(t, err)
		assert.False(t, fully)

		// The same record still answers point queries.
		blocked, err := uc.IsBlocked(ctx, "pr-1", "2025-03-10", "09:30", "loc-x")
		require.NoError(t, err)
		assert.True(t, blocked)
	})

	t.Run("All-day record fully blocks its day", func(t *testing.T) {
		fully, err := uc.IsDayFullyBlocked(ctx, "pr-1", "2025-03-11", "loc-x")
		require.NoError(t, err)
		assert.True(t, fully)
	})

	t.Run("Location scoping applies", func(t *testing.T) {
		fully, err := uc.IsDayFullyBlocked(ctx, "pr-1", "2025-03-12", "loc-x")
		require.NoError(t, err)
		assert.False(t, fully)

		fully, err = uc.IsDayFullyBlocked(ctx, "pr-1", "2025-03-12", "loc-y")
		require.NoError(t, err)
		assert.True(t, fully)
	})

	t.Run("Uncovered day is not blocked", func(t *testing.T) {
		fully, err := uc.IsDayFullyBlocked(ctx, "pr-1", "2025-03-13", "loc-x")
		require.NoError(t, err)
		assert.False(t, fully)
	})
}

func TestFindByPractitionerUpcoming(t *testing.T) {
	ctx := context.Background()

	activeRecord := models.UnavailabilityRecord{
		UnavailabilityID: "UN00001",
		PractitionerID:   "pr-1",
		StartDate:        "2099-01-01",
		EndDate:          "2099-01-02",
		IsActive:         true,
	}
	inactiveRecord := models.UnavailabilityRecord{
		UnavailabilityID: "UN00002",
		PractitionerID:   "pr-1",
		StartDate:        "2099-02-01",
		EndDate:          "2099-02-02",
		IsActive:         false,
	}
	pastRecord := models.UnavailabilityRecord{
		UnavailabilityID: "UN00003",
		PractitionerID:   "pr-1",
		StartDate:        "2020-01-01",
		EndDate:          "2020-01-02",
		IsActive:         true,
	}
	uc := newTestUsecase(&fakeUnavailabilityRepository{records: []models.UnavailabilityRecord{activeRecord, inactiveRecord, pastRecord}})

	t.Run("Upcoming defaults to active records", func(t *testing.T) {
		records, err := uc.FindByPractitioner(ctx, "pr-1", false, true)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "UN00001", records[0].UnavailabilityID)
	})

	t.Run("Upcoming honors includeInactive", func(t *testing.T) {
		records, err := uc.FindByPractitioner(ctx, "pr-1", true, true)
		require.NoError(t, err)
		require.Len(t, records, 2)
		ids := []string{records[0].UnavailabilityID, records[1].UnavailabilityID}
		assert.ElementsMatch(t, []string{"UN00001", "UN00002"}, ids)
	})
}
