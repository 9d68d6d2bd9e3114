package templates

import (
	"context"
	"errors"
	"testing"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTemplateRepository struct {
	templates []models.SlotTemplate
}

func (f *fakeTemplateRepository) Insert(_ context.Context, template *models.SlotTemplate) (string, error) {
	f.templates = append(f.templates, *template)
	return template.TemplateID, nil
}

func (f *fakeTemplateRepository) FindByTemplateID(_ context.Context, templateID string) (*models.SlotTemplate, error) {
	for i := range f.templates {
		if f.templates[i].TemplateID == templateID {
			template := f.templates[i]
			return &template, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepository) FindWithFilter(_ context.Context, _ contracts.TemplateFilter) ([]models.SlotTemplate, error) {
	return f.templates, nil
}

func (f *fakeTemplateRepository) Update(_ context.Context, template *models.SlotTemplate) error {
	for i := range f.templates {
		if f.templates[i].TemplateID == template.TemplateID {
			f.templates[i] = *template
		}
	}
	return nil
}

func (f *fakeTemplateRepository) CountActiveByPair(_ context.Context, _, _, _ string) (int64, error) {
	return 0, nil
}

type fakeCounterRepository struct {
	value int64
}

func (f *fakeCounterRepository) Next(_ context.Context, _ string) (int64, error) {
	f.value++
	return f.value, nil
}

type fakeRedisRepository struct {
	deletedPatterns []string
}

func (f *fakeRedisRepository) Set(_ context.Context, _ string, _ interface{}, _ time.Duration) error {
	return nil
}

func (f *fakeRedisRepository) Get(_ context.Context, _ string) (string, error) {
	return "", nil
}

func (f *fakeRedisRepository) Delete(_ context.Context, _ string) error {
	return nil
}

func (f *fakeRedisRepository) DeleteByPattern(_ context.Context, pattern string) error {
	f.deletedPatterns = append(f.deletedPatterns, pattern)
	return nil
}

type syncCall struct {
	event          string
	practitionerID string
	locationID     string
	modality       string
	actor          string
}

type fakeSynchronizer struct {
	calls []syncCall
	err   error
}

func (f *fakeSynchronizer) HandleTemplateActivated(_ context.Context, practitionerID, locationID, modality, actor string) error {
	f.calls = append(f.calls, syncCall{"activated", practitionerID, locationID, modality, actor})
	return f.err
}

func (f *fakeSynchronizer) HandleTemplateDeactivated(_ context.Context, practitionerID, locationID, modality, actor string) error {
	f.calls = append(f.calls, syncCall{"deactivated", practitionerID, locationID, modality, actor})
	return f.err
}

type fakePublisher struct {
	events []models.TemplateLifecycleEvent
	err    error
}

func (f *fakePublisher) PublishTemplateLifecycle(_ context.Context, event models.TemplateLifecycleEvent) error {
	f.events = append(f.events, event)
	return f.err
}

type templateFixture struct {
	repo         *fakeTemplateRepository
	redis        *fakeRedisRepository
	synchronizer *fakeSynchronizer
	publisher    *fakePublisher
	usecase      TemplateUsecase
}

func newTemplateFixture() *templateFixture {
	f := &templateFixture{
		repo:         &fakeTemplateRepository{},
		redis:        &fakeRedisRepository{},
		synchronizer: &fakeSynchronizer{},
		publisher:    &fakePublisher{},
	}
	f.usecase = NewTemplateUsecase(f.repo, &fakeCounterRepository{}, f.redis, f.synchronizer, f.publisher, zap.NewNop())
	return f
}

func validCreateRequest() *requests.CreateSlotTemplate {
	return &requests.CreateSlotTemplate{
		PractitionerID:      "pr-1",
		LocationID:          "loc-x",
		DayOfWeek:           "MONDAY",
		StartTime:           "09:00",
		EndTime:             "11:00",
		SlotDurationMinutes: 30,
		FeeAmount:           150,
		Modality:            "IN_PERSON",
		Actor:               "admin",
	}
}

func TestCreateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("Applies defaults and sequential ID", func(t *testing.T) {
		f := newTemplateFixture()

		template, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		assert.Equal(t, "SL00001", template.TemplateID)
		assert.True(t, template.IsActive)
		assert.Equal(t, 20, template.MaxBookingsPerSlot)
		assert.NotNil(t, template.BlockedDates)
		assert.Empty(t, template.BlockedDates)
	})

	t.Run("Active creation drives the assignment side effects", func(t *testing.T) {
		f := newTemplateFixture()

		_, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		require.Len(t, f.synchronizer.calls, 1)
		assert.Equal(t, syncCall{"activated", "pr-1", "loc-x", "IN_PERSON", "admin"}, f.synchronizer.calls[0])
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, "template.activated", f.publisher.events[0].Event)
		assert.NotEmpty(t, f.publisher.events[0].EventID)
		assert.Contains(t, f.redis.deletedPatterns, "availability:pr-1:*")
	})

	t.Run("Inactive creation skips the side effects", func(t *testing.T) {
		f := newTemplateFixture()
		inactive := false
		request := validCreateRequest()
		request.IsActive = &inactive

		template, err := f.usecase.Create(ctx, request)
		require.NoError(t, err)
		assert.False(t, template.IsActive)
		assert.Empty(t, f.synchronizer.calls)
		assert.Empty(t, f.publisher.events)
	})

	t.Run("End at or before start is rejected", func(t *testing.T) {
		f := newTemplateFixture()

		for _, endTime := range []string{"09:00", "08:30"} {
			request := validCreateRequest()
			request.EndTime = endTime
			_, err := f.usecase.Create(ctx, request)
			require.Error(t, err)
			customErr, ok := err.(*exceptions.CustomError)
			require.True(t, ok)
			assert.Equal(t, 400, customErr.StatusCode)
		}
		assert.Empty(t, f.repo.templates)
	})

	t.Run("Duration outside bounds is rejected", func(t *testing.T) {
		f := newTemplateFixture()

		for _, minutes := range []int{9, 121} {
			request := validCreateRequest()
			request.SlotDurationMinutes = minutes
			_, err := f.usecase.Create(ctx, request)
			assert.Error(t, err)
		}
	})

	t.Run("Inverted validity window is rejected", func(t *testing.T) {
		f := newTemplateFixture()
		request := validCreateRequest()
		request.ValidFrom = "2025-06-01"
		request.ValidUntil = "2025-05-01"

		_, err := f.usecase.Create(ctx, request)
		assert.Error(t, err)
	})

	t.Run("Malformed clock time is rejected", func(t *testing.T) {
		f := newTemplateFixture()
		request := validCreateRequest()
		request.StartTime = "9am"

		_, err := f.usecase.Create(ctx, request)
		assert.Error(t, err)
	})
}

func TestActivateDeactivate(t *testing.T) {
	ctx := context.Background()

	t.Run("Deactivate flips the flag and notifies", func(t *testing.T) {
		f := newTemplateFixture()
		created, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		f.synchronizer.calls = nil
		f.publisher.events = nil

		template, err := f.usecase.Deactivate(ctx, created.TemplateID, "admin2")
		require.NoError(t, err)
		assert.False(t, template.IsActive)

		require.Len(t, f.synchronizer.calls, 1)
		assert.Equal(t, "deactivated", f.synchronizer.calls[0].event)
		assert.Equal(t, "admin2", f.synchronizer.calls[0].actor)
		require.Len(t, f.publisher.events, 1)
		assert.Equal(t, "template.deactivated", f.publisher.events[0].Event)
	})

	t.Run("Activate succeeds even when side effects fail", func(t *testing.T) {
		f := newTemplateFixture()
		created, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		f.synchronizer.err = errors.New("assignment store down")
		f.publisher.err = errors.New("broker down")

		template, err := f.usecase.Activate(ctx, created.TemplateID, "admin")
		require.NoError(t, err, "template state stays authoritative")
		assert.True(t, template.IsActive)
	})

	t.Run("Unknown template is not found", func(t *testing.T) {
		f := newTemplateFixture()

		_, err := f.usecase.Activate(ctx, "SL99999", "admin")
		require.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		require.True(t, ok)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestBlockUnblockDate(t *testing.T) {
	ctx := context.Background()

	t.Run("Block is idempotent", func(t *testing.T) {
		f := newTemplateFixture()
		created, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		template, err := f.usecase.BlockDate(ctx, created.TemplateID, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-10"}, template.BlockedDates)

		template, err = f.usecase.BlockDate(ctx, created.TemplateID, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-10"}, template.BlockedDates, "duplicate block does not grow the list")
	})

	t.Run("Block rejects a malformed date", func(t *testing.T) {
		f := newTemplateFixture()
		created, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		_, err = f.usecase.BlockDate(ctx, created.TemplateID, "10-03-2025")
		assert.Error(t, err)
	})

	t.Run("Unblock removes only the named date and is idempotent", func(t *testing.T) {
		f := newTemplateFixture()
		request := validCreateRequest()
		request.BlockedDates = []string{"2025-03-10", "2025-03-17"}
		created, err := f.usecase.Create(ctx, request)
		require.NoError(t, err)

		template, err := f.usecase.UnblockDate(ctx, created.TemplateID, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-17"}, template.BlockedDates)

		template, err = f.usecase.UnblockDate(ctx, created.TemplateID, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"2025-03-17"}, template.BlockedDates)
	})

	t.Run("Block invalidates the availability cache", func(t *testing.T) {
		f := newTemplateFixture()
		created, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)
		f.redis.deletedPatterns = nil

		_, err = f.usecase.BlockDate(ctx, created.TemplateID, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, []string{"availability:pr-1:*"}, f.redis.deletedPatterns)
	})
}

func TestUpdateTemplate(t *testing.T) {
	ctx := context.Background()

	t.Run("Partial update re-validates the merged time range", func(t *testing.T) {
		f := newTemplateFixture()
		created, err := f.usecase.Create(ctx, validCreateRequest())
		require.NoError(t, err)

		badEnd := "08:00"
		_, err = f.usecase.Update(ctx, created.TemplateID, &requests.UpdateSlotTemplate{EndTime: &badEnd})
		require.Error(t, err, "merged range 09:00 to 08:00 is inverted")

		newEnd := "12:00"
		template, err := f.usecase.Update(ctx, created.TemplateID, &requests.UpdateSlotTemplate{EndTime: &newEnd})
		require.NoError(t, err)
		assert.Equal(t, "12:00", template.EndTime)
		assert.Equal(t, "09:00", template.StartTime, "untouched fields survive")
	})

	t.Run("Merged validity window is validated", func(t *testing.T) {
		f := newTemplateFixture()
		request := validCreateRequest()
		request.ValidFrom = "2025-06-01"
		created, err := f.usecase.Create(ctx, request)
		require.NoError(t, err)

		badUntil := "2025-05-01"
		_, err = f.usecase.Update(ctx, created.TemplateID, &requests.UpdateSlotTemplate{ValidUntil: &badUntil})
		assert.Error(t, err)
	})
}
