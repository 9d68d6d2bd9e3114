package templates

import (
	"context"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type templateUsecase struct {
	TemplateRepository contracts.SlotTemplateRepository
	CounterRepository  contracts.CounterRepository
	RedisRepository    contracts.RedisRepository
	Synchronizer       contracts.AssignmentSynchronizer
	EventPublisher     contracts.EventPublisher
	Log                *zap.Logger
}

func NewTemplateUsecase(
	templateRepository contracts.SlotTemplateRepository,
	counterRepository contracts.CounterRepository,
	redisRepository contracts.RedisRepository,
	synchronizer contracts.AssignmentSynchronizer,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) TemplateUsecase {
	return &templateUsecase{
		TemplateRepository: templateRepository,
		CounterRepository:  counterRepository,
		RedisRepository:    redisRepository,
		Synchronizer:       synchronizer,
		EventPublisher:     eventPublisher,
		Log:                logger,
	}
}

func (uc *templateUsecase) Create(ctx context.Context, request *requests.CreateSlotTemplate) (*models.SlotTemplate, error) {
	startMinutes, err := utils.ParseClockTime(request.StartTime)
	if err != nil {
		return nil, exceptions.ErrInvalidClockFormat(err)
	}
	endMinutes, err := utils.ParseClockTime(request.EndTime)
	if err != nil {
		return nil, exceptions.ErrInvalidClockFormat(err)
	}
	if endMinutes <= startMinutes {
		return nil, exceptions.ErrEndTimeBeforeStartTime()
	}
	if request.SlotDurationMinutes < constvars.SlotDurationMinMinutes || request.SlotDurationMinutes > constvars.SlotDurationMaxMinutes {
		return nil, exceptions.ErrSlotDurationOutOfRange()
	}
	if request.ValidFrom != "" && request.ValidUntil != "" && request.ValidFrom > request.ValidUntil {
		return nil, exceptions.ErrValidityWindowInverted()
	}

	counter, err := uc.CounterRepository.Next(ctx, constvars.CounterSlotTemplate)
	if err != nil {
		return nil, err
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}
	maxBookings := request.MaxBookingsPerSlot
	if maxBookings == 0 {
		maxBookings = constvars.DefaultMaxBookingsPerSlot
	}
	blockedDates := request.BlockedDates
	if blockedDates == nil {
		blockedDates = []string{}
	}

	now := time.Now()
	template := &models.SlotTemplate{
		TemplateID:          utils.FormatCounterID(constvars.SlotTemplateIDPrefix, counter),
		PractitionerID:      request.PractitionerID,
		LocationID:          request.LocationID,
		DayOfWeek:           request.DayOfWeek,
		StartTime:           request.StartTime,
		EndTime:             request.EndTime,
		SlotDurationMinutes: request.SlotDurationMinutes,
		FeeAmount:           request.FeeAmount,
		Modality:            request.Modality,
		IsActive:            isActive,
		ValidFrom:           request.ValidFrom,
		ValidUntil:          request.ValidUntil,
		BlockedDates:        blockedDates,
		MaxBookingsPerSlot:  maxBookings,
		TimeModel:           models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if _, err := uc.TemplateRepository.Insert(ctx, template); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, template.PractitionerID)
	if isActive {
		uc.syncAfterActivation(ctx, template, request.Actor)
	}
	return template, nil
}

func (uc *templateUsecase) FindByID(ctx context.Context, templateID string) (*models.SlotTemplate, error) {
	template, err := uc.TemplateRepository.FindByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(templateID)
	}
	return template, nil
}

func (uc *templateUsecase) FindWithFilter(ctx context.Context, filter contracts.TemplateFilter) ([]models.SlotTemplate, error) {
	return uc.TemplateRepository.FindWithFilter(ctx, filter)
}

func (uc *templateUsecase) Update(ctx context.Context, templateID string, request *requests.UpdateSlotTemplate) (*models.SlotTemplate, error) {
	template, err := uc.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	startTime := template.StartTime
	endTime := template.EndTime
	if request.StartTime != nil {
		startTime = *request.StartTime
	}
	if request.EndTime != nil {
		endTime = *request.EndTime
	}
	startMinutes, err := utils.ParseClockTime(startTime)
	if err != nil {
		return nil, exceptions.ErrInvalidClockFormat(err)
	}
	endMinutes, err := utils.ParseClockTime(endTime)
	if err != nil {
		return nil, exceptions.ErrInvalidClockFormat(err)
	}
	if endMinutes <= startMinutes {
		return nil, exceptions.ErrEndTimeBeforeStartTime()
	}

	validFrom := template.ValidFrom
	validUntil := template.ValidUntil
	if request.ValidFrom != nil {
		validFrom = *request.ValidFrom
	}
	if request.ValidUntil != nil {
		validUntil = *request.ValidUntil
	}
	if validFrom != "" && validUntil != "" && validFrom > validUntil {
		return nil, exceptions.ErrValidityWindowInverted()
	}

	template.StartTime = startTime
	template.EndTime = endTime
	template.ValidFrom = validFrom
	template.ValidUntil = validUntil
	if request.DayOfWeek != nil {
		template.DayOfWeek = *request.DayOfWeek
	}
	if request.SlotDurationMinutes != nil {
		template.SlotDurationMinutes = *request.SlotDurationMinutes
	}
	if request.FeeAmount != nil {
		template.FeeAmount = *request.FeeAmount
	}
	if request.MaxBookingsPerSlot != nil {
		template.MaxBookingsPerSlot = *request.MaxBookingsPerSlot
	}
	template.UpdatedAt = time.Now()

	if err := uc.TemplateRepository.Update(ctx, template); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, template.PractitionerID)
	return template, nil
}

func (uc *templateUsecase) Activate(ctx context.Context, templateID, actor string) (*models.SlotTemplate, error) {
	template, err := uc.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	template.IsActive = true
	template.UpdatedAt = time.Now()
	if err := uc.TemplateRepository.Update(ctx, template); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, template.PractitionerID)
	uc.syncAfterActivation(ctx, template, actor)
	return template, nil
}

func (uc *templateUsecase) Deactivate(ctx context.Context, templateID, actor string) (*models.SlotTemplate, error) {
	template, err := uc.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	template.IsActive = false
	template.UpdatedAt = time.Now()
	if err := uc.TemplateRepository.Update(ctx, template); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, template.PractitionerID)
	uc.syncAfterDeactivation(ctx, template, actor)
	return template, nil
}

func (uc *templateUsecase) BlockDate(ctx context.Context, templateID, date string) (*models.SlotTemplate, error) {
	if _, err := utils.ParseISODate(date); err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err)
	}

	template, err := uc.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if template.IsDateBlocked(date) {
		return template, nil
	}

	template.BlockedDates = append(template.BlockedDates, date)
	template.UpdatedAt = time.Now()
	if err := uc.TemplateRepository.Update(ctx, template); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, template.PractitionerID)
	return template, nil
}

func (uc *templateUsecase) UnblockDate(ctx context.Context, templateID, date string) (*models.SlotTemplate, error) {
	template, err := uc.FindByID(ctx, templateID)
	if err != nil {
		return nil, err
	}

	if !template.IsDateBlocked(date) {
		return template, nil
	}

	kept := template.BlockedDates[:0:0]
	for _, d := range template.BlockedDates {
		if d != date {
			kept = append(kept, d)
		}
	}
	template.BlockedDates = kept
	template.UpdatedAt = time.Now()
	if err := uc.TemplateRepository.Update(ctx, template); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, template.PractitionerID)
	return template, nil
}

// syncAfterActivation drives the derived assignment relation and publishes
// the lifecycle event. Template state is authoritative: neither a failed
// synchronization nor a failed publish rolls the template change back.
func (uc *templateUsecase) syncAfterActivation(ctx context.Context, template *models.SlotTemplate, actor string) {
	if err := uc.Synchronizer.HandleTemplateActivated(ctx, template.PractitionerID, template.LocationID, template.Modality, actor); err != nil {
		uc.logSyncWarning(template, constvars.EventTemplateActivated, err)
	}
	uc.publishLifecycleEvent(ctx, template, constvars.EventTemplateActivated, actor)
}

func (uc *templateUsecase) syncAfterDeactivation(ctx context.Context, template *models.SlotTemplate, actor string) {
	if err := uc.Synchronizer.HandleTemplateDeactivated(ctx, template.PractitionerID, template.LocationID, template.Modality, actor); err != nil {
		uc.logSyncWarning(template, constvars.EventTemplateDeactivated, err)
	}
	uc.publishLifecycleEvent(ctx, template, constvars.EventTemplateDeactivated, actor)
}

func (uc *templateUsecase) publishLifecycleEvent(ctx context.Context, template *models.SlotTemplate, event, actor string) {
	lifecycleEvent := models.TemplateLifecycleEvent{
		EventID:        uuid.NewString(),
		Event:          event,
		TemplateID:     template.TemplateID,
		PractitionerID: template.PractitionerID,
		LocationID:     template.LocationID,
		Modality:       template.Modality,
		Actor:          actor,
		OccurredAt:     time.Now().Format(time.RFC3339),
	}
	if err := uc.EventPublisher.PublishTemplateLifecycle(ctx, lifecycleEvent); err != nil {
		uc.logSyncWarning(template, event, err)
	}
}

func (uc *templateUsecase) logSyncWarning(template *models.SlotTemplate, event string, err error) {
	uc.Log.Warn("assignment synchronization side effect failed",
		zap.String(constvars.LoggingTemplateKey, template.TemplateID),
		zap.String(constvars.LoggingPractitionerKey, template.PractitionerID),
		zap.String(constvars.LoggingLocationKey, template.LocationID),
		zap.String(constvars.LoggingEventKey, event),
		zap.Error(err),
	)
}

func (uc *templateUsecase) invalidateAvailabilityCache(ctx context.Context, practitionerID string) {
	pattern := constvars.AvailabilityCachePrefix + practitionerID + ":*"
	if err := uc.RedisRepository.DeleteByPattern(ctx, pattern); err != nil {
		uc.Log.Warn("failed to invalidate availability cache",
			zap.String(constvars.LoggingPractitionerKey, practitionerID),
			zap.Error(err),
		)
	}
}
