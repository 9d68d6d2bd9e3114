package unavailability

import (
	"context"
	"sort"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type unavailabilityUsecase struct {
	UnavailabilityRepository contracts.UnavailabilityRepository
	CounterRepository        contracts.CounterRepository
	RedisRepository          contracts.RedisRepository
	Log                      *zap.Logger
}

func NewUnavailabilityUsecase(
	unavailabilityRepository contracts.UnavailabilityRepository,
	counterRepository contracts.CounterRepository,
	redisRepository contracts.RedisRepository,
	logger *zap.Logger,
) UnavailabilityUsecase {
	return &unavailabilityUsecase{
		UnavailabilityRepository: unavailabilityRepository,
		CounterRepository:        counterRepository,
		RedisRepository:          redisRepository,
		Log:                      logger,
	}
}

func (uc *unavailabilityUsecase) Create(ctx context.Context, request *requests.CreateUnavailability) (*models.UnavailabilityRecord, error) {
	if request.EndDate < request.StartDate {
		return nil, exceptions.ErrEndDateBeforeStartDate()
	}
	if (request.StartTime == "") != (request.EndTime == "") {
		return nil, exceptions.ErrInvalidClockFormat(nil)
	}

	counter, err := uc.CounterRepository.Next(ctx, constvars.CounterUnavailability)
	if err != nil {
		return nil, err
	}

	isAllDay := request.StartTime == ""
	if request.IsAllDay != nil {
		isAllDay = *request.IsAllDay
	}

	recurrence := request.RecurrenceTag
	if recurrence == "" {
		recurrence = constvars.RecurrenceNone
	}

	affected := request.AffectedLocationIDs
	if affected == nil {
		affected = []string{}
	}

	now := time.Now()
	record := &models.UnavailabilityRecord{
		UnavailabilityID:    utils.FormatCounterID(constvars.UnavailabilityIDPrefix, counter),
		PractitionerID:      request.PractitionerID,
		StartDate:           request.StartDate,
		EndDate:             request.EndDate,
		StartTime:           request.StartTime,
		EndTime:             request.EndTime,
		IsAllDay:            isAllDay,
		RecurrenceTag:       recurrence,
		Reason:              request.Reason,
		AffectedLocationIDs: affected,
		NotifyPatients:      request.NotifyPatients,
		IsActive:            true,
		TimeModel:           models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}

	if _, err := uc.UnavailabilityRepository.Insert(ctx, record); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, record.PractitionerID)
	return record, nil
}

func (uc *unavailabilityUsecase) FindByID(ctx context.Context, unavailabilityID string) (*models.UnavailabilityRecord, error) {
	record, err := uc.UnavailabilityRepository.FindByUnavailabilityID(ctx, unavailabilityID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrUnavailabilityNotFound(unavailabilityID)
	}
	return record, nil
}

func (uc *unavailabilityUsecase) FindByPractitioner(ctx context.Context, practitionerID string, includeInactive, upcomingOnly bool) ([]models.UnavailabilityRecord, error) {
	if upcomingOnly {
		return uc.UnavailabilityRepository.FindUpcomingByPractitioner(ctx, practitionerID, utils.TodayISO(), includeInactive)
	}
	return uc.UnavailabilityRepository.FindByPractitioner(ctx, practitionerID, includeInactive)
}

func (uc *unavailabilityUsecase) Update(ctx context.Context, unavailabilityID string, request *requests.UpdateUnavailability) (*models.UnavailabilityRecord, error) {
	record, err := uc.FindByID(ctx, unavailabilityID)
	if err != nil {
		return nil, err
	}

	startDate := record.StartDate
	endDate := record.EndDate
	if request.StartDate != nil {
		startDate = *request.StartDate
	}
	if request.EndDate != nil {
		endDate = *request.EndDate
	}
	if endDate < startDate {
		return nil, exceptions.ErrEndDateBeforeStartDate()
	}

	record.StartDate = startDate
	record.EndDate = endDate
	if request.StartTime != nil {
		record.StartTime = *request.StartTime
	}
	if request.EndTime != nil {
		record.EndTime = *request.EndTime
	}
	if request.IsAllDay != nil {
		record.IsAllDay = *request.IsAllDay
	}
	if request.RecurrenceTag != nil {
		record.RecurrenceTag = *request.RecurrenceTag
	}
	if request.Reason != nil {
		record.Reason = *request.Reason
	}
	if request.AffectedLocationIDs != nil {
		record.AffectedLocationIDs = *request.AffectedLocationIDs
	}
	if request.NotifyPatients != nil {
		record.NotifyPatients = *request.NotifyPatients
	}
	record.UpdatedAt = time.Now()

	if err := uc.UnavailabilityRepository.Update(ctx, record); err != nil {
		return nil, err
	}

	uc.invalidateAvailabilityCache(ctx, record.PractitionerID)
	return record, nil
}

func (uc *unavailabilityUsecase) SoftDelete(ctx context.Context, unavailabilityID string) error {
	record, err := uc.FindByID(ctx, unavailabilityID)
	if err != nil {
		return err
	}

	record.IsActive = false
	record.UpdatedAt = time.Now()
	if err := uc.UnavailabilityRepository.Update(ctx, record); err != nil {
		return err
	}

	uc.invalidateAvailabilityCache(ctx, record.PractitionerID)
	return nil
}

func (uc *unavailabilityUsecase) IsBlocked(ctx context.Context, practitionerID, date, clockTime, locationID string) (bool, error) {
	records, err := uc.UnavailabilityRepository.FindActiveCoveringDate(ctx, practitionerID, date)
	if err != nil {
		return false, err
	}

	applicable := records[:0:0]
	for _, record := range records {
		if record.AppliesToLocation(locationID) {
			applicable = append(applicable, record)
		}
	}
	if len(applicable) == 0 {
		return false, nil
	}

	if clockTime == "" {
		return true, nil
	}
	for _, record := range applicable {
		if record.IsAllDay {
			return true, nil
		}
	}

	point, err := utils.ParseClockTime(clockTime)
	if err != nil {
		return false, exceptions.ErrInvalidClockFormat(err)
	}

	// Half-open time matching: a 09:00-10:00 record does not block a
	// 10:00 start. Date containment above stays inclusive on both ends.
	for _, record := range applicable {
		if record.StartTime == "" || record.EndTime == "" {
			continue
		}
		start, serr := utils.ParseClockTime(record.StartTime)
		end, eerr := utils.ParseClockTime(record.EndTime)
		if serr != nil || eerr != nil {
			continue
		}
		if utils.TimeWithinRange(point, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (uc *unavailabilityUsecase) IsDayFullyBlocked(ctx context.Context, practitionerID, date, locationID string) (bool, error) {
	records, err := uc.UnavailabilityRepository.FindActiveCoveringDate(ctx, practitionerID, date)
	if err != nil {
		return false, err
	}
	for _, record := range records {
		if record.IsAllDay && record.AppliesToLocation(locationID) {
			return true, nil
		}
	}
	return false, nil
}

func (uc *unavailabilityUsecase) BlockedDatesInRange(ctx context.Context, practitionerID, startDate, endDate, locationID string) ([]string, error) {
	records, err := uc.UnavailabilityRepository.FindActiveIntersectingRange(ctx, practitionerID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, record := range records {
		if !record.AppliesToLocation(locationID) {
			continue
		}
		from := record.StartDate
		if from < startDate {
			from = startDate
		}
		to := record.EndDate
		if to > endDate {
			to = endDate
		}
		for day := from; day <= to; day = utils.NextDate(day) {
			seen[day] = struct{}{}
		}
	}

	dates := make([]string, 0, len(seen))
	for day := range seen {
		dates = append(dates, day)
	}
	sort.Strings(dates)
	return dates, nil
}

func (uc *unavailabilityUsecase) invalidateAvailabilityCache(ctx context.Context, practitionerID string) {
	pattern := constvars.AvailabilityCachePrefix + practitionerID + ":*"
	if err := uc.RedisRepository.DeleteByPattern(ctx, pattern); err != nil {
		uc.Log.Warn("failed to invalidate availability cache",
			zap.String(constvars.LoggingPractitionerKey, practitionerID),
			zap.Error(err),
		)
	}
}
