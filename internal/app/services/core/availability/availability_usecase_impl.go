package availability

import (
	"context"
	"fmt"
	"sort"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	TemplateRepository contracts.SlotTemplateRepository
	BookingRepository  contracts.BookingRepository
	RedisRepository    contracts.RedisRepository
	Generator          *SlotGenerator
	WindowDays         int
	CacheTTL           time.Duration
	Log                *zap.Logger
}

func NewAvailabilityUsecase(
	templateRepository contracts.SlotTemplateRepository,
	bookingRepository contracts.BookingRepository,
	redisRepository contracts.RedisRepository,
	generator *SlotGenerator,
	windowDays int,
	cacheTTL time.Duration,
	logger *zap.Logger,
) AvailabilityUsecase {
	return &availabilityUsecase{
		TemplateRepository: templateRepository,
		BookingRepository:  bookingRepository,
		RedisRepository:    redisRepository,
		Generator:          generator,
		WindowDays:         windowDays,
		CacheTTL:           cacheTTL,
		Log:                logger,
	}
}

func (uc *availabilityUsecase) GetAvailability(ctx context.Context, practitionerID, locationID string) ([]responses.DayAvailability, error) {
	cacheKey := uc.cacheKey(practitionerID, locationID)
	if cached, ok := uc.readCache(ctx, cacheKey); ok {
		// Bookings mutate outside this service, so the cached view only
		// carries the slot structure; the booked flag is recomputed on
		// every read.
		return uc.applyBookedFlags(ctx, practitionerID, locationID, cached)
	}

	isActive := true
	filter := contracts.TemplateFilter{
		PractitionerID: practitionerID,
		IsActive:       &isActive,
	}
	if locationID != "" {
		filter.LocationID = locationID
		filter.Modality = constvars.ModalityInPerson
	} else {
		filter.Modality = constvars.ModalityRemote
	}

	templates, err := uc.TemplateRepository.FindWithFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	dates := uc.windowDates()
	fromDate := dates[0]
	toDate := dates[len(dates)-1]
	bookedSet, err := uc.BookingRepository.FindBookedStartKeys(ctx, practitionerID, locationID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	result := []responses.DayAvailability{}
	for _, date := range dates {
		dayOfWeek, err := utils.WeekdayOf(date)
		if err != nil {
			return nil, exceptions.ErrInvalidDateFormat(err)
		}

		merged := map[string]models.GeneratedInterval{}
		for i := range templates {
			template := &templates[i]
			if template.DayOfWeek != dayOfWeek {
				continue
			}
			intervals, err := uc.Generator.Generate(ctx, template, date)
			if err != nil {
				return nil, err
			}
			for _, interval := range intervals {
				if _, exists := merged[interval.StartTime]; !exists {
					merged[interval.StartTime] = interval
				}
			}
		}
		if len(merged) == 0 {
			continue
		}

		starts := make([]string, 0, len(merged))
		for start := range merged {
			starts = append(starts, start)
		}
		sort.Strings(starts)

		slots := make([]models.GeneratedInterval, 0, len(starts))
		for _, start := range starts {
			interval := merged[start]
			_, booked := bookedSet[date+"_"+start]
			interval.IsAvailable = !booked
			slots = append(slots, interval)
		}
		result = append(result, responses.DayAvailability{
			Date:      date,
			DayOfWeek: dayOfWeek,
			Slots:     slots,
		})
	}

	uc.writeCache(ctx, cacheKey, result)
	return result, nil
}

func (uc *availabilityUsecase) GenerateForTemplate(ctx context.Context, templateID, date string) ([]models.GeneratedInterval, error) {
	if _, err := utils.ParseISODate(date); err != nil {
		return nil, exceptions.ErrInvalidDateFormat(err)
	}

	template, err := uc.TemplateRepository.FindByTemplateID(ctx, templateID)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, exceptions.ErrTemplateNotFound(templateID)
	}
	return uc.Generator.Generate(ctx, template, date)
}

// applyBookedFlags overlays the current booked set onto a cached day view.
func (uc *availabilityUsecase) applyBookedFlags(ctx context.Context, practitionerID, locationID string, days []responses.DayAvailability) ([]responses.DayAvailability, error) {
	if len(days) == 0 {
		return days, nil
	}

	fromDate := days[0].Date
	toDate := days[len(days)-1].Date
	bookedSet, err := uc.BookingRepository.FindBookedStartKeys(ctx, practitionerID, locationID, fromDate, toDate)
	if err != nil {
		return nil, err
	}

	for i := range days {
		for j := range days[i].Slots {
			_, booked := bookedSet[days[i].Date+"_"+days[i].Slots[j].StartTime]
			days[i].Slots[j].IsAvailable = !booked
		}
	}
	return days, nil
}

// windowDates lists the rolling window of consecutive ISO dates starting
// today, always at least one day long.
func (uc *availabilityUsecase) windowDates() []string {
	days := uc.WindowDays
	if days < 1 {
		days = 1
	}
	dates := make([]string, 0, days)
	date := utils.TodayISO()
	for i := 0; i < days; i++ {
		dates = append(dates, date)
		date = utils.NextDate(date)
	}
	return dates
}

func (uc *availabilityUsecase) cacheKey(practitionerID, locationID string) string {
	slot := locationID
	if slot == "" {
		slot = constvars.AvailabilityCacheRemoteSlot
	}
	return fmt.Sprintf(constvars.AvailabilityCacheKeyFormat, practitionerID, slot)
}

func (uc *availabilityUsecase) readCache(ctx context.Context, key string) ([]responses.DayAvailability, bool) {
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		uc.Log.Warn("failed to read availability cache", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	if raw == "" {
		return nil, false
	}
	var cached []responses.DayAvailability
	if err := json.Unmarshal([]byte(raw), &cached); err != nil {
		uc.Log.Warn("failed to decode availability cache entry", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return cached, true
}

func (uc *availabilityUsecase) writeCache(ctx context.Context, key string, entries []responses.DayAvailability) {
	if err := uc.RedisRepository.Set(ctx, key, entries, uc.CacheTTL); err != nil {
		uc.Log.Warn("failed to write availability cache", zap.String("key", key), zap.Error(err))
	}
}
