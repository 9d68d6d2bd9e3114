package assignments

import (
	"context"
	"time"

	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type assignmentUsecase struct {
	AssignmentRepository contracts.AssignmentRepository
	TemplateRepository   contracts.SlotTemplateRepository
	BookingRepository    contracts.BookingRepository
	CounterRepository    contracts.CounterRepository
	Log                  *zap.Logger
}

func NewAssignmentUsecase(
	assignmentRepository contracts.AssignmentRepository,
	templateRepository contracts.SlotTemplateRepository,
	bookingRepository contracts.BookingRepository,
	counterRepository contracts.CounterRepository,
	logger *zap.Logger,
) AssignmentUsecase {
	return &assignmentUsecase{
		AssignmentRepository: assignmentRepository,
		TemplateRepository:   templateRepository,
		BookingRepository:    bookingRepository,
		CounterRepository:    counterRepository,
		Log:                  logger,
	}
}

func (uc *assignmentUsecase) Assign(ctx context.Context, request *requests.AssignLocation) (*models.LocationAssignment, error) {
	existing, err := uc.AssignmentRepository.FindByPair(ctx, request.PractitionerID, request.LocationID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsActive {
		return nil, exceptions.ErrAssignmentAlreadyExists(request.PractitionerID, request.LocationID)
	}
	return uc.activatePair(ctx, existing, request.PractitionerID, request.LocationID, request.AssignedBy)
}

func (uc *assignmentUsecase) Unassign(ctx context.Context, request *requests.UnassignLocation) (*models.LocationAssignment, error) {
	assignment, err := uc.AssignmentRepository.FindByPair(ctx, request.PractitionerID, request.LocationID)
	if err != nil {
		return nil, err
	}
	if assignment == nil || !assignment.IsActive {
		return nil, exceptions.ErrAssignmentNotFound(request.PractitionerID, request.LocationID)
	}

	if err := uc.ensurePairRemovable(ctx, request.PractitionerID, request.LocationID); err != nil {
		return nil, err
	}

	if err := uc.deactivate(ctx, assignment, request.UpdatedBy); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (uc *assignmentUsecase) ListLocations(ctx context.Context, practitionerID string, activeOnly bool) ([]models.LocationAssignment, error) {
	return uc.AssignmentRepository.FindByPractitioner(ctx, practitionerID, activeOnly)
}

// HandleTemplateActivated reactivates or creates the pair's assignment when
// an IN_PERSON template becomes active. Remote templates carry no location
// visibility and are ignored.
func (uc *assignmentUsecase) HandleTemplateActivated(ctx context.Context, practitionerID, locationID, modality, actor string) error {
	if modality != constvars.ModalityInPerson {
		return nil
	}
	existing, err := uc.AssignmentRepository.FindByPair(ctx, practitionerID, locationID)
	if err != nil {
		return err
	}
	if existing != nil && existing.IsActive {
		return nil
	}
	_, err = uc.activatePair(ctx, existing, practitionerID, locationID, actor)
	return err
}

// HandleTemplateDeactivated deactivates the pair's assignment only when no
// active IN_PERSON template references the pair anymore.
func (uc *assignmentUsecase) HandleTemplateDeactivated(ctx context.Context, practitionerID, locationID, modality, actor string) error {
	if modality != constvars.ModalityInPerson {
		return nil
	}
	count, err := uc.TemplateRepository.CountActiveByPair(ctx, practitionerID, locationID, constvars.ModalityInPerson)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	assignment, err := uc.AssignmentRepository.FindByPair(ctx, practitionerID, locationID)
	if err != nil {
		return err
	}
	if assignment == nil || !assignment.IsActive {
		return nil
	}
	return uc.deactivate(ctx, assignment, actor)
}

func (uc *assignmentUsecase) SyncAssignments(ctx context.Context, request *requests.SyncAssignments) (*responses.SyncAssignmentsResult, error) {
	desired := make(map[string]struct{}, len(request.LocationIDs))
	for _, locationID := range request.LocationIDs {
		desired[locationID] = struct{}{}
	}

	result := &responses.SyncAssignmentsResult{}
	for locationID := range desired {
		existing, err := uc.AssignmentRepository.FindByPair(ctx, request.PractitionerID, locationID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.IsActive {
			continue
		}
		if _, err := uc.activatePair(ctx, existing, request.PractitionerID, locationID, request.AssignedBy); err != nil {
			return nil, err
		}
		result.Added++
	}

	current, err := uc.AssignmentRepository.FindByPractitioner(ctx, request.PractitionerID, true)
	if err != nil {
		return nil, err
	}
	for i := range current {
		assignment := &current[i]
		if _, keep := desired[assignment.LocationID]; keep {
			continue
		}
		// Removals obey the same guards as a manual unassign.
		if err := uc.ensurePairRemovable(ctx, request.PractitionerID, assignment.LocationID); err != nil {
			return nil, err
		}
		if err := uc.deactivate(ctx, assignment, request.AssignedBy); err != nil {
			return nil, err
		}
		result.Removed++
	}
	return result, nil
}

// ensurePairRemovable refuses deactivation while active in-person templates
// or active bookings still reference the pair.
func (uc *assignmentUsecase) ensurePairRemovable(ctx context.Context, practitionerID, locationID string) error {
	templateCount, err := uc.TemplateRepository.CountActiveByPair(ctx, practitionerID, locationID, constvars.ModalityInPerson)
	if err != nil {
		return err
	}
	if templateCount > 0 {
		return exceptions.ErrAssignmentHasActiveTemplates(templateCount)
	}

	bookingCount, err := uc.BookingRepository.CountActiveByPair(ctx, practitionerID, locationID)
	if err != nil {
		return err
	}
	if bookingCount > 0 {
		return exceptions.ErrAssignmentHasActiveBookings(bookingCount)
	}
	return nil
}

// Reconcile recomputes the assignment relation for one practitioner from
// template state. Safe to run repeatedly; it only touches drifted pairs.
func (uc *assignmentUsecase) Reconcile(ctx context.Context, request *requests.ReconcileAssignments) (*responses.ReconcileResult, error) {
	isActive := true
	templates, err := uc.TemplateRepository.FindWithFilter(ctx, contracts.TemplateFilter{
		PractitionerID: request.PractitionerID,
		Modality:       constvars.ModalityInPerson,
		IsActive:       &isActive,
	})
	if err != nil {
		return nil, err
	}
	desired := make(map[string]struct{}, len(templates))
	for i := range templates {
		desired[templates[i].LocationID] = struct{}{}
	}

	result := &responses.ReconcileResult{}
	for locationID := range desired {
		existing, err := uc.AssignmentRepository.FindByPair(ctx, request.PractitionerID, locationID)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.IsActive {
			continue
		}
		if _, err := uc.activatePair(ctx, existing, request.PractitionerID, locationID, request.Actor); err != nil {
			return nil, err
		}
		result.Activated++
	}

	current, err := uc.AssignmentRepository.FindByPractitioner(ctx, request.PractitionerID, true)
	if err != nil {
		return nil, err
	}
	for i := range current {
		assignment := &current[i]
		if _, keep := desired[assignment.LocationID]; keep {
			continue
		}
		if err := uc.deactivate(ctx, assignment, request.Actor); err != nil {
			return nil, err
		}
		result.Deactivated++
	}

	uc.Log.Info("assignment reconciliation completed",
		zap.String(constvars.LoggingPractitionerKey, request.PractitionerID),
		zap.Int("activated", result.Activated),
		zap.Int("deactivated", result.Deactivated),
	)
	return result, nil
}

// activatePair reactivates an existing record or creates the single record
// for the pair. Reactivation refreshes assignedAt/assignedBy instead of
// inserting a duplicate.
func (uc *assignmentUsecase) activatePair(ctx context.Context, existing *models.LocationAssignment, practitionerID, locationID, actor string) (*models.LocationAssignment, error) {
	now := time.Now()
	if existing != nil {
		existing.IsActive = true
		existing.AssignedAt = now
		existing.AssignedBy = actor
		existing.UpdatedBy = actor
		existing.UpdatedAt = now
		if err := uc.AssignmentRepository.Update(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	counter, err := uc.CounterRepository.Next(ctx, constvars.CounterAssignment)
	if err != nil {
		return nil, err
	}
	assignment := &models.LocationAssignment{
		AssignmentID:   utils.FormatCounterID(constvars.AssignmentIDPrefix, counter),
		PractitionerID: practitionerID,
		LocationID:     locationID,
		IsActive:       true,
		AssignedAt:     now,
		AssignedBy:     actor,
		TimeModel:      models.TimeModel{CreatedAt: now, UpdatedAt: now},
	}
	if _, err := uc.AssignmentRepository.Insert(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

func (uc *assignmentUsecase) deactivate(ctx context.Context, assignment *models.LocationAssignment, actor string) error {
	assignment.IsActive = false
	assignment.UpdatedBy = actor
	assignment.UpdatedAt = time.Now()
	return uc.AssignmentRepository.Update(ctx, assignment)
}
