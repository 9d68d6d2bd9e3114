package assignments

import (
	"context"

	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
)

// AssignmentUsecase owns the derived (practitioner, location) visibility
// relation. It doubles as the contracts.AssignmentSynchronizer the template
// lifecycle hooks and the broker worker both drive.
type AssignmentUsecase interface {
	Assign(ctx context.Context, request *requests.AssignLocation) (*models.LocationAssignment, error)
	Unassign(ctx context.Context, request *requests.UnassignLocation) (*models.LocationAssignment, error)
	ListLocations(ctx context.Context, practitionerID string, activeOnly bool) ([]models.LocationAssignment, error)

	HandleTemplateActivated(ctx context.Context, practitionerID, locationID, modality, actor string) error
	HandleTemplateDeactivated(ctx context.Context, practitionerID, locationID, modality, actor string) error

	// SyncAssignments makes the active assignment set for a practitioner
	// exactly the given location list.
	SyncAssignments(ctx context.Context, request *requests.SyncAssignments) (*responses.SyncAssignmentsResult, error)

	// Reconcile repairs the derived relation for one practitioner from
	// template state, healing drift left by failed lifecycle side effects.
	Reconcile(ctx context.Context, request *requests.ReconcileAssignments) (*responses.ReconcileResult, error)
}
