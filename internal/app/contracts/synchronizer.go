package contracts

import "context"

// AssignmentSynchronizer keeps the derived location assignment relation in
// step with template lifecycle changes. Implementations must be idempotent:
// the same event may be delivered both in-process and via the broker.
type AssignmentSynchronizer interface {
	HandleTemplateActivated(ctx context.Context, practitionerID, locationID, modality, actor string) error
	HandleTemplateDeactivated(ctx context.Context, practitionerID, locationID, modality, actor string) error
}
