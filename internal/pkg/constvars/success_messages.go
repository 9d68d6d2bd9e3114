package constvars

const (
	CreateTemplateSuccessMessage     = "Successfully created slot template"
	GetTemplateSuccessMessage        = "Successfully retrieved slot template(s)"
	UpdateTemplateSuccessMessage     = "Successfully updated slot template"
	ActivateTemplateSuccessMessage   = "Successfully activated slot template"
	DeactivateTemplateSuccessMessage = "Successfully deactivated slot template"
	BlockDateSuccessMessage          = "Successfully blocked date on slot template"
	UnblockDateSuccessMessage        = "Successfully unblocked date on slot template"
	GenerateSlotsSuccessMessage      = "Successfully generated time slots"

	CreateUnavailabilitySuccessMessage = "Successfully created unavailability record"
	GetUnavailabilitySuccessMessage    = "Successfully retrieved unavailability record(s)"
	UpdateUnavailabilitySuccessMessage = "Successfully updated unavailability record"
	DeleteUnavailabilitySuccessMessage = "Successfully deleted unavailability record"
	GetBlockedDatesSuccessMessage      = "Successfully retrieved blocked dates"

	GetAvailabilitySuccessMessage = "Successfully retrieved availability"

	CreateAssignmentSuccessMessage    = "Successfully assigned practitioner to location"
	DeleteAssignmentSuccessMessage    = "Successfully unassigned practitioner from location"
	GetAssignmentSuccessMessage       = "Successfully retrieved assignments"
	ReconcileAssignmentSuccessMessage = "Successfully reconciled assignments"
	SyncAssignmentSuccessMessage      = "Successfully synchronized assignments"
)
