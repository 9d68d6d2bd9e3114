package requests

type AssignLocation struct {
	PractitionerID string `json:"practitionerId" validate:"required"`
	LocationID     string `json:"locationId" validate:"required"`
	AssignedBy     string `json:"assignedBy" validate:"required"`
}

type UnassignLocation struct {
	PractitionerID string `json:"practitionerId" validate:"required"`
	LocationID     string `json:"locationId" validate:"required"`
	UpdatedBy      string `json:"updatedBy" validate:"required"`
}

type SyncAssignments struct {
	PractitionerID string   `json:"practitionerId" validate:"required"`
	LocationIDs    []string `json:"locationIds" validate:"required"`
	AssignedBy     string   `json:"assignedBy" validate:"required"`
}

type ReconcileAssignments struct {
	PractitionerID string `json:"practitionerId" validate:"required"`
	Actor          string `json:"actor,omitempty"`
}
