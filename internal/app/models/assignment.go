package models

import "time"

// LocationAssignment is the derived "(practitioner, location) is bookable"
// relation. At most one record exists per pair; reactivation updates the
// existing record instead of creating a duplicate.
type LocationAssignment struct {
	AssignmentID   string    `bson:"assignmentId" json:"assignmentId"`
	PractitionerID string    `bson:"practitionerId" json:"practitionerId"`
	LocationID     string    `bson:"locationId" json:"locationId"`
	IsActive       bool      `bson:"isActive" json:"isActive"`
	AssignedAt     time.Time `bson:"assignedAt" json:"assignedAt"`
	AssignedBy     string    `bson:"assignedBy" json:"assignedBy"`
	UpdatedBy      string    `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
	TimeModel      `bson:",inline"`
}

// TemplateLifecycleEvent is published to the message broker whenever a slot
// template is created active, activated, or deactivated. The assignment
// sync worker consumes it to heal the derived assignment relation.
type TemplateLifecycleEvent struct {
	EventID        string `json:"eventId"`
	Event          string `json:"event"`
	TemplateID     string `json:"templateId"`
	PractitionerID string `json:"practitionerId"`
	LocationID     string `json:"locationId"`
	Modality       string `json:"modality"`
	Actor          string `json:"actor"`
	OccurredAt     string `json:"occurredAt"`
}
