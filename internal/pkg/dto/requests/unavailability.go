package requests

type CreateUnavailability struct {
	PractitionerID      string   `json:"practitionerId" validate:"required"`
	StartDate           string   `json:"startDate" validate:"required,iso_date"`
	EndDate             string   `json:"endDate" validate:"required,iso_date"`
	StartTime           string   `json:"startTime,omitempty" validate:"omitempty,clock_time"`
	EndTime             string   `json:"endTime,omitempty" validate:"omitempty,clock_time"`
	IsAllDay            *bool    `json:"isAllDay,omitempty"`
	RecurrenceTag       string   `json:"recurrenceTag,omitempty" validate:"omitempty,oneof=NONE DAILY WEEKLY MONTHLY"`
	Reason              string   `json:"reason,omitempty"`
	AffectedLocationIDs []string `json:"affectedLocationIds,omitempty"`
	NotifyPatients      bool     `json:"notifyPatients,omitempty"`
}

type UpdateUnavailability struct {
	StartDate           *string   `json:"startDate,omitempty" validate:"omitempty,iso_date"`
	EndDate             *string   `json:"endDate,omitempty" validate:"omitempty,iso_date"`
	StartTime           *string   `json:"startTime,omitempty" validate:"omitempty,clock_time"`
	EndTime             *string   `json:"endTime,omitempty" validate:"omitempty,clock_time"`
	IsAllDay            *bool     `json:"isAllDay,omitempty"`
	RecurrenceTag       *string   `json:"recurrenceTag,omitempty" validate:"omitempty,oneof=NONE DAILY WEEKLY MONTHLY"`
	Reason              *string   `json:"reason,omitempty"`
	AffectedLocationIDs *[]string `json:"affectedLocationIds,omitempty"`
	NotifyPatients      *bool     `json:"notifyPatients,omitempty"`
}
