package models

// UnavailabilityRecord is an exception period during which a practitioner
// cannot be booked. StartDate/EndDate are an inclusive ISO date range; the
// optional StartTime/EndTime pair scopes the block to part of each day.
// An empty AffectedLocationIDs set means the record applies everywhere.
type UnavailabilityRecord struct {
	UnavailabilityID    string   `bson:"unavailabilityId" json:"unavailabilityId"`
	PractitionerID      string   `bson:"practitionerId" json:"practitionerId"`
	StartDate           string   `bson:"startDate" json:"startDate"`
	EndDate             string   `bson:"endDate" json:"endDate"`
	StartTime           string   `bson:"startTime,omitempty" json:"startTime,omitempty"`
	EndTime             string   `bson:"endTime,omitempty" json:"endTime,omitempty"`
	IsAllDay            bool     `bson:"isAllDay" json:"isAllDay"`
	RecurrenceTag       string   `bson:"recurrenceTag" json:"recurrenceTag"`
	Reason              string   `bson:"reason,omitempty" json:"reason,omitempty"`
	AffectedLocationIDs []string `bson:"affectedLocationIds" json:"affectedLocationIds"`
	NotifyPatients      bool     `bson:"notifyPatients" json:"notifyPatients"`
	IsActive            bool     `bson:"isActive" json:"isActive"`
	TimeModel           `bson:",inline"`
}

// AppliesToLocation reports whether the record scopes to the location.
// An empty set applies to every location; an empty locationID matches any
// record.
func (u *UnavailabilityRecord) AppliesToLocation(locationID string) bool {
	if locationID == "" || len(u.AffectedLocationIDs) == 0 {
		return true
	}
	for _, id := range u.AffectedLocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}
