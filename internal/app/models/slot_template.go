package models

// SlotTemplate is a recurring weekly offering for one practitioner at one
// location. Dates are ISO YYYY-MM-DD strings and clock times are HH:mm
// 24-hour strings; both sort correctly as plain strings.
type SlotTemplate struct {
	TemplateID          string   `bson:"templateId" json:"templateId"`
	PractitionerID      string   `bson:"practitionerId" json:"practitionerId"`
	LocationID          string   `bson:"locationId" json:"locationId"`
	DayOfWeek           string   `bson:"dayOfWeek" json:"dayOfWeek"`
	StartTime           string   `bson:"startTime" json:"startTime"`
	EndTime             string   `bson:"endTime" json:"endTime"`
	SlotDurationMinutes int      `bson:"slotDurationMinutes" json:"slotDurationMinutes"`
	FeeAmount           float64  `bson:"feeAmount" json:"feeAmount"`
	Modality            string   `bson:"modality" json:"modality"`
	IsActive            bool     `bson:"isActive" json:"isActive"`
	ValidFrom           string   `bson:"validFrom,omitempty" json:"validFrom,omitempty"`
	ValidUntil          string   `bson:"validUntil,omitempty" json:"validUntil,omitempty"`
	BlockedDates        []string `bson:"blockedDates" json:"blockedDates"`
	MaxBookingsPerSlot  int      `bson:"maxBookingsPerSlot" json:"maxBookingsPerSlot"`
	TimeModel           `bson:",inline"`
}

// IsDateBlocked reports whether the template explicitly excludes the date.
func (t *SlotTemplate) IsDateBlocked(date string) bool {
	for _, d := range t.BlockedDates {
		if d == date {
			return true
		}
	}
	return false
}

// IsDateInValidityWindow reports whether the date falls inside the
// template's optional inclusive [validFrom, validUntil] bounds. Unset
// bounds do not constrain.
func (t *SlotTemplate) IsDateInValidityWindow(date string) bool {
	if t.ValidFrom != "" && date < t.ValidFrom {
		return false
	}
	if t.ValidUntil != "" && date > t.ValidUntil {
		return false
	}
	return true
}

// GeneratedInterval is an ephemeral bookable time range produced by
// expanding a template for one date. Never persisted.
type GeneratedInterval struct {
	StartTime       string  `json:"startTime"`
	EndTime         string  `json:"endTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Fee             float64 `json:"fee"`
	Modality        string  `json:"modality"`
	IsAvailable     bool    `json:"isAvailable"`
}
