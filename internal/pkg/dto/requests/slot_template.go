package requests

type CreateSlotTemplate struct {
	PractitionerID      string   `json:"practitionerId" validate:"required"`
	LocationID          string   `json:"locationId" validate:"required"`
	DayOfWeek           string   `json:"dayOfWeek" validate:"required,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime           string   `json:"startTime" validate:"required,clock_time"`
	EndTime             string   `json:"endTime" validate:"required,clock_time"`
	SlotDurationMinutes int      `json:"slotDurationMinutes" validate:"required,min=10,max=120"`
	FeeAmount           float64  `json:"feeAmount" validate:"gte=0"`
	Modality            string   `json:"modality" validate:"required,oneof=IN_PERSON REMOTE"`
	IsActive            *bool    `json:"isActive,omitempty"`
	ValidFrom           string   `json:"validFrom,omitempty" validate:"omitempty,iso_date"`
	ValidUntil          string   `json:"validUntil,omitempty" validate:"omitempty,iso_date"`
	BlockedDates        []string `json:"blockedDates,omitempty" validate:"omitempty,dive,iso_date"`
	MaxBookingsPerSlot  int      `json:"maxBookingsPerSlot,omitempty" validate:"omitempty,min=1"`
	Actor               string   `json:"actor,omitempty"`
}

type UpdateSlotTemplate struct {
	DayOfWeek           *string  `json:"dayOfWeek,omitempty" validate:"omitempty,oneof=MONDAY TUESDAY WEDNESDAY THURSDAY FRIDAY SATURDAY SUNDAY"`
	StartTime           *string  `json:"startTime,omitempty" validate:"omitempty,clock_time"`
	EndTime             *string  `json:"endTime,omitempty" validate:"omitempty,clock_time"`
	SlotDurationMinutes *int     `json:"slotDurationMinutes,omitempty" validate:"omitempty,min=10,max=120"`
	FeeAmount           *float64 `json:"feeAmount,omitempty" validate:"omitempty,gte=0"`
	ValidFrom           *string  `json:"validFrom,omitempty" validate:"omitempty,iso_date"`
	ValidUntil          *string  `json:"validUntil,omitempty" validate:"omitempty,iso_date"`
	MaxBookingsPerSlot  *int     `json:"maxBookingsPerSlot,omitempty" validate:"omitempty,min=1"`
}

type BlockTemplateDate struct {
	Date string `json:"date" validate:"required,iso_date"`
}

type TemplateActor struct {
	Actor string `json:"actor,omitempty"`
}
