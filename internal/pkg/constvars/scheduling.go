package constvars

// Days of week as stored on slot templates, Monday-first upper-case
// English weekday names.
const (
	DayMonday    = "MONDAY"
	DayTuesday   = "TUESDAY"
	DayWednesday = "WEDNESDAY"
	DayThursday  = "THURSDAY"
	DayFriday    = "FRIDAY"
	DaySaturday  = "SATURDAY"
	DaySunday    = "SUNDAY"
)

// DaysOfWeek is ordered Monday-first.
var DaysOfWeek = []string{
	DayMonday,
	DayTuesday,
	DayWednesday,
	DayThursday,
	DayFriday,
	DaySaturday,
	DaySunday,
}

// Template modality.
const (
	ModalityInPerson = "IN_PERSON"
	ModalityRemote   = "REMOTE"
)

// Unavailability recurrence tags. Informational only: the ledger never
// expands recurrence into additional instances.
const (
	RecurrenceNone    = "NONE"
	RecurrenceDaily   = "DAILY"
	RecurrenceWeekly  = "WEEKLY"
	RecurrenceMonthly = "MONTHLY"
)

// Booking statuses that still consume a slot. Booking records are owned by
// the surrounding system and only read here.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
)

var ActiveBookingStatuses = []string{BookingStatusPending, BookingStatusConfirmed}

// Slot template bounds.
const (
	SlotDurationMinMinutes = 10
	SlotDurationMaxMinutes = 120

	DefaultMaxBookingsPerSlot = 20
)
