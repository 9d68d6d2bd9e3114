package constvars

// Mongo collection names.
const (
	MongoCollectionSlotTemplates       = "slot_templates"
	MongoCollectionUnavailability      = "practitioner_unavailability"
	MongoCollectionLocationAssignments = "location_assignments"
	MongoCollectionBookings            = "bookings"
	MongoCollectionCounters            = "counters"
)

// Counter names and the human-readable ID prefixes issued from them.
const (
	CounterSlotTemplate   = "slot_template"
	CounterUnavailability = "unavailability"
	CounterAssignment     = "assignment"

	SlotTemplateIDPrefix   = "SL"
	UnavailabilityIDPrefix = "UN"
	AssignmentIDPrefix     = "AS"
)

// Cache keys for the availability aggregator.
const (
	AvailabilityCacheKeyFormat  = "availability:%s:%s"
	AvailabilityCachePrefix     = "availability:"
	AvailabilityCacheRemoteSlot = "remote"
)

// RabbitMQ queue names for template lifecycle events.
const (
	QueueTemplateLifecycle = "medibook.template.lifecycle"

	EventTemplateActivated   = "template.activated"
	EventTemplateDeactivated = "template.deactivated"
)

// Date and clock formats at the service boundary.
const (
	DateLayoutISO   = "2006-01-02"
	ClockLayoutHHMM = "15:04"
)
