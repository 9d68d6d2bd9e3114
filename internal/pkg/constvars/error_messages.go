package constvars

// Client-facing error messages.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please try again"
	ErrClientSomethingWrongWithApplication = "Something is wrong with the application, please contact the administrator"
	ErrClientServerLongRespond             = "The server took too long to respond, please try again"

	ErrClientInvalidClockFormat     = "Time must be in HH:mm 24-hour format"
	ErrClientInvalidDateFormat      = "Date must be in YYYY-MM-DD format"
	ErrClientEndTimeBeforeStartTime = "End time must be after start time"
	ErrClientEndDateBeforeStartDate = "End date must be on or after start date"
	ErrClientValidityWindowInverted = "validFrom must be on or before validUntil"
	ErrClientSlotDurationOutOfRange = "Slot duration is out of the allowed range"

	ErrClientTemplateNotFound       = "Slot template not found"
	ErrClientTemplateInactive       = "Slot template is not active"
	ErrClientUnavailabilityNotFound = "Unavailability record not found"
	ErrClientAssignmentNotFound     = "Location assignment not found"
	ErrClientAssignmentExists       = "Practitioner is already assigned to this location"
	ErrClientAssignmentHasTemplates = "Cannot unassign location while active in-person templates reference it"
	ErrClientAssignmentHasBookings  = "Cannot unassign location while active bookings reference it"
)

// Developer-facing error messages.
const (
	ErrDevValidationFailed         = "Request payload validation failed"
	ErrDevInvalidRequestPayload    = "Invalid request payload"
	ErrDevCannotParseJSON          = "Failed to parse JSON request body"
	ErrDevCannotParseQueryParam    = "Failed to parse query parameter: %s"
	ErrDevServerDeadlineExceeded   = "Request deadline exceeded"
	ErrDevTemplateNotFound         = "Slot template does not exist: %s"
	ErrDevUnavailabilityNotFound   = "Unavailability record does not exist: %s"
	ErrDevAssignmentNotFound       = "Assignment does not exist for pair (%s, %s)"
	ErrDevTemplateInactive         = "Generation requested against inactive template: %s"
	ErrDevDBFailedToFindDocument   = "Failed to find document(s) in database"
	ErrDevDBFailedToInsertDocument = "Failed to insert document into database"
	ErrDevDBFailedToUpdateDocument = "Failed to update document in database"
	ErrDevDBFailedToDeleteDocument = "Failed to delete document from database"
	ErrDevDBFailedToIterateCursor  = "Failed to iterate database cursor"
	ErrDevDBFailedToCountDocuments = "Failed to count documents in database"
	ErrDevRedisFailedToSet         = "Failed to set value in redis"
	ErrDevRedisFailedToGet         = "Failed to get value from redis: %s"
	ErrDevRedisFailedToDelete      = "Failed to delete key(s) from redis"
	ErrDevCannotMarshalJSON        = "Failed to marshal value to JSON"
	ErrDevRabbitMQFailedToPublish  = "Failed to publish message to queue: %s"
	ErrDevRabbitMQFailedToConsume  = "Failed to start consuming queue: %s"
)

// Validation tag messages used when formatting validator errors.
var CustomValidationErrorMessages = map[string]string{
	"required":   "is required",
	"oneof":      "must be one of: %s",
	"min":        "must be at least %s",
	"max":        "must be at most %s",
	"gte":        "must be greater than or equal to %s",
	"clock_time": "must be in HH:mm 24-hour format",
	"iso_date":   "must be in YYYY-MM-DD format",
}

// TagsWithParams marks validator tags whose message embeds the tag parameter.
var TagsWithParams = map[string]bool{
	"oneof": true,
	"min":   true,
	"max":   true,
	"gte":   true,
}

const ResponseUnknown = "unknown"
