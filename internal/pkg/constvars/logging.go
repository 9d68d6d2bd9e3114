package constvars

// Context keys.
type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY contextKey = "request_id"
)

// Structured logging field keys.
const (
	LoggingRequestIDKey    = "request_id"
	LoggingMethodKey       = "method"
	LoggingEndpointKey     = "endpoint"
	LoggingRemoteAddrKey   = "remote_addr"
	LoggingUserAgentKey    = "user_agent"
	LoggingQueryKey        = "query"
	LoggingStatusCodeKey   = "status_code"
	LoggingDurationKey     = "duration"
	LoggingSuccessKey      = "success"
	LoggingPractitionerKey = "practitioner_id"
	LoggingLocationKey     = "location_id"
	LoggingTemplateKey     = "template_id"
	LoggingEventKey        = "event"
)
