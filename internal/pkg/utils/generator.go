package utils

import (
	"fmt"

	"github.com/google/uuid"
)

// GenerateRequestID issues the correlation ID attached to every request
// that arrives without an X-Request-ID header.
func GenerateRequestID() string {
	return uuid.NewString()
}

// FormatCounterID renders a counter value as a human-readable record ID,
// e.g. ("SL", 3) -> "SL00003". Values beyond five digits keep growing
// without truncation.
func FormatCounterID(prefix string, value int64) string {
	return fmt.Sprintf("%s%05d", prefix, value)
}
