package responses

import "medibook-service/internal/app/models"

// DayAvailability is one day entry of the rolling availability window.
// Days without any matching template are omitted from the response, never
// emitted as empty entries.
type DayAvailability struct {
	Date      string                     `json:"date"`
	DayOfWeek string                     `json:"dayOfWeek"`
	Slots     []models.GeneratedInterval `json:"slots"`
}

type SyncAssignmentsResult struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

type ReconcileResult struct {
	Activated   int `json:"activated"`
	Deactivated int `json:"deactivated"`
}
