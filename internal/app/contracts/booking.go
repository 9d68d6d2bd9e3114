package contracts

import "context"

// BookingRepository is a read-only collaborator. Booking state is owned by
// the surrounding system; this core only asks which generated intervals are
// already consumed and how many active bookings reference a pair.
type BookingRepository interface {
	// FindBookedStartKeys returns the set of date+"_"+startTime keys of
	// active bookings for the practitioner within the inclusive
	// [fromDate, toDate] window, optionally scoped to one location.
	FindBookedStartKeys(ctx context.Context, practitionerID, locationID, fromDate, toDate string) (map[string]struct{}, error)
	// CountActiveByPair returns the number of active bookings that
	// reference the (practitioner, location) pair.
	CountActiveByPair(ctx context.Context, practitionerID, locationID string) (int64, error)
}
