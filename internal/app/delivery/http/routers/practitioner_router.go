package routers

import (
	"medibook-service/internal/app/services/core/assignments"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/unavailability"

	"github.com/go-chi/chi/v5"
)

func attachPractitionerRoutes(router chi.Router, u *unavailability.UnavailabilityController, a *availability.AvailabilityController, s *assignments.AssignmentController) {
	router.Get("/{practitionerID}/unavailability", u.FindByPractitioner)
	router.Get("/{practitionerID}/blocked-dates", u.BlockedDates)
	router.Get("/{practitionerID}/availability", a.GetAvailability)
	router.Get("/{practitionerID}/locations", s.ListLocations)
}
