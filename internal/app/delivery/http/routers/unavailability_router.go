package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/unavailability"

	"github.com/go-chi/chi/v5"
)

func attachUnavailabilityRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, c *unavailability.UnavailabilityController) {
	router.With(writeLimiter.Limit).Post("/", c.Create)
	router.With(writeLimiter.Limit).Patch("/{unavailabilityID}", c.Update)
	router.With(writeLimiter.Limit).Delete("/{unavailabilityID}", c.Delete)
}
