package routers

import (
	"time"

	"medibook-service/internal/app/config"
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/assignments"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/templates"
	"medibook-service/internal/app/services/core/unavailability"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	m *middlewares.Middlewares,
	templateController *templates.TemplateController,
	unavailabilityController *unavailability.UnavailabilityController,
	availabilityController *availability.AvailabilityController,
	assignmentController *assignments.AssignmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))
	router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	router.Use(m.RequestID)
	router.Use(m.Logging)
	router.Use(m.ErrorHandler)
	router.Use(m.BodyLimit)

	writeLimiter := middlewares.NewRateLimiter(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
		time.Minute,
	)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/slot-templates", func(r chi.Router) {
			attachTemplateRoutes(r, writeLimiter, templateController, availabilityController)
		})

		r.Route("/unavailability", func(r chi.Router) {
			attachUnavailabilityRoutes(r, writeLimiter, unavailabilityController)
		})

		r.Route("/practitioners", func(r chi.Router) {
			attachPractitionerRoutes(r, unavailabilityController, availabilityController, assignmentController)
		})

		r.Route("/assignments", func(r chi.Router) {
			attachAssignmentRoutes(r, writeLimiter, assignmentController)
		})
	})
}
