package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/availability"
	"medibook-service/internal/app/services/core/templates"

	"github.com/go-chi/chi/v5"
)

func attachTemplateRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, c *templates.TemplateController, a *availability.AvailabilityController) {
	router.With(writeLimiter.Limit).Post("/", c.Create)
	router.Get("/", c.Find)
	router.Get("/{templateID}", c.FindByID)
	router.With(writeLimiter.Limit).Patch("/{templateID}", c.Update)
	router.With(writeLimiter.Limit).Put("/{templateID}/activate", c.Activate)
	router.With(writeLimiter.Limit).Put("/{templateID}/deactivate", c.Deactivate)
	router.With(writeLimiter.Limit).Post("/{templateID}/block-date", c.BlockDate)
	router.With(writeLimiter.Limit).Delete("/{templateID}/block-date/{date}", c.UnblockDate)
	router.Get("/{templateID}/generate", a.GenerateForTemplate)
}
