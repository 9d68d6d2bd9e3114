package routers

import (
	"medibook-service/internal/app/delivery/http/middlewares"
	"medibook-service/internal/app/services/core/assignments"

	"github.com/go-chi/chi/v5"
)

func attachAssignmentRoutes(router chi.Router, writeLimiter *middlewares.RateLimiter, c *assignments.AssignmentController) {
	router.With(writeLimiter.Limit).Post("/", c.Assign)
	router.With(writeLimiter.Limit).Delete("/", c.Unassign)
	router.With(writeLimiter.Limit).Post("/sync", c.Sync)
	router.With(writeLimiter.Limit).Post("/reconcile", c.Reconcile)
}
