package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/universities"
	"campuscare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// University listings back the signup flow, which runs before any token
// exists, so reads are public. Creation stays admin-only.
func attachUniversityRoutes(router chi.Router, middlewares *middlewares.Middlewares, universityController *universities.UniversityController) {
	router.Get("/", universityController.FindAll)
	router.Get("/{universityID}", universityController.FindByID)

	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).Post("/", universityController.CreateUniversity)
}
