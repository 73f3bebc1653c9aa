package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/auth"
	"campuscare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/signup", authController.Signup)
	router.Post("/login", authController.Login)
	router.With(middlewares.Authenticate, middlewares.RequireRole(constvars.RoleAdmin)).
		Post("/create-university-admin", authController.CreateUniversityAdmin)
}
