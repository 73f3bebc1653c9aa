package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/sessions"
	"campuscare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, middlewares *middlewares.Middlewares, sessionController *sessions.SessionController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRole(constvars.RoleStudent)).Post("/", sessionController.CreateSession)
	router.With(middlewares.RequireRole(constvars.RoleStudent)).Get("/", sessionController.FindMine)
	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Get("/my-sessions", sessionController.FindMySessions)
	router.With(middlewares.RequireRole(constvars.RoleDoctor, constvars.RoleAdmin, constvars.RoleUniversityAdmin)).
		Put("/{sessionID}/status", sessionController.UpdateStatus)
}
