package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/reports"
	"campuscare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController) {
	router.Use(middlewares.Authenticate)

	router.With(middlewares.RequireRole(constvars.RoleDoctor)).Post("/", reportController.CreateReport)
	router.With(middlewares.RequireRole(constvars.RoleStudent)).Get("/my", reportController.FindMine)
	router.With(middlewares.RequireRole(constvars.RoleDoctor, constvars.RoleAdmin, constvars.RoleUniversityAdmin)).
		Get("/student/{studentID}", reportController.FindByStudent)
}
