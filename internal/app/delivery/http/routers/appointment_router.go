package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/appointments"
	"campuscare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *appointments.AppointmentController) {
	router.Use(middlewares.Authenticate)

	adminOnly := middlewares.RequireRole(constvars.RoleAdmin, constvars.RoleUniversityAdmin)
	staff := middlewares.RequireRole(constvars.RoleDoctor, constvars.RoleAdmin, constvars.RoleUniversityAdmin)

	router.With(middlewares.RequireRole(constvars.RoleStudent)).Post("/", appointmentController.CreateAppointment)
	router.With(adminOnly).Get("/", appointmentController.FindAll)
	router.With(adminOnly).Get("/doctor/{doctorID}", appointmentController.FindByDoctor)

	router.With(staff).Get("/my/appointments", appointmentController.FindMine)
	router.Get("/my/attended", appointmentController.GetAttendedCount)
	router.Get("/my/upcoming", appointmentController.GetUpcomingCount)

	router.With(staff).Get("/pending", appointmentController.FindPending)
	router.With(staff).Get("/approved", appointmentController.FindApproved)
	router.With(staff).Get("/rejected", appointmentController.FindRejected)

	router.With(staff).Patch("/{appointmentID}/status", appointmentController.UpdateStatus)
}
