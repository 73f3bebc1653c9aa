package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

// Doctor profiles and resolved availability are readable without a token so
// students can browse before signing up. Every mutation stays behind the
// token plus a role check.
func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController) {
	router.Get("/", doctorController.FindAll)
	router.Get("/{doctorID}", doctorController.FindByID)
	router.Get("/{doctorID}/all-slots", doctorController.GetAllSlots)
	router.Get("/{doctorID}/slots/{date}", doctorController.GetSlotsForDate)
	router.Get("/{doctorID}/slot-dates", doctorController.GetDatesWithSlots)
	router.Get("/{doctorID}/availability", doctorController.GetAllAvailability)
	router.Get("/{doctorID}/availability/{date}", doctorController.GetSlotsForDate)
	router.Get("/{doctorID}/upcoming-availability", doctorController.GetUpcomingAvailability)

	authenticated := router.With(middlewares.Authenticate)
	adminOnly := middlewares.RequireRole(constvars.RoleAdmin, constvars.RoleUniversityAdmin)
	scheduleOwners := middlewares.RequireRole(constvars.RoleDoctor, constvars.RoleAdmin, constvars.RoleUniversityAdmin)

	authenticated.With(middlewares.RequireRole(constvars.RoleStudent)).Get("/my-university", doctorController.FindMyUniversity)

	authenticated.With(adminOnly).Post("/", doctorController.CreateDoctor)
	authenticated.With(adminOnly).Put("/{doctorID}", doctorController.UpdateDoctor)
	authenticated.With(adminOnly).Delete("/{doctorID}", doctorController.DeleteDoctor)

	authenticated.With(scheduleOwners).Patch("/{doctorID}/all-slots", doctorController.UpdateAllSlots)
	authenticated.With(scheduleOwners).Patch("/{doctorID}/slots", doctorController.SetSlotsForDate)
	authenticated.With(scheduleOwners).Delete("/{doctorID}/slots/{date}", doctorController.ClearSlotsForDate)
	authenticated.With(scheduleOwners).Patch("/{doctorID}/book-slot", doctorController.BookSlot)
	authenticated.With(scheduleOwners).Patch("/{doctorID}/unbook-slot", doctorController.UnbookSlot)
	authenticated.With(scheduleOwners).Patch("/{doctorID}/today", doctorController.UpdateTodaySchedule)
}
