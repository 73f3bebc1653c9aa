package routers

import (
	"fmt"
	"time"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/appointments"
	"campuscare-service/internal/app/services/core/assessments"
	"campuscare-service/internal/app/services/core/auth"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/app/services/core/reports"
	"campuscare-service/internal/app/services/core/sessions"
	"campuscare-service/internal/app/services/core/universities"
	"campuscare-service/internal/app/services/core/users"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	userController *users.UserController,
	doctorController *doctors.DoctorController,
	appointmentController *appointments.AppointmentController,
	sessionController *sessions.SessionController,
	assessmentController *assessments.AssessmentController,
	universityController *universities.UniversityController,
	reportController *reports.ReportController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, middlewares, userController)
			})

			r.Route("/doctors", func(r chi.Router) {
				attachDoctorRoutes(r, middlewares, doctorController)
			})

			r.Route("/appointments", func(r chi.Router) {
				attachAppointmentRoutes(r, middlewares, appointmentController)
			})

			r.Route("/sessions", func(r chi.Router) {
				attachSessionRoutes(r, middlewares, sessionController)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, middlewares, assessmentController)
			})

			r.Route("/universities", func(r chi.Router) {
				attachUniversityRoutes(r, middlewares, universityController)
			})

			r.Route("/reports", func(r chi.Router) {
				attachReportRoutes(r, middlewares, reportController)
			})
		})
	})
}
