package routers

import (
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/assessments"

	"github.com/go-chi/chi/v5"
)

// The catalog is static content and stays readable without a token;
// submitting answers is tied to a caller and requires one.
func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	router.Get("/", assessmentController.FindAll)
	router.Get("/{slug}", assessmentController.FindBySlug)

	router.With(middlewares.Authenticate).Post("/{slug}/submit", assessmentController.SubmitAssessment)
}
