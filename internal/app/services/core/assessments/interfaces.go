package assessments

import (
	"context"

	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	FindAll(ctx context.Context) ([]responses.AssessmentSummary, error)
	FindBySlug(ctx context.Context, slug string) (*responses.AssessmentDetail, error)
	SubmitAssessment(ctx context.Context, slug string, request *requests.SubmitAssessment) (*responses.ScoreResult, error)
}
