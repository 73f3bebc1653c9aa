package assessments

import (
	"context"

	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type assessmentUsecase struct {
	Catalog *Catalog
	Log     *zap.Logger
}

func NewAssessmentUsecase(catalog *Catalog, logger *zap.Logger) AssessmentUsecase {
	return &assessmentUsecase{
		Catalog: catalog,
		Log:     logger,
	}
}

func (uc *assessmentUsecase) FindAll(ctx context.Context) ([]responses.AssessmentSummary, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	all := uc.Catalog.All()
	summaries := make([]responses.AssessmentSummary, 0, len(all))
	for _, a := range all {
		summaries = append(summaries, responses.AssessmentSummary{
			ID:          a.ID,
			Title:       a.Title,
			Slug:        a.Slug,
			Description: a.Description,
			Category:    a.Category,
			ItemCount:   len(a.Questions),
		})
	}

	uc.Log.Info("assessmentUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("assessment_count", len(summaries)),
	)
	return summaries, nil
}

func (uc *assessmentUsecase) FindBySlug(ctx context.Context, slug string) (*responses.AssessmentDetail, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.FindBySlug called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("slug", slug),
	)

	assessment, ok := uc.Catalog.FindBySlug(slug)
	if !ok {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}

	questions := make([]responses.AssessmentQuestion, 0, len(assessment.Questions))
	for _, q := range assessment.Questions {
		questions = append(questions, responses.AssessmentQuestion{
			ID:      q.ID,
			Text:    q.Text,
			Options: q.Options,
		})
	}

	return &responses.AssessmentDetail{
		ID:          assessment.ID,
		Title:       assessment.Title,
		Slug:        assessment.Slug,
		Description: assessment.Description,
		Category:    assessment.Category,
		Questions:   questions,
	}, nil
}

func (uc *assessmentUsecase) SubmitAssessment(ctx context.Context, slug string, request *requests.SubmitAssessment) (*responses.ScoreResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.SubmitAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("slug", slug),
	)

	assessment, ok := uc.Catalog.FindBySlug(slug)
	if !ok {
		return nil, exceptions.ErrAssessmentNotFound(nil)
	}

	result := Score(assessment, request.Answers)

	uc.Log.Info("assessmentUsecase.SubmitAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("slug", slug),
		zap.Int("total_score", result.TotalScore),
		zap.String("status", result.Status),
	)
	return &result, nil
}
