package reports

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type reportUsecase struct {
	ReportRepository ReportRepository
	Log              *zap.Logger
}

func NewReportUsecase(reportMongoRepository ReportRepository, logger *zap.Logger) ReportUsecase {
	return &reportUsecase{
		ReportRepository: reportMongoRepository,
		Log:              logger,
	}
}

func (uc *reportUsecase) CreateReport(ctx context.Context, request *requests.CreateReport) (*responses.Report, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("reportUsecase.CreateReport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	report := &models.Report{
		Student:        request.Student,
		Name:           request.Name,
		Age:            request.Age,
		Gender:         request.Gender,
		Mode:           request.Mode,
		Problems:       request.Problems,
		Analysis:       request.Analysis,
		Metrics:        request.Metrics,
		DaysToAttend:   request.DaysToAttend,
		AssessmentSlug: request.AssessmentSlug,
	}
	if request.NextSessionDate != "" {
		nextSession, err := utils.ParseDateKey(request.NextSessionDate)
		if err != nil {
			return nil, err
		}
		report.NextSessionDate = &nextSession
	}
	report.SetCreatedAtUpdatedAt()

	reportID, err := uc.ReportRepository.CreateReport(ctx, report)
	if err != nil {
		return nil, err
	}
	report.ID = reportID

	uc.Log.Info("reportUsecase.CreateReport succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildReportResponse(report), nil
}

func (uc *reportUsecase) FindByStudent(ctx context.Context, studentID string) ([]responses.Report, error) {
	reportList, err := uc.ReportRepository.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Report, 0, len(reportList))
	for i := range reportList {
		result = append(result, *buildReportResponse(&reportList[i]))
	}
	return result, nil
}

func buildReportResponse(report *models.Report) *responses.Report {
	return &responses.Report{
		ID:              report.ID,
		Student:         report.Student,
		Name:            report.Name,
		Age:             report.Age,
		Gender:          report.Gender,
		Mode:            report.Mode,
		Problems:        report.Problems,
		Analysis:        report.Analysis,
		Metrics:         report.Metrics,
		NextSessionDate: report.NextSessionDate,
		DaysToAttend:    report.DaysToAttend,
		AttendedDate:    report.AttendedDate,
		AssessmentSlug:  report.AssessmentSlug,
		CreatedAt:       report.CreatedAt,
	}
}
