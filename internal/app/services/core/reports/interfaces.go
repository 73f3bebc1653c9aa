package reports

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type ReportUsecase interface {
	CreateReport(ctx context.Context, request *requests.CreateReport) (*responses.Report, error)
	FindByStudent(ctx context.Context, studentID string) ([]responses.Report, error)
}

type ReportRepository interface {
	CreateReport(ctx context.Context, reportModel *models.Report) (reportID string, err error)
	FindByStudent(ctx context.Context, studentID string) ([]models.Report, error)
}
