package universities

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type UniversityUsecase interface {
	CreateUniversity(ctx context.Context, request *requests.CreateUniversity) (*responses.University, error)
	FindAll(ctx context.Context) ([]responses.University, error)
	FindByID(ctx context.Context, universityID string) (*responses.University, error)
}

type UniversityRepository interface {
	CreateUniversity(ctx context.Context, universityModel *models.University) (universityID string, err error)
	FindAll(ctx context.Context) ([]models.University, error)
	FindByID(ctx context.Context, universityID string) (*models.University, error)
	FindByDomain(ctx context.Context, domain string) (*models.University, error)
	FindByName(ctx context.Context, name string) (*models.University, error)
}
