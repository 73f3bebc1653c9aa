package universities

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type universityUsecase struct {
	UniversityRepository UniversityRepository
	Log                  *zap.Logger
}

func NewUniversityUsecase(universityMongoRepository UniversityRepository, logger *zap.Logger) UniversityUsecase {
	return &universityUsecase{
		UniversityRepository: universityMongoRepository,
		Log:                  logger,
	}
}

func (uc *universityUsecase) CreateUniversity(ctx context.Context, request *requests.CreateUniversity) (*responses.University, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("universityUsecase.CreateUniversity called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.UniversityRepository.FindByName(ctx, request.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrUniversityAlreadyExists(nil)
	}

	university := &models.University{
		Name:           request.Name,
		DomainPatterns: request.DomainPatterns,
		AdminEmail:     request.AdminEmail,
	}
	university.SetCreatedAtUpdatedAt()

	universityID, err := uc.UniversityRepository.CreateUniversity(ctx, university)
	if err != nil {
		return nil, err
	}
	university.ID = universityID

	uc.Log.Info("universityUsecase.CreateUniversity succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildUniversityResponse(university), nil
}

func (uc *universityUsecase) FindAll(ctx context.Context) ([]responses.University, error) {
	universityList, err := uc.UniversityRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]responses.University, 0, len(universityList))
	for i := range universityList {
		result = append(result, *buildUniversityResponse(&universityList[i]))
	}
	return result, nil
}

func (uc *universityUsecase) FindByID(ctx context.Context, universityID string) (*responses.University, error) {
	university, err := uc.UniversityRepository.FindByID(ctx, universityID)
	if err != nil {
		return nil, err
	}
	if university == nil {
		return nil, exceptions.ErrUniversityNotFound(nil)
	}
	return buildUniversityResponse(university), nil
}

func buildUniversityResponse(university *models.University) *responses.University {
	return &responses.University{
		ID:             university.ID,
		Name:           university.Name,
		DomainPatterns: university.DomainPatterns,
		AdminEmail:     university.AdminEmail,
	}
}
