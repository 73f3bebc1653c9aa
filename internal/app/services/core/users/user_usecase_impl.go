package users

import (
	"context"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/models"
	"campuscare-service/internal/app/services/shared/storage"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserRepository UserRepository
	MinioStorage   storage.Storage
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

func NewUserUsecase(
	userMongoRepository UserRepository,
	minioStorage storage.Storage,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) UserUsecase {
	return &userUsecase{
		UserRepository: userMongoRepository,
		MinioStorage:   minioStorage,
		InternalConfig: internalConfig,
		Log:            logger,
	}
}

func (uc *userUsecase) GetProfile(ctx context.Context, userID string) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	uc.Log.Info("userUsecase.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.buildUserResponse(ctx, user), nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if len(request.ProfilePictureData) > 0 {
		fileName := utils.GenerateFileName(constvars.ImageProfilePicturePrefix, user.Email, request.ProfilePictureExtension)
		uploadedName, err := uc.MinioStorage.UploadBase64Image(ctx, request.ProfilePictureData, uc.InternalConfig.Minio.BucketName, fileName, request.ProfilePictureExtension)
		if err != nil {
			return nil, err
		}
		user.ProfilePicture = uploadedName
	}

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.UpdateProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.buildUserResponse(ctx, user), nil
}

func (uc *userUsecase) buildUserResponse(ctx context.Context, user *models.User) *responses.User {
	profilePicture := ""
	if user.ProfilePicture != "" {
		presigned, err := uc.MinioStorage.GetPresignedURL(ctx, uc.InternalConfig.Minio.BucketName, user.ProfilePicture, uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours)
		if err == nil {
			profilePicture = presigned
		}
	}

	return &responses.User{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Role:           user.Role,
		University:     user.University,
		ProfilePicture: profilePicture,
		AttendedCount:  user.AttendedCount,
	}
}
