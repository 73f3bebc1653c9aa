package users

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	GetProfile(ctx context.Context, userID string) (*responses.User, error)
	UpdateProfile(ctx context.Context, userID string, request *requests.UpdateProfile) (*responses.User, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, userModel *models.User) (userID string, err error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByRole(ctx context.Context, role string) ([]models.User, error)
	UpdateUser(ctx context.Context, userModel *models.User) error
	IncrementAttendedCount(ctx context.Context, userID string, delta int) error
}
