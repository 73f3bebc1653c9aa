package auth

import (
	"context"

	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Signup(ctx context.Context, request *requests.Signup) (*responses.Signup, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	CreateUniversityAdmin(ctx context.Context, request *requests.CreateUniversityAdmin) (*responses.CreateUniversityAdmin, error)
}
