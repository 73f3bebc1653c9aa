package sessions

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	CreateSession(ctx context.Context, studentID string, request *requests.CreateSession) (*responses.Session, error)
	UpdateStatus(ctx context.Context, sessionID, actorID, actorRole string, request *requests.UpdateSessionStatus) (*responses.Session, error)
	FindByStudent(ctx context.Context, studentID string) ([]responses.Session, error)
	FindByDoctor(ctx context.Context, doctorID string, filter *requests.SessionFilter) (*responses.SessionList, error)
}

type SessionRepository interface {
	CreateSession(ctx context.Context, sessionModel *models.Session) (sessionID string, err error)
	FindByID(ctx context.Context, sessionID string) (*models.Session, error)
	FindByStudent(ctx context.Context, studentID string) ([]models.Session, error)
	FindByDoctor(ctx context.Context, doctorID string, filter *requests.SessionFilter) ([]models.Session, error)
	UpdateSession(ctx context.Context, sessionModel *models.Session) error
	CountActiveForDate(ctx context.Context, studentID, date string) (int, error)
}
