package appointments

import (
	"context"
	"time"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, studentID string, request *requests.CreateAppointment) (*responses.Appointment, error)
	FindAll(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, actorID, actorRole string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error)
	GetAttendanceCounts(ctx context.Context, studentID string) (*responses.AttendanceCounts, error)
}

type AppointmentRepository interface {
	CreateAppointment(ctx context.Context, appointmentModel *models.Appointment) (appointmentID string, err error)
	FindAll(ctx context.Context, filter *requests.AppointmentFilter) ([]models.Appointment, error)
	FindByID(ctx context.Context, appointmentID string) (*models.Appointment, error)
	UpdateStatus(ctx context.Context, appointmentID, status string) error
	CountByStudentAndStatus(ctx context.Context, studentID, status string) (int, error)
	CountUpcoming(ctx context.Context, studentID string, after time.Time) (int, error)
}
