package doctors

import (
	"context"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.CreateDoctor, error)
	FindAll(ctx context.Context, filter *requests.DoctorFilter) ([]responses.Doctor, int, error)
	FindForStudentUniversity(ctx context.Context, studentID string, filter *requests.DoctorFilter) ([]responses.Doctor, int, error)
	FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error)
	DeleteDoctor(ctx context.Context, doctorID string) error

	GetSlotsForDate(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error)
	SetSlotsForDate(ctx context.Context, doctorID string, request *requests.SetDateSlots) error
	ClearSlotsForDate(ctx context.Context, doctorID, date string) error
	UpdateAllSlots(ctx context.Context, doctorID string, request *requests.BulkDateSlots) error
	UpdateTodaySchedule(ctx context.Context, doctorID string, request *requests.UpdateTodaySchedule) error
	BookSlot(ctx context.Context, doctorID string, request *requests.SlotRef) (bool, error)
	UnbookSlot(ctx context.Context, doctorID string, request *requests.SlotRef) (bool, error)
	GetUpcomingAvailability(ctx context.Context, doctorID string, days int) (*responses.UpcomingAvailability, error)
	GetAllSlots(ctx context.Context, doctorID string) (map[string][]models.TimeSlot, error)
	GetAllAvailability(ctx context.Context, doctorID string) ([]responses.DateSlots, error)
	GetDatesWithSlots(ctx context.Context, doctorID string) ([]string, error)
	IsAvailableAtDateTime(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error)
}

type DoctorRepository interface {
	CreateDoctor(ctx context.Context, doctorModel *models.Doctor) (doctorID string, err error)
	FindAll(ctx context.Context, filter *requests.DoctorFilter) ([]models.Doctor, int, error)
	FindByID(ctx context.Context, doctorID string) (*models.Doctor, error)
	FindByEmail(ctx context.Context, email string) (*models.Doctor, error)
	UpdateDoctor(ctx context.Context, doctorModel *models.Doctor) error
	DeleteByID(ctx context.Context, doctorID string) error

	SetDateSlots(ctx context.Context, doctorID, date string, slotList []models.TimeSlot) error
	UnsetDateSlots(ctx context.Context, doctorID, date string) error
	ReplaceAllDateSlots(ctx context.Context, doctorID string, dateSlots map[string][]models.TimeSlot, availability string) error
	SetTodaySchedule(ctx context.Context, doctorID string, schedule models.TodaySchedule) error
	BookSlot(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error)
	UnbookSlot(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error)
}
