package appointments

import (
	"context"
	"time"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/app/services/core/slots"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type appointmentUsecase struct {
	AppointmentRepository AppointmentRepository
	DoctorRepository      doctors.DoctorRepository
	Log                   *zap.Logger
}

func NewAppointmentUsecase(
	appointmentMongoRepository AppointmentRepository,
	doctorMongoRepository doctors.DoctorRepository,
	logger *zap.Logger,
) AppointmentUsecase {
	return &appointmentUsecase{
		AppointmentRepository: appointmentMongoRepository,
		DoctorRepository:      doctorMongoRepository,
		Log:                   logger,
	}
}

func (uc *appointmentUsecase) CreateAppointment(ctx context.Context, studentID string, request *requests.CreateAppointment) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	doctor, err := uc.DoctorRepository.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	if doctor.IsAvailable != constvars.DoctorAvailable {
		return nil, exceptions.ErrDoctorNotAvailable(nil)
	}

	resolved := slots.ResolveForDate(doctor, request.Date, utils.TodayDateKey())
	if !slots.ContainsInterval(resolved, request.StartTime, request.EndTime) {
		return nil, exceptions.ErrSlotNotFound(nil)
	}

	slotStart, err := utils.CombineDateAndClock(request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	slotEnd, err := utils.CombineDateAndClock(request.Date, request.EndTime)
	if err != nil {
		return nil, err
	}

	mode := request.Mode
	if mode == "" {
		mode = constvars.AvailabilityTypeOnline
	}

	appointment := &models.Appointment{
		Student:   studentID,
		Doctor:    request.DoctorID,
		SlotStart: slotStart,
		SlotEnd:   slotEnd,
		Mode:      mode,
		Notes:     request.Notes,
		Status:    constvars.AppointmentStatusPending,
	}
	appointment.SetCreatedAtUpdatedAt()

	appointmentID, err := uc.AppointmentRepository.CreateAppointment(ctx, appointment)
	if err != nil {
		return nil, err
	}
	appointment.ID = appointmentID

	uc.Log.Info("appointmentUsecase.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) FindAll(ctx context.Context, filter *requests.AppointmentFilter) ([]responses.Appointment, error) {
	appointmentList, err := uc.AppointmentRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Appointment, 0, len(appointmentList))
	for i := range appointmentList {
		result = append(result, *uc.buildAppointmentResponse(ctx, &appointmentList[i]))
	}
	return result, nil
}

// UpdateStatus enforces that a doctor can only change their own appointments
// and that terminal statuses stay terminal.
func (uc *appointmentUsecase) UpdateStatus(ctx context.Context, appointmentID, actorID, actorRole string, request *requests.UpdateAppointmentStatus) (*responses.Appointment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointment, err := uc.AppointmentRepository.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, exceptions.ErrAppointmentNotFound(nil)
	}

	if actorRole == constvars.RoleDoctor {
		if appointment.Doctor != actorID {
			return nil, exceptions.ErrPermissionDenied(nil)
		}
		if request.Status == constvars.AppointmentStatusCancelled {
			return nil, exceptions.ErrInvalidStatusTransition(nil)
		}
	}
	if appointment.Status == constvars.AppointmentStatusCompleted ||
		appointment.Status == constvars.AppointmentStatusCancelled {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	if err := uc.AppointmentRepository.UpdateStatus(ctx, appointmentID, request.Status); err != nil {
		return nil, err
	}
	appointment.Status = request.Status

	uc.Log.Info("appointmentUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return uc.buildAppointmentResponse(ctx, appointment), nil
}

func (uc *appointmentUsecase) GetAttendanceCounts(ctx context.Context, studentID string) (*responses.AttendanceCounts, error) {
	attended, err := uc.AppointmentRepository.CountByStudentAndStatus(ctx, studentID, constvars.AppointmentStatusCompleted)
	if err != nil {
		return nil, err
	}
	upcoming, err := uc.AppointmentRepository.CountUpcoming(ctx, studentID, time.Now())
	if err != nil {
		return nil, err
	}
	return &responses.AttendanceCounts{Attended: attended, Upcoming: upcoming}, nil
}

func (uc *appointmentUsecase) buildAppointmentResponse(ctx context.Context, appointment *models.Appointment) *responses.Appointment {
	doctorName := ""
	if doctor, err := uc.DoctorRepository.FindByID(ctx, appointment.Doctor); err == nil && doctor != nil {
		doctorName = doctor.Name
	}

	return &responses.Appointment{
		ID:         appointment.ID,
		Student:    appointment.Student,
		DoctorID:   appointment.Doctor,
		DoctorName: doctorName,
		SlotStart:  appointment.SlotStart,
		SlotEnd:    appointment.SlotEnd,
		Mode:       appointment.Mode,
		Notes:      appointment.Notes,
		Status:     appointment.Status,
	}
}
