package sessions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/app/services/core/users"
	"campuscare-service/internal/app/services/shared/mailer"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type sessionUsecase struct {
	SessionRepository SessionRepository
	DoctorUsecase     doctors.DoctorUsecase
	UserRepository    users.UserRepository
	MailerService     mailer.MailerService
	Log               *zap.Logger
}

func NewSessionUsecase(
	sessionMongoRepository SessionRepository,
	doctorUsecase doctors.DoctorUsecase,
	userMongoRepository users.UserRepository,
	mailerService mailer.MailerService,
	logger *zap.Logger,
) SessionUsecase {
	return &sessionUsecase{
		SessionRepository: sessionMongoRepository,
		DoctorUsecase:     doctorUsecase,
		UserRepository:    userMongoRepository,
		MailerService:     mailerService,
		Log:               logger,
	}
}

func (uc *sessionUsecase) CreateSession(ctx context.Context, studentID string, request *requests.CreateSession) (*responses.Session, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	active, err := uc.SessionRepository.CountActiveForDate(ctx, studentID, request.Date)
	if err != nil {
		return nil, err
	}
	if active >= constvars.MaxActiveSessionsPerDay {
		return nil, exceptions.ErrDailySessionLimit(nil)
	}

	doctor, err := uc.DoctorUsecase.FindByID(ctx, request.DoctorID)
	if err != nil {
		return nil, err
	}
	if doctor.Availability != constvars.DoctorAvailable {
		return nil, exceptions.ErrDoctorNotAvailable(nil)
	}

	booked, err := uc.DoctorUsecase.BookSlot(ctx, request.DoctorID, &requests.SlotRef{
		Date:      request.Date,
		StartTime: request.StartTime,
		EndTime:   request.EndTime,
	})
	if err != nil {
		return nil, err
	}
	if !booked {
		return nil, exceptions.ErrSlotAlreadyBooked(nil)
	}

	slotStart, err := utils.CombineDateAndClock(request.Date, request.StartTime)
	if err != nil {
		return nil, err
	}
	slotEnd, err := utils.CombineDateAndClock(request.Date, request.EndTime)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		Student:      studentID,
		DoctorID:     request.DoctorID,
		PatientName:  request.PatientName,
		Mobile:       request.Mobile,
		SlotStart:    slotStart,
		SlotEnd:      slotEnd,
		Mode:         normalizeMode(request.Mode),
		Notes:        request.Notes,
		Status:       constvars.SessionStatusBooked,
		AllottedDate: request.Date,
	}
	session.SetCreatedAtUpdatedAt()

	sessionID, err := uc.SessionRepository.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}
	session.ID = sessionID

	uc.notifyBooking(ctx, studentID, doctor, session)

	uc.Log.Info("sessionUsecase.CreateSession succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildSessionResponse(session, doctor.Name), nil
}

func (uc *sessionUsecase) UpdateStatus(ctx context.Context, sessionID, actorID, actorRole string, request *requests.UpdateSessionStatus) (*responses.Session, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("sessionUsecase.UpdateStatus called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, err := uc.SessionRepository.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	if actorRole == constvars.RoleDoctor && session.DoctorID != actorID {
		return nil, exceptions.ErrPermissionDenied(nil)
	}

	if session.Status == constvars.SessionStatusCancelled {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}
	if session.Status == constvars.SessionStatusCompleted && request.Status != constvars.SessionStatusCancelled {
		return nil, exceptions.ErrInvalidStatusTransition(nil)
	}

	wasCompleted := session.Status == constvars.SessionStatusCompleted

	switch request.Status {
	case constvars.SessionStatusCompleted:
		now := time.Now()
		session.CompletedAt = &now
		session.Status = constvars.SessionStatusCompleted
		if err := uc.UserRepository.IncrementAttendedCount(ctx, session.Student, 1); err != nil {
			return nil, err
		}
	case constvars.SessionStatusCancelled:
		session.Status = constvars.SessionStatusCancelled
		if wasCompleted {
			if err := uc.UserRepository.IncrementAttendedCount(ctx, session.Student, -1); err != nil {
				return nil, err
			}
		}
		uc.releaseSlot(ctx, session)
	default:
		session.Status = request.Status
	}

	if err := uc.SessionRepository.UpdateSession(ctx, session); err != nil {
		return nil, err
	}

	uc.Log.Info("sessionUsecase.UpdateStatus succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	return buildSessionResponse(session, uc.doctorName(ctx, session.DoctorID)), nil
}

func (uc *sessionUsecase) FindByStudent(ctx context.Context, studentID string) ([]responses.Session, error) {
	sessionList, err := uc.SessionRepository.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	result := make([]responses.Session, 0, len(sessionList))
	for i := range sessionList {
		result = append(result, *buildSessionResponse(&sessionList[i], uc.doctorName(ctx, sessionList[i].DoctorID)))
	}
	return result, nil
}

// FindByDoctor splits the doctor's sessions into upcoming and history around
// now. Day and Time filters are applied in memory since they address derived
// values rather than stored fields.
func (uc *sessionUsecase) FindByDoctor(ctx context.Context, doctorID string, filter *requests.SessionFilter) (*responses.SessionList, error) {
	sessionList, err := uc.SessionRepository.FindByDoctor(ctx, doctorID, filter)
	if err != nil {
		return nil, err
	}

	doctorName := uc.doctorName(ctx, doctorID)
	now := time.Now()
	result := &responses.SessionList{
		Upcoming: []responses.Session{},
		History:  []responses.Session{},
	}
	for i := range sessionList {
		session := &sessionList[i]
		if filter != nil && !matchesDerivedFilters(session, filter) {
			continue
		}
		response := *buildSessionResponse(session, doctorName)
		if session.SlotStart.After(now) && session.Status != constvars.SessionStatusCancelled {
			result.Upcoming = append(result.Upcoming, response)
		} else {
			result.History = append(result.History, response)
		}
	}
	return result, nil
}

// notifyBooking publishes the three booking emails. Delivery is best-effort;
// a broker failure never rolls back the booking.
func (uc *sessionUsecase) notifyBooking(ctx context.Context, studentID string, doctor *responses.Doctor, session *models.Session) {
	mode := session.Mode

	student, err := uc.UserRepository.FindByID(ctx, studentID)
	if err != nil || student == nil {
		uc.Log.Warn("sessionUsecase.notifyBooking could not load student",
			zap.String(constvars.LoggingUserIDKey, studentID),
			zap.Error(err),
		)
		return
	}

	uc.enqueueEmail(ctx, student.Email, fmt.Sprintf(constvars.EmailBodySessionBookedStudent,
		student.Name, doctor.Name, session.AllottedDate, clockOf(session.SlotStart), clockOf(session.SlotEnd), mode))
	uc.enqueueEmail(ctx, doctor.Email, fmt.Sprintf(constvars.EmailBodySessionBookedDoctor,
		doctor.Name, session.PatientName, session.AllottedDate, clockOf(session.SlotStart), clockOf(session.SlotEnd), mode))

	admins, err := uc.UserRepository.FindByRole(ctx, constvars.RoleAdmin)
	if err != nil {
		uc.Log.Warn("sessionUsecase.notifyBooking could not load admins", zap.Error(err))
		return
	}
	for _, admin := range admins {
		uc.enqueueEmail(ctx, admin.Email, fmt.Sprintf(constvars.EmailBodySessionBookedAdmin,
			session.PatientName, doctor.Name, session.AllottedDate, clockOf(session.SlotStart), clockOf(session.SlotEnd), mode))
	}
}

func (uc *sessionUsecase) enqueueEmail(ctx context.Context, to, body string) {
	if to == "" {
		return
	}
	err := uc.MailerService.SendEmail(ctx, &requests.EmailPayload{
		To:      to,
		Subject: constvars.EmailSessionBookedSubject,
		Body:    body,
	})
	if err != nil {
		uc.Log.Warn("sessionUsecase.enqueueEmail failed", zap.Error(err))
	}
}

func (uc *sessionUsecase) releaseSlot(ctx context.Context, session *models.Session) {
	_, err := uc.DoctorUsecase.UnbookSlot(ctx, session.DoctorID, &requests.SlotRef{
		Date:      session.AllottedDate,
		StartTime: clockOf(session.SlotStart),
		EndTime:   clockOf(session.SlotEnd),
	})
	if err != nil {
		uc.Log.Warn("sessionUsecase.releaseSlot failed",
			zap.String(constvars.LoggingDoctorIDKey, session.DoctorID),
			zap.String(constvars.LoggingDateKey, session.AllottedDate),
			zap.Error(err),
		)
	}
}

func (uc *sessionUsecase) doctorName(ctx context.Context, doctorID string) string {
	doctor, err := uc.DoctorUsecase.FindByID(ctx, doctorID)
	if err != nil || doctor == nil {
		return ""
	}
	return doctor.Name
}

func buildSessionResponse(session *models.Session, doctorName string) *responses.Session {
	return &responses.Session{
		ID:           session.ID,
		Student:      session.Student,
		DoctorID:     session.DoctorID,
		DoctorName:   doctorName,
		PatientName:  session.PatientName,
		Mobile:       session.Mobile,
		SlotStart:    session.SlotStart,
		SlotEnd:      session.SlotEnd,
		Mode:         session.Mode,
		Notes:        session.Notes,
		Status:       session.Status,
		AllottedDate: session.AllottedDate,
		CompletedAt:  session.CompletedAt,
	}
}

func matchesDerivedFilters(session *models.Session, filter *requests.SessionFilter) bool {
	if filter.Day != "" {
		parsed, err := utils.ParseDateKey(session.AllottedDate)
		if err != nil || !strings.EqualFold(parsed.Weekday().String(), filter.Day) {
			return false
		}
	}
	if filter.Time != "" && clockOf(session.SlotStart) != filter.Time {
		return false
	}
	return true
}

func normalizeMode(mode string) string {
	switch strings.ToLower(mode) {
	case "offline":
		return constvars.SessionModeOffline
	default:
		return constvars.SessionModeOnline
	}
}

func clockOf(t time.Time) string {
	return t.Format(constvars.ClockLayout)
}
