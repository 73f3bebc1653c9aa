package doctors

import (
	"context"
	"fmt"
	"time"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/models"
	"campuscare-service/internal/app/services/core/slots"
	"campuscare-service/internal/app/services/core/users"
	"campuscare-service/internal/app/services/shared/mailer"
	"campuscare-service/internal/app/services/shared/redis"
	"campuscare-service/internal/app/services/shared/storage"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"
	"campuscare-service/internal/pkg/exceptions"
	"campuscare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const slotCacheTTL = 5 * time.Minute

type doctorUsecase struct {
	DoctorRepository DoctorRepository
	UserRepository   users.UserRepository
	RedisRepository  redis.RedisRepository
	MinioStorage     storage.Storage
	MailerService    mailer.MailerService
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewDoctorUsecase(
	doctorMongoRepository DoctorRepository,
	userMongoRepository users.UserRepository,
	redisRepository redis.RedisRepository,
	minioStorage storage.Storage,
	mailerService mailer.MailerService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) DoctorUsecase {
	return &doctorUsecase{
		DoctorRepository: doctorMongoRepository,
		UserRepository:   userMongoRepository,
		RedisRepository:  redisRepository,
		MinioStorage:     minioStorage,
		MailerService:    mailerService,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *doctorUsecase) CreateDoctor(ctx context.Context, request *requests.CreateDoctor) (*responses.CreateDoctor, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.CreateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingDoctor, err := uc.DoctorRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingDoctor != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	weeklySchedule, err := buildWeeklySchedule(request.WeeklySchedule)
	if err != nil {
		return nil, exceptions.ErrInvalidSlotWindow(err)
	}

	plainPassword, err := utils.GeneratePassword(constvars.GeneratedPasswordLength)
	if err != nil {
		return nil, exceptions.ErrServerProcess(err)
	}
	hashedPassword, err := utils.HashPassword(plainPassword)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	availabilityType := request.AvailabilityType
	if availabilityType == "" {
		availabilityType = constvars.AvailabilityTypeBoth
	}

	doctor := &models.Doctor{
		Name:             request.Name,
		Specialization:   request.Specialization,
		Email:            request.Email,
		Phone:            request.Phone,
		Password:         hashedPassword,
		Role:             constvars.RoleDoctor,
		Experience:       request.Experience,
		Fees:             request.Fees,
		Hospital:         request.Hospital,
		AvailabilityType: availabilityType,
		IsAvailable:      constvars.DoctorAvailable,
		WeeklySchedule:   weeklySchedule,
		DateSlots:        map[string][]models.TimeSlot{},
		Universities:     request.Universities,
	}
	doctor.SetCreatedAtUpdatedAt()

	if len(request.ImageData) > 0 {
		fileName := utils.GenerateFileName(constvars.ImageDoctorPicturePrefix, request.Email, request.ImageExtension)
		uploadedName, err := uc.MinioStorage.UploadBase64Image(ctx, request.ImageData, uc.InternalConfig.Minio.BucketName, fileName, request.ImageExtension)
		if err != nil {
			return nil, err
		}
		doctor.ImageUrl = uploadedName
	}

	doctorID, err := uc.DoctorRepository.CreateDoctor(ctx, doctor)
	if err != nil {
		return nil, err
	}
	doctor.ID = doctorID

	// Credentials mail is best-effort and never fails doctor creation.
	emailPayload := &requests.EmailPayload{
		To:      doctor.Email,
		Subject: constvars.EmailDoctorCredentialsSubject,
		Body:    fmt.Sprintf(constvars.EmailBodyDoctorCredentials, doctor.Name, doctor.Email, plainPassword),
	}
	if err := uc.MailerService.SendEmail(ctx, emailPayload); err != nil {
		uc.Log.Error("doctorUsecase.CreateDoctor failed to enqueue credentials email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	uc.Log.Info("doctorUsecase.CreateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	response := &responses.CreateDoctor{
		Doctor:            *uc.buildDoctorResponse(ctx, doctor),
		GeneratedPassword: plainPassword,
	}
	return response, nil
}

func (uc *doctorUsecase) FindAll(ctx context.Context, filter *requests.DoctorFilter) ([]responses.Doctor, int, error) {
	doctorList, total, err := uc.DoctorRepository.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	result := make([]responses.Doctor, 0, len(doctorList))
	for i := range doctorList {
		result = append(result, *uc.buildDoctorResponse(ctx, &doctorList[i]))
	}
	return result, total, nil
}

// FindForStudentUniversity lists the doctors attached to the calling
// student's university. A student without a matched university sees none.
func (uc *doctorUsecase) FindForStudentUniversity(ctx context.Context, studentID string, filter *requests.DoctorFilter) ([]responses.Doctor, int, error) {
	student, err := uc.UserRepository.FindByID(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}
	if student == nil {
		return nil, 0, exceptions.ErrUserNotExist(nil)
	}
	if student.University == "" {
		return []responses.Doctor{}, 0, nil
	}

	filter.University = student.University
	return uc.FindAll(ctx, filter)
}

func (uc *doctorUsecase) FindByID(ctx context.Context, doctorID string) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, doctorID string, request *requests.UpdateDoctor) (*responses.Doctor, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if request.Name != "" {
		doctor.Name = request.Name
	}
	if request.Specialization != "" {
		doctor.Specialization = request.Specialization
	}
	if request.Phone != "" {
		doctor.Phone = request.Phone
	}
	if request.Experience > 0 {
		doctor.Experience = request.Experience
	}
	if request.Fees > 0 {
		doctor.Fees = request.Fees
	}
	if request.Hospital != "" {
		doctor.Hospital = request.Hospital
	}
	if request.AvailabilityType != "" {
		doctor.AvailabilityType = request.AvailabilityType
	}
	if len(request.Universities) > 0 {
		doctor.Universities = request.Universities
	}
	if len(request.WeeklySchedule) > 0 {
		weeklySchedule, err := buildWeeklySchedule(request.WeeklySchedule)
		if err != nil {
			return nil, exceptions.ErrInvalidSlotWindow(err)
		}
		doctor.WeeklySchedule = weeklySchedule
	}
	if len(request.ImageData) > 0 {
		fileName := utils.GenerateFileName(constvars.ImageDoctorPicturePrefix, doctor.Email, request.ImageExtension)
		uploadedName, err := uc.MinioStorage.UploadBase64Image(ctx, request.ImageData, uc.InternalConfig.Minio.BucketName, fileName, request.ImageExtension)
		if err != nil {
			return nil, err
		}
		doctor.ImageUrl = uploadedName
	}

	if err := uc.DoctorRepository.UpdateDoctor(ctx, doctor); err != nil {
		return nil, err
	}
	return uc.buildDoctorResponse(ctx, doctor), nil
}

func (uc *doctorUsecase) DeleteDoctor(ctx context.Context, doctorID string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}
	return uc.DoctorRepository.DeleteByID(ctx, doctorID)
}

func (uc *doctorUsecase) GetSlotsForDate(ctx context.Context, doctorID, date string) ([]models.TimeSlot, error) {
	cacheKey := fmt.Sprintf(constvars.RedisDoctorSlotsKeyFormat, doctorID, date)
	cached, err := uc.RedisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var slotList []models.TimeSlot
		if err := json.Unmarshal([]byte(cached), &slotList); err == nil {
			return slotList, nil
		}
	}

	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	resolved := slots.ResolveForDate(doctor, date, utils.TodayDateKey())

	if err := uc.RedisRepository.Set(ctx, cacheKey, resolved, slotCacheTTL); err != nil {
		uc.Log.Warn("doctorUsecase.GetSlotsForDate failed to cache slots",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
	return resolved, nil
}

func (uc *doctorUsecase) SetSlotsForDate(ctx context.Context, doctorID string, request *requests.SetDateSlots) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	slotList := buildSlotList(request.Slots)
	if err := slots.ValidateSlots(slotList); err != nil {
		return exceptions.ErrInvalidSlotWindow(err)
	}

	if err := uc.DoctorRepository.SetDateSlots(ctx, doctorID, request.Date, slotList); err != nil {
		return err
	}
	uc.invalidateSlotCache(ctx, doctorID, request.Date)
	return nil
}

func (uc *doctorUsecase) ClearSlotsForDate(ctx context.Context, doctorID, date string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	if err := uc.DoctorRepository.UnsetDateSlots(ctx, doctorID, date); err != nil {
		return err
	}
	uc.invalidateSlotCache(ctx, doctorID, date)
	return nil
}

func (uc *doctorUsecase) UpdateAllSlots(ctx context.Context, doctorID string, request *requests.BulkDateSlots) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	if request.IsAvailable == constvars.DoctorNotAvailable {
		// Going off-duty clears every stored date wholesale.
		err = uc.DoctorRepository.ReplaceAllDateSlots(ctx, doctorID, map[string][]models.TimeSlot{}, constvars.DoctorNotAvailable)
		if err != nil {
			return err
		}
		for date := range doctor.DateSlots {
			uc.invalidateSlotCache(ctx, doctorID, date)
		}
		return nil
	}

	dateSlots := make(map[string][]models.TimeSlot, len(request.DateSlots))
	for date, slotRequests := range request.DateSlots {
		if len(slotRequests) == 0 {
			continue
		}
		slotList := buildSlotList(slotRequests)
		if err := slots.ValidateSlots(slotList); err != nil {
			return exceptions.ErrInvalidSlotWindow(err)
		}
		dateSlots[date] = slotList
	}

	if err := uc.DoctorRepository.ReplaceAllDateSlots(ctx, doctorID, dateSlots, constvars.DoctorAvailable); err != nil {
		return err
	}
	for date := range doctor.DateSlots {
		uc.invalidateSlotCache(ctx, doctorID, date)
	}
	for date := range dateSlots {
		uc.invalidateSlotCache(ctx, doctorID, date)
	}
	return nil
}

func (uc *doctorUsecase) UpdateTodaySchedule(ctx context.Context, doctorID string, request *requests.UpdateTodaySchedule) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}

	slotList := buildSlotList(request.Slots)
	if err := slots.ValidateSlots(slotList); err != nil {
		return exceptions.ErrInvalidSlotWindow(err)
	}

	schedule := models.TodaySchedule{
		Date:      request.Date,
		Available: request.Available,
		Slots:     slotList,
	}
	if err := uc.DoctorRepository.SetTodaySchedule(ctx, doctorID, schedule); err != nil {
		return err
	}
	uc.invalidateSlotCache(ctx, doctorID, request.Date)
	return nil
}

// BookSlot materializes the date from the weekly template when it has no
// stored entry yet, then attempts the conditional flip. A false return
// means the slot is already booked or does not exist for that date.
func (uc *doctorUsecase) BookSlot(ctx context.Context, doctorID string, request *requests.SlotRef) (bool, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("doctorUsecase.BookSlot called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if err := uc.materializeDate(ctx, doctorID, request.Date); err != nil {
		return false, err
	}

	booked, err := uc.DoctorRepository.BookSlot(ctx, doctorID, request.Date, request.StartTime, request.EndTime)
	if err != nil {
		return false, err
	}
	uc.invalidateSlotCache(ctx, doctorID, request.Date)

	uc.Log.Info("doctorUsecase.BookSlot finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
		zap.Bool(constvars.LoggingSuccessKey, booked),
	)
	return booked, nil
}

func (uc *doctorUsecase) UnbookSlot(ctx context.Context, doctorID string, request *requests.SlotRef) (bool, error) {
	if err := uc.materializeDate(ctx, doctorID, request.Date); err != nil {
		return false, err
	}

	unbooked, err := uc.DoctorRepository.UnbookSlot(ctx, doctorID, request.Date, request.StartTime, request.EndTime)
	if err != nil {
		return false, err
	}
	uc.invalidateSlotCache(ctx, doctorID, request.Date)
	return unbooked, nil
}

func (uc *doctorUsecase) GetUpcomingAvailability(ctx context.Context, doctorID string, days int) (*responses.UpcomingAvailability, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	if days <= 0 {
		days = uc.InternalConfig.App.UpcomingAvailabilityDays
	}

	upcoming := slots.UpcomingAvailability(doctor, time.Now(), days)
	daySlots := make([]responses.DateSlots, 0, len(upcoming))
	for _, d := range upcoming {
		daySlots = append(daySlots, responses.DateSlots{Date: d.Date, Slots: d.Slots})
	}
	return &responses.UpcomingAvailability{DoctorID: doctorID, Days: daySlots}, nil
}

func (uc *doctorUsecase) GetAllSlots(ctx context.Context, doctorID string) (map[string][]models.TimeSlot, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	// Booked slots stay stored for unbooking but are never surfaced.
	available := make(map[string][]models.TimeSlot, len(doctor.DateSlots))
	for date, slotList := range doctor.DateSlots {
		available[date] = slots.AvailableOnly(slotList)
	}
	return available, nil
}

// GetAllAvailability returns only the still-bookable slots per stored date.
func (uc *doctorUsecase) GetAllAvailability(ctx context.Context, doctorID string) ([]responses.DateSlots, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}

	out := make([]responses.DateSlots, 0, len(doctor.DateSlots))
	for _, date := range slots.DatesWithAvailableSlots(doctor) {
		out = append(out, responses.DateSlots{Date: date, Slots: slots.AvailableOnly(doctor.DateSlots[date])})
	}
	return out, nil
}

func (uc *doctorUsecase) GetDatesWithSlots(ctx context.Context, doctorID string) ([]string, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil {
		return nil, exceptions.ErrDoctorNotFound(nil)
	}
	return slots.DatesWithSlots(doctor), nil
}

// IsAvailableAtDateTime uses interval containment, unlike booking which
// requires an exact (startTime, endTime) match.
func (uc *doctorUsecase) IsAvailableAtDateTime(ctx context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return false, err
	}
	if doctor == nil {
		return false, exceptions.ErrDoctorNotFound(nil)
	}
	if doctor.IsAvailable != constvars.DoctorAvailable {
		return false, nil
	}

	resolved := slots.ResolveForDate(doctor, date, utils.TodayDateKey())
	return slots.ContainsInterval(resolved, startTime, endTime), nil
}

// materializeDate copies the weekly template into the per-date map when the
// date has no stored entry. Resolution stays read-only; only booking paths
// write through here.
func (uc *doctorUsecase) materializeDate(ctx context.Context, doctorID, date string) error {
	doctor, err := uc.DoctorRepository.FindByID(ctx, doctorID)
	if err != nil {
		return err
	}
	if doctor == nil {
		return exceptions.ErrDoctorNotFound(nil)
	}
	if _, ok := doctor.DateSlots[date]; ok {
		return nil
	}

	materialized := slots.MaterializeFromWeekly(doctor, date)
	if materialized == nil {
		materialized = []models.TimeSlot{}
	}
	return uc.DoctorRepository.SetDateSlots(ctx, doctorID, date, materialized)
}

func (uc *doctorUsecase) invalidateSlotCache(ctx context.Context, doctorID, date string) {
	cacheKey := fmt.Sprintf(constvars.RedisDoctorSlotsKeyFormat, doctorID, date)
	if err := uc.RedisRepository.Delete(ctx, cacheKey); err != nil {
		uc.Log.Warn("doctorUsecase.invalidateSlotCache failed",
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
}

func (uc *doctorUsecase) buildDoctorResponse(ctx context.Context, doctor *models.Doctor) *responses.Doctor {
	today := utils.TodayDateKey()
	todaySlots := slots.ResolveForDate(doctor, today, today)
	if todaySlots == nil {
		todaySlots = []models.TimeSlot{}
	}

	imageURL := ""
	if doctor.ImageUrl != "" {
		presigned, err := uc.MinioStorage.GetPresignedURL(ctx, uc.InternalConfig.Minio.BucketName, doctor.ImageUrl, uc.InternalConfig.Minio.PreSignedUrlExpiryTimeInHours)
		if err == nil {
			imageURL = presigned
		}
	}

	return &responses.Doctor{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Specialization:   doctor.Specialization,
		Email:            doctor.Email,
		Phone:            doctor.Phone,
		Experience:       doctor.Experience,
		Fees:             doctor.Fees,
		Hospital:         doctor.Hospital,
		AvailabilityType: doctor.AvailabilityType,
		Availability:     doctor.IsAvailable,
		Image:            imageURL,
		Universities:     doctor.Universities,
		TodaySlots:       todaySlots,
		WeeklySchedule:   doctor.WeeklySchedule,
	}
}

func buildSlotList(slotRequests []requests.TimeSlot) []models.TimeSlot {
	slotList := make([]models.TimeSlot, len(slotRequests))
	for i, s := range slotRequests {
		slotList[i] = models.TimeSlot{
			StartTime:   s.StartTime,
			EndTime:     s.EndTime,
			IsAvailable: s.IsAvailable,
		}
	}
	return slotList
}

func buildWeeklySchedule(dayRequests []requests.DaySchedule) ([]models.DaySchedule, error) {
	weeklySchedule := make([]models.DaySchedule, len(dayRequests))
	for i, day := range dayRequests {
		slotList := buildSlotList(day.Slots)
		if err := slots.ValidateSlots(slotList); err != nil {
			return nil, err
		}
		weeklySchedule[i] = models.DaySchedule{Day: day.Day, Slots: slotList}
	}
	return weeklySchedule, nil
}
