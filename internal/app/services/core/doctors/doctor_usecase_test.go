package doctors

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeDoctorRepository struct {
	doctors map[string]*models.Doctor
	nextID  int
}

func newFakeDoctorRepository() *fakeDoctorRepository {
	return &fakeDoctorRepository{doctors: map[string]*models.Doctor{}, nextID: 1}
}

func (r *fakeDoctorRepository) CreateDoctor(_ context.Context, doctorModel *models.Doctor) (string, error) {
	id := fmt.Sprintf("doctor-%d", r.nextID)
	r.nextID++
	copied := *doctorModel
	copied.ID = id
	r.doctors[id] = &copied
	return id, nil
}

func (r *fakeDoctorRepository) FindAll(_ context.Context, filter *requests.DoctorFilter) ([]models.Doctor, int, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		if filter != nil && filter.University != "" && !containsString(d.Universities, filter.University) {
			continue
		}
		out = append(out, *d)
	}
	return out, len(out), nil
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func (r *fakeDoctorRepository) FindByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	d, ok := r.doctors[doctorID]
	if !ok {
		return nil, nil
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDoctorRepository) FindByEmail(_ context.Context, email string) (*models.Doctor, error) {
	for _, d := range r.doctors {
		if d.Email == email {
			copied := *d
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeDoctorRepository) UpdateDoctor(_ context.Context, doctorModel *models.Doctor) error {
	stored, ok := r.doctors[doctorModel.ID]
	if !ok {
		return nil
	}
	copied := *doctorModel
	copied.DateSlots = stored.DateSlots
	copied.TodaySchedule = stored.TodaySchedule
	r.doctors[doctorModel.ID] = &copied
	return nil
}

func (r *fakeDoctorRepository) DeleteByID(_ context.Context, doctorID string) error {
	delete(r.doctors, doctorID)
	return nil
}

func (r *fakeDoctorRepository) SetDateSlots(_ context.Context, doctorID, date string, slotList []models.TimeSlot) error {
	d := r.doctors[doctorID]
	if d.DateSlots == nil {
		d.DateSlots = map[string][]models.TimeSlot{}
	}
	d.DateSlots[date] = slotList
	return nil
}

func (r *fakeDoctorRepository) UnsetDateSlots(_ context.Context, doctorID, date string) error {
	delete(r.doctors[doctorID].DateSlots, date)
	return nil
}

func (r *fakeDoctorRepository) ReplaceAllDateSlots(_ context.Context, doctorID string, dateSlots map[string][]models.TimeSlot, availability string) error {
	d := r.doctors[doctorID]
	d.DateSlots = dateSlots
	if availability != "" {
		d.IsAvailable = availability
	}
	return nil
}

func (r *fakeDoctorRepository) SetTodaySchedule(_ context.Context, doctorID string, schedule models.TodaySchedule) error {
	r.doctors[doctorID].TodaySchedule = schedule
	return nil
}

func (r *fakeDoctorRepository) BookSlot(_ context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	return r.flipSlot(doctorID, date, startTime, endTime, true, false), nil
}

func (r *fakeDoctorRepository) UnbookSlot(_ context.Context, doctorID, date, startTime, endTime string) (bool, error) {
	return r.flipSlot(doctorID, date, startTime, endTime, false, true), nil
}

func (r *fakeDoctorRepository) flipSlot(doctorID, date, startTime, endTime string, from, to bool) bool {
	d, ok := r.doctors[doctorID]
	if !ok {
		return false
	}
	slotList := d.DateSlots[date]
	for i, s := range slotList {
		if s.StartTime == startTime && s.EndTime == endTime && s.IsAvailable == from {
			slotList[i].IsAvailable = to
			return true
		}
	}
	return false
}

type fakeRedisRepository struct {
	values map[string]string
	gets   int
	sets   int
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (r *fakeRedisRepository) Set(_ context.Context, key string, _ interface{}, _ time.Duration) error {
	r.sets++
	r.values[key] = "cached"
	return nil
}

func (r *fakeRedisRepository) Get(_ context.Context, key string) (string, error) {
	r.gets++
	return r.values[key], nil
}

func (r *fakeRedisRepository) Delete(_ context.Context, key string) error {
	delete(r.values, key)
	return nil
}

type fakeStorage struct {
	uploads []string
}

func (s *fakeStorage) UploadBase64Image(_ context.Context, _ []byte, _, fileName, _ string) (string, error) {
	s.uploads = append(s.uploads, fileName)
	return fileName, nil
}

func (s *fakeStorage) GetPresignedURL(_ context.Context, _, fileName string, _ int) (string, error) {
	return "https://storage.local/" + fileName, nil
}

type fakeMailerService struct {
	sent []*requests.EmailPayload
}

func (m *fakeMailerService) SendEmail(_ context.Context, request *requests.EmailPayload) error {
	m.sent = append(m.sent, request)
	return nil
}

func (m *fakeMailerService) ValidateEmail(_ string) bool { return true }

type fakeUserRepository struct {
	users map[string]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[string]*models.User{}}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, userModel *models.User) (string, error) {
	id := fmt.Sprintf("user-%d", len(r.users)+1)
	copied := *userModel
	copied.ID = id
	r.users[id] = &copied
	return id, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepository) FindByRole(_ context.Context, role string) ([]models.User, error) {
	var out []models.User
	for _, u := range r.users {
		if u.Role == role {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, userModel *models.User) error {
	copied := *userModel
	r.users[userModel.ID] = &copied
	return nil
}

func (r *fakeUserRepository) IncrementAttendedCount(_ context.Context, userID string, delta int) error {
	if u, ok := r.users[userID]; ok {
		u.AttendedCount += delta
	}
	return nil
}

func newTestDoctorUsecase(repo *fakeDoctorRepository, redisRepo *fakeRedisRepository, mailerService *fakeMailerService) DoctorUsecase {
	return newTestDoctorUsecaseWithUsers(repo, newFakeUserRepository(), redisRepo, mailerService)
}

func newTestDoctorUsecaseWithUsers(repo *fakeDoctorRepository, userRepo *fakeUserRepository, redisRepo *fakeRedisRepository, mailerService *fakeMailerService) DoctorUsecase {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.UpcomingAvailabilityDays = constvars.DefaultUpcomingDays
	internalConfig.Minio.BucketName = "campuscare"
	internalConfig.Minio.PreSignedUrlExpiryTimeInHours = 1
	return NewDoctorUsecase(repo, userRepo, redisRepo, &fakeStorage{}, mailerService, internalConfig, zap.NewNop())
}

func seedDoctor(repo *fakeDoctorRepository, weekday string) string {
	doctor := &models.Doctor{
		Name:             "Dr. Maya Hartono",
		Specialization:   "Clinical Psychology",
		Email:            "maya@clinic.test",
		Role:             constvars.RoleDoctor,
		AvailabilityType: constvars.AvailabilityTypeBoth,
		IsAvailable:      constvars.DoctorAvailable,
		WeeklySchedule: []models.DaySchedule{
			{Day: weekday, Slots: []models.TimeSlot{
				{StartTime: "09:00", EndTime: "09:30"},
				{StartTime: "10:00", EndTime: "10:30"},
			}},
		},
		DateSlots: map[string][]models.TimeSlot{},
	}
	id, _ := repo.CreateDoctor(context.Background(), doctor)
	return id
}

// nextDateFor returns the next calendar date falling on the given weekday,
// at least one day in the future so todaySchedule never interferes.
func nextDateFor(weekday time.Weekday) string {
	d := time.Now().AddDate(0, 0, 1)
	for d.Weekday() != weekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(constvars.DateKeyLayout)
}

func TestDoctorUsecase_CreateDoctor(t *testing.T) {
	repo := newFakeDoctorRepository()
	mailerService := &fakeMailerService{}
	uc := newTestDoctorUsecase(repo, newFakeRedisRepository(), mailerService)

	request := &requests.CreateDoctor{
		Name:           "Dr. Anita Rao",
		Specialization: "Counselling",
		Email:          "anita@clinic.test",
		WeeklySchedule: []requests.DaySchedule{
			{Day: "Monday", Slots: []requests.TimeSlot{{StartTime: "09:00", EndTime: "10:00"}}},
		},
	}

	t.Run("returns generated password and stores the hash", func(t *testing.T) {
		response, err := uc.CreateDoctor(context.Background(), request)
		assert.NoError(t, err)
		assert.NotEmpty(t, response.GeneratedPassword)
		assert.Len(t, response.GeneratedPassword, constvars.GeneratedPasswordLength)

		stored := repo.doctors[response.ID]
		assert.NotEqual(t, response.GeneratedPassword, stored.Password)
		assert.True(t, utils.CheckPasswordHash(response.GeneratedPassword, stored.Password))
		assert.Equal(t, constvars.RoleDoctor, stored.Role)
		assert.Equal(t, constvars.DoctorAvailable, stored.IsAvailable)
	})

	t.Run("sends credentials mail to the new doctor", func(t *testing.T) {
		assert.Len(t, mailerService.sent, 1)
		assert.Equal(t, "anita@clinic.test", mailerService.sent[0].To)
		assert.Contains(t, mailerService.sent[0].Body, "anita@clinic.test")
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		_, err := uc.CreateDoctor(context.Background(), request)
		assert.Error(t, err)
	})

	t.Run("rejects inverted slot window in weekly schedule", func(t *testing.T) {
		bad := &requests.CreateDoctor{
			Name:           "Dr. Bad Slots",
			Specialization: "Counselling",
			Email:          "bad@clinic.test",
			WeeklySchedule: []requests.DaySchedule{
				{Day: "Monday", Slots: []requests.TimeSlot{{StartTime: "11:00", EndTime: "10:00"}}},
			},
		}
		_, err := uc.CreateDoctor(context.Background(), bad)
		assert.Error(t, err)
	})
}

func TestDoctorUsecase_BookSlot(t *testing.T) {
	repo := newFakeDoctorRepository()
	uc := newTestDoctorUsecase(repo, newFakeRedisRepository(), &fakeMailerService{})
	doctorID := seedDoctor(repo, "Monday")
	date := nextDateFor(time.Monday)

	slotRef := &requests.SlotRef{Date: date, StartTime: "09:00", EndTime: "09:30"}

	t.Run("materializes the weekly template before booking", func(t *testing.T) {
		booked, err := uc.BookSlot(context.Background(), doctorID, slotRef)
		assert.NoError(t, err)
		assert.True(t, booked)

		stored := repo.doctors[doctorID].DateSlots[date]
		assert.Len(t, stored, 2)
		assert.False(t, stored[0].IsAvailable)
		assert.True(t, stored[1].IsAvailable)
	})

	t.Run("second booking of the same slot fails", func(t *testing.T) {
		booked, err := uc.BookSlot(context.Background(), doctorID, slotRef)
		assert.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("unbook makes the slot bookable again", func(t *testing.T) {
		unbooked, err := uc.UnbookSlot(context.Background(), doctorID, slotRef)
		assert.NoError(t, err)
		assert.True(t, unbooked)

		booked, err := uc.BookSlot(context.Background(), doctorID, slotRef)
		assert.NoError(t, err)
		assert.True(t, booked)
	})

	t.Run("booking a slot that does not exist fails", func(t *testing.T) {
		missing := &requests.SlotRef{Date: date, StartTime: "13:00", EndTime: "13:30"}
		booked, err := uc.BookSlot(context.Background(), doctorID, missing)
		assert.NoError(t, err)
		assert.False(t, booked)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, err := uc.BookSlot(context.Background(), "missing", slotRef)
		assert.Error(t, err)
	})
}

func TestDoctorUsecase_GetSlotsForDate(t *testing.T) {
	repo := newFakeDoctorRepository()
	redisRepo := newFakeRedisRepository()
	uc := newTestDoctorUsecase(repo, redisRepo, &fakeMailerService{})
	doctorID := seedDoctor(repo, "Tuesday")
	date := nextDateFor(time.Tuesday)

	t.Run("resolves from the weekly template and caches", func(t *testing.T) {
		slotList, err := uc.GetSlotsForDate(context.Background(), doctorID, date)
		assert.NoError(t, err)
		assert.Len(t, slotList, 2)
		assert.True(t, slotList[0].IsAvailable)
		assert.Equal(t, 1, redisRepo.sets)
	})

	t.Run("booking invalidates the cached date", func(t *testing.T) {
		cacheKey := fmt.Sprintf(constvars.RedisDoctorSlotsKeyFormat, doctorID, date)
		redisRepo.values[cacheKey] = "cached"

		booked, err := uc.BookSlot(context.Background(), doctorID, &requests.SlotRef{Date: date, StartTime: "09:00", EndTime: "09:30"})
		assert.NoError(t, err)
		assert.True(t, booked)
		assert.NotContains(t, redisRepo.values, cacheKey)
	})

	t.Run("booked slot no longer appears in the resolved list", func(t *testing.T) {
		slotList, err := uc.GetSlotsForDate(context.Background(), doctorID, date)
		assert.NoError(t, err)
		assert.Len(t, slotList, 1)
		assert.Equal(t, "10:00", slotList[0].StartTime)
	})
}

func TestDoctorUsecase_SlotListings(t *testing.T) {
	repo := newFakeDoctorRepository()
	uc := newTestDoctorUsecase(repo, newFakeRedisRepository(), &fakeMailerService{})
	doctorID := seedDoctor(repo, "Monday")

	openDate := nextDateFor(time.Monday)
	bookedDate := nextDateFor(time.Friday)
	repo.doctors[doctorID].DateSlots[openDate] = []models.TimeSlot{
		{StartTime: "09:00", EndTime: "09:30", IsAvailable: false},
		{StartTime: "10:00", EndTime: "10:30", IsAvailable: true},
	}
	repo.doctors[doctorID].DateSlots[bookedDate] = []models.TimeSlot{
		{StartTime: "11:00", EndTime: "11:30", IsAvailable: false},
	}

	t.Run("all-slots hides booked slots per date", func(t *testing.T) {
		dateSlots, err := uc.GetAllSlots(context.Background(), doctorID)
		assert.NoError(t, err)
		assert.Len(t, dateSlots[openDate], 1)
		assert.Equal(t, "10:00", dateSlots[openDate][0].StartTime)
		assert.Empty(t, dateSlots[bookedDate])
	})

	t.Run("slot dates list every stored date, fully booked included", func(t *testing.T) {
		dates, err := uc.GetDatesWithSlots(context.Background(), doctorID)
		assert.NoError(t, err)
		assert.Contains(t, dates, openDate)
		assert.Contains(t, dates, bookedDate)
	})

	t.Run("availability listing skips fully booked dates", func(t *testing.T) {
		availability, err := uc.GetAllAvailability(context.Background(), doctorID)
		assert.NoError(t, err)
		assert.Len(t, availability, 1)
		assert.Equal(t, openDate, availability[0].Date)
		assert.Len(t, availability[0].Slots, 1)
	})
}

func TestDoctorUsecase_IsAvailableAtDateTime(t *testing.T) {
	repo := newFakeDoctorRepository()
	uc := newTestDoctorUsecase(repo, newFakeRedisRepository(), &fakeMailerService{})
	doctorID := seedDoctor(repo, "Wednesday")
	date := nextDateFor(time.Wednesday)

	t.Run("contained window is available", func(t *testing.T) {
		available, err := uc.IsAvailableAtDateTime(context.Background(), doctorID, date, "09:00", "09:30")
		assert.NoError(t, err)
		assert.True(t, available)
	})

	t.Run("window outside every slot is not available", func(t *testing.T) {
		available, err := uc.IsAvailableAtDateTime(context.Background(), doctorID, date, "12:00", "12:30")
		assert.NoError(t, err)
		assert.False(t, available)
	})

	t.Run("off-duty doctor is never available", func(t *testing.T) {
		repo.doctors[doctorID].IsAvailable = constvars.DoctorNotAvailable
		available, err := uc.IsAvailableAtDateTime(context.Background(), doctorID, date, "09:00", "09:30")
		assert.NoError(t, err)
		assert.False(t, available)
	})
}

func TestDoctorUsecase_UpdateAllSlots(t *testing.T) {
	repo := newFakeDoctorRepository()
	uc := newTestDoctorUsecase(repo, newFakeRedisRepository(), &fakeMailerService{})
	doctorID := seedDoctor(repo, "Monday")
	date := nextDateFor(time.Monday)

	t.Run("replaces stored dates", func(t *testing.T) {
		err := uc.UpdateAllSlots(context.Background(), doctorID, &requests.BulkDateSlots{
			IsAvailable: constvars.DoctorAvailable,
			DateSlots: map[string][]requests.TimeSlot{
				date: {{StartTime: "14:00", EndTime: "14:30", IsAvailable: true}},
			},
		})
		assert.NoError(t, err)
		assert.Len(t, repo.doctors[doctorID].DateSlots[date], 1)
	})

	t.Run("going off-duty clears every date", func(t *testing.T) {
		err := uc.UpdateAllSlots(context.Background(), doctorID, &requests.BulkDateSlots{
			IsAvailable: constvars.DoctorNotAvailable,
		})
		assert.NoError(t, err)
		assert.Empty(t, repo.doctors[doctorID].DateSlots)
		assert.Equal(t, constvars.DoctorNotAvailable, repo.doctors[doctorID].IsAvailable)
	})
}

func TestDoctorUsecase_FindForStudentUniversity(t *testing.T) {
	repo := newFakeDoctorRepository()
	userRepo := newFakeUserRepository()
	uc := newTestDoctorUsecaseWithUsers(repo, userRepo, newFakeRedisRepository(), &fakeMailerService{})

	attached := &models.Doctor{
		Name:         "Dr. Campus",
		Email:        "campus@clinic.test",
		Universities: []string{"Universitas Merdeka"},
	}
	other := &models.Doctor{
		Name:         "Dr. Elsewhere",
		Email:        "elsewhere@clinic.test",
		Universities: []string{"Universitas Lain"},
	}
	repo.CreateDoctor(context.Background(), attached)
	repo.CreateDoctor(context.Background(), other)

	studentID, _ := userRepo.CreateUser(context.Background(), &models.User{
		Name:       "Sari",
		Email:      "sari@merdeka.ac.id",
		Role:       constvars.RoleStudent,
		University: "Universitas Merdeka",
	})
	unattachedID, _ := userRepo.CreateUser(context.Background(), &models.User{
		Name:  "Admin",
		Email: "admin@campuscare.test",
		Role:  constvars.RoleAdmin,
	})

	t.Run("returns only doctors of the student's university", func(t *testing.T) {
		result, total, err := uc.FindForStudentUniversity(context.Background(), studentID, &requests.DoctorFilter{})
		assert.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Len(t, result, 1)
		assert.Equal(t, "Dr. Campus", result[0].Name)
	})

	t.Run("user without a university sees no doctors", func(t *testing.T) {
		result, total, err := uc.FindForStudentUniversity(context.Background(), unattachedID, &requests.DoctorFilter{})
		assert.NoError(t, err)
		assert.Zero(t, total)
		assert.Empty(t, result)
	})

	t.Run("unknown user is rejected", func(t *testing.T) {
		_, _, err := uc.FindForStudentUniversity(context.Background(), "missing", &requests.DoctorFilter{})
		assert.Error(t, err)
	})
}
