package appointments

import (
	"context"
	"fmt"
	"testing"
	"time"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeAppointmentRepository struct {
	appointments map[string]*models.Appointment
	nextID       int
}

func newFakeAppointmentRepository() *fakeAppointmentRepository {
	return &fakeAppointmentRepository{appointments: map[string]*models.Appointment{}, nextID: 1}
}

func (r *fakeAppointmentRepository) CreateAppointment(_ context.Context, appointmentModel *models.Appointment) (string, error) {
	id := fmt.Sprintf("appointment-%d", r.nextID)
	r.nextID++
	copied := *appointmentModel
	copied.ID = id
	r.appointments[id] = &copied
	return id, nil
}

func (r *fakeAppointmentRepository) FindAll(_ context.Context, filter *requests.AppointmentFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, a := range r.appointments {
		if filter.Student != "" && a.Student != filter.Student {
			continue
		}
		if filter.Doctor != "" && a.Doctor != filter.Doctor {
			continue
		}
		if filter.Status != "" && a.Status != filter.Status {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *fakeAppointmentRepository) FindByID(_ context.Context, appointmentID string) (*models.Appointment, error) {
	a, ok := r.appointments[appointmentID]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (r *fakeAppointmentRepository) UpdateStatus(_ context.Context, appointmentID, status string) error {
	r.appointments[appointmentID].Status = status
	return nil
}

func (r *fakeAppointmentRepository) CountByStudentAndStatus(_ context.Context, studentID, status string) (int, error) {
	count := 0
	for _, a := range r.appointments {
		if a.Student == studentID && a.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *fakeAppointmentRepository) CountUpcoming(_ context.Context, studentID string, after time.Time) (int, error) {
	count := 0
	for _, a := range r.appointments {
		if a.Student == studentID && a.Status == constvars.AppointmentStatusApproved && !a.SlotStart.Before(after) {
			count++
		}
	}
	return count, nil
}

type stubDoctorRepository struct {
	doctor *models.Doctor
}

func (r *stubDoctorRepository) CreateDoctor(_ context.Context, _ *models.Doctor) (string, error) {
	return "", nil
}
func (r *stubDoctorRepository) FindAll(_ context.Context, _ *requests.DoctorFilter) ([]models.Doctor, int, error) {
	return nil, 0, nil
}
func (r *stubDoctorRepository) FindByID(_ context.Context, doctorID string) (*models.Doctor, error) {
	if r.doctor != nil && r.doctor.ID == doctorID {
		return r.doctor, nil
	}
	return nil, nil
}
func (r *stubDoctorRepository) FindByEmail(_ context.Context, _ string) (*models.Doctor, error) {
	return nil, nil
}
func (r *stubDoctorRepository) UpdateDoctor(_ context.Context, _ *models.Doctor) error { return nil }
func (r *stubDoctorRepository) DeleteByID(_ context.Context, _ string) error           { return nil }
func (r *stubDoctorRepository) SetDateSlots(_ context.Context, _, _ string, _ []models.TimeSlot) error {
	return nil
}
func (r *stubDoctorRepository) UnsetDateSlots(_ context.Context, _, _ string) error { return nil }
func (r *stubDoctorRepository) ReplaceAllDateSlots(_ context.Context, _ string, _ map[string][]models.TimeSlot, _ string) error {
	return nil
}
func (r *stubDoctorRepository) SetTodaySchedule(_ context.Context, _ string, _ models.TodaySchedule) error {
	return nil
}
func (r *stubDoctorRepository) BookSlot(_ context.Context, _, _, _, _ string) (bool, error) {
	return false, nil
}
func (r *stubDoctorRepository) UnbookSlot(_ context.Context, _, _, _, _ string) (bool, error) {
	return false, nil
}

func availableDoctor(date string) *models.Doctor {
	return &models.Doctor{
		ID:          "doctor-1",
		Name:        "Dr. Maya",
		IsAvailable: constvars.DoctorAvailable,
		DateSlots: map[string][]models.TimeSlot{
			date: {{StartTime: "09:00", EndTime: "11:00", IsAvailable: true}},
		},
	}
}

func TestAppointmentUsecase_CreateAppointment(t *testing.T) {
	date := time.Now().AddDate(0, 0, 3).Format(constvars.DateKeyLayout)
	repo := newFakeAppointmentRepository()
	doctorRepo := &stubDoctorRepository{doctor: availableDoctor(date)}
	uc := NewAppointmentUsecase(repo, doctorRepo, zap.NewNop())

	t.Run("contained window creates a pending appointment", func(t *testing.T) {
		response, err := uc.CreateAppointment(context.Background(), "student-1", &requests.CreateAppointment{
			DoctorID:  "doctor-1",
			Date:      date,
			StartTime: "09:30",
			EndTime:   "10:00",
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusPending, response.Status)
		assert.Equal(t, "Dr. Maya", response.DoctorName)
		assert.Equal(t, date+" 09:30", response.SlotStart.Format("2006-01-02 15:04"))
	})

	t.Run("window outside the doctor's slots is rejected", func(t *testing.T) {
		_, err := uc.CreateAppointment(context.Background(), "student-1", &requests.CreateAppointment{
			DoctorID:  "doctor-1",
			Date:      date,
			StartTime: "15:00",
			EndTime:   "15:30",
		})
		assert.Error(t, err)
	})

	t.Run("off-duty doctor is rejected", func(t *testing.T) {
		doctorRepo.doctor.IsAvailable = constvars.DoctorNotAvailable
		_, err := uc.CreateAppointment(context.Background(), "student-1", &requests.CreateAppointment{
			DoctorID:  "doctor-1",
			Date:      date,
			StartTime: "09:30",
			EndTime:   "10:00",
		})
		assert.Error(t, err)
		doctorRepo.doctor.IsAvailable = constvars.DoctorAvailable
	})

	t.Run("unknown doctor", func(t *testing.T) {
		_, err := uc.CreateAppointment(context.Background(), "student-1", &requests.CreateAppointment{
			DoctorID:  "doctor-404",
			Date:      date,
			StartTime: "09:30",
			EndTime:   "10:00",
		})
		assert.Error(t, err)
	})
}

func TestAppointmentUsecase_UpdateStatus(t *testing.T) {
	date := time.Now().AddDate(0, 0, 3).Format(constvars.DateKeyLayout)
	repo := newFakeAppointmentRepository()
	doctorRepo := &stubDoctorRepository{doctor: availableDoctor(date)}
	uc := NewAppointmentUsecase(repo, doctorRepo, zap.NewNop())

	created, err := uc.CreateAppointment(context.Background(), "student-1", &requests.CreateAppointment{
		DoctorID:  "doctor-1",
		Date:      date,
		StartTime: "09:00",
		EndTime:   "09:30",
	})
	assert.NoError(t, err)

	t.Run("doctor cannot touch another doctor's appointment", func(t *testing.T) {
		_, err := uc.UpdateStatus(context.Background(), created.ID, "doctor-2", constvars.RoleDoctor,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusApproved})
		assert.Error(t, err)
	})

	t.Run("own doctor approves", func(t *testing.T) {
		response, err := uc.UpdateStatus(context.Background(), created.ID, "doctor-1", constvars.RoleDoctor,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusApproved})
		assert.NoError(t, err)
		assert.Equal(t, constvars.AppointmentStatusApproved, response.Status)
	})

	t.Run("completed is terminal", func(t *testing.T) {
		_, err := uc.UpdateStatus(context.Background(), created.ID, "admin-1", constvars.RoleAdmin,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusCompleted})
		assert.NoError(t, err)

		_, err = uc.UpdateStatus(context.Background(), created.ID, "admin-1", constvars.RoleAdmin,
			&requests.UpdateAppointmentStatus{Status: constvars.AppointmentStatusPending})
		assert.Error(t, err)
	})
}

func TestAppointmentUsecase_GetAttendanceCounts(t *testing.T) {
	repo := newFakeAppointmentRepository()
	uc := NewAppointmentUsecase(repo, &stubDoctorRepository{}, zap.NewNop())

	now := time.Now()
	repo.appointments["a1"] = &models.Appointment{ID: "a1", Student: "student-1", Status: constvars.AppointmentStatusCompleted}
	repo.appointments["a2"] = &models.Appointment{ID: "a2", Student: "student-1", Status: constvars.AppointmentStatusCompleted}
	repo.appointments["a3"] = &models.Appointment{ID: "a3", Student: "student-1", Status: constvars.AppointmentStatusApproved, SlotStart: now.Add(24 * time.Hour)}
	repo.appointments["a4"] = &models.Appointment{ID: "a4", Student: "student-1", Status: constvars.AppointmentStatusApproved, SlotStart: now.Add(-24 * time.Hour)}
	repo.appointments["a5"] = &models.Appointment{ID: "a5", Student: "student-2", Status: constvars.AppointmentStatusCompleted}

	counts, err := uc.GetAttendanceCounts(context.Background(), "student-1")
	assert.NoError(t, err)
	assert.Equal(t, 2, counts.Attended)
	assert.Equal(t, 1, counts.Upcoming)
}
