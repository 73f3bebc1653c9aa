package routers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuscare-service/internal/app/models"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/dto/requests"
	"campuscare-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/assert"
)

// stubDoctorUsecase returns canned data so the tests can focus on the
// routing and auth layers.
type stubDoctorUsecase struct{}

func (stubDoctorUsecase) CreateDoctor(_ context.Context, _ *requests.CreateDoctor) (*responses.CreateDoctor, error) {
	return &responses.CreateDoctor{Doctor: responses.Doctor{ID: "doc-1"}}, nil
}

func (stubDoctorUsecase) FindAll(_ context.Context, _ *requests.DoctorFilter) ([]responses.Doctor, int, error) {
	return []responses.Doctor{{ID: "doc-1", Name: "Dr. Maya Hartono"}}, 1, nil
}

func (stubDoctorUsecase) FindForStudentUniversity(_ context.Context, _ string, _ *requests.DoctorFilter) ([]responses.Doctor, int, error) {
	return []responses.Doctor{}, 0, nil
}

func (stubDoctorUsecase) FindByID(_ context.Context, _ string) (*responses.Doctor, error) {
	return &responses.Doctor{ID: "doc-1", Name: "Dr. Maya Hartono"}, nil
}

func (stubDoctorUsecase) UpdateDoctor(_ context.Context, _ string, _ *requests.UpdateDoctor) (*responses.Doctor, error) {
	return &responses.Doctor{ID: "doc-1"}, nil
}

func (stubDoctorUsecase) DeleteDoctor(_ context.Context, _ string) error { return nil }

func (stubDoctorUsecase) GetSlotsForDate(_ context.Context, _, _ string) ([]models.TimeSlot, error) {
	return []models.TimeSlot{{StartTime: "09:00", EndTime: "09:30", IsAvailable: true}}, nil
}

func (stubDoctorUsecase) SetSlotsForDate(_ context.Context, _ string, _ *requests.SetDateSlots) error {
	return nil
}

func (stubDoctorUsecase) ClearSlotsForDate(_ context.Context, _, _ string) error { return nil }

func (stubDoctorUsecase) UpdateAllSlots(_ context.Context, _ string, _ *requests.BulkDateSlots) error {
	return nil
}

func (stubDoctorUsecase) UpdateTodaySchedule(_ context.Context, _ string, _ *requests.UpdateTodaySchedule) error {
	return nil
}

func (stubDoctorUsecase) BookSlot(_ context.Context, _ string, _ *requests.SlotRef) (bool, error) {
	return true, nil
}

func (stubDoctorUsecase) UnbookSlot(_ context.Context, _ string, _ *requests.SlotRef) (bool, error) {
	return true, nil
}

func (stubDoctorUsecase) GetUpcomingAvailability(_ context.Context, doctorID string, _ int) (*responses.UpcomingAvailability, error) {
	return &responses.UpcomingAvailability{DoctorID: doctorID}, nil
}

func (stubDoctorUsecase) GetAllSlots(_ context.Context, _ string) (map[string][]models.TimeSlot, error) {
	return map[string][]models.TimeSlot{}, nil
}

func (stubDoctorUsecase) GetAllAvailability(_ context.Context, _ string) ([]responses.DateSlots, error) {
	return []responses.DateSlots{}, nil
}

func (stubDoctorUsecase) GetDatesWithSlots(_ context.Context, _ string) ([]string, error) {
	return []string{}, nil
}

func (stubDoctorUsecase) IsAvailableAtDateTime(_ context.Context, _, _, _, _ string) (bool, error) {
	return true, nil
}

func TestDoctorRouteAuth(t *testing.T) {
	router := newTestRouter()

	t.Run("profile and slot reads need no token", func(t *testing.T) {
		for _, path := range []string{
			"/api/v1/doctors/",
			"/api/v1/doctors/doc-1",
			"/api/v1/doctors/doc-1/slots/2026-09-07",
			"/api/v1/doctors/doc-1/availability/2026-09-07",
			"/api/v1/doctors/doc-1/slot-dates",
			"/api/v1/doctors/doc-1/upcoming-availability",
		} {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, rec.Code, path)
		}
	})

	t.Run("booking requires a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/doctors/doc-1/book-slot", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("students cannot manage slots", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/doctors/doc-1/book-slot", nil)
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleStudent))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("doctors can book", func(t *testing.T) {
		payload := []byte(`{"date":"2026-09-07","startTime":"09:00","endTime":"09:30"}`)
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/doctors/doc-1/book-slot", bytes.NewReader(payload))
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleDoctor))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("my-university stays student-only", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/doctors/my-university", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/doctors/my-university", nil)
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleStudent))
		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
