package routers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/app/delivery/http/middlewares"
	"campuscare-service/internal/app/services/core/appointments"
	"campuscare-service/internal/app/services/core/assessments"
	"campuscare-service/internal/app/services/core/auth"
	"campuscare-service/internal/app/services/core/doctors"
	"campuscare-service/internal/app/services/core/reports"
	"campuscare-service/internal/app/services/core/sessions"
	"campuscare-service/internal/app/services/core/universities"
	"campuscare-service/internal/app/services/core/users"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testJWTSecret = "router-test-secret"

// newTestRouter mounts the full route tree with a live assessment catalog
// and a stubbed doctor usecase. The remaining controllers carry nil
// usecases; their handlers are not hit here.
func newTestRouter() *chi.Mux {
	internalConfig := &config.InternalConfig{}
	internalConfig.App.EndpointPrefix = "api"
	internalConfig.App.Version = "v1"
	internalConfig.JWT = config.JWT{Secret: testJWTSecret, ExpTimeInHour: 1}

	log := zap.NewNop()
	m := middlewares.NewMiddlewares(log, internalConfig)

	assessmentUsecase := assessments.NewAssessmentUsecase(assessments.NewCatalog(), log)
	assessmentController := assessments.NewAssessmentController(log, assessmentUsecase)

	router := chi.NewRouter()
	SetupRoutes(
		router,
		internalConfig,
		m,
		auth.NewAuthController(log, nil),
		users.NewUserController(log, nil, internalConfig),
		doctors.NewDoctorController(log, stubDoctorUsecase{}, internalConfig),
		appointments.NewAppointmentController(log, nil),
		sessions.NewSessionController(log, nil),
		assessmentController,
		universities.NewUniversityController(log, nil),
		reports.NewReportController(log, nil),
	)
	return router
}

func authHeader(t *testing.T, role string) string {
	t.Helper()
	token, err := utils.GenerateJWT("user-1", role, testJWTSecret, 1)
	assert.NoError(t, err)
	return "Bearer " + token
}

func TestAssessmentRoutes(t *testing.T) {
	router := newTestRouter()

	t.Run("catalog reads need no token, submitting does", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/assessments/", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/assessments/depression", nil))
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/assessments/depression/submit", bytes.NewReader([]byte(`{"answers":{}}`))))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("lists the catalog", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/", nil)
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleStudent))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Success bool `json:"success"`
			Data    []struct {
				Slug      string `json:"slug"`
				ItemCount int    `json:"itemCount"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.NotEmpty(t, body.Data)

		slugs := make([]string, 0, len(body.Data))
		for _, entry := range body.Data {
			slugs = append(slugs, entry.Slug)
			assert.Positive(t, entry.ItemCount)
		}
		assert.Contains(t, slugs, "depression")
		assert.Contains(t, slugs, "gad7")
	})

	t.Run("detail keeps options but hides weights", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/depression", nil)
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleStudent))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"options"`)
		assert.NotContains(t, rec.Body.String(), `"weights"`)
	})

	t.Run("unknown slug is 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/assessments/unknown", nil)
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleStudent))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("scores a submission", func(t *testing.T) {
		payload, _ := json.Marshal(map[string]interface{}{
			"answers": map[string]string{
				"q1": "Never",
				"q2": "Yes",
				"q3": "Never",
			},
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/assessments/depression/submit", bytes.NewReader(payload))
		req.Header.Set(constvars.HeaderAuthorization, authHeader(t, constvars.RoleStudent))
		req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				Score      int    `json:"score"`
				MaxScore   int    `json:"maxScore"`
				Percentage int    `json:"percentage"`
				Status     string `json:"status"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, body.Data.MaxScore, body.Data.Score)
		assert.Equal(t, 100, body.Data.Percentage)
		assert.Equal(t, "Low risk", body.Data.Status)
	})
}
