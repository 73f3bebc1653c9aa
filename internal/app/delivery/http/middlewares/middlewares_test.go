package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"campuscare-service/internal/app/config"
	"campuscare-service/internal/pkg/constvars"
	"campuscare-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestMiddlewares() *Middlewares {
	return NewMiddlewares(zap.NewNop(), &config.InternalConfig{
		JWT: config.JWT{Secret: "test-secret", ExpTimeInHour: 1},
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares()

	t.Run("generates an ID when the client sends none", func(t *testing.T) {
		var gotID string
		var gotClientFlag bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			gotClientFlag, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, gotID)
		assert.False(t, gotClientFlag)
		assert.Equal(t, gotID, rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("echoes the client request ID", func(t *testing.T) {
		var gotID string
		var gotClientFlag bool
		handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotID, _ = r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
			gotClientFlag, _ = r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-abc")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-abc", gotID)
		assert.True(t, gotClientFlag)
		assert.Equal(t, "client-abc", rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestAuthenticate(t *testing.T) {
	m := newTestMiddlewares()

	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("rejects a request without a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		m.Authenticate(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a malformed token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		m.Authenticate(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("rejects a token signed with another secret", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-1", constvars.RoleStudent, "other-secret", 1)
		assert.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		m.Authenticate(okHandler).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("stores the user ID and role on the context", func(t *testing.T) {
		token, err := utils.GenerateJWT("user-1", constvars.RoleDoctor, "test-secret", 1)
		assert.NoError(t, err)

		var gotUserID, gotRole string
		handler := m.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUserID = utils.GetUserID(r.Context())
			gotRole = utils.GetUserRole(r.Context())
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "user-1", gotUserID)
		assert.Equal(t, constvars.RoleDoctor, gotRole)
	})
}

func TestRequireRole(t *testing.T) {
	m := newTestMiddlewares()

	request := func(role string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		token, _ := utils.GenerateJWT("user-1", role, "test-secret", 1)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		return req
	}

	guarded := m.Authenticate(m.RequireRole(constvars.RoleAdmin, constvars.RoleUniversityAdmin)(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	))

	t.Run("allows a listed role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, request(constvars.RoleUniversityAdmin))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("denies an unlisted role", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guarded.ServeHTTP(rec, request(constvars.RoleStudent))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestErrorHandler(t *testing.T) {
	m := newTestMiddlewares()

	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
