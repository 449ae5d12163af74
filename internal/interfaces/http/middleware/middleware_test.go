package middleware

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"intake/internal/infrastructure/ratelimit"
	"intake/internal/shared/constants"
	"intake/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	engine.GET("/probe", append(handlers, func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextKeyUsername))
	})...)
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// =====================================================================
// Basic auth
// =====================================================================

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name       string
		stored     string
		user, pass string
		noHeader   bool
		wantStatus int
	}{
		{name: "plain password accepted", stored: "s3cret", user: "admin", pass: "s3cret", wantStatus: http.StatusOK},
		{name: "bcrypt hash accepted", stored: string(hash), user: "admin", pass: "s3cret", wantStatus: http.StatusOK},
		{name: "wrong password", stored: "s3cret", user: "admin", pass: "guess", wantStatus: http.StatusUnauthorized},
		{name: "wrong bcrypt password", stored: string(hash), user: "admin", pass: "guess", wantStatus: http.StatusUnauthorized},
		{name: "wrong username", stored: "s3cret", user: "root", pass: "s3cret", wantStatus: http.StatusUnauthorized},
		{name: "missing header", stored: "s3cret", noHeader: true, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(Credentials{Username: "admin", Password: tt.stored}, logger.NewNopLogger())
			engine := newEngine(m.RequireAuth())

			req := httptest.NewRequest(http.MethodGet, "/probe", nil)
			if !tt.noHeader {
				req.SetBasicAuth(tt.user, tt.pass)
			}
			w := serve(engine, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Equal(t, `Basic realm="intake"`, w.Header().Get(constants.HeaderWWWAuthenticate))
				assert.Contains(t, w.Body.String(), `"unauthorized"`)
			} else {
				assert.Equal(t, "admin", w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(Credentials{Username: "admin", Password: "s3cret"}, logger.NewNopLogger())
	engine := newEngine(m.RequireAuth())

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(constants.HeaderAuthorization, "Bearer abc.def")
	w := serve(engine, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// =====================================================================
// Permission
// =====================================================================

type stubAuthorizer struct {
	allowed bool
	err     error
	calls   int
}

func (s *stubAuthorizer) Enforce(subject, resource, action string) (bool, error) {
	s.calls++
	return s.allowed, s.err
}

func TestPermissionMiddleware_RequirePermission(t *testing.T) {
	setUser := func(c *gin.Context) { c.Set(constants.ContextKeyUsername, "admin") }

	tests := []struct {
		name       string
		authorizer *stubAuthorizer
		pre        []gin.HandlerFunc
		wantStatus int
	}{
		{name: "allowed", authorizer: &stubAuthorizer{allowed: true}, pre: []gin.HandlerFunc{setUser}, wantStatus: http.StatusOK},
		{name: "denied", authorizer: &stubAuthorizer{}, pre: []gin.HandlerFunc{setUser}, wantStatus: http.StatusForbidden},
		{name: "enforcer error", authorizer: &stubAuthorizer{err: stderrors.New("adapter closed")}, pre: []gin.HandlerFunc{setUser}, wantStatus: http.StatusInternalServerError},
		{name: "no authenticated user", authorizer: &stubAuthorizer{allowed: true}, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewPermissionMiddleware(tt.authorizer, logger.NewNopLogger())
			handlers := append(tt.pre, m.RequirePermission(constants.ResourceIntake, constants.ActionRead))
			engine := newEngine(handlers...)

			w := serve(engine, httptest.NewRequest(http.MethodGet, "/probe", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

// =====================================================================
// Rate limit
// =====================================================================

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string) (ratelimit.Decision, error) {
	return ratelimit.Decision{}, stderrors.New("redis: connection refused")
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := NewRateLimiter(ratelimit.NewMemoryLimiter(2, time.Minute), logger.NewNopLogger())
	engine := newEngine(rl.Limit())

	for i := 0; i < 2; i++ {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/probe", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	}

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/probe", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get(constants.HeaderRetryAfter))
	assert.Contains(t, w.Body.String(), `"rate_limited"`)

	other := httptest.NewRequest(http.MethodGet, "/probe", nil)
	other.RemoteAddr = "10.0.0.9:5555"
	assert.Equal(t, http.StatusOK, serve(engine, other).Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	rl := NewRateLimiter(failingLimiter{}, logger.NewNopLogger())
	engine := newEngine(rl.Limit())

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/probe", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

// =====================================================================
// Request id, CORS, recovery
// =====================================================================

func TestRequestID(t *testing.T) {
	engine := newEngine(RequestID())

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/probe", nil))
	generated := w.Header().Get(constants.HeaderXRequestID)
	assert.Len(t, generated, 36)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set(constants.HeaderXRequestID, "abc-123")
	w = serve(engine, req)
	assert.Equal(t, "abc-123", w.Header().Get(constants.HeaderXRequestID))
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"http://localhost:5173"}))
	engine.GET("/probe", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := serve(engine, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Origin", "https://evil.example")
		w := serve(engine, req)

		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/probe", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		w := serve(engine, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRecovery(t *testing.T) {
	engine := gin.New()
	engine.Use(Recovery(logger.NewNopLogger()))
	engine.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"internal_error"`)
}
