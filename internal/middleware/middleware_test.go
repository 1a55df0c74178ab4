package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/reverse-logistics/internal/config"
)

var testCfg = &config.Config{JWTSecret: "test-secret"}

func sign(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()), Recovery(zap.NewNop()))

	secured := r.Group("/", AuthMiddleware(testCfg))
	secured.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"id":   c.MustGet(ContextUserID).(uint),
			"role": c.GetString(ContextUserRole),
		})
	})
	secured.GET("/admin", RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	return r
}

func do(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter()
	exp := time.Now().Add(time.Hour).Unix()

	valid := sign(t, "test-secret", jwt.MapClaims{"sub": 3, "role": "operator", "exp": exp})
	w := do(r, http.MethodGet, "/me", valid)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":3,"role":"operator"}`, w.Body.String())

	tests := []struct {
		name  string
		token string
	}{
		{name: "missing", token: ""},
		{name: "wrong secret", token: sign(t, "other", jwt.MapClaims{"sub": 3, "exp": exp})},
		{name: "expired", token: sign(t, "test-secret", jwt.MapClaims{"sub": 3, "exp": time.Now().Add(-time.Hour).Unix()})},
		{name: "no subject", token: sign(t, "test-secret", jwt.MapClaims{"role": "admin", "exp": exp})},
		{name: "garbage", token: "not.a.jwt"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, http.StatusUnauthorized, do(r, http.MethodGet, "/me", tt.token).Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	r := newRouter()
	exp := time.Now().Add(time.Hour).Unix()

	admin := sign(t, "test-secret", jwt.MapClaims{"sub": 1, "role": "admin", "exp": exp})
	operator := sign(t, "test-secret", jwt.MapClaims{"sub": 2, "role": "operator", "exp": exp})

	assert.Equal(t, http.StatusNoContent, do(r, http.MethodGet, "/admin", admin).Code)
	assert.Equal(t, http.StatusForbidden, do(r, http.MethodGet, "/admin", operator).Code)
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	r := newRouter()

	w := do(r, http.MethodGet, "/me", "")
	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set(HeaderRequestID, incoming)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, incoming, w.Header().Get(HeaderRequestID))
}

func TestRecovery(t *testing.T) {
	w := do(newRouter(), http.MethodGet, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://painel.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://painel.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_RestrictsOrigins(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware("https://painel.example.com/"))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "https://painel.example.com")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "https://painel.example.com", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCurrentUser_UsesStoredRoleAndStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)
	exp := time.Now().Add(time.Hour).Unix()

	stored := map[uint]UserStatus{
		1: {Role: "admin", Active: true},
		2: {Role: "operator", Active: true}, // demoted after login
		3: {Role: "admin", Active: false},
	}
	lookup := func(_ context.Context, id uint) (UserStatus, bool, error) {
		s, ok := stored[id]
		return s, ok, nil
	}

	r := gin.New()
	r.GET("/admin", AuthMiddleware(testCfg), CurrentUser(lookup), RequireRole("admin"), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name string
		sub  int
		want int
	}{
		{"admin", 1, http.StatusNoContent},
		{"demoted", 2, http.StatusForbidden},
		{"deactivated", 3, http.StatusForbidden},
		{"removed", 4, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := sign(t, "test-secret", jwt.MapClaims{"sub": tt.sub, "role": "admin", "exp": exp})
			assert.Equal(t, tt.want, do(r, http.MethodGet, "/admin", token).Code)
		})
	}
}

func TestCurrentUser_LookupError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lookup := func(context.Context, uint) (UserStatus, bool, error) {
		return UserStatus{}, false, errors.New("db down")
	}

	r := gin.New()
	r.GET("/me", AuthMiddleware(testCfg), CurrentUser(lookup), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	token := sign(t, "test-secret", jwt.MapClaims{"sub": 1, "exp": time.Now().Add(time.Hour).Unix()})
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/me", token).Code)
}
