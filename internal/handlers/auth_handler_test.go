package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/reverse-logistics/internal/config"
	"github.com/BruksfildServices01/reverse-logistics/internal/middleware"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

func TestGenerateToken_AcceptedByAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{JWTSecret: "s3cret"}
	h := NewAuthHandler(nil, cfg, nil)

	token, err := h.generateToken(&models.User{ID: 42, Role: models.RoleOperator})
	require.NoError(t, err)

	var gotID uint
	var gotRole string
	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(cfg), func(c *gin.Context) {
		gotID = currentUserID(c)
		gotRole = c.GetString(middleware.ContextUserRole)
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, uint(42), gotID)
	assert.Equal(t, models.RoleOperator, gotRole)
}

func TestGenerateToken_RejectedWithOtherSecret(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(nil, &config.Config{JWTSecret: "one"}, nil)

	token, err := h.generateToken(&models.User{ID: 1, Role: models.RoleAdmin})
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", middleware.AuthMiddleware(&config.Config{JWTSecret: "two"}), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
