package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
	"github.com/BruksfildServices01/reverse-logistics/internal/httpresp"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe returns the authenticated user. A token issued before the user was
// deactivated or removed is refused here as well.
func (h *MeHandler) GetMe(c *gin.Context) {
	var user models.User
	err := h.db.First(&user, currentUserID(c)).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		httperr.Unauthorized(c, "user_not_found", "Sessão inválida.")
		return
	case err != nil:
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário.")
		return
	case !user.Active:
		httperr.Forbidden(c, "user_inactive", "Usuário desativado.")
		return
	}

	httpresp.OK(c, gin.H{
		"user":     user,
		"is_admin": user.Role == models.RoleAdmin,
	})
}
