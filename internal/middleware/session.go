package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
)

type UserStatus struct {
	Role   string
	Active bool
}

// UserLookup reports the stored role and active flag; found is false when
// the user no longer exists.
type UserLookup func(ctx context.Context, id uint) (status UserStatus, found bool, err error)

// CurrentUser runs after AuthMiddleware. It refuses tokens of removed or
// deactivated users and replaces the token role with the stored one, so a
// demotion takes effect before the token expires.
func CurrentUser(lookup UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		status, found, err := lookup(c.Request.Context(), c.GetUint(ContextUserID))
		switch {
		case err != nil:
			httperr.Abort(c, http.StatusInternalServerError, "failed_to_get_user", "Erro ao validar sessão.")
			return
		case !found:
			httperr.Abort(c, http.StatusUnauthorized, "user_not_found", "Sessão inválida.")
			return
		case !status.Active:
			httperr.Abort(c, http.StatusForbidden, "user_inactive", "Usuário desativado.")
			return
		}

		c.Set(ContextUserRole, status.Role)
		c.Next()
	}
}
