package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/reverse-logistics/internal/config"
	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
)

const (
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

func bearerToken(header string) (string, bool) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return strings.TrimSpace(token), true
}

// AuthMiddleware accepts HS256 tokens carrying a numeric sub and an exp.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	key := func(*jwt.Token) (any, error) { return []byte(cfg.JWTSecret), nil }

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			httperr.Abort(c, http.StatusUnauthorized, "missing_authorization_header", "Autenticação necessária.")
			return
		}

		raw, ok := bearerToken(header)
		if !ok {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_authorization_header", "Cabeçalho de autorização inválido.")
			return
		}

		claims := jwt.MapClaims{}
		if _, err := parser.ParseWithClaims(raw, claims, key); err != nil {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token", "Sessão inválida ou expirada.")
			return
		}

		sub, ok := claims["sub"].(float64)
		if !ok || sub <= 0 {
			httperr.Abort(c, http.StatusUnauthorized, "invalid_token_payload", "Sessão inválida ou expirada.")
			return
		}
		role, _ := claims["role"].(string)

		c.Set(ContextUserID, uint(sub))
		c.Set(ContextUserRole, role)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ContextUserRole)
		for _, r := range roles {
			if r == role {
				c.Next()
				return
			}
		}
		httperr.Abort(c, http.StatusForbidden, "forbidden", "Acesso restrito.")
	}
}
