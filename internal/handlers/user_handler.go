package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
	"github.com/BruksfildServices01/reverse-logistics/internal/httpresp"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/validators"
)

// EmailDomainCheck is swapped in tests to avoid DNS lookups.
type EmailDomainCheck func(email string) bool

type UserHandler struct {
	db          *gorm.DB
	audit       *audit.Dispatcher
	emailDomain EmailDomainCheck
}

func NewUserHandler(db *gorm.DB, audit *audit.Dispatcher, emailDomain EmailDomainCheck) *UserHandler {
	if emailDomain == nil {
		emailDomain = validators.IsEmailDomainValid
	}
	return &UserHandler{db: db, audit: audit, emailDomain: emailDomain}
}

// --------- Requests ---------

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required"`
}

type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Role     *string `json:"role,omitempty"`
	Password *string `json:"password,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// --------- Handlers ---------

func (h *UserHandler) List(c *gin.Context) {
	q := h.db.Model(&models.User{})

	if role := strings.TrimSpace(c.Query("role")); role != "" {
		q = q.Where("role = ?", role)
	}
	if active := queryBool(c, "active"); active != nil {
		q = q.Where("active = ?", *active)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}

	var users []models.User
	if err := q.Order("name ASC").Find(&users).Error; err != nil {
		httperr.Internal(c, "failed_to_list_users", "Erro ao listar usuários.")
		return
	}

	httpresp.List(c, users)
}

func (h *UserHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if !models.IsValidRole(req.Role) {
		httperr.BadRequest(c, "invalid_role", "Perfil inválido.")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !h.emailDomain(email) {
		httperr.BadRequest(c, "invalid_email_domain", "O domínio do e-mail informado não parece ser válido.")
		return
	}

	var count int64
	if err := h.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "email_already_exists", "Já existe um usuário com este e-mail.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erro ao criar usuário.")
		return
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		Role:         req.Role,
		Active:       true,
	}
	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Erro ao criar usuário.")
		return
	}

	actor := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"role": user.Role},
	})

	httpresp.Created(c, user)
}

func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var user models.User
	if err := h.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
			return
		}
		httperr.Internal(c, "failed_to_get_user", "Erro ao buscar usuário.")
		return
	}

	actor := currentUserID(c)
	if actor == user.ID && ((req.Active != nil && !*req.Active) || (req.Role != nil && *req.Role != models.RoleAdmin)) {
		httperr.BadRequest(c, "cannot_demote_self", "Você não pode desativar ou rebaixar o próprio usuário.")
		return
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Role != nil {
		if !models.IsValidRole(*req.Role) {
			httperr.BadRequest(c, "invalid_role", "Perfil inválido.")
			return
		}
		user.Role = *req.Role
	}
	if req.Password != nil {
		if len(*req.Password) < 8 {
			httperr.BadRequest(c, "invalid_password", "A senha deve ter ao menos 8 caracteres.")
			return
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Erro ao atualizar usuário.")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.Active != nil {
		user.Active = *req.Active
	}

	if err := h.db.Save(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_update_user", "Erro ao atualizar usuário.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	httpresp.OK(c, user)
}

func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	actor := currentUserID(c)
	if actor == id {
		httperr.BadRequest(c, "cannot_delete_self", "Você não pode excluir o próprio usuário.")
		return
	}

	res := h.db.Delete(&models.User{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_user", "Erro ao excluir usuário.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}
