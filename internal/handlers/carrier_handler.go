package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
	"github.com/BruksfildServices01/reverse-logistics/internal/httpresp"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/validators"
)

type CarrierHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCarrierHandler(db *gorm.DB, audit *audit.Dispatcher) *CarrierHandler {
	return &CarrierHandler{db: db, audit: audit}
}

type CarrierRequest struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// apply copies the request onto carrier and writes a 400 on invalid input.
func (req *CarrierRequest) apply(c *gin.Context, carrier *models.Carrier) bool {
	if req.Name != nil {
		carrier.Name = strings.TrimSpace(*req.Name)
	}
	if req.Document != nil {
		doc := validators.NormalizeDocument(*req.Document)
		if doc != "" && !validators.IsValidCNPJ(doc) {
			httperr.BadRequest(c, "invalid_document", "CNPJ inválido.")
			return false
		}
		carrier.Document = doc
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if email != "" && !validators.IsEmailWellFormed(email) {
			httperr.BadRequest(c, "invalid_email", "E-mail inválido.")
			return false
		}
		carrier.Email = email
	}
	if req.Phone != nil {
		carrier.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Active != nil {
		carrier.Active = *req.Active
	}

	if carrier.Name == "" {
		httperr.BadRequest(c, "invalid_name", "Nome da transportadora é obrigatório.")
		return false
	}
	return true
}

func (h *CarrierHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Carrier{})
	if active := queryBool(c, "active"); active != nil {
		q = q.Where("active = ?", *active)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var carriers []models.Carrier
	if err := q.Order("name ASC").Find(&carriers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_carriers", "Erro ao listar transportadoras.")
		return
	}

	httpresp.List(c, carriers)
}

func (h *CarrierHandler) load(c *gin.Context) (*models.Carrier, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}

	var carrier models.Carrier
	if err := h.db.First(&carrier, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "carrier_not_found", "Transportadora não encontrada.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_carrier", "Erro ao buscar transportadora.")
		return nil, false
	}
	return &carrier, true
}

func (h *CarrierHandler) Get(c *gin.Context) {
	carrier, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, carrier)
}

func (h *CarrierHandler) Create(c *gin.Context) {
	var req CarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	carrier := models.Carrier{Active: true}
	if !req.apply(c, &carrier) {
		return
	}

	if carrier.Document != "" && h.documentTaken(carrier.Document, 0) {
		httperr.Conflict(c, "document_already_exists", "Já existe uma transportadora com este CNPJ.")
		return
	}

	if err := h.db.Create(&carrier).Error; err != nil {
		httperr.Internal(c, "failed_to_create_carrier", "Erro ao criar transportadora.")
		return
	}

	actor := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "carrier_created",
		Entity:   "carrier",
		EntityID: &carrier.ID,
	})

	httpresp.Created(c, carrier)
}

func (h *CarrierHandler) Update(c *gin.Context) {
	carrier, ok := h.load(c)
	if !ok {
		return
	}

	var req CarrierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !req.apply(c, carrier) {
		return
	}

	if carrier.Document != "" && h.documentTaken(carrier.Document, carrier.ID) {
		httperr.Conflict(c, "document_already_exists", "Já existe uma transportadora com este CNPJ.")
		return
	}

	if err := h.db.Save(carrier).Error; err != nil {
		httperr.Internal(c, "failed_to_update_carrier", "Erro ao atualizar transportadora.")
		return
	}

	actor := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "carrier_updated",
		Entity:   "carrier",
		EntityID: &carrier.ID,
	})

	httpresp.OK(c, carrier)
}

func (h *CarrierHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Carrier{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_carrier", "Erro ao excluir transportadora.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "carrier_not_found", "Transportadora não encontrada.")
		return
	}

	actor := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   "carrier_deleted",
		Entity:   "carrier",
		EntityID: &id,
	})

	httpresp.NoContent(c)
}

func (h *CarrierHandler) documentTaken(doc string, exceptID uint) bool {
	var count int64
	h.db.Model(&models.Carrier{}).
		Where("document = ? AND id <> ?", doc, exceptID).
		Count(&count)
	return count > 0
}
