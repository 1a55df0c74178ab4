package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
	"github.com/BruksfildServices01/reverse-logistics/internal/httpresp"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/imageproc"
	"github.com/BruksfildServices01/reverse-logistics/internal/infra/storage"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/validators"
)

type EstablishmentHandler struct {
	db       *gorm.DB
	audit    *audit.Dispatcher
	uploader storage.Uploader
	log      *zap.Logger
}

// NewEstablishmentHandler accepts a nil uploader; logo uploads then answer 503.
func NewEstablishmentHandler(db *gorm.DB, audit *audit.Dispatcher, uploader storage.Uploader, log *zap.Logger) *EstablishmentHandler {
	return &EstablishmentHandler{db: db, audit: audit, uploader: uploader, log: log}
}

type EstablishmentRequest struct {
	Name     *string `json:"name,omitempty"`
	Document *string `json:"document,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Address  *string `json:"address,omitempty"`
	City     *string `json:"city,omitempty"`
	State    *string `json:"state,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func (req *EstablishmentRequest) apply(c *gin.Context, e *models.Establishment) bool {
	if req.Name != nil {
		e.Name = strings.TrimSpace(*req.Name)
	}
	if req.Document != nil {
		doc := validators.NormalizeDocument(*req.Document)
		if doc != "" && !validators.IsValidCNPJ(doc) {
			httperr.BadRequest(c, "invalid_document", "CNPJ inválido.")
			return false
		}
		e.Document = doc
	}
	if req.Phone != nil {
		e.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		e.Address = strings.TrimSpace(*req.Address)
	}
	if req.City != nil {
		e.City = strings.TrimSpace(*req.City)
	}
	if req.State != nil {
		e.State = strings.ToUpper(strings.TrimSpace(*req.State))
	}
	if req.Active != nil {
		e.Active = *req.Active
	}

	if e.Name == "" {
		httperr.BadRequest(c, "invalid_name", "Nome do estabelecimento é obrigatório.")
		return false
	}
	if e.State != "" && len(e.State) != 2 {
		httperr.BadRequest(c, "invalid_state", "UF inválida.")
		return false
	}
	return true
}

func (h *EstablishmentHandler) List(c *gin.Context) {
	q := h.db.Model(&models.Establishment{})
	if city := strings.ToLower(strings.TrimSpace(c.Query("city"))); city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}
	if active := queryBool(c, "active"); active != nil {
		q = q.Where("active = ?", *active)
	}
	if query := strings.ToLower(strings.TrimSpace(c.Query("query"))); query != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+query+"%")
	}

	var list []models.Establishment
	if err := q.Order("name ASC").Find(&list).Error; err != nil {
		httperr.Internal(c, "failed_to_list_establishments", "Erro ao listar estabelecimentos.")
		return
	}

	httpresp.List(c, list)
}

func (h *EstablishmentHandler) load(c *gin.Context) (*models.Establishment, bool) {
	id, ok := pathID(c)
	if !ok {
		return nil, false
	}

	var e models.Establishment
	if err := h.db.First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			httperr.NotFound(c, "establishment_not_found", "Estabelecimento não encontrado.")
			return nil, false
		}
		httperr.Internal(c, "failed_to_get_establishment", "Erro ao buscar estabelecimento.")
		return nil, false
	}
	return &e, true
}

func (h *EstablishmentHandler) Get(c *gin.Context) {
	e, ok := h.load(c)
	if !ok {
		return
	}
	httpresp.OK(c, e)
}

func (h *EstablishmentHandler) Create(c *gin.Context) {
	var req EstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	e := models.Establishment{Active: true}
	if !req.apply(c, &e) {
		return
	}

	if err := h.db.Create(&e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "document_already_exists", "Já existe um estabelecimento com este CNPJ.")
			return
		}
		httperr.Internal(c, "failed_to_create_establishment", "Erro ao criar estabelecimento.")
		return
	}

	h.dispatch(c, "establishment_created", e.ID, nil)
	httpresp.Created(c, e)
}

func (h *EstablishmentHandler) Update(c *gin.Context) {
	e, ok := h.load(c)
	if !ok {
		return
	}

	var req EstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}
	if !req.apply(c, e) {
		return
	}

	if err := h.db.Save(e).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			httperr.Conflict(c, "document_already_exists", "Já existe um estabelecimento com este CNPJ.")
			return
		}
		httperr.Internal(c, "failed_to_update_establishment", "Erro ao atualizar estabelecimento.")
		return
	}

	h.dispatch(c, "establishment_updated", e.ID, nil)
	httpresp.OK(c, e)
}

func (h *EstablishmentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	res := h.db.Delete(&models.Establishment{}, id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_delete_establishment", "Erro ao excluir estabelecimento.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "establishment_not_found", "Estabelecimento não encontrado.")
		return
	}

	h.dispatch(c, "establishment_deleted", id, nil)
	httpresp.NoContent(c)
}

// UploadLogo takes a multipart "file", converts it to WebP and stores it.
func (h *EstablishmentHandler) UploadLogo(c *gin.Context) {
	if h.uploader == nil {
		httperr.Unavailable(c, "storage_unavailable", "Armazenamento de arquivos não configurado.")
		return
	}

	e, ok := h.load(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Envie a imagem no campo file.")
		return
	}
	if fh.Size > imageproc.MaxLogoBytes {
		httperr.BadRequest(c, "image_too_large", "A imagem deve ter no máximo 5MB.")
		return
	}

	f, err := fh.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_file", "Arquivo inválido.")
		return
	}
	defer f.Close()

	data, err := imageproc.LogoToWebP(f)
	if err != nil {
		switch {
		case errors.Is(err, imageproc.ErrImageTooLarge):
			httperr.BadRequest(c, "image_too_large", "A imagem deve ter no máximo 5MB.")
		case errors.Is(err, imageproc.ErrUnsupportedImage):
			httperr.BadRequest(c, "unsupported_image", "Formato de imagem não suportado. Use PNG, JPEG ou WebP.")
		default:
			h.log.Error("logo conversion failed", zap.Uint("establishment_id", e.ID), zap.Error(err))
			httperr.Internal(c, "failed_to_process_image", "Erro ao processar imagem.")
		}
		return
	}

	key := fmt.Sprintf("establishments/%d/logo-%s.webp", e.ID, uuid.NewString())
	url, err := h.uploader.Upload(c.Request.Context(), key, "image/webp", bytes.NewReader(data))
	if err != nil {
		h.log.Error("logo upload failed", zap.String("key", key), zap.Error(err))
		httperr.Internal(c, "failed_to_upload_logo", "Erro ao enviar logo.")
		return
	}

	if err := h.db.Model(e).Update("logo_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_establishment", "Erro ao atualizar estabelecimento.")
		return
	}
	e.LogoURL = url

	h.dispatch(c, "establishment_logo_updated", e.ID, map[string]any{"key": key})
	httpresp.OK(c, e)
}

func (h *EstablishmentHandler) dispatch(c *gin.Context, action string, id uint, meta any) {
	actor := currentUserID(c)
	h.audit.Dispatch(audit.Event{
		UserID:   &actor,
		Action:   action,
		Entity:   "establishment",
		EntityID: &id,
		Metadata: meta,
	})
}
