package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/httperr"
	"github.com/BruksfildServices01/reverse-logistics/internal/httpresp"
	"github.com/BruksfildServices01/reverse-logistics/internal/usecase/collectionpoint"
)

// CollectionPointUseCases groups what the collection point handlers need.
type CollectionPointUseCases struct {
	Create      *collectionpoint.CreateCollectionPoint
	Update      *collectionpoint.UpdateCollectionPoint
	Delete      *collectionpoint.DeleteCollectionPoint
	UpdateHours *collectionpoint.UpdateOperatingHours
	Status      *collectionpoint.GetCollectionPointStatus
	List        *collectionpoint.ListCollectionPoints
	Nearby      *collectionpoint.ListNearby
	Loader      *collectionpoint.Loader
}

type CollectionPointHandler struct {
	uc  CollectionPointUseCases
	log *zap.Logger
}

func NewCollectionPointHandler(uc CollectionPointUseCases, log *zap.Logger) *CollectionPointHandler {
	return &CollectionPointHandler{uc: uc, log: log}
}

// --------- Requests ---------

type CreateCollectionPointRequest struct {
	Name            string   `json:"name" binding:"required"`
	EstablishmentID *uint    `json:"establishment_id"`
	CarrierID       *uint    `json:"carrier_id"`
	Address         string   `json:"address"`
	City            string   `json:"city"`
	State           string   `json:"state"`
	ZipCode         string   `json:"zip_code"`
	Latitude        *float64 `json:"latitude"`
	Longitude       *float64 `json:"longitude"`
	Timezone        string   `json:"timezone"`

	OperatingHours *operatinghours.WeeklySchedule `json:"operating_hours"`
}

type UpdateCollectionPointRequest struct {
	Name            *string  `json:"name,omitempty"`
	EstablishmentID *uint    `json:"establishment_id,omitempty"`
	CarrierID       *uint    `json:"carrier_id,omitempty"`
	ClearCarrier    bool     `json:"clear_carrier,omitempty"`
	Address         *string  `json:"address,omitempty"`
	City            *string  `json:"city,omitempty"`
	State           *string  `json:"state,omitempty"`
	ZipCode         *string  `json:"zip_code,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	ClearCoords     bool     `json:"clear_coordinates,omitempty"`
	Timezone        *string  `json:"timezone,omitempty"`
	Active          *bool    `json:"active,omitempty"`
}

// OperatingHoursRequest carries the full weekly schedule. A null value marks
// the hours as unknown.
type OperatingHoursRequest struct {
	OperatingHours *operatinghours.WeeklySchedule `json:"operating_hours"`
}

// --------- Error mapping ---------

var collectionPointMessages = map[string]string{
	"collection_point_not_found":   "Ponto de coleta não encontrado.",
	"invalid_name":                 "Nome do ponto de coleta é obrigatório.",
	"invalid_coordinates":          "Coordenadas inválidas.",
	"invalid_timezone":             "Fuso horário inválido.",
	"invalid_radius":               "Raio de busca inválido.",
	"establishment_not_found":      "Estabelecimento não encontrado.",
	"carrier_not_found":            "Transportadora não encontrada.",
	"invalid_time_format":          "Horário inválido. Use o formato HH:MM.",
	"invalid_time_order":           "O horário de abertura deve ser anterior ao de fechamento.",
	"overlapping_time_slots":       "Existem faixas de horário sobrepostas no mesmo dia.",
	"invalid_weekday":              "Dia da semana inválido.",
	"time_slot_index_out_of_range": "Faixa de horário inexistente.",
}

func (h *CollectionPointHandler) writeError(c *gin.Context, err error, fallback string) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.Business(c, err, collectionPointMessages[code])
		return
	}

	h.log.Error(fallback, zap.Error(err))
	httperr.Internal(c, fallback, "Erro interno ao processar o ponto de coleta.")
}

// bindError reports schedule decode failures with their business code.
func (h *CollectionPointHandler) bindError(c *gin.Context, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		httperr.BadRequest(c, code, collectionPointMessages[code])
		return
	}
	httperr.BadRequest(c, "invalid_request", err.Error())
}

// --------- Handlers ---------

func (h *CollectionPointHandler) List(c *gin.Context) {
	establishmentID, err := queryUint(c, "establishment_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_establishment_id", "Estabelecimento inválido.")
		return
	}
	carrierID, err := queryUint(c, "carrier_id")
	if err != nil {
		httperr.BadRequest(c, "invalid_carrier_id", "Transportadora inválida.")
		return
	}

	f := domain.ListFilter{
		EstablishmentID: establishmentID,
		CarrierID:       carrierID,
		City:            strings.TrimSpace(c.Query("city")),
		Query:           strings.TrimSpace(c.Query("query")),
	}
	if active := queryBool(c, "active"); active != nil && *active {
		f.OnlyActive = true
	}

	points, err := h.uc.List.Execute(c.Request.Context(), f)
	if err != nil {
		h.writeError(c, err, "failed_to_list_collection_points")
		return
	}

	httpresp.List(c, points)
}

func (h *CollectionPointHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	p, err := h.uc.Loader.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed_to_get_collection_point")
		return
	}

	httpresp.OK(c, p)
}

func (h *CollectionPointHandler) Create(c *gin.Context) {
	var req CreateCollectionPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	p, err := h.uc.Create.Execute(c.Request.Context(), collectionpoint.CreateCollectionPointInput{
		UserID:          currentUserID(c),
		Name:            req.Name,
		EstablishmentID: req.EstablishmentID,
		CarrierID:       req.CarrierID,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Timezone:        req.Timezone,
		OperatingHours:  req.OperatingHours,
	})
	if err != nil {
		h.writeError(c, err, "failed_to_create_collection_point")
		return
	}

	httpresp.Created(c, p)
}

func (h *CollectionPointHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateCollectionPointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	p, err := h.uc.Update.Execute(c.Request.Context(), collectionpoint.UpdateCollectionPointInput{
		UserID:          currentUserID(c),
		ID:              id,
		Name:            req.Name,
		EstablishmentID: req.EstablishmentID,
		CarrierID:       req.CarrierID,
		ClearCarrier:    req.ClearCarrier,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		ZipCode:         req.ZipCode,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		ClearCoords:     req.ClearCoords,
		Timezone:        req.Timezone,
		Active:          req.Active,
	})
	if err != nil {
		h.writeError(c, err, "failed_to_update_collection_point")
		return
	}

	httpresp.OK(c, p)
}

func (h *CollectionPointHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.uc.Delete.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		h.writeError(c, err, "failed_to_delete_collection_point")
		return
	}

	httpresp.NoContent(c)
}

func (h *CollectionPointHandler) UpdateOperatingHours(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req OperatingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}

	p, err := h.uc.UpdateHours.Execute(c.Request.Context(), currentUserID(c), id, req.OperatingHours)
	if err != nil {
		h.writeError(c, err, "failed_to_update_operating_hours")
		return
	}

	httpresp.OK(c, p)
}

func (h *CollectionPointHandler) Status(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	status, err := h.uc.Status.Execute(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err, "failed_to_get_status")
		return
	}

	httpresp.OK(c, status)
}

func (h *CollectionPointHandler) Nearby(c *gin.Context) {
	in, ok := nearbyInput(c)
	if !ok {
		return
	}

	points, err := h.uc.Nearby.Execute(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err, "failed_to_list_nearby")
		return
	}

	httpresp.List(c, points)
}

// nearbyInput reads lat, lng, radius_km, open and limit. radius_km
// defaults to 10.
func nearbyInput(c *gin.Context) (collectionpoint.ListNearbyInput, bool) {
	lat, hasLat, errLat := queryFloat(c, "lat")
	lng, hasLng, errLng := queryFloat(c, "lng")
	if errLat != nil || errLng != nil || !hasLat || !hasLng {
		httperr.BadRequest(c, "invalid_coordinates", "Informe lat e lng válidos.")
		return collectionpoint.ListNearbyInput{}, false
	}

	radius, hasRadius, err := queryFloat(c, "radius_km")
	if err != nil {
		httperr.BadRequest(c, "invalid_radius", "Raio de busca inválido.")
		return collectionpoint.ListNearbyInput{}, false
	}
	if !hasRadius {
		radius = 10
	}

	limit, err := queryUint(c, "limit")
	if err != nil {
		httperr.BadRequest(c, "invalid_limit", "Limite inválido.")
		return collectionpoint.ListNearbyInput{}, false
	}

	in := collectionpoint.ListNearbyInput{
		Latitude:  lat,
		Longitude: lng,
		RadiusKm:  radius,
	}
	if open := queryBool(c, "open"); open != nil {
		in.OnlyOpen = *open
	}
	if limit != nil {
		in.MaxResults = int(*limit)
	}
	return in, true
}
