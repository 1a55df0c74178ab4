package collectionpoint

import (
	"context"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateCollectionPointInput struct {
	UserID uint

	Name            string
	EstablishmentID *uint
	CarrierID       *uint

	Address string
	City    string
	State   string
	ZipCode string

	Latitude  *float64
	Longitude *float64
	Timezone  string

	OperatingHours *operatinghours.WeeklySchedule
}

// ======================================================
// USE CASE
// ======================================================

type CreateCollectionPoint struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCollectionPoint(repo domain.Repository, audit *audit.Dispatcher) *CreateCollectionPoint {
	return &CreateCollectionPoint{repo: repo, audit: audit}
}

func (uc *CreateCollectionPoint) Execute(
	ctx context.Context,
	in CreateCollectionPointInput,
) (*models.CollectionPoint, error) {

	p := &models.CollectionPoint{
		Name:            in.Name,
		EstablishmentID: in.EstablishmentID,
		CarrierID:       in.CarrierID,
		Address:         in.Address,
		City:            in.City,
		State:           in.State,
		ZipCode:         in.ZipCode,
		Latitude:        in.Latitude,
		Longitude:       in.Longitude,
		Timezone:        in.Timezone,
		OperatingHours:  in.OperatingHours,
		Active:          true,
	}

	if err := validatePoint(ctx, uc.repo, p); err != nil {
		return nil, err
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "collection_point_created",
		Entity:   "collection_point",
		EntityID: &p.ID,
	})

	return p, nil
}
