package collectionpoint

import (
	"context"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

// UpdateCollectionPointInput is a partial update: nil fields are left as is.
// Operating hours are changed through UpdateOperatingHours.
type UpdateCollectionPointInput struct {
	UserID uint
	ID     uint

	Name            *string
	EstablishmentID *uint
	CarrierID       *uint
	ClearCarrier    bool

	Address *string
	City    *string
	State   *string
	ZipCode *string

	Latitude    *float64
	Longitude   *float64
	ClearCoords bool

	Timezone *string
	Active   *bool
}

type UpdateCollectionPoint struct {
	repo   domain.Repository
	loader *Loader
	audit  *audit.Dispatcher
}

func NewUpdateCollectionPoint(repo domain.Repository, loader *Loader, audit *audit.Dispatcher) *UpdateCollectionPoint {
	return &UpdateCollectionPoint{repo: repo, loader: loader, audit: audit}
}

func (uc *UpdateCollectionPoint) Execute(
	ctx context.Context,
	in UpdateCollectionPointInput,
) (*models.CollectionPoint, error) {

	p, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.EstablishmentID != nil {
		p.EstablishmentID = in.EstablishmentID
		p.Establishment = nil
	}
	if in.ClearCarrier {
		p.CarrierID = nil
		p.Carrier = nil
	} else if in.CarrierID != nil {
		p.CarrierID = in.CarrierID
		p.Carrier = nil
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.City != nil {
		p.City = *in.City
	}
	if in.State != nil {
		p.State = *in.State
	}
	if in.ZipCode != nil {
		p.ZipCode = *in.ZipCode
	}
	if in.ClearCoords {
		p.Latitude, p.Longitude = nil, nil
	} else {
		if in.Latitude != nil {
			p.Latitude = in.Latitude
		}
		if in.Longitude != nil {
			p.Longitude = in.Longitude
		}
	}
	if in.Timezone != nil {
		p.Timezone = *in.Timezone
	}
	if in.Active != nil {
		p.Active = *in.Active
	}

	if err := validatePoint(ctx, uc.repo, p); err != nil {
		return nil, err
	}

	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.loader.Invalidate(ctx, p.ID)

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "collection_point_updated",
		Entity:   "collection_point",
		EntityID: &p.ID,
	})

	return p, nil
}
