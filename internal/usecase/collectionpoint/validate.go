package collectionpoint

import (
	"context"
	"fmt"
	"strings"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/timezone"
)

// validatePoint checks the invariants shared by create and update.
func validatePoint(ctx context.Context, repo domain.Repository, p *models.CollectionPoint) error {
	p.Name = strings.TrimSpace(p.Name)
	if p.Name == "" {
		return domain.ErrInvalidName
	}

	if err := domain.ValidateCoordinates(p.Latitude, p.Longitude); err != nil {
		return err
	}

	if p.Timezone == "" {
		p.Timezone = timezone.Default()
	}
	if !timezone.IsValid(p.Timezone) {
		return fmt.Errorf("%w: %q", domain.ErrInvalidTimezone, p.Timezone)
	}

	if p.OperatingHours != nil {
		if err := p.OperatingHours.Validate(); err != nil {
			return err
		}
	}

	if p.EstablishmentID != nil {
		ok, err := repo.EstablishmentExists(ctx, *p.EstablishmentID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrEstablishmentNotFound
		}
	}

	if p.CarrierID != nil {
		ok, err := repo.CarrierExists(ctx, *p.CarrierID)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrCarrierNotFound
		}
	}

	return nil
}
