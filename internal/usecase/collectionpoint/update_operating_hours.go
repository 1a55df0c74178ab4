package collectionpoint

import (
	"context"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

type UpdateOperatingHours struct {
	repo   domain.Repository
	loader *Loader
	audit  *audit.Dispatcher
}

func NewUpdateOperatingHours(repo domain.Repository, loader *Loader, audit *audit.Dispatcher) *UpdateOperatingHours {
	return &UpdateOperatingHours{repo: repo, loader: loader, audit: audit}
}

// Execute replaces the whole weekly schedule. A nil schedule marks the
// hours as unknown, which is not the same as closed all week.
func (uc *UpdateOperatingHours) Execute(
	ctx context.Context,
	userID uint,
	id uint,
	hours *operatinghours.WeeklySchedule,
) (*models.CollectionPoint, error) {

	if hours != nil {
		if err := hours.Validate(); err != nil {
			return nil, err
		}
	}

	p, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	p.OperatingHours = hours
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	uc.loader.Invalidate(ctx, id)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "operating_hours_updated",
		Entity:   "collection_point",
		EntityID: &p.ID,
		Metadata: map[string]any{"operating_hours": hours},
	})

	return p, nil
}
