package collectionpoint

import (
	"context"
	"time"

	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/dto"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/timezone"
)

type Clock func() time.Time

type GetCollectionPointStatus struct {
	loader *Loader
	now    Clock
}

func NewGetCollectionPointStatus(loader *Loader, now Clock) *GetCollectionPointStatus {
	if now == nil {
		now = time.Now
	}
	return &GetCollectionPointStatus{loader: loader, now: now}
}

func (uc *GetCollectionPointStatus) Execute(ctx context.Context, id uint) (*dto.CollectionPointStatusDTO, error) {
	p, err := uc.loader.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	local := timezone.In(uc.now(), p.Timezone)
	status := statusOf(p, local)

	return &dto.CollectionPointStatusDTO{
		CollectionPointID: p.ID,
		Name:              p.Name,
		Timezone:          local.Location().String(),
		LocalTime:         local.Format("2006-01-02 15:04"),
		HoursKnown:        p.OperatingHours != nil,
		Status:            status,
		Summary:           status.Summary(),
	}, nil
}

// statusOf evaluates p at local, which must already be in p's timezone.
func statusOf(p *models.CollectionPoint, local time.Time) operatinghours.Status {
	return operatinghours.Evaluate(p.OperatingHours, local)
}
