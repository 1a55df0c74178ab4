package collectionpoint

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/dto"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
	"github.com/BruksfildServices01/reverse-logistics/internal/timezone"
)

type ListCollectionPoints struct {
	repo domain.Repository
	now  Clock
}

func NewListCollectionPoints(repo domain.Repository, now Clock) *ListCollectionPoints {
	if now == nil {
		now = time.Now
	}
	return &ListCollectionPoints{repo: repo, now: now}
}

func (uc *ListCollectionPoints) Execute(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.CollectionPointWithStatusDTO, error) {

	points, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]dto.CollectionPointWithStatusDTO, 0, len(points))
	for i := range points {
		p := &points[i]
		out = append(out, withStatus(p, statusOf(p, timezone.In(now, p.Timezone))))
	}
	return out, nil
}

func withStatus(p *models.CollectionPoint, status operatinghours.Status) dto.CollectionPointWithStatusDTO {
	return dto.CollectionPointWithStatusDTO{
		CollectionPoint: *p,
		Status:          status,
		Summary:         status.Summary(),
	}
}
