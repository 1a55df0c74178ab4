package collectionpoint

import (
	"context"
	"sort"
	"time"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/dto"
	"github.com/BruksfildServices01/reverse-logistics/internal/timezone"
)

const MaxNearbyRadiusKm = 200.0

type ListNearbyInput struct {
	Latitude   float64
	Longitude  float64
	RadiusKm   float64
	OnlyOpen   bool
	MaxResults int
}

type ListNearby struct {
	repo domain.Repository
	now  Clock
}

func NewListNearby(repo domain.Repository, now Clock) *ListNearby {
	if now == nil {
		now = time.Now
	}
	return &ListNearby{repo: repo, now: now}
}

// Execute returns active points within RadiusKm, closest first, each with
// its status at the current instant in the point's own timezone.
func (uc *ListNearby) Execute(ctx context.Context, in ListNearbyInput) ([]dto.NearbyCollectionPointDTO, error) {
	lat, lng := in.Latitude, in.Longitude
	if err := domain.ValidateCoordinates(&lat, &lng); err != nil {
		return nil, err
	}
	if in.RadiusKm <= 0 || in.RadiusKm > MaxNearbyRadiusKm {
		return nil, domain.ErrInvalidRadius
	}

	points, err := uc.repo.ListActiveWithCoordinates(ctx)
	if err != nil {
		return nil, err
	}

	now := uc.now()
	out := make([]dto.NearbyCollectionPointDTO, 0, len(points))
	for i := range points {
		p := &points[i]
		if !p.HasCoordinates() {
			continue
		}

		d := domain.DistanceKm(lat, lng, *p.Latitude, *p.Longitude)
		if d > in.RadiusKm {
			continue
		}

		status := statusOf(p, timezone.In(now, p.Timezone))
		if in.OnlyOpen && !status.IsOpen {
			continue
		}

		out = append(out, dto.NearbyCollectionPointDTO{
			CollectionPointWithStatusDTO: withStatus(p, status),
			DistanceKm:                   d,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DistanceKm < out[j].DistanceKm
	})

	if in.MaxResults > 0 && len(out) > in.MaxResults {
		out = out[:in.MaxResults]
	}
	return out, nil
}
