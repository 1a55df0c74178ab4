package dto

import (
	"github.com/BruksfildServices01/reverse-logistics/internal/domain/operatinghours"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

type CollectionPointStatusDTO struct {
	CollectionPointID uint                  `json:"collection_point_id"`
	Name              string                `json:"name"`
	Timezone          string                `json:"timezone"`
	LocalTime         string                `json:"local_time"`
	HoursKnown        bool                  `json:"hours_known"`
	Status            operatinghours.Status `json:"status"`
	Summary           string                `json:"summary"`
}

type CollectionPointWithStatusDTO struct {
	models.CollectionPoint
	Status  operatinghours.Status `json:"status"`
	Summary string                `json:"summary"`
}

type NearbyCollectionPointDTO struct {
	CollectionPointWithStatusDTO
	DistanceKm float64 `json:"distance_km"`
}
