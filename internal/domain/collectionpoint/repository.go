package collectionpoint

import (
	"context"

	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

type ListFilter struct {
	EstablishmentID *uint
	CarrierID       *uint
	City            string
	Query           string
	OnlyActive      bool
}

//go:generate mockgen -source=repository.go -destination=mocks/mock_repository.go -package=mocks

type Repository interface {
	// -------- Collection point --------
	Get(ctx context.Context, id uint) (*models.CollectionPoint, error)
	List(ctx context.Context, f ListFilter) ([]models.CollectionPoint, error)
	Create(ctx context.Context, p *models.CollectionPoint) error
	Update(ctx context.Context, p *models.CollectionPoint) error
	Delete(ctx context.Context, id uint) error

	// ListActiveWithCoordinates returns active points that have both
	// latitude and longitude set.
	ListActiveWithCoordinates(ctx context.Context) ([]models.CollectionPoint, error)

	// -------- References --------
	EstablishmentExists(ctx context.Context, id uint) (bool, error)
	CarrierExists(ctx context.Context, id uint) (bool, error)
}
