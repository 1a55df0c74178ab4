package collectionpoint

import (
	"context"

	"github.com/BruksfildServices01/reverse-logistics/internal/audit"
	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
)

type DeleteCollectionPoint struct {
	repo   domain.Repository
	loader *Loader
	audit  *audit.Dispatcher
}

func NewDeleteCollectionPoint(repo domain.Repository, loader *Loader, audit *audit.Dispatcher) *DeleteCollectionPoint {
	return &DeleteCollectionPoint{repo: repo, loader: loader, audit: audit}
}

func (uc *DeleteCollectionPoint) Execute(ctx context.Context, userID, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.loader.Invalidate(ctx, id)

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "collection_point_deleted",
		Entity:   "collection_point",
		EntityID: &id,
	})
	return nil
}
