package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/reverse-logistics/internal/domain/collectionpoint"
	"github.com/BruksfildServices01/reverse-logistics/internal/models"
)

type CollectionPointGormRepository struct {
	db *gorm.DB
}

func NewCollectionPointGormRepository(db *gorm.DB) *CollectionPointGormRepository {
	return &CollectionPointGormRepository{db: db}
}

var _ domain.Repository = (*CollectionPointGormRepository)(nil)

// --------------------------------------------------
// Collection point
// --------------------------------------------------

func (r *CollectionPointGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.CollectionPoint, error) {

	var p models.CollectionPoint
	if err := r.db.WithContext(ctx).
		Preload("Establishment").
		Preload("Carrier").
		First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *CollectionPointGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]models.CollectionPoint, error) {

	q := r.db.WithContext(ctx).Model(&models.CollectionPoint{})

	if f.EstablishmentID != nil {
		q = q.Where("establishment_id = ?", *f.EstablishmentID)
	}
	if f.CarrierID != nil {
		q = q.Where("carrier_id = ?", *f.CarrierID)
	}
	if city := strings.TrimSpace(strings.ToLower(f.City)); city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}
	if query := strings.TrimSpace(strings.ToLower(f.Query)); query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like)
	}
	if f.OnlyActive {
		q = q.Where("active = true")
	}

	var points []models.CollectionPoint
	if err := q.Order("name ASC").Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

func (r *CollectionPointGormRepository) Create(
	ctx context.Context,
	p *models.CollectionPoint,
) error {
	return r.db.WithContext(ctx).Omit("Establishment", "Carrier").Create(p).Error
}

// Update saves every column, including a NULL operating_hours.
func (r *CollectionPointGormRepository) Update(
	ctx context.Context,
	p *models.CollectionPoint,
) error {
	return r.db.WithContext(ctx).Omit("Establishment", "Carrier").Save(p).Error
}

func (r *CollectionPointGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.CollectionPoint{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CollectionPointGormRepository) ListActiveWithCoordinates(
	ctx context.Context,
) ([]models.CollectionPoint, error) {

	var points []models.CollectionPoint
	if err := r.db.WithContext(ctx).
		Where("active = true AND latitude IS NOT NULL AND longitude IS NOT NULL").
		Find(&points).Error; err != nil {
		return nil, err
	}
	return points, nil
}

// --------------------------------------------------
// References
// --------------------------------------------------

func (r *CollectionPointGormRepository) EstablishmentExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Establishment{}, id)
}

func (r *CollectionPointGormRepository) CarrierExists(ctx context.Context, id uint) (bool, error) {
	return exists(ctx, r.db, &models.Carrier{}, id)
}

func exists(ctx context.Context, db *gorm.DB, model any, id uint) (bool, error) {
	var count int64
	if err := db.WithContext(ctx).Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
