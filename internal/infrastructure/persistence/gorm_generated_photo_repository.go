package persistence

import (
	"context"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence/models"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormGeneratedPhotoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormGeneratedPhotoRepository creates a new GORM-based GeneratedPhotoRepository implementation
func NewGormGeneratedPhotoRepository(db *gorm.DB, logger logger.Logger) (photos.GeneratedPhotoRepository, error) {
	return &gormGeneratedPhotoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormGeneratedPhotoRepository) Create(ctx context.Context, photo *photos.GeneratedPhoto) error {
	if err := photo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.GeneratedPhotoModel{}
	model.FromDomain(photo)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create generated photo: %w", err)
	}

	r.logger.Info("created generated photo", "photo_id", photo.ID, "order_id", photo.OrderID)
	return nil
}

func (r *gormGeneratedPhotoRepository) ListByOrder(ctx context.Context, orderID string) ([]*photos.GeneratedPhoto, error) {
	var modelList []*models.GeneratedPhotoModel
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("date_time_created asc").Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch generated photos: %w", err)
	}

	domainList := make([]*photos.GeneratedPhoto, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
