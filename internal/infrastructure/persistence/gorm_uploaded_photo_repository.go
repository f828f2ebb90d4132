package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence/models"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormUploadedPhotoRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormUploadedPhotoRepository creates a new GORM-based UploadedPhotoRepository implementation
func NewGormUploadedPhotoRepository(db *gorm.DB, logger logger.Logger) (photos.UploadedPhotoRepository, error) {
	return &gormUploadedPhotoRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormUploadedPhotoRepository) Create(ctx context.Context, photo *photos.UploadedPhoto) error {
	if err := photo.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.UploadedPhotoModel{}
	model.FromDomain(photo)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create uploaded photo: %w", err)
	}

	r.logger.Info("created uploaded photo", "photo_id", photo.ID, "user_id", photo.UserID)
	return nil
}

func (r *gormUploadedPhotoRepository) GetByID(ctx context.Context, photoID string) (*photos.UploadedPhoto, error) {
	var model models.UploadedPhotoModel
	if err := r.db.WithContext(ctx).Where("id = ?", photoID).First(&model).Error; err != nil {
		return nil, translateError(err, "uploaded photo", photoID)
	}
	return model.ToDomain(), nil
}

func (r *gormUploadedPhotoRepository) ListByUser(ctx context.Context, userID string) ([]*photos.UploadedPhoto, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date_time_created desc"))
}

func (r *gormUploadedPhotoRepository) ListByOrder(ctx context.Context, orderID string) ([]*photos.UploadedPhoto, error) {
	return r.find(r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("date_time_created asc"))
}

func (r *gormUploadedPhotoRepository) ListOrphanedBefore(ctx context.Context, cutoff time.Time) ([]*photos.UploadedPhoto, error) {
	return r.find(r.db.WithContext(ctx).Where("order_id IS NULL AND date_time_created < ?", cutoff))
}

func (r *gormUploadedPhotoRepository) find(query *gorm.DB) ([]*photos.UploadedPhoto, error) {
	var modelList []*models.UploadedPhotoModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch uploaded photos: %w", err)
	}

	domainList := make([]*photos.UploadedPhoto, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormUploadedPhotoRepository) CountUnassigned(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.UploadedPhotoModel{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count uploaded photos: %w", err)
	}
	return count, nil
}

func (r *gormUploadedPhotoRepository) AssignToOrder(ctx context.Context, userID, orderID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.UploadedPhotoModel{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Update("order_id", orderID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to assign uploaded photos: %w", result.Error)
	}

	r.logger.Info("assigned uploaded photos to order", "order_id", orderID, "count", result.RowsAffected)
	return result.RowsAffected, nil
}

func (r *gormUploadedPhotoRepository) DeleteByID(ctx context.Context, photoID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", photoID).Delete(&models.UploadedPhotoModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete uploaded photo: %w", err)
	}

	r.logger.Info("deleted uploaded photo", "photo_id", photoID)
	return nil
}
