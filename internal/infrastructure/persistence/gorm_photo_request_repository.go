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

type gormPhotoRequestRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormPhotoRequestRepository creates a new GORM-based PhotoRequestRepository implementation
func NewGormPhotoRequestRepository(db *gorm.DB, logger logger.Logger) (photos.PhotoRequestRepository, error) {
	return &gormPhotoRequestRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormPhotoRequestRepository) Create(ctx context.Context, request *photos.PhotoRequest) error {
	if err := request.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.PhotoRequestModel{}
	model.FromDomain(request)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create photo request: %w", err)
	}

	r.logger.Info("created photo request", "request_id", request.ID, "user_id", request.UserID)
	return nil
}

func (r *gormPhotoRequestRepository) GetByID(ctx context.Context, requestID string) (*photos.PhotoRequest, error) {
	var model models.PhotoRequestModel
	if err := r.db.WithContext(ctx).Where("id = ?", requestID).First(&model).Error; err != nil {
		return nil, translateError(err, "photo request", requestID)
	}
	return model.ToDomain(), nil
}

func (r *gormPhotoRequestRepository) ListByUser(ctx context.Context, userID string) ([]*photos.PhotoRequest, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ? AND order_id IS NULL", userID).Order("date_time_created asc"))
}

func (r *gormPhotoRequestRepository) ListByOrder(ctx context.Context, orderID string) ([]*photos.PhotoRequest, error) {
	return r.find(r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("date_time_created asc"))
}

func (r *gormPhotoRequestRepository) find(query *gorm.DB) ([]*photos.PhotoRequest, error) {
	var modelList []*models.PhotoRequestModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch photo requests: %w", err)
	}

	domainList := make([]*photos.PhotoRequest, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormPhotoRequestRepository) CountUnassigned(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PhotoRequestModel{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count photo requests: %w", err)
	}
	return count, nil
}

func (r *gormPhotoRequestRepository) AssignToOrder(ctx context.Context, userID, orderID string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.PhotoRequestModel{}).
		Where("user_id = ? AND order_id IS NULL", userID).
		Update("order_id", orderID)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to assign photo requests: %w", result.Error)
	}

	r.logger.Info("assigned photo requests to order", "order_id", orderID, "count", result.RowsAffected)
	return result.RowsAffected, nil
}

func (r *gormPhotoRequestRepository) ClearReference(ctx context.Context, requestID string) error {
	err := r.db.WithContext(ctx).Model(&models.PhotoRequestModel{}).
		Where("id = ?", requestID).
		Updates(map[string]interface{}{"reference_image_url": nil, "reference_blob_name": nil}).Error
	if err != nil {
		return fmt.Errorf("failed to clear reference of photo request: %w", err)
	}
	return nil
}

func (r *gormPhotoRequestRepository) DeleteByID(ctx context.Context, requestID string) error {
	if err := r.db.WithContext(ctx).Where("id = ?", requestID).Delete(&models.PhotoRequestModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete photo request: %w", err)
	}

	r.logger.Info("deleted photo request", "request_id", requestID)
	return nil
}
