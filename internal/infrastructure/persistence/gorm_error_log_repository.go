package persistence

import (
	"context"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// error logs are written from the failure path itself, so this repository does not log
type gormErrorLogRepository struct {
	db *gorm.DB
}

// NewGormErrorLogRepository creates a new GORM-based error log Repository implementation
func NewGormErrorLogRepository(db *gorm.DB) (errorlogs.Repository, error) {
	return &gormErrorLogRepository{db: db}, nil
}

func (r *gormErrorLogRepository) Create(ctx context.Context, entry *errorlogs.ErrorLog) error {
	model := &models.ErrorLogModel{}
	model.FromDomain(entry)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create error log: %w", err)
	}
	return nil
}

func (r *gormErrorLogRepository) ListRecent(ctx context.Context, limit int) ([]*errorlogs.ErrorLog, error) {
	var modelList []*models.ErrorLogModel
	err := r.db.WithContext(ctx).Order("date_time_created desc").Limit(limit).Find(&modelList).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch error logs: %w", err)
	}

	domainList := make([]*errorlogs.ErrorLog, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}
