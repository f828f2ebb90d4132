package persistence

import (
	"context"
	"fmt"

	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence/models"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormProfileRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProfileRepository creates a new GORM-based ProfileRepository implementation
func NewGormProfileRepository(db *gorm.DB, logger logger.Logger) (users.ProfileRepository, error) {
	return &gormProfileRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProfileRepository) GetByUserID(ctx context.Context, userID string) (*users.Profile, error) {
	var model models.ProfileModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, translateError(err, "profile of user", userID)
	}
	return model.ToDomain(), nil
}

// Upsert relies on the unique user_id index so concurrent first saves converge on one row
func (r *gormProfileRepository) Upsert(ctx context.Context, profile *users.Profile) error {
	if err := profile.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProfileModel{}
	model.FromDomain(profile)

	err := r.db.WithContext(ctx).Omit(clause.Associations).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"gender", "age_range", "ethnicity", "hair_color", "eye_color", "body_type",
			"additional_info", "wizard_step", "design_substep", "date_time_updated",
		}),
	}).Create(model).Error
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	r.logger.Debug("saved profile", "user_id", profile.UserID, "wizard_step", profile.WizardStep)
	return nil
}
