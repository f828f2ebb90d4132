package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/infrastructure/persistence/models"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(model).Error; err != nil {
		return translateError(err, "order", order.ID)
	}

	r.logger.Info("created order", "order_id", order.ID, "user_id", order.UserID, "package_id", order.PackageID)
	return nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID string) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("id = ?", orderID).First(&model).Error; err != nil {
		return nil, translateError(err, "order", orderID)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) GetByStripeSessionID(ctx context.Context, sessionID string) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).Where("stripe_session_id = ?", sessionID).First(&model).Error; err != nil {
		return nil, translateError(err, "order for checkout session", sessionID)
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) ListByUser(ctx context.Context, userID string) ([]*orders.Order, error) {
	return r.find(r.db.WithContext(ctx).Where("user_id = ?", userID).Order("date_time_created desc"))
}

func (r *gormOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}
	if query.UserID != "" {
		dbQuery = dbQuery.Where("user_id = ?", query.UserID)
	}

	// SortBy and SortOrder are restricted to known columns by Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	return r.find(dbQuery)
}

func (r *gormOrderRepository) ListCompletedBefore(ctx context.Context, cutoff time.Time) ([]*orders.Order, error) {
	return r.find(r.db.WithContext(ctx).
		Where("status = ? AND date_time_completed IS NOT NULL AND date_time_completed < ?", orders.StatusCompleted, cutoff))
}

func (r *gormOrderRepository) ListAbandonedBefore(ctx context.Context, cutoff time.Time) ([]*orders.Order, error) {
	return r.find(r.db.WithContext(ctx).
		Where("status = ? AND payment_status = ? AND date_time_created < ?", orders.StatusPending, orders.PaymentStatusUnpaid, cutoff))
}

func (r *gormOrderRepository) find(query *gorm.DB) ([]*orders.Order, error) {
	var modelList []*models.OrderModel
	if err := query.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormOrderRepository) Update(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(model).Error; err != nil {
		return translateError(err, "order", order.ID)
	}

	r.logger.Info("updated order", "order_id", order.ID, "status", order.Status, "payment_status", order.PaymentStatus)
	return nil
}
