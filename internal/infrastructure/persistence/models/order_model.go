package models

import (
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
)

// OrderModel is the GORM database model for orders
type OrderModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	UserID            string    `gorm:"not null;index;type:uuid"`
	User              UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Status            string    `gorm:"not null;index;type:varchar(20);default:PENDING"`
	ImagesProcessed   bool      `gorm:"not null;default:false"`
	TrainingInitiated bool      `gorm:"not null;default:false"`
	ImagesGenerated   bool      `gorm:"not null;default:false"`
	OrderCompleted    bool      `gorm:"not null;default:false"`
	PackageID         string    `gorm:"not null;type:varchar(64)"`
	Amount            int64     `gorm:"not null"`
	Currency          string    `gorm:"not null;type:varchar(3)"`
	StripeSessionID   *string   `gorm:"uniqueIndex;type:varchar(255)"`
	PaymentStatus     string    `gorm:"not null;type:varchar(10);default:unpaid"`
	DateTimeCompleted *time.Time
	DateTimeCreated   time.Time `gorm:"not null;index"`
	DateTimeUpdated   time.Time
}

// TableName specifies the table name for GORM
func (OrderModel) TableName() string {
	return "orders"
}

// ToDomain converts GORM model to domain entity
func (m *OrderModel) ToDomain() *orders.Order {
	return &orders.Order{
		ID:     m.ID,
		UserID: m.UserID,
		Status: orders.Status(m.Status),
		Progress: orders.Progress{
			ImagesProcessed:   m.ImagesProcessed,
			TrainingInitiated: m.TrainingInitiated,
			ImagesGenerated:   m.ImagesGenerated,
			OrderCompleted:    m.OrderCompleted,
		},
		PackageID:         m.PackageID,
		Amount:            m.Amount,
		Currency:          m.Currency,
		StripeSessionID:   m.StripeSessionID,
		PaymentStatus:     m.PaymentStatus,
		DateTimeCompleted: m.DateTimeCompleted,
		DateTimeCreated:   m.DateTimeCreated,
		DateTimeUpdated:   m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *OrderModel) FromDomain(o *orders.Order) {
	m.ID = o.ID
	m.UserID = o.UserID
	m.Status = string(o.Status)
	m.ImagesProcessed = o.Progress.ImagesProcessed
	m.TrainingInitiated = o.Progress.TrainingInitiated
	m.ImagesGenerated = o.Progress.ImagesGenerated
	m.OrderCompleted = o.Progress.OrderCompleted
	m.PackageID = o.PackageID
	m.Amount = o.Amount
	m.Currency = o.Currency
	m.StripeSessionID = o.StripeSessionID
	m.PaymentStatus = o.PaymentStatus
	m.DateTimeCompleted = o.DateTimeCompleted
	m.DateTimeCreated = o.DateTimeCreated
	m.DateTimeUpdated = o.DateTimeUpdated
}
