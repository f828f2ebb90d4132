package models

import (
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
)

// ErrorLogModel is the GORM database model for recorded server failures
type ErrorLogModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Source          string    `gorm:"not null;index;type:varchar(100)"`
	Message         string    `gorm:"not null;type:text"`
	Detail          string    `gorm:"type:text"`
	UserID          *string   `gorm:"index;type:uuid"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (ErrorLogModel) TableName() string {
	return "error_logs"
}

// ToDomain converts GORM model to domain entity
func (m *ErrorLogModel) ToDomain() *errorlogs.ErrorLog {
	return &errorlogs.ErrorLog{
		ID:              m.ID,
		Source:          m.Source,
		Message:         m.Message,
		Detail:          m.Detail,
		UserID:          m.UserID,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ErrorLogModel) FromDomain(e *errorlogs.ErrorLog) {
	m.ID = e.ID
	m.Source = e.Source
	m.Message = e.Message
	m.Detail = e.Detail
	m.UserID = e.UserID
	m.DateTimeCreated = e.DateTimeCreated
}
