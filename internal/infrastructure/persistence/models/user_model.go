package models

import (
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
)

// UserModel is the GORM database model for accounts
type UserModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Email           string    `gorm:"not null;uniqueIndex;type:varchar(255)"`
	Name            string    `gorm:"type:varchar(255)"`
	Image           *string   `gorm:"type:text"`
	PasswordHash    *string   `gorm:"type:varchar(255)"`
	Provider        string    `gorm:"not null;type:varchar(20)"`
	Role            string    `gorm:"not null;type:varchar(10);default:USER"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:              m.ID,
		Email:           m.Email,
		Name:            m.Name,
		Image:           m.Image,
		PasswordHash:    m.PasswordHash,
		Provider:        m.Provider,
		Role:            users.Role(m.Role),
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.Name = u.Name
	m.Image = u.Image
	m.PasswordHash = u.PasswordHash
	m.Provider = u.Provider
	m.Role = string(u.Role)
	m.DateTimeCreated = u.DateTimeCreated
	m.DateTimeUpdated = u.DateTimeUpdated
}
