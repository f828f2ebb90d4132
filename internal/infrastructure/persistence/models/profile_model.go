package models

import (
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/users"
)

// ProfileModel is the GORM database model for studio profiles, one per user
type ProfileModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;uniqueIndex;type:uuid"`
	User            UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Gender          string    `gorm:"type:varchar(50)"`
	AgeRange        string    `gorm:"type:varchar(50)"`
	Ethnicity       string    `gorm:"type:varchar(100)"`
	HairColor       string    `gorm:"type:varchar(50)"`
	EyeColor        string    `gorm:"type:varchar(50)"`
	BodyType        string    `gorm:"type:varchar(50)"`
	AdditionalInfo  string    `gorm:"type:text"`
	WizardStep      int       `gorm:"not null;default:0"`
	DesignSubstep   bool      `gorm:"not null;default:false"`
	DateTimeCreated time.Time `gorm:"not null"`
	DateTimeUpdated time.Time
}

// TableName specifies the table name for GORM
func (ProfileModel) TableName() string {
	return "profiles"
}

// ToDomain converts GORM model to domain entity
func (m *ProfileModel) ToDomain() *users.Profile {
	return &users.Profile{
		ID:              m.ID,
		UserID:          m.UserID,
		Gender:          m.Gender,
		AgeRange:        m.AgeRange,
		Ethnicity:       m.Ethnicity,
		HairColor:       m.HairColor,
		EyeColor:        m.EyeColor,
		BodyType:        m.BodyType,
		AdditionalInfo:  m.AdditionalInfo,
		WizardStep:      m.WizardStep,
		DesignSubstep:   m.DesignSubstep,
		DateTimeCreated: m.DateTimeCreated,
		DateTimeUpdated: m.DateTimeUpdated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProfileModel) FromDomain(p *users.Profile) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.Gender = p.Gender
	m.AgeRange = p.AgeRange
	m.Ethnicity = p.Ethnicity
	m.HairColor = p.HairColor
	m.EyeColor = p.EyeColor
	m.BodyType = p.BodyType
	m.AdditionalInfo = p.AdditionalInfo
	m.WizardStep = p.WizardStep
	m.DesignSubstep = p.DesignSubstep
	m.DateTimeCreated = p.DateTimeCreated
	m.DateTimeUpdated = p.DateTimeUpdated
}
