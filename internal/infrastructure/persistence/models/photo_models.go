package models

import (
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
)

// UploadedPhotoModel is the GORM database model for customer uploads
type UploadedPhotoModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	UserID          string    `gorm:"not null;index;type:uuid"`
	User            UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderID         *string   `gorm:"index;type:uuid"`
	URL             string    `gorm:"not null;type:text"`
	BlobName        string    `gorm:"not null;type:varchar(1024)"`
	FileName        string    `gorm:"not null;type:varchar(255)"`
	ContentType     string    `gorm:"not null;type:varchar(100)"`
	Size            int64     `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UploadedPhotoModel) TableName() string {
	return "uploaded_photos"
}

// ToDomain converts GORM model to domain entity
func (m *UploadedPhotoModel) ToDomain() *photos.UploadedPhoto {
	return &photos.UploadedPhoto{
		ID:              m.ID,
		UserID:          m.UserID,
		OrderID:         m.OrderID,
		URL:             m.URL,
		BlobName:        m.BlobName,
		FileName:        m.FileName,
		ContentType:     m.ContentType,
		Size:            m.Size,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UploadedPhotoModel) FromDomain(p *photos.UploadedPhoto) {
	m.ID = p.ID
	m.UserID = p.UserID
	m.OrderID = p.OrderID
	m.URL = p.URL
	m.BlobName = p.BlobName
	m.FileName = p.FileName
	m.ContentType = p.ContentType
	m.Size = p.Size
	m.DateTimeCreated = p.DateTimeCreated
}

// GeneratedPhotoModel is the GORM database model for delivered result images
type GeneratedPhotoModel struct {
	ID              string     `gorm:"primaryKey;type:uuid"`
	OrderID         string     `gorm:"not null;index;type:uuid"`
	Order           OrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	UserID          string     `gorm:"not null;index;type:uuid"`
	URL             string     `gorm:"not null;type:text"`
	BlobName        string     `gorm:"not null;type:varchar(1024)"`
	FileName        string     `gorm:"not null;type:varchar(255)"`
	DateTimeCreated time.Time  `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (GeneratedPhotoModel) TableName() string {
	return "generated_photos"
}

// ToDomain converts GORM model to domain entity
func (m *GeneratedPhotoModel) ToDomain() *photos.GeneratedPhoto {
	return &photos.GeneratedPhoto{
		ID:              m.ID,
		OrderID:         m.OrderID,
		UserID:          m.UserID,
		URL:             m.URL,
		BlobName:        m.BlobName,
		FileName:        m.FileName,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *GeneratedPhotoModel) FromDomain(p *photos.GeneratedPhoto) {
	m.ID = p.ID
	m.OrderID = p.OrderID
	m.UserID = p.UserID
	m.URL = p.URL
	m.BlobName = p.BlobName
	m.FileName = p.FileName
	m.DateTimeCreated = p.DateTimeCreated
}

// PhotoRequestModel is the GORM database model for per-photo instructions
type PhotoRequestModel struct {
	ID                string    `gorm:"primaryKey;type:uuid"`
	UserID            string    `gorm:"not null;index;type:uuid"`
	User              UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrderID           *string   `gorm:"index;type:uuid"`
	Instruction       string    `gorm:"not null;type:text"`
	ReferenceImageURL *string   `gorm:"type:text"`
	ReferenceBlobName *string   `gorm:"type:varchar(1024)"`
	DateTimeCreated   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (PhotoRequestModel) TableName() string {
	return "photo_requests"
}

// ToDomain converts GORM model to domain entity
func (m *PhotoRequestModel) ToDomain() *photos.PhotoRequest {
	return &photos.PhotoRequest{
		ID:                m.ID,
		UserID:            m.UserID,
		OrderID:           m.OrderID,
		Instruction:       m.Instruction,
		ReferenceImageURL: m.ReferenceImageURL,
		ReferenceBlobName: m.ReferenceBlobName,
		DateTimeCreated:   m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *PhotoRequestModel) FromDomain(r *photos.PhotoRequest) {
	m.ID = r.ID
	m.UserID = r.UserID
	m.OrderID = r.OrderID
	m.Instruction = r.Instruction
	m.ReferenceImageURL = r.ReferenceImageURL
	m.ReferenceBlobName = r.ReferenceBlobName
	m.DateTimeCreated = r.DateTimeCreated
}
