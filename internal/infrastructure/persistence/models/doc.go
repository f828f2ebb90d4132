// Package models contains GORM database models for infrastructure layer.
// These models handle database persistence and are separated from domain entities
// to maintain Clean Architecture principles.
package models

// All lists every model for schema migration, parents first
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&ProfileModel{},
		&OrderModel{},
		&UploadedPhotoModel{},
		&GeneratedPhotoModel{},
		&PhotoRequestModel{},
		&ErrorLogModel{},
	}
}
