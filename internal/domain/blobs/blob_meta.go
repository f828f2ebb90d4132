package blobs

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// Blob name prefixes per kind of stored file
const (
	PrefixUploads    = "uploads"
	PrefixGenerated  = "generated"
	PrefixReferences = "references"
)

// StoredBlob describes a file after it was written to blob storage
type StoredBlob struct {
	Name        string `validate:"required,min=1,max=1024"`
	URL         string `validate:"required,url"`
	Size        int64  `validate:"min=0"`
	ContentType string `validate:"required,max=100"`
}

// Validate for validating StoredBlob struct
func (b *StoredBlob) Validate() error {
	if err := validator.New().Struct(b); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

// SanitizeFileName reduces a client supplied file name to a safe base name
func SanitizeFileName(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	base = unsafeNameChars.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-.")
	if base == "" {
		return "file"
	}
	if len(base) > 100 {
		base = base[len(base)-100:]
	}
	return base
}

// BuildBlobName returns a unique blob name "<prefix>/<ownerID>/<uuid>-<sanitized file name>"
func BuildBlobName(prefix, ownerID, fileName string) string {
	return fmt.Sprintf("%s/%s/%s-%s", prefix, ownerID, uuid.NewString(), SanitizeFileName(fileName))
}
