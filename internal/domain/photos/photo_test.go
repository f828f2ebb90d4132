//go:build unit
// +build unit

package photos

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUpload() *UploadedPhoto {
	return &UploadedPhoto{
		ID:              uuid.NewString(),
		UserID:          uuid.NewString(),
		URL:             "https://blobs.realshot.test/uploads/u/p.png",
		BlobName:        "uploads/u/p.png",
		FileName:        "p.png",
		ContentType:     "image/png",
		Size:            100,
		DateTimeCreated: time.Now(),
	}
}

func TestUploadedPhotoValidation(t *testing.T) {
	photo := newTestUpload()
	require.NoError(t, photo.Validate())

	photo.ContentType = "application/pdf"
	assert.Error(t, photo.Validate())

	photo = newTestUpload()
	photo.Size = 0
	assert.Error(t, photo.Validate())
}

func TestPhotoRequestValidation(t *testing.T) {
	request := &PhotoRequest{ID: uuid.NewString(), UserID: uuid.NewString(), Instruction: "smiling on a beach", DateTimeCreated: time.Now()}
	require.NoError(t, request.Validate())
	assert.False(t, request.HasReference())

	name := "references/u/r.png"
	request.ReferenceBlobName = &name
	assert.True(t, request.HasReference())

	request.Instruction = ""
	assert.Error(t, request.Validate())

	assert.Error(t, (&PhotoRequestInput{Instruction: string(make([]byte, 1001))}).Validate())
}
