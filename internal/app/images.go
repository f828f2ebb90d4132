package app

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/validators"
)

// image is an uploaded file read into memory with its verified content type
type image struct {
	fileName    string
	contentType string
	data        []byte
}

// readImage reads a form file of at most maxSize bytes and checks it is a supported photo.
// The declared content type is only trusted for HEIC/HEIF, which the sniffer does not recognize.
func readImage(fileHeader *multipart.FileHeader, maxSize int64) (*image, error) {
	if fileHeader.Size > maxSize {
		return nil, apperrors.InvalidInput("file %s exceeds the limit of %d bytes", fileHeader.Filename, maxSize)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
	}
	if int64(len(data)) > maxSize {
		return nil, apperrors.InvalidInput("file %s exceeds the limit of %d bytes", fileHeader.Filename, maxSize)
	}
	if len(data) == 0 {
		return nil, apperrors.InvalidInput("file %s is empty", fileHeader.Filename)
	}

	contentType := http.DetectContentType(data)
	if contentType == "application/octet-stream" {
		contentType = fileHeader.Header.Get("Content-Type")
	}
	if !validators.IsAllowedImageContentType(contentType) {
		return nil, apperrors.InvalidInput("file %s has unsupported type %s", fileHeader.Filename, contentType)
	}

	return &image{fileName: fileHeader.Filename, contentType: contentType, data: data}, nil
}

// readImages reads every file of a form field, failing on the first invalid one
func readImages(form *multipart.Form, field string, maxSize int64) ([]*image, error) {
	if form == nil || len(form.File[field]) == 0 {
		return nil, apperrors.InvalidInput("no files provided in field %s", field)
	}

	images := make([]*image, 0, len(form.File[field]))
	for _, fileHeader := range form.File[field] {
		img, err := readImage(fileHeader, maxSize)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}
