// Package httputil holds helpers for building and reading multipart forms.
package httputil

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
)

// FilesField is the multipart field photo uploads are sent in
const FilesField = "files"

// maxFormMemory is the in-memory threshold used when re-reading built forms
const maxFormMemory = 32 << 20

// CreateForm builds a multipart form with a single file in FilesField
func CreateForm(content []byte, fileName string) (*multipart.Form, error) {
	return CreateMultipleFilesForm([][]byte{content}, []string{fileName})
}

// CreateMultipleFilesForm builds a multipart form holding one file per content/name pair in FilesField
func CreateMultipleFilesForm(contents [][]byte, fileNames []string) (*multipart.Form, error) {
	return createForm(FilesField, contents, fileNames, "")
}

// CreateImageForm builds a multipart form whose parts carry an explicit image content type
func CreateImageForm(field string, contents [][]byte, fileNames []string, contentType string) (*multipart.Form, error) {
	return createForm(field, contents, fileNames, contentType)
}

func createForm(field string, contents [][]byte, fileNames []string, contentType string) (*multipart.Form, error) {
	if len(contents) != len(fileNames) {
		return nil, fmt.Errorf("got %d contents for %d file names", len(contents), len(fileNames))
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for i, content := range contents {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, field, fileNames[i]))
		if contentType != "" {
			header.Set("Content-Type", contentType)
		} else {
			header.Set("Content-Type", "application/octet-stream")
		}

		part, err := writer.CreatePart(header)
		if err != nil {
			return nil, fmt.Errorf("failed to create form part for %s: %w", fileNames[i], err)
		}
		if _, err := part.Write(content); err != nil {
			return nil, fmt.Errorf("failed to write form part for %s: %w", fileNames[i], err)
		}
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(maxFormMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to read multipart form: %w", err)
	}

	return form, nil
}
