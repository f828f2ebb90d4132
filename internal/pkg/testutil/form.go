package testutil

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/GRBalance8/realshot-sub001/internal/pkg/httputil"

	"github.com/stretchr/testify/require"
)

// PNGBytes is a payload sniffed as image/png
var PNGBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01")

// JPEGBytes is a payload sniffed as image/jpeg
var JPEGBytes = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01")

// CreateTestImageForm creates a form with count PNG files in the files field
func CreateTestImageForm(t *testing.T, count int) *multipart.Form {
	t.Helper()

	contents := make([][]byte, count)
	names := make([]string, count)
	for i := range contents {
		contents[i] = PNGBytes
		names[i] = "photo.png"
	}

	form, err := httputil.CreateMultipleFilesForm(contents, names)
	require.NoError(t, err)

	return form
}

// CreateEmptyForm creates an empty multipart form for testing
func CreateEmptyForm() *multipart.Form {
	return &multipart.Form{
		File:  make(map[string][]*multipart.FileHeader),
		Value: make(map[string][]string),
	}
}

// NewMultipartRequest builds a request whose body carries the given files and values
func NewMultipartRequest(t *testing.T, method, url, field string, files map[string][]byte, values map[string]string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, content := range files {
		part, err := writer.CreateFormFile(field, name)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	for k, v := range values {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}
