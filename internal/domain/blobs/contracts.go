package blobs

import (
	"context"
)

// BlobConnector is an interface for interacting with Blob storage
type BlobConnector interface {
	// Upload writes data under name and returns where it can be fetched from.
	Upload(ctx context.Context, name string, data []byte, contentType string) (*StoredBlob, error)

	// Delete removes the blob with the given name. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// URL returns the public URL of the blob with the given name.
	URL(name string) string
}
