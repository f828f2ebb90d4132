package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
)

// azureBlobConnector is a struct that holds the Azure Blob storage client and implements the BlobConnector interfaces.
type azureBlobConnector struct {
	client        *azblob.Client
	containerName string
	baseURL       string
	logger        logger.Logger
}

// NewAzureBlobConnector creates a new azureBlobConnector instance using a connection string.
// It returns the connector and any error encountered during the initialization.
func NewAzureBlobConnector(ctx context.Context, settings *config.BlobConnectorSettings, logger logger.Logger) (blobs.BlobConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	_, err = client.CreateContainer(ctx, settings.ContainerName, nil)
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create Azure Blob container %s: %w", settings.ContainerName, err)
	}

	baseURL := settings.PublicBaseURL
	if baseURL == "" {
		baseURL = strings.TrimRight(client.URL(), "/") + "/" + settings.ContainerName
	}

	logger.Info("blob container ready", "container", settings.ContainerName)

	return &azureBlobConnector{
		client:        client,
		containerName: settings.ContainerName,
		baseURL:       strings.TrimRight(baseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload writes data as a block blob with the given content type
func (abc *azureBlobConnector) Upload(ctx context.Context, name string, data []byte, contentType string) (*blobs.StoredBlob, error) {
	_, err := abc.client.UploadBuffer(ctx, abc.containerName, name, data, &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload blob %s: %w", name, err)
	}

	abc.logger.Info("blob uploaded", "blob_name", name, "size", len(data))

	return &blobs.StoredBlob{
		Name:        name,
		URL:         abc.URL(name),
		Size:        int64(len(data)),
		ContentType: contentType,
	}, nil
}

// Delete removes a blob. A blob that is already gone counts as deleted.
func (abc *azureBlobConnector) Delete(ctx context.Context, name string) error {
	_, err := abc.client.DeleteBlob(ctx, abc.containerName, name, nil)
	if err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			abc.logger.Debug("blob already deleted", "blob_name", name)
			return nil
		}
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}

	abc.logger.Info("blob deleted", "blob_name", name)
	return nil
}

// URL returns the public URL of a blob
func (abc *azureBlobConnector) URL(name string) string {
	return abc.baseURL + "/" + name
}
