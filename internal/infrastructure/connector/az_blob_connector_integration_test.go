//go:build integration
// +build integration

package connector

import (
	"context"
	"strings"
	"testing"

	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/config"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type AzureBlobConnectorTest struct {
	blobConnector blobs.BlobConnector
}

func NewAzureBlobConnectorTest(t *testing.T, cloudProvider, connectionString, containerName string) *AzureBlobConnectorTest {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	blobConnectorSettings := &config.BlobConnectorSettings{
		CloudProvider:    cloudProvider,
		ConnectionString: connectionString,
		ContainerName:    containerName,
	}

	blobConnector, err := NewAzureBlobConnector(context.Background(), blobConnectorSettings, logger)
	require.NoError(t, err)

	return &AzureBlobConnectorTest{
		blobConnector: blobConnector,
	}
}

func TestAzureBlobConnector_UploadAndDelete(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t, TestCloudProvider, TestConnectionString, TestContainerName)
	ctx := context.Background()

	name := blobs.BuildBlobName(blobs.PrefixUploads, uuid.NewString(), "face.png")
	stored, err := abct.blobConnector.Upload(ctx, name, testutil.PNGBytes, "image/png")
	require.NoError(t, err)

	assert.Equal(t, name, stored.Name)
	assert.Equal(t, int64(len(testutil.PNGBytes)), stored.Size)
	assert.True(t, strings.HasSuffix(stored.URL, "/"+TestContainerName+"/"+name))
	require.NoError(t, stored.Validate())

	require.NoError(t, abct.blobConnector.Delete(ctx, name))
}

func TestAzureBlobConnector_DeleteMissingBlob(t *testing.T) {
	abct := NewAzureBlobConnectorTest(t, TestCloudProvider, TestConnectionString, TestContainerName)

	err := abct.blobConnector.Delete(context.Background(), "uploads/missing/"+uuid.NewString())
	assert.NoError(t, err)
}

func TestNewAzureBlobConnector_InvalidSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewAzureBlobConnector(context.Background(), &config.BlobConnectorSettings{CloudProvider: "aws"}, logger)
	assert.Error(t, err)
}
