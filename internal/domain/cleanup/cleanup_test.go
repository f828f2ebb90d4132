//go:build unit
// +build unit

package cleanup

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidJob(t *testing.T) {
	assert.True(t, ValidJob(JobUploads))
	assert.True(t, ValidJob(JobAbandoned))
	assert.True(t, ValidJob(JobAll))
	assert.False(t, ValidJob("everything"))
}

func TestReport_Merge(t *testing.T) {
	total := NewReport(JobAll, time.Now())

	uploads := NewReport(JobUploads, time.Now())
	uploads.OrdersProcessed = 2
	uploads.PhotosDeleted = 10
	uploads.BlobsDeleted = 9
	uploads.Fail("uploads/u/1.png", errors.New("timeout"))

	abandoned := NewReport(JobAbandoned, time.Now())
	abandoned.OrdersCancelled = 1

	total.Merge(uploads)
	total.Merge(abandoned)

	assert.Equal(t, 2, total.OrdersProcessed)
	assert.Equal(t, 1, total.OrdersCancelled)
	assert.Equal(t, 10, total.PhotosDeleted)
	assert.True(t, total.Failed())
	assert.Equal(t, "timeout", total.Failures[0].Error)
	assert.Contains(t, total.String(), "failures=1")
}
