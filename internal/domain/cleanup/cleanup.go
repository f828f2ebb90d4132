// Package cleanup defines the retention jobs that remove customer files once they are no longer needed.
package cleanup

import (
	"context"
	"fmt"
	"time"
)

// Job names
const (
	JobUploads   = "uploads"
	JobAbandoned = "abandoned"
	JobAll       = "all"
)

// Jobs lists the runnable jobs in execution order
var Jobs = []string{JobUploads, JobAbandoned}

// ValidJob reports whether name is a job or JobAll
func ValidJob(name string) bool {
	if name == JobAll {
		return true
	}
	for _, job := range Jobs {
		if job == name {
			return true
		}
	}
	return false
}

// Failure is one delete that did not succeed
type Failure struct {
	Target string `json:"target"`
	Error  string `json:"error"`
}

// Report summarizes a cleanup run
type Report struct {
	Job              string        `json:"job"`
	StartedAt        time.Time     `json:"startedAt"`
	Duration         time.Duration `json:"duration"`
	OrdersProcessed  int           `json:"ordersProcessed"`
	OrdersCancelled  int           `json:"ordersCancelled"`
	PhotosDeleted    int           `json:"photosDeleted"`
	BlobsDeleted     int           `json:"blobsDeleted"`
	ReferencesPurged int           `json:"referencesPurged"`
	Failures         []Failure     `json:"failures"`
}

// NewReport starts a report for job
func NewReport(job string, now time.Time) *Report {
	return &Report{Job: job, StartedAt: now, Failures: []Failure{}}
}

// Fail records a failed delete of target
func (r *Report) Fail(target string, err error) {
	r.Failures = append(r.Failures, Failure{Target: target, Error: err.Error()})
}

// Merge adds the counters and failures of other
func (r *Report) Merge(other *Report) {
	r.OrdersProcessed += other.OrdersProcessed
	r.OrdersCancelled += other.OrdersCancelled
	r.PhotosDeleted += other.PhotosDeleted
	r.BlobsDeleted += other.BlobsDeleted
	r.ReferencesPurged += other.ReferencesPurged
	r.Failures = append(r.Failures, other.Failures...)
}

// Failed reports whether any delete failed
func (r *Report) Failed() bool {
	return len(r.Failures) > 0
}

func (r *Report) String() string {
	return fmt.Sprintf("job=%s orders=%d cancelled=%d photos=%d blobs=%d references=%d failures=%d",
		r.Job, r.OrdersProcessed, r.OrdersCancelled, r.PhotosDeleted, r.BlobsDeleted, r.ReferencesPurged, len(r.Failures))
}

// Service runs cleanup jobs
type Service interface {
	// Run executes job, or every job for JobAll, and notifies the administrator
	Run(ctx context.Context, job string) (*Report, error)
}
