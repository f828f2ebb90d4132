//go:build unit
// +build unit

package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type countingService struct {
	runs atomic.Int32
	jobs chan string
}

func (s *countingService) Run(_ context.Context, job string) (*cleanup.Report, error) {
	s.runs.Add(1)
	select {
	case s.jobs <- job:
	default:
	}
	return cleanup.NewReport(job, time.Now()), nil
}

func TestScheduler_RunsAllJobs(t *testing.T) {
	defer goleak.VerifyNone(t)

	service := &countingService{jobs: make(chan string, 1)}
	s, err := New("@every 1s", service, time.Minute, testutil.SetupTestLogger(t))
	require.NoError(t, err)

	s.Start()

	select {
	case job := <-service.jobs:
		assert.Equal(t, cleanup.JobAll, job)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduled job did not run")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Stop(ctx))
	assert.GreaterOrEqual(t, service.runs.Load(), int32(1))
}

func TestNew_InvalidSchedule(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := New("every day at noon", &countingService{}, time.Minute, testutil.SetupTestLogger(t))
	assert.Error(t, err)
}
