package app

import (
	"context"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/errorlogs"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"
)

const (
	recordTimeout       = 2 * time.Second
	defaultErrorLogSize = 50
	maxErrorLogSize     = 200
)

// errorRecorder implements the Recorder interface. Recording never fails the caller.
type errorRecorder struct {
	repository errorlogs.Repository
	logger     logger.Logger
}

// NewErrorRecorder creates a new instance of Recorder
func NewErrorRecorder(repository errorlogs.Repository, logger logger.Logger) (errorlogs.Recorder, error) {
	return &errorRecorder{repository: repository, logger: logger}, nil
}

// Record persists err detached from ctx so an aborted request still leaves a trace
func (r *errorRecorder) Record(ctx context.Context, source string, err error, userID string) {
	if err == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
	defer cancel()

	entry := errorlogs.New(source, err.Error(), fmt.Sprintf("%+v", err), userID, time.Now())
	if createErr := r.repository.Create(ctx, entry); createErr != nil {
		r.logger.Error("failed to record error", "source", source, "error", err, "record_error", createErr)
	}
}

func (r *errorRecorder) ListRecent(ctx context.Context, limit int) ([]*errorlogs.ErrorLog, error) {
	switch {
	case limit <= 0:
		limit = defaultErrorLogSize
	case limit > maxErrorLogSize:
		limit = maxErrorLogSize
	}
	return r.repository.ListRecent(ctx, limit)
}
