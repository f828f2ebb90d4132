package app

import (
	"context"
	"fmt"
	"time"

	"github.com/GRBalance8/realshot-sub001/internal/domain/apperrors"
	"github.com/GRBalance8/realshot-sub001/internal/domain/blobs"
	"github.com/GRBalance8/realshot-sub001/internal/domain/cleanup"
	"github.com/GRBalance8/realshot-sub001/internal/domain/notifications"
	"github.com/GRBalance8/realshot-sub001/internal/domain/orders"
	"github.com/GRBalance8/realshot-sub001/internal/domain/photos"
	"github.com/GRBalance8/realshot-sub001/internal/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// blobDeleteConcurrency bounds the parallel blob deletes of one order
const blobDeleteConcurrency = 8

// cleanupService implements the cleanup Service interface. A failing target is
// recorded in the report and never stops the run.
type cleanupService struct {
	orderRepository   orders.OrderRepository
	photoRepository   photos.UploadedPhotoRepository
	requestRepository photos.PhotoRequestRepository
	blobConnector     blobs.BlobConnector
	publisher         orders.EventPublisher
	notifier          notifications.Notifier
	uploadRetention   time.Duration
	abandonedAfter    time.Duration
	now               func() time.Time
	logger            logger.Logger
}

// NewCleanupService creates a new instance of the cleanup Service
func NewCleanupService(
	orderRepository orders.OrderRepository,
	photoRepository photos.UploadedPhotoRepository,
	requestRepository photos.PhotoRequestRepository,
	blobConnector blobs.BlobConnector,
	publisher orders.EventPublisher,
	notifier notifications.Notifier,
	uploadRetention time.Duration,
	abandonedAfter time.Duration,
	logger logger.Logger,
) (cleanup.Service, error) {
	if uploadRetention <= 0 || abandonedAfter <= 0 {
		return nil, fmt.Errorf("retention periods must be positive")
	}

	return &cleanupService{
		orderRepository:   orderRepository,
		photoRepository:   photoRepository,
		requestRepository: requestRepository,
		blobConnector:     blobConnector,
		publisher:         publisher,
		notifier:          notifier,
		uploadRetention:   uploadRetention,
		abandonedAfter:    abandonedAfter,
		now:               time.Now,
		logger:            logger,
	}, nil
}

// Run executes one job, or every job for cleanup.JobAll, and reports what was removed
func (s *cleanupService) Run(ctx context.Context, job string) (*cleanup.Report, error) {
	if !cleanup.ValidJob(job) {
		return nil, apperrors.InvalidInput("unknown cleanup job %q", job)
	}

	started := s.now()
	report := cleanup.NewReport(job, started)

	jobs := []string{job}
	if job == cleanup.JobAll {
		jobs = cleanup.Jobs
	}

	for _, name := range jobs {
		var (
			partial *cleanup.Report
			err     error
		)
		switch name {
		case cleanup.JobUploads:
			partial, err = s.expireUploads(ctx, started)
		case cleanup.JobAbandoned:
			partial, err = s.removeAbandoned(ctx, started)
		}
		if err != nil {
			return nil, fmt.Errorf("cleanup job %s failed: %w", name, err)
		}
		report.Merge(partial)
	}

	report.Duration = s.now().Sub(started)
	s.logger.Info("cleanup finished", "report", report.String())
	s.sendReport(ctx, report)

	return report, nil
}

// expireUploads removes source photos and reference images of orders completed before the retention window
func (s *cleanupService) expireUploads(ctx context.Context, now time.Time) (*cleanup.Report, error) {
	report := cleanup.NewReport(cleanup.JobUploads, now)

	completed, err := s.orderRepository.ListCompletedBefore(ctx, now.Add(-s.uploadRetention))
	if err != nil {
		return nil, err
	}

	for _, order := range completed {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		// orders purged on an earlier run have nothing left and are not counted
		if s.purgeOrderPhotos(ctx, order.ID, report) {
			report.OrdersProcessed++
		}
	}

	return report, nil
}

// removeAbandoned cancels stale unpaid orders, drops their photos and removes orphaned uploads
func (s *cleanupService) removeAbandoned(ctx context.Context, now time.Time) (*cleanup.Report, error) {
	report := cleanup.NewReport(cleanup.JobAbandoned, now)
	cutoff := now.Add(-s.abandonedAfter)

	abandoned, err := s.orderRepository.ListAbandonedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	for _, order := range abandoned {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		report.OrdersProcessed++
		s.purgeOrderPhotos(ctx, order.ID, report)

		if err := order.Cancel(s.now()); err != nil {
			report.Fail("order/"+order.ID, err)
			continue
		}
		if err := s.orderRepository.Update(ctx, order); err != nil {
			report.Fail("order/"+order.ID, err)
			continue
		}
		report.OrdersCancelled++

		if err := s.publisher.Publish(ctx, orders.NewEvent(orders.EventOrderCancelled, order, s.now())); err != nil {
			s.logger.Warn("failed to publish order event", "order_id", order.ID, "error", err)
		}
	}

	orphaned, err := s.photoRepository.ListOrphanedBefore(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	s.deleteUploads(ctx, orphaned, report)

	return report, nil
}

// purgeOrderPhotos deletes the uploads and reference images of an order. It reports whether
// there was anything to purge; a failed lookup counts as work attempted.
func (s *cleanupService) purgeOrderPhotos(ctx context.Context, orderID string, report *cleanup.Report) bool {
	attempted := false

	uploads, err := s.photoRepository.ListByOrder(ctx, orderID)
	if err != nil {
		report.Fail("order/"+orderID+"/uploads", err)
		attempted = true
	} else if len(uploads) > 0 {
		s.deleteUploads(ctx, uploads, report)
		attempted = true
	}

	requests, err := s.requestRepository.ListByOrder(ctx, orderID)
	if err != nil {
		report.Fail("order/"+orderID+"/requests", err)
		return true
	}
	if s.purgeReferences(ctx, requests, report) > 0 {
		attempted = true
	}

	return attempted
}

// deleteUploads removes the blobs in parallel and then the rows whose blob is gone
func (s *cleanupService) deleteUploads(ctx context.Context, uploads []*photos.UploadedPhoto, report *cleanup.Report) {
	names := make([]string, len(uploads))
	for i, photo := range uploads {
		names[i] = photo.BlobName
	}

	for i, blobErr := range s.deleteBlobs(ctx, names) {
		photo := uploads[i]
		if blobErr != nil {
			report.Fail("blob/"+photo.BlobName, blobErr)
			continue
		}
		report.BlobsDeleted++

		if err := s.photoRepository.DeleteByID(ctx, photo.ID); err != nil {
			report.Fail("photo/"+photo.ID, err)
			continue
		}
		report.PhotosDeleted++
	}
}

// purgeReferences deletes the reference images of requests and returns how many requests had one
func (s *cleanupService) purgeReferences(ctx context.Context, requests []*photos.PhotoRequest, report *cleanup.Report) int {
	withReference := make([]*photos.PhotoRequest, 0, len(requests))
	names := make([]string, 0, len(requests))
	for _, request := range requests {
		if request.HasReference() {
			withReference = append(withReference, request)
			names = append(names, *request.ReferenceBlobName)
		}
	}

	for i, blobErr := range s.deleteBlobs(ctx, names) {
		request := withReference[i]
		if blobErr != nil {
			report.Fail("blob/"+names[i], blobErr)
			continue
		}
		report.BlobsDeleted++

		if err := s.requestRepository.ClearReference(ctx, request.ID); err != nil {
			report.Fail("photo_request/"+request.ID, err)
			continue
		}
		report.ReferencesPurged++
	}

	return len(withReference)
}

// deleteBlobs deletes every blob and returns one result per name, in order
func (s *cleanupService) deleteBlobs(ctx context.Context, names []string) []error {
	results := make([]error, len(names))

	var g errgroup.Group
	g.SetLimit(blobDeleteConcurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			results[i] = s.blobConnector.Delete(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (s *cleanupService) sendReport(ctx context.Context, report *cleanup.Report) {
	failures := make([]string, 0, len(report.Failures))
	for _, f := range report.Failures {
		failures = append(failures, f.Target+": "+f.Error)
	}

	summary := &notifications.CleanupSummary{
		Job:      report.Job,
		Orders:   report.OrdersProcessed,
		Photos:   report.PhotosDeleted,
		Blobs:    report.BlobsDeleted,
		Failures: failures,
	}
	if err := s.notifier.CleanupReport(ctx, summary); err != nil {
		s.logger.Warn("failed to send cleanup report", "job", report.Job, "error", err)
	}
}
