package services

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kieeler123/cloud-service/internal/application/ports"
	domain "github.com/kieeler123/cloud-service/internal/domain/file"
)

// Reconciler sweeps up the leftovers of interrupted permanent deletes: a
// trashed record whose object is already gone is the surviving half of a
// delete that removed the object but not the row.
type Reconciler struct {
	logger         *zap.Logger
	fileRepository domain.Repository
	s3             ports.S3Client
	mCounter       *prometheus.CounterVec

	interval time.Duration
	minAge   time.Duration
}

func NewReconciler(
	logger *zap.Logger,
	fileRepository domain.Repository,
	s3 ports.S3Client,
	mCounter *prometheus.CounterVec,
	interval time.Duration,
	minAge time.Duration,
) *Reconciler {
	return &Reconciler{
		logger:         logger,
		fileRepository: fileRepository,
		s3:             s3,
		mCounter:       mCounter,
		interval:       interval,
		minAge:         minAge,
	}
}

func (r *Reconciler) Run(ctx context.Context) {
	r.logger.Info("starting reconciler",
		zap.Duration("interval", r.interval),
		zap.Duration("min_age", r.minAge),
	)

	defer func() {
		r.logger.Info("reconciler gracefully stopped")
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed, err := r.Sweep(ctx)
			if err != nil {
				r.logger.Error("reconciler sweep error", zap.Error(err))
				continue
			}
			if removed > 0 {
				r.logger.Info("reconciler sweep done", zap.Int("removed", removed))
			}
		case <-ctx.Done():
			return
		}
	}
}

// Sweep inspects trashed records older than minAge and removes those whose
// object no longer exists. The age floor keeps the sweep from racing an
// in-flight delete.
func (r *Reconciler) Sweep(ctx context.Context) (int, error) {
	recs, err := r.fileRepository.FetchTrashedBefore(ctx, time.Now().Add(-r.minAge))
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, rec := range recs {
		if rec.OwnerID == nil {
			continue
		}

		exists, err := r.s3.ObjectExists(ctx, rec.StoragePath)
		if err != nil {
			r.logger.Error("reconciler head error",
				zap.String("key", rec.StoragePath),
				zap.Error(err),
			)
			continue
		}
		if exists {
			continue
		}

		if err = r.fileRepository.DeleteRecord(ctx, *rec.OwnerID, rec.UUID); err != nil {
			r.logger.Error("reconciler record delete error",
				zap.String("file", rec.UUID.String()),
				zap.Error(err),
			)
			continue
		}

		removed++
		r.mCounter.WithLabelValues("reconciler_removed_total").Inc()
	}

	return removed, nil
}
