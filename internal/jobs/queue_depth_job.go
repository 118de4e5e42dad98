package jobs

import (
	"context"
	"log/slog"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// QueueDepthJob periodically reports how many orders are waiting for a rider
// and how many are in transit. Read-only: order state changes only through
// buyer and rider requests, never from the scheduler.
type QueueDepthJob struct {
	db     *gorm.DB
	cron   *cron.Cron
	logger *slog.Logger
}

// NewQueueDepthJob creates a job reporting order queue depth every 30 seconds.
func NewQueueDepthJob(db *gorm.DB, logger *slog.Logger) *QueueDepthJob {
	return &QueueDepthJob{
		db:     db,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "queue_depth_job"),
	}
}

// Start begins the queue depth job.
func (j *QueueDepthJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()

		pending, err := j.countByStatus(ctx, order.Pending)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue depth job failed", "error", err)
			return
		}

		inTransit, err := j.countByStatus(ctx, order.InTransit)
		if err != nil {
			j.logger.ErrorContext(ctx, "Queue depth job failed", "error", err)
			return
		}

		j.logger.InfoContext(ctx, "order queue depth",
			"open_jobs", pending, "in_transit", inTransit)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Queue depth job started (running every 30 seconds)")
	return nil
}

// Stop stops the queue depth job.
func (j *QueueDepthJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Queue depth job stopped")
}

func (j *QueueDepthJob) countByStatus(ctx context.Context, status order.Status) (int64, error) {
	var count int64
	err := j.db.WithContext(ctx).Model(&orderrepo.OrderDTO{}).
		Where("status = ?", int(status)).
		Count(&count).Error
	return count, err
}
