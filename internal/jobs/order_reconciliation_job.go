package jobs

import (
	"context"
	"log/slog"
	"time"

	"shiprelay/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderReconciliationJob periodically re-submits orders stranded in created
// status. An order strands when the process dies between the durable local
// commit and the aggregator's response; the pass pushes each one to a
// terminal submitted or failed status.
type OrderReconciliationJob struct {
	handler     commands.SubmitPendingOrdersCommandHandler
	gracePeriod time.Duration
	schedule    string
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOrderReconciliationJob creates the reconciliation job. The schedule is a
// standard five-field cron expression; the grace period keeps the pass from
// racing intake requests whose gateway call is still in flight.
func NewOrderReconciliationJob(
	handler commands.SubmitPendingOrdersCommandHandler,
	gracePeriod time.Duration,
	schedule string,
	logger *slog.Logger,
) *OrderReconciliationJob {
	return &OrderReconciliationJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		schedule:    schedule,
		cron:        cron.New(),
		logger:      logger.With("component", "order_reconciliation_job"),
	}
}

// Start begins the reconciliation job on its schedule.
func (j *OrderReconciliationJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewSubmitPendingOrdersCommand(j.gracePeriod)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Reconciliation command rejected", "error", cmdErr)
			return
		}

		if handleErr := j.handler.Handle(ctx, cmd); handleErr != nil {
			// Individual submissions compensate for themselves; the joined
			// error is reported for visibility, not retried here.
			j.logger.ErrorContext(ctx, "Reconciliation pass finished with errors", "error", handleErr)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order reconciliation job started",
		"schedule", j.schedule, "grace_period", j.gracePeriod)
	return nil
}

// Stop stops the reconciliation job.
func (j *OrderReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order reconciliation job stopped")
}
