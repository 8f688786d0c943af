package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"cargo/internal/core/application/usecases/queries"
	"cargo/internal/core/domain/model/account"
	"cargo/internal/core/domain/model/kernel"
	"cargo/internal/core/domain/services"
)

// OverdueShipmentJob periodically sweeps for shipments past their expected
// delivery date and logs them for ops attention.
type OverdueShipmentJob struct {
	handler   queries.GetOverdueShipmentsQueryHandler
	principal *services.Principal
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueShipmentJob creates the overdue sweep job. The schedule is a
// standard five-field cron expression. The job runs under a synthetic admin
// principal since it is not triggered by a request.
func NewOverdueShipmentJob(
	handler queries.GetOverdueShipmentsQueryHandler, schedule string, logger *slog.Logger,
) *OverdueShipmentJob {
	return &OverdueShipmentJob{
		handler:   handler,
		principal: &services.Principal{AccountID: kernel.NewUUID(), Role: account.RoleAdmin},
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_shipment_job"),
	}
}

// Start schedules the overdue sweep.
func (j *OverdueShipmentJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue shipment job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue sweep.
func (j *OverdueShipmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue shipment job stopped")
}

func (j *OverdueShipmentJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueShipmentsQuery(time.Now().UTC())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipment sweep failed to build query", "error", err)
		return
	}

	shipments, err := j.handler.Handle(ctx, j.principal, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue shipment sweep failed", "error", err)
		return
	}

	if len(shipments) == 0 {
		return
	}

	j.logger.WarnContext(ctx, "Overdue shipments detected", "count", len(shipments))
	for _, shipment := range shipments {
		j.logger.WarnContext(ctx, "Shipment past expected delivery",
			"trackingID", shipment.TrackingID,
			"status", shipment.Status,
			"overdueHours", shipment.Overdue.Hours(),
		)
	}
}
