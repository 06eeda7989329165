package rider_sweep

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	SweepStaleRiders(ctx context.Context, stalenessWindow time.Duration) (int64, error)
}

// RiderSweep снимает доступность с исполнителей с протухшей позицией,
// чтобы администратор не назначал доставки на пропавших.
type RiderSweep struct {
	log             logger.Logger
	service         Service
	interval        time.Duration
	stalenessWindow time.Duration
}

func NewRiderSweep(log logger.Logger, service Service, interval, stalenessWindow time.Duration) *RiderSweep {
	return &RiderSweep{
		log:             log,
		service:         service,
		interval:        interval,
		stalenessWindow: stalenessWindow,
	}
}

func (r *RiderSweep) TTL() time.Duration {
	return r.interval
}

func (r *RiderSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	rowsAffected, err := r.service.SweepStaleRiders(ctxWithTimeout, r.stalenessWindow)

	if rowsAffected > 0 {
		r.log.With(
			logger.NewField("stale_riders", rowsAffected),
		).Info("rider sweep")
	}

	return err
}

func (r *RiderSweep) Info() string {
	return "rider sweep"
}
