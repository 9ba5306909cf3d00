package integration

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"opencrms/engine/pkg/telemetry/logging"
)

// HealthChecker probes enabled integration endpoints on a cron schedule
// and records the result as the per-slot up gauge.
type HealthChecker struct {
	gateway  *Gateway
	schedule string
	logger   *logging.Logger
	cron     *cron.Cron
}

// NewHealthChecker builds a checker for the gateway's slots. An empty
// schedule disables probing; Start becomes a no-op.
func NewHealthChecker(gateway *Gateway, schedule string, logger *logging.Logger) *HealthChecker {
	return &HealthChecker{
		gateway:  gateway,
		schedule: schedule,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start registers the probe job and begins the schedule. The first probe
// runs immediately so the up gauge is populated before the first tick.
func (hc *HealthChecker) Start() error {
	if hc.schedule == "" {
		return nil
	}

	if _, err := hc.cron.AddFunc(hc.schedule, hc.probeAll); err != nil {
		return err
	}

	go hc.probeAll()
	hc.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running probe to finish.
func (hc *HealthChecker) Stop() {
	ctx := hc.cron.Stop()
	<-ctx.Done()
}

// probeAll checks every enabled slot. Disabled slots are skipped rather
// than reported as down.
func (hc *HealthChecker) probeAll() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	for _, slotName := range hc.gateway.Slots() {
		if !hc.gateway.Enabled(slotName) {
			continue
		}
		if err := hc.gateway.CheckHealth(ctx, slotName); err != nil {
			hc.logger.Warn("integration health probe failed",
				"integration", slotName,
				"retryable", IsRetryable(err),
			)
			continue
		}
		hc.logger.Debug("integration health probe ok", "integration", slotName)
	}
}
