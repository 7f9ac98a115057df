// Package monitor watches a fixed list of systemd services and drives a
// GPIO indicator: on while any watched service is down, off otherwise. The
// indicator is a level signal recomputed from scratch every interval, not
// an edge-triggered alert.
package monitor

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

const DefaultInterval = 600 * time.Second

func New(services []string, checker ServiceChecker, indicator Indicator, interval time.Duration) *Monitor {
	if interval <= 0 {
		interval = DefaultInterval
	}

	return &Monitor{
		services:  services,
		checker:   checker,
		indicator: indicator,
		interval:  interval,
		state:     STATE_HEALTHY,
	}
}

// WithNotifier adds an optional SMS notification on the healthy-to-degraded
// transition. The LED itself stays a pure level signal.
func (m *Monitor) WithNotifier(notifier Notifier) *Monitor {
	m.notifier = notifier
	return m
}

// CheckOnce recomputes the state from every watched service and sets the
// indicator accordingly.
func (m *Monitor) CheckOnce(ctx context.Context) State {
	slog.Debug(">>CheckOnce")
	defer slog.Debug("<<CheckOnce")

	state := STATE_HEALTHY
	for _, service := range m.services {
		if m.checker.IsDown(service) {
			slog.Warn("service is down", "service", service)
			state = STATE_DEGRADED
		}
	}

	if state == STATE_DEGRADED {
		if err := m.indicator.On(); err != nil {
			slog.Error("failed to turn indicator on", "error", err)
		}
	} else {
		if err := m.indicator.Off(); err != nil {
			slog.Error("failed to turn indicator off", "error", err)
		}
	}

	if state == STATE_DEGRADED && m.state == STATE_HEALTHY && m.notifier != nil {
		msg := fmt.Sprintf("one or more watched services are down as of %s", time.Now().Format(time.RFC1123))
		if err := m.notifier.Send(ctx, "home services degraded", msg); err != nil {
			slog.Error("failed to send degraded notification", "error", err)
		}
	}

	m.state = state
	slog.Info("service check complete", "state", state.String())

	return state
}

// Run loops until the context is canceled; in production the context is
// Background and the loop runs until the process is killed.
func (m *Monitor) Run(ctx context.Context) {
	slog.Info("starting service watch", "services", m.services, "interval", m.interval)

	for {
		m.CheckOnce(ctx)

		select {
		case <-ctx.Done():
			return
		case <-time.After(m.interval):
		}
	}
}
