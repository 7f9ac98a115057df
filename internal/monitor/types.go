package monitor

import (
	"context"
	"time"
)

type State int

const (
	STATE_HEALTHY State = iota
	STATE_DEGRADED
)

func (s State) String() string {
	if s == STATE_DEGRADED {
		return "degraded"
	}

	return "healthy"
}

type (
	// ServiceChecker answers whether a named service is down right now.
	ServiceChecker interface {
		IsDown(service string) bool
	}

	// Indicator is the binary output driven by the watcher, in practice a
	// GPIO LED.
	Indicator interface {
		On() error
		Off() error
	}

	// Notifier matches *notify.Notify so tests can substitute their own.
	Notifier interface {
		Send(ctx context.Context, subject string, message string) error
	}

	Monitor struct {
		services  []string
		checker   ServiceChecker
		indicator Indicator
		notifier  Notifier
		interval  time.Duration
		state     State
	}
)
