package status

import (
	"time"

	"github.com/homepi/climate-server/internal/sensor"
)

type (
	// ClimateStatus is one websocket frame: a full collection result plus
	// the time the pass finished.
	ClimateStatus struct {
		CollectedAt time.Time                  `json:"collected_at"`
		Readings    map[string]*sensor.Reading `json:"readings"`
		Error       string                     `json:"error,omitempty"`
	}

	ReadingsCollector interface {
		Collect() (map[string]*sensor.Reading, error)
	}

	Handler struct {
		collector      ReadingsCollector
		pushInterval   time.Duration
		originPatterns []string
	}
)
