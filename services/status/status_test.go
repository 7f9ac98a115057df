package status

import (
	"errors"
	"testing"

	"github.com/homepi/climate-server/internal/sensor"
)

func TestBuildStatusFrame(t *testing.T) {
	t.Run("should carry the collection result", func(t *testing.T) {
		h := NewHandler(&mockCollector{results: map[string]*sensor.Reading{
			"barometer": {TemperatureC: 22, Humidity: 39},
			"quality":   nil,
		}}, nil)

		frame := h.buildStatusFrame()

		if frame.Error != "" {
			t.Errorf("unexpected error on frame: %s", frame.Error)
		}

		if len(frame.Readings) != 2 {
			t.Errorf("expected both sources on the frame, got %d", len(frame.Readings))
		}

		if frame.CollectedAt.IsZero() {
			t.Error("expected a collection timestamp")
		}
	})

	t.Run("should report an aborted pass in-band", func(t *testing.T) {
		h := NewHandler(&mockCollector{err: errors.New("defect")}, nil)

		frame := h.buildStatusFrame()

		if frame.Error == "" {
			t.Error("expected the frame to carry the error")
		}

		if frame.Readings != nil {
			t.Errorf("expected no readings on a failed pass, got %v", frame.Readings)
		}
	})
}

type mockCollector struct {
	results map[string]*sensor.Reading
	err     error
}

func (m *mockCollector) Collect() (map[string]*sensor.Reading, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.results, nil
}
