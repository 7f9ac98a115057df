// Package collector holds the read-with-bounded-retry policy and the
// aggregation pass that folds every configured source into one result map.
package collector

import (
	"fmt"
	"log/slog"

	"github.com/homepi/climate-server/internal/sensor"
)

// ReadFunc is one zero-argument sensor read. A nil reading with a nil error
// means the source produced nothing this attempt.
type ReadFunc func() (*sensor.Reading, error)

// RetryingReader wraps a ReadFunc with a bounded retry budget. Transient
// failures and empty results burn one retry each logical read; anything
// else propagates untouched.
type RetryingReader struct {
	name       string
	read       ReadFunc
	maxRetries int
}

// DefaultRetries matches the original single-retry policy.
const DefaultRetries = 1

func NewRetryingReader(name string, read ReadFunc) *RetryingReader {
	return &RetryingReader{
		name:       name,
		read:       read,
		maxRetries: DefaultRetries,
	}
}

// WithRetries adjusts the retry budget. Zero disables retrying entirely.
func (r *RetryingReader) WithRetries(n int) *RetryingReader {
	r.maxRetries = n
	return r
}

// Read performs the wrapped operation, retrying up to the budget when the
// attempt fails transiently or comes back empty. The final outcome is
// either a present reading, an absent (nil) reading, or a non-recoverable
// error from the underlying operation.
func (r *RetryingReader) Read() (*sensor.Reading, error) {
	for attempt := 0; ; attempt++ {
		reading, err := r.read()
		if err != nil {
			if !sensor.IsTransient(err) {
				return nil, err
			}

			slog.Error("failed sensor read", "source", r.name, "attempt", attempt+1, "error", err)
			reading = nil
		}

		if reading != nil {
			return reading, nil
		}

		if attempt >= r.maxRetries {
			return nil, nil
		}

		slog.Info("retrying sensor read", "source", r.name)
	}
}

// Collector runs one aggregation pass over its named sources.
type Collector struct {
	sources map[string]*RetryingReader
}

func New(sources map[string]*RetryingReader) *Collector {
	return &Collector{sources: sources}
}

// Collect reads every source. A source that fails transiently (even after
// its retry) appears in the map with a nil reading so exporters can render
// "offline" rather than losing the key; a non-recoverable error aborts the
// whole pass.
func (c *Collector) Collect() (map[string]*sensor.Reading, error) {
	results := make(map[string]*sensor.Reading, len(c.sources))

	for name, reader := range c.sources {
		reading, err := reader.Read()
		if err != nil {
			return nil, fmt.Errorf("read source %q: %w", name, err)
		}

		results[name] = reading
	}

	return results, nil
}
