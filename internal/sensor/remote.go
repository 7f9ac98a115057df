package sensor

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// RemoteSensor polls a peer node (another Pi on the LAN) that serves its
// current reading as JSON.
type RemoteSensor struct {
	Name   string
	URL    string
	client *http.Client
}

func NewRemoteSensor(name string, url string, timeout time.Duration) *RemoteSensor {
	return &RemoteSensor{
		Name: name,
		URL:  url,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Read fetches one sample. An unreachable peer is downgraded to a
// zero-valued reading rather than an absent one, matching the long-standing
// behavior the dashboards rely on; a body we cannot decode is a defect and
// propagates.
func (r *RemoteSensor) Read() (*Reading, error) {
	resp, err := r.client.Get(r.URL)
	if err != nil {
		slog.Warn("remote sensor unreachable, reporting zeros", "source", r.Name, "url", r.URL, "error", err)
		return &Reading{}, nil
	}

	defer resp.Body.Close()

	var payload struct {
		TempC    float64 `json:"temp_c"`
		Humidity float64 `json:"humidity"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode %s response: %w", r.Name, err)
	}

	return &Reading{
		TemperatureC: payload.TempC,
		Humidity:     payload.Humidity,
	}, nil
}
