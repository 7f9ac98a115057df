package climate

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/homepi/climate-server/internal/sensor"
	"github.com/homepi/climate-server/utils"
)

func TestPressureNote(t *testing.T) {
	cases := []struct {
		inHg     float64
		expected string
	}{
		{30.3, "high"},
		{29.7, "low"},
		{30.0, "normal"},
		{30.2, "normal"},
		{29.8, "normal"},
		{30.204, "normal"},
		{29.796, "normal"},
		{29.794, "low"},
		{30.206, "high"},
	}

	for _, c := range cases {
		if got := pressureNote(c.inHg); got != c.expected {
			t.Errorf("pressureNote(%v) = %q, expected %q", c.inHg, got, c.expected)
		}
	}
}

func TestIndexGet(t *testing.T) {
	t.Run("should render text for curl", func(t *testing.T) {
		h := NewHandler(&mockCollector{results: sampleResults()})

		rr := utils.TestRequestAsClient(t, http.MethodGet, "/", "curl/8.4.0", h.handlerIndexGet)

		utils.TestExpectedStatus(t, rr, http.StatusOK)

		body := rr.Body.String()
		if !strings.Contains(body, "barometer: ") || !strings.Contains(body, "quality: ") {
			t.Errorf("expected one line per source, got %q", body)
		}

		if strings.Contains(body, "<html>") {
			t.Errorf("curl client received HTML: %q", body)
		}
	})

	t.Run("should render HTML for browsers", func(t *testing.T) {
		h := NewHandler(&mockCollector{results: sampleResults()})

		rr := utils.TestRequestAsClient(t, http.MethodGet, "/", "Mozilla/5.0", h.handlerIndexGet)

		utils.TestExpectedStatus(t, rr, http.StatusOK)

		body := rr.Body.String()
		if !strings.Contains(body, "<html>") {
			t.Errorf("expected an HTML page, got %q", body)
		}

		if !strings.Contains(body, "Pressure is <strong>normal</strong>") {
			t.Errorf("expected the pressure note, got %q", body)
		}

		if !strings.Contains(body, "Bedroom: 65&#8457;, 52%") {
			t.Errorf("expected the bedroom line, got %q", body)
		}
	})

	t.Run("should mark failed sources offline in text output", func(t *testing.T) {
		results := sampleResults()
		results["quality"] = nil

		h := NewHandler(&mockCollector{results: results})

		rr := utils.TestRequestAsClient(t, http.MethodGet, "/", "curl/8.4.0", h.handlerIndexGet)

		utils.TestExpectedMessage(t, rr, "quality: offline")
	})

	t.Run("should fail the request when collection aborts", func(t *testing.T) {
		h := NewHandler(&mockCollector{err: errors.New("defect")})

		rr := utils.TestRequest(t, http.MethodGet, "/", nil, h.handlerIndexGet)

		utils.TestExpectedStatus(t, rr, http.StatusInternalServerError)
		utils.TestExpectedMessage(t, rr, "failed to read sensors")
	})
}

func sampleResults() map[string]*sensor.Reading {
	co2 := 612
	hpa := 1013.25
	return map[string]*sensor.Reading{
		"quality":   {TemperatureC: 21.5, Humidity: 41, CO2: &co2},
		"barometer": {TemperatureC: 22, Humidity: 39, PressureHPa: &hpa},
		"bedroom":   {TemperatureC: 18.5, Humidity: 52},
	}
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
