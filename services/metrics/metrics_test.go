package metrics

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/homepi/climate-server/internal/sensor"
	"github.com/homepi/climate-server/utils"
)

func TestMetricsGet(t *testing.T) {
	t.Run("should export gauges per location", func(t *testing.T) {
		co2 := 612
		hpa := 1013.25
		h := NewHandler(&mockCollector{results: map[string]*sensor.Reading{
			"quality":   {TemperatureC: 21.5, Humidity: 41, CO2: &co2},
			"barometer": {TemperatureC: 22, Humidity: 39, PressureHPa: &hpa},
		}})

		rr := utils.TestRequest(t, http.MethodGet, "/metrics", nil, h.handlerMetricsGet)

		utils.TestExpectedStatus(t, rr, http.StatusOK)

		body := rr.Body.String()
		for _, line := range []string{
			`temperature_c{location="quality"} 21.5`,
			`temperature_f{location="quality"} 70.7`,
			`humidity_pct{location="barometer"} 39`,
			`co2_ppm{location="quality"} 612`,
			`pressure_hpa{location="barometer"} 1013.25`,
		} {
			if !strings.Contains(body, line) {
				t.Errorf("exposition missing %q:\n%s", line, body)
			}
		}

		if !strings.Contains(rr.Header().Get("Content-Type"), "text/plain; version=0.0.4") {
			t.Errorf("unexpected content type %q", rr.Header().Get("Content-Type"))
		}
	})

	t.Run("should skip optional gauges where not measured", func(t *testing.T) {
		h := NewHandler(&mockCollector{results: map[string]*sensor.Reading{
			"bedroom": {TemperatureC: 18.5, Humidity: 52},
		}})

		rr := utils.TestRequest(t, http.MethodGet, "/metrics", nil, h.handlerMetricsGet)

		body := rr.Body.String()
		if strings.Contains(body, `co2_ppm{location="bedroom"}`) {
			t.Errorf("bedroom should not export CO2:\n%s", body)
		}

		if strings.Contains(body, `pressure_hpa{location="bedroom"}`) {
			t.Errorf("bedroom should not export pressure:\n%s", body)
		}
	})

	t.Run("should skip failed sources entirely", func(t *testing.T) {
		h := NewHandler(&mockCollector{results: map[string]*sensor.Reading{
			"quality": nil,
			"bedroom": {TemperatureC: 18.5, Humidity: 52},
		}})

		rr := utils.TestRequest(t, http.MethodGet, "/metrics", nil, h.handlerMetricsGet)

		body := rr.Body.String()
		if strings.Contains(body, `location="quality"`) {
			t.Errorf("offline source leaked into the exposition:\n%s", body)
		}

		if !strings.Contains(body, `temperature_c{location="bedroom"} 18.5`) {
			t.Errorf("healthy source missing from the exposition:\n%s", body)
		}
	})

	t.Run("should fail the scrape when collection aborts", func(t *testing.T) {
		h := NewHandler(&mockCollector{err: errors.New("defect")})

		rr := utils.TestRequest(t, http.MethodGet, "/metrics", nil, h.handlerMetricsGet)

		utils.TestExpectedStatus(t, rr, http.StatusInternalServerError)
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
