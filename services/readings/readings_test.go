package readings

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/homepi/climate-server/internal/sensor"
	"github.com/homepi/climate-server/utils"
)

func TestReadingsGet(t *testing.T) {
	t.Run("should serialize readings with explicit nulls for offline sources", func(t *testing.T) {
		co2 := 612
		h := NewHandler(&mockCollector{results: map[string]*sensor.Reading{
			"quality":   {TemperatureC: 21.5, Humidity: 41, CO2: &co2},
			"barometer": nil,
		}})

		rr := utils.TestRequest(t, http.MethodGet, "/v1/readings", nil, h.handlerReadingsGet)

		utils.TestExpectedStatus(t, rr, http.StatusOK)

		var decoded map[string]*sensor.Reading
		if err := json.Unmarshal(rr.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("response is not valid JSON: %v", err)
		}

		if _, ok := decoded["barometer"]; !ok {
			t.Error("offline source dropped from the response")
		}

		if decoded["barometer"] != nil {
			t.Errorf("offline source should be null, got %+v", decoded["barometer"])
		}

		if decoded["quality"] == nil || *decoded["quality"].CO2 != 612 {
			t.Errorf("unexpected quality reading: %+v", decoded["quality"])
		}
	})

	t.Run("should fail the request when collection aborts", func(t *testing.T) {
		h := NewHandler(&mockCollector{err: errors.New("defect")})

		rr := utils.TestRequest(t, http.MethodGet, "/v1/readings", nil, h.handlerReadingsGet)

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
