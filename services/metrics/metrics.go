// Package metrics exposes the current sensor readings in the Prometheus
// text exposition format. Every scrape triggers a fresh collection pass and
// builds its own registry, so the gauges always reflect live hardware and a
// source that fails to read simply exports nothing that cycle.
package metrics

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/homepi/climate-server/internal/sensor"
	"github.com/homepi/climate-server/utils"
)

type ReadingsCollector interface {
	Collect() (map[string]*sensor.Reading, error)
}

type Handler struct {
	collector ReadingsCollector
}

func NewHandler(collector ReadingsCollector) *Handler {
	return &Handler{
		collector,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /metrics", h.handlerMetricsGet)
}

func (h *Handler) handlerMetricsGet(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handlerMetricsGet")

	results, err := h.collector.Collect()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to read sensors", err)
		return
	}

	registry := prometheus.NewRegistry()
	if err := registerGauges(registry, results); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to build metrics", err)
		return
	}

	promhttp.HandlerFor(registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}

// registerGauges populates a registry from one collection result. Sources
// with no reading are skipped entirely; optional fields export only where
// the source measures them.
func registerGauges(registry *prometheus.Registry, results map[string]*sensor.Reading) error {
	labels := []string{"location"}

	tempC := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "temperature_c",
		Help: "Temperature in Celsius",
	}, labels)

	tempF := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "temperature_f",
		Help: "Temperature in Fahrenheit",
	}, labels)

	humidity := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "humidity_pct",
		Help: "Relative humidity",
	}, labels)

	co2 := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "co2_ppm",
		Help: "Carbon dioxide concentration",
	}, labels)

	pressure := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "pressure_hpa",
		Help: "Atmospheric pressure",
	}, labels)

	for _, gauge := range []*prometheus.GaugeVec{tempC, tempF, humidity, co2, pressure} {
		if err := registry.Register(gauge); err != nil {
			return err
		}
	}

	for location, reading := range results {
		if reading == nil {
			continue
		}

		tempC.WithLabelValues(location).Set(reading.TemperatureC)
		tempF.WithLabelValues(location).Set(reading.TemperatureF())
		humidity.WithLabelValues(location).Set(reading.Humidity)

		if reading.CO2 != nil {
			co2.WithLabelValues(location).Set(float64(*reading.CO2))
		}

		if reading.PressureHPa != nil {
			pressure.WithLabelValues(location).Set(*reading.PressureHPa)
		}
	}

	return nil
}
