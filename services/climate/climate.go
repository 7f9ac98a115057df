package climate

import (
	"html/template"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"strings"

	"github.com/homepi/climate-server/internal/sensor"
	"github.com/homepi/climate-server/utils"
)

func NewHandler(collector ReadingsCollector) *Handler {
	return &Handler{
		collector,
	}
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.handlerIndexGet)
}

func (h *Handler) handlerIndexGet(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handlerIndexGet")

	results, err := h.collector.Collect()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to read sensors", err)
		return
	}

	// Command-line clients get the line-oriented summary; no User-Agent at
	// all is assumed to be a script.
	userAgent := r.Header.Get("User-Agent")
	if userAgent == "" || strings.Contains(userAgent, "curl") {
		utils.RespondWithString(w, "text/plain; charset=utf-8", http.StatusOK, renderText(results))
		return
	}

	page := buildIndexPage(results)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := indexTmpl.Execute(w, page); err != nil {
		slog.Error("failed to render index page", "error", err)
	}
}

// renderText produces one line per source in name order; sources with no
// reading render as offline.
func renderText(results map[string]*sensor.Reading) string {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		reading := results[name]
		if reading == nil {
			b.WriteString(name + ": offline\n")
			continue
		}
		b.WriteString(name + ": " + reading.String() + "\n")
	}

	return b.String()
}

// pressureNote classifies barometric pressure the way the wall display has
// always phrased it. The comparison uses the value rounded to two decimals,
// so 30.2 and 29.8 land on "normal".
func pressureNote(inHg float64) string {
	rounded := math.Round(inHg*100) / 100
	switch {
	case rounded > 30.2:
		return "high"
	case rounded < 29.8:
		return "low"
	default:
		return "normal"
	}
}

func buildIndexPage(results map[string]*sensor.Reading) indexPage {
	// A failed source renders with zero placeholders rather than breaking
	// the page.
	barometer := results[sensor.SOURCE_BAROMETER]
	if barometer == nil {
		barometer = &sensor.Reading{}
	}

	bedroom := results["bedroom"]
	if bedroom == nil {
		bedroom = &sensor.Reading{}
	}

	inHg := math.Round(barometer.PressureInHg()*100) / 100

	return indexPage{
		PrimaryTempF:    barometer.TemperatureF(),
		PrimaryHumidity: barometer.Humidity,
		BedroomTempF:    bedroom.TemperatureF(),
		BedroomHumidity: bedroom.Humidity,
		PressureNote:    pressureNote(barometer.PressureInHg()),
		PressureInHg:    inHg,
	}
}

var indexTmpl = template.Must(template.New("index").Parse(`<html>
<head><title>Home Climate</title></head>
<body>
<h1>{{printf "%.0f" .PrimaryTempF}}&#8457;</h1>
<h2>{{printf "%.0f" .PrimaryHumidity}}%</h2>
Bedroom: {{printf "%.0f" .BedroomTempF}}&#8457;, {{printf "%.0f" .BedroomHumidity}}%
<br>
Pressure is <strong>{{.PressureNote}}</strong> ({{printf "%.2f" .PressureInHg}} inHg)
</body></html>
`))
