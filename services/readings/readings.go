// Package readings serves the raw collection result as JSON for the other
// tools on the network that want numbers instead of a rendered page.
package readings

import (
	"log/slog"
	"net/http"

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
	mux.HandleFunc("GET /v1/readings", h.handlerReadingsGet)
}

func (h *Handler) handlerReadingsGet(w http.ResponseWriter, r *http.Request) {
	slog.Debug("handlerReadingsGet")

	results, err := h.collector.Collect()
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "failed to read sensors", err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, results)
}
