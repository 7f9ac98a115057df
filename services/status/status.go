package status

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

const defaultPushInterval = 5 * time.Second

func NewHandler(collector ReadingsCollector, originPatterns []string) *Handler {
	h := Handler{
		collector,
		defaultPushInterval,
		originPatterns,
	}

	return &h
}

func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/status/ws", h.handleStatusWS)
}

func (h *Handler) handleStatusWS(w http.ResponseWriter, r *http.Request) {
	slog.Info(">>handleStatusWS: new incoming connection")
	opts := &websocket.AcceptOptions{
		OriginPatterns: h.originPatterns,
	}
	c, err := websocket.Accept(w, r, opts)
	if err != nil {
		slog.Error("websocket accept error:", "error", err)
		return
	}

	defer c.Close(websocket.StatusInternalError, "Unexpected connection close")

	ctx := c.CloseRead(r.Context())

	h.pushReadings(ctx, c)

	slog.Info("<<handleStatusWS")
}

// pushReadings streams a fresh collection pass on every tick until the
// client goes away. A pass that aborts is reported in-band on the frame so
// the dashboard can show the fault instead of silently freezing.
func (h *Handler) pushReadings(ctx context.Context, c *websocket.Conn) {
	ticker := time.NewTicker(h.pushInterval)
	defer ticker.Stop()

	for {
		frame := h.buildStatusFrame()
		if err := wsjson.Write(ctx, c, frame); err != nil {
			slog.Debug("failed to write status frame, closing", "error", err)
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *Handler) buildStatusFrame() ClimateStatus {
	frame := ClimateStatus{
		CollectedAt: time.Now().UTC(),
	}

	results, err := h.collector.Collect()
	if err != nil {
		slog.Error("collection pass failed during status push", "error", err)
		frame.Error = err.Error()
		return frame
	}

	frame.Readings = results
	return frame
}
