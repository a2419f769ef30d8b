package adaptor

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"coffee-booking/pkg/realtime"
	"coffee-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// watchableTables are the tables the back-office may stream changes for.
var watchableTables = map[string]bool{
	"orders":              true,
	"bookings":            true,
	"contact_submissions": true,
	"profiles":            true,
}

const heartbeatInterval = 25 * time.Second

type LiveHandler struct {
	notifier realtime.Notifier
	log      *zap.Logger
}

func NewLiveHandler(notifier realtime.Notifier, log *zap.Logger) *LiveHandler {
	return &LiveHandler{
		notifier: notifier,
		log:      log.With(zap.String("handler", "live")),
	}
}

// Stream handles GET /api/admin/live/{table} (admin only). It holds the
// connection open and writes one server-sent event per change until the
// client goes away.
func (h *LiveHandler) Stream(w http.ResponseWriter, r *http.Request) {
	table := chi.URLParam(r, "table")
	if !watchableTables[table] {
		utils.ResponseNotFound(w, fmt.Sprintf("table %s is not watchable", table))
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.ResponseInternalError(w, "Streaming unsupported")
		return
	}

	events, cancel, err := h.notifier.Subscribe(r.Context(), table)
	if err != nil {
		h.log.Error("Failed to subscribe to table changes",
			zap.Error(err), zap.String("table", table))
		utils.ResponseInternalError(w, "Subscription failed")
		return
	}
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	h.log.Info("Live stream opened", zap.String("table", table))

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.log.Info("Live stream closed", zap.String("table", table))
			return

		case <-heartbeat.C:
			// Comment line keeps idle connections alive through proxies
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
			flusher.Flush()

		case event, ok := <-events:
			if !ok {
				h.log.Info("Live stream source closed", zap.String("table", table))
				return
			}

			payload, err := json.Marshal(event)
			if err != nil {
				h.log.Error("Failed to encode change event", zap.Error(err))
				continue
			}

			if _, err := fmt.Fprintf(w, "event: change\ndata: %s\n\n", payload); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}
