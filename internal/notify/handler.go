package notify

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// ClientIDHeader identifies the sender of an update so it is not echoed back.
const ClientIDHeader = "X-Client-ID"

type Handler struct {
	Hub    *Hub
	Logger *slog.Logger
}

// Stream holds the request open and writes hub events as SSE frames until the
// client goes away.
func (h *Handler) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	id, events := h.Hub.Subscribe()
	defer h.Hub.Unsubscribe(id)

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	hello, _ := json.Marshal(map[string]string{"clientId": id})
	if err := writeEvent(w, Event{Name: EventConnected, Data: string(hello)}); err != nil {
		return
	}
	flusher.Flush()
	h.Logger.Debug("sse client connected", "client_id", id)

	for {
		select {
		case <-r.Context().Done():
			h.Logger.Debug("sse client disconnected", "client_id", id)
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if err := writeEvent(w, ev); err != nil {
				h.Logger.Debug("sse write failed", "client_id", id, "err", err)
				return
			}
			flusher.Flush()
		}
	}
}

// Update broadcasts dataUpdated to every client other than the sender.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	sender := r.Header.Get(ClientIDHeader)
	n := h.Hub.Broadcast(sender, Event{Name: EventDataUpdated, Data: "{}"})
	h.Logger.Debug("data update broadcast", "delivered", n)
	w.WriteHeader(http.StatusAccepted)
}

func writeEvent(w http.ResponseWriter, ev Event) error {
	_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.Name, ev.Data)
	return err
}
