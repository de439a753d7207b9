package notify

import (
	"bufio"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*httptest.Server, *Hub) {
	t.Helper()
	hub := NewHub()
	h := &Handler{Hub: hub, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	mux := http.NewServeMux()
	mux.HandleFunc("GET /events", h.Stream)
	mux.HandleFunc("POST /events/update", h.Update)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, hub
}

// readEvent reads one SSE frame and returns its event name and data.
func readEvent(t *testing.T, r *bufio.Reader) (string, string) {
	t.Helper()
	var name, data string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")
		switch {
		case line == "":
			return name, data
		case strings.HasPrefix(line, "event: "):
			name = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: "):
			data = strings.TrimPrefix(line, "data: ")
		}
	}
}

func TestStreamAndUpdate(t *testing.T) {
	srv, hub := newTestServer(t)

	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	r := bufio.NewReader(resp.Body)
	name, data := readEvent(t, r)
	assert.Equal(t, EventConnected, name)
	assert.Contains(t, data, "clientId")
	require.Eventually(t, func() bool { return hub.Len() == 1 }, time.Second, 10*time.Millisecond)

	upd, err := http.Post(srv.URL+"/events/update", "application/json", nil)
	require.NoError(t, err)
	upd.Body.Close()
	assert.Equal(t, http.StatusAccepted, upd.StatusCode)

	name, _ = readEvent(t, r)
	assert.Equal(t, EventDataUpdated, name)
}

func TestUpdateWithoutClients(t *testing.T) {
	hub := NewHub()
	h := &Handler{Hub: hub, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	req := httptest.NewRequest(http.MethodPost, "/events/update", nil)
	req.Header.Set(ClientIDHeader, "someone")
	rec := httptest.NewRecorder()
	h.Update(rec, req)
	assert.Equal(t, http.StatusAccepted, rec.Code)
}
