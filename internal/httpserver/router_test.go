package httpserver

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"healthtrack/internal/auth"
	"healthtrack/internal/graph"
	"healthtrack/internal/notify"
	"healthtrack/internal/records"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	users := auth.NewMemoryStore()
	tokens, err := auth.NewTokenService("test-secret")
	require.NoError(t, err)
	authSvc := auth.NewService(users, tokens, logger, auth.Options{HashCost: bcrypt.MinCost})
	recSvc := records.NewService(records.NewMemoryStore(), users, logger)

	schema, err := graph.NewSchema(&graph.Resolver{Auth: authSvc, Records: recSvc})
	require.NoError(t, err)
	events := &notify.Handler{Hub: notify.NewHub(), Logger: logger}
	return NewRouter(logger, authSvc, graph.NewHandler(&schema, logger), events, []string{"*"})
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRESTTokenIdentifiesGraphQLCaller(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"username":"alice","password":"pw","role":"patient"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var sess struct {
		Token string `json:"token"`
		ID    string `json:"id"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&sess))

	query := `{"query":"{ currentUser { id username } }"}`
	req = httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(query))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+sess.Token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Data struct {
			CurrentUser *struct {
				ID       string `json:"id"`
				Username string `json:"username"`
			} `json:"currentUser"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.NotNil(t, out.Data.CurrentUser)
	assert.Equal(t, sess.ID, out.Data.CurrentUser.ID)
	assert.Equal(t, "alice", out.Data.CurrentUser.Username)

	req = httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"username":"alice","password":"nope"}`))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/graphql", nil)
	req.Header.Set("Origin", "http://app.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestEventsUpdateAccepted(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/events/update", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter(t).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
