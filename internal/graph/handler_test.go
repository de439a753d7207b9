package graph

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthtrack/internal/auth"
)

func postQuery(t *testing.T, h http.Handler, query string) {
	t.Helper()
	body, err := json.Marshal(map[string]string{"query": query})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(httptest.NewRecorder(), req)
}

func TestHandlerLogsNoCredentials(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		secret  string
		wantMsg string
	}{
		{
			name:    "syntax error",
			query:   `mutation { login(username: "alice", password: "hunter2-secret") { token `,
			secret:  "hunter2-secret",
			wantMsg: "graphql request rejected",
		},
		{
			name:    "invalid argument value",
			query:   `mutation { login(username: "alice", password: 918273645) { token } }`,
			secret:  "918273645",
			wantMsg: "graphql request rejected",
		},
		{
			name:    "wrong password",
			query:   `mutation { login(username: "alice", password: "hunter2-secret") { token } }`,
			secret:  "hunter2-secret",
			wantMsg: auth.ErrInvalidCredentials.Error(),
		},
		{
			name:    "duplicate register",
			query:   `mutation { register(username: "alice", password: "other-secret", role: "patient") { token } }`,
			secret:  "other-secret",
			wantMsg: auth.ErrUserAlreadyExists.Error(),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := newHarness(t)
			_, err := h.auth.Register(context.Background(), "alice", "pw123", auth.RolePatient)
			require.NoError(t, err)

			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, nil))
			postQuery(t, NewHandler(&h.schema, logger), tc.query)

			require.NotZero(t, buf.Len())
			assert.Contains(t, buf.String(), tc.wantMsg)
			assert.NotContains(t, buf.String(), tc.secret)
			assert.NotContains(t, buf.String(), "pw123")
		})
	}
}
