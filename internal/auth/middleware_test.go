package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	svc := newTestService(t, NewMemoryStore(), Options{})
	sess, err := svc.Register(context.Background(), "alice", "pw", RolePatient)
	require.NoError(t, err)

	var got *User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = UserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := Middleware(svc, slog.New(slog.NewTextHandler(io.Discard, nil)))(next)

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{"no header", "", ""},
		{"valid token", "Bearer " + sess.Token, "alice"},
		{"lowercase scheme", "bearer " + sess.Token, "alice"},
		{"invalid token", "Bearer nope", ""},
		{"wrong scheme", "Basic " + sess.Token, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got = nil
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			if tc.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tc.want, got.Username)
		})
	}
}

func TestUserFromContextEmpty(t *testing.T) {
	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
	_, ok = UserFromContext(WithUser(context.Background(), nil))
	assert.False(t, ok)
}

// lostStore verifies tokens fine but cannot reach its backend.
type lostStore struct {
	*MemoryStore
}

func (lostStore) FindByID(context.Context, string) (*User, error) {
	return nil, errors.New("connection refused")
}

func TestMiddlewareLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := captureLogger(&buf)
	store := NewMemoryStore()
	svc := newLoggedService(t, store, Options{}, logger)
	sess, err := svc.Register(context.Background(), "alice", "pw123", RolePatient)
	require.NoError(t, err)
	foreign, err := NewTokenService("another-secret")
	require.NoError(t, err)
	forged, err := foreign.Issue(sess.User.ID)
	require.NoError(t, err)

	tests := []struct {
		name      string
		svc       *Service
		token     string
		wantLevel string
		wantMsg   string
	}{
		{"garbage token", svc, "tok-secret-xyz", "DEBUG", "request left anonymous"},
		{"forged token", svc, forged, "DEBUG", "request left anonymous"},
		{"store down", newLoggedService(t, lostStore{store}, Options{}, logger), sess.Token, "WARN", "identify request failed"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			var got *User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got, _ = UserFromContext(r.Context())
			})
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer "+tc.token)
			Middleware(tc.svc, logger)(next).ServeHTTP(httptest.NewRecorder(), req)

			assert.Nil(t, got)
			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.wantLevel, entry["level"])
			assert.Equal(t, tc.wantMsg, entry["msg"])
			assert.NotContains(t, buf.String(), tc.token)
			assert.NotContains(t, buf.String(), "pw123")
		})
	}
}
