package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

type sessionResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Role  Role   `json:"role"`
}

// Handler exposes the auth flow over REST. Every failure is answered with
// 400 and the error message as plain text.
type Handler struct {
	Service *Service
	Logger  *slog.Logger
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.fail(w, "login failed", err)
		return
	}
	writeSession(w, sess)
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	sess, err := h.Service.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		h.fail(w, "register failed", err)
		return
	}
	writeSession(w, sess)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.Logger.Warn(msg, "err", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeSession(w http.ResponseWriter, sess *Session) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(sessionResponse{
		Token: sess.Token,
		ID:    sess.User.ID,
		Role:  sess.User.Role,
	})
}
