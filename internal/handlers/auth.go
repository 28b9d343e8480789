// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"contenthub/internal/docstore"
	"contenthub/internal/session"
	"contenthub/internal/store"
)

// SessionManager creates and destroys login sessions.
type SessionManager interface {
	Create(ctx context.Context, w http.ResponseWriter, data *session.Data) (string, error)
	Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Auth groups the login and logout handlers.
type Auth struct {
	sessions SessionManager
	users    *store.UserStore
	log      *zap.Logger
}

// NewAuth creates a new Auth handler group.
func NewAuth(sessions SessionManager, gw docstore.Gateway, log *zap.Logger) *Auth {
	return &Auth{
		sessions: sessions,
		users:    store.NewUserStore(gw),
		log:      log,
	}
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=200"`
}

type loginResponse struct {
	Success bool   `json:"success"`
	IsAdmin bool   `json:"is_admin,omitempty"`
	Message string `json:"message,omitempty"`
}

// Login checks a username and password and starts a session holding the
// user's id, name and account flags.
func (a *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if msg := decodeJSON(w, r, &req); msg != "" {
		writeJSON(w, http.StatusBadRequest, loginResponse{Message: msg})
		return
	}

	user, err := a.users.FindByUsername(r.Context(), req.Username)
	if err != nil {
		a.log.Error("login lookup failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if user == nil || !a.users.CheckPassword(user, req.Password) {
		writeJSON(w, http.StatusUnauthorized, loginResponse{Message: "Invalid credentials"})
		return
	}

	_, err = a.sessions.Create(r.Context(), w, &session.Data{
		UserID:       user.ID,
		Username:     user.Username,
		IsAdmin:      user.IsAdmin,
		IsSubscribed: user.IsSubscribed,
	})
	if err != nil {
		a.log.Error("session create failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	a.log.Info("user logged in", zap.String("user_id", user.ID), zap.Bool("admin", user.IsAdmin))
	writeJSON(w, http.StatusOK, loginResponse{Success: true, IsAdmin: user.IsAdmin})
}

// Logout destroys the session.
func (a *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	if err := a.sessions.Destroy(r.Context(), w, r); err != nil {
		a.log.Warn("session destroy failed", zap.Error(err))
	}
	writeJSON(w, http.StatusOK, loginResponse{Success: true})
}
