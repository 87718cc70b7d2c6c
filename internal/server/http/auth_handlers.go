package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	pkgcrypto "github.com/and161185/notekeeper/internal/crypto"
	"github.com/and161185/notekeeper/internal/errs"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, reasonInvalidRequest)
		return
	}

	u, err := s.auth.Register(r.Context(), req.Username, req.Password)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"message":  "User created successfully",
			"username": u.Username,
		})
	case errors.Is(err, errs.ErrAlreadyExists):
		writeError(w, http.StatusBadRequest, reasonUsernameTaken)
	case errors.Is(err, pkgcrypto.ErrPasswordTooLong):
		writeError(w, http.StatusBadRequest, reasonInvalidRequest)
	default:
		s.log.Error("signup", zap.Error(err))
		writeError(w, http.StatusInternalServerError, reasonInternal)
	}
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, reasonInvalidRequest)
		return
	}

	toks, _, err := s.auth.LoginWithIP(r.Context(), req.Username, req.Password, remoteIP(r))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]string{
			"access_token": toks.AccessToken,
			"token_type":   "bearer",
		})
	case errors.Is(err, errs.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, reasonInvalidCredentials)
	case errors.Is(err, errs.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, reasonRateLimited)
	default:
		s.log.Error("login", zap.Error(err))
		writeError(w, http.StatusInternalServerError, reasonInternal)
	}
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	u, ok := UserFromCtx(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, reasonAuthRequired)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"username": u.Username,
		"id":       u.ID,
	})
}
