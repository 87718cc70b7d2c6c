// Package httpserver exposes the notekeeper REST API over chi.
package httpserver

import (
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/repository"
	"github.com/and161185/notekeeper/internal/service"
	"github.com/and161185/notekeeper/internal/token"
)

// Server wires services into HTTP handlers.
type Server struct {
	auth   service.AuthService
	notes  service.NoteService
	users  repository.UserRepository
	tokens *token.Service
	log    *zap.Logger
}

// New constructs a server with injected services.
func New(auth service.AuthService, notes service.NoteService, users repository.UserRepository, tokens *token.Service, log *zap.Logger) *Server {
	return &Server{auth: auth, notes: notes, users: users, tokens: tokens, log: log}
}

// Router builds the route tree. Protected routes share one auth middleware so
// the token-to-identity resolution cannot drift between endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(s.recoverer, s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Post("/auth/signup", s.handleSignup)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/auth/me", s.handleMe)
		r.Post("/notes", s.handleCreateNote)
		r.Get("/notes", s.handleListNotes)
		r.Get("/notes/{noteID}", s.handleGetNote)
		r.Put("/notes/{noteID}", s.handleUpdateNote)
		r.Delete("/notes/{noteID}", s.handleDeleteNote)
		r.Post("/notes/{noteID}/translate", s.handleTranslateNote)
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// remoteIP strips the port from RemoteAddr for rate-limiter keying.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
