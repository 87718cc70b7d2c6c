package httpserver

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/and161185/notekeeper/internal/model"
)

// Machine-readable error reasons; the only content of an error payload.
const (
	reasonInvalidRequest     = "invalid_request"
	reasonUsernameTaken      = "username_taken"
	reasonInvalidCredentials = "invalid_credentials"
	reasonAuthRequired       = "authentication_required"
	reasonRateLimited        = "rate_limited"
	reasonNotFound           = "not_found"
	reasonForbidden          = "forbidden"
	reasonTranslationFailed  = "translation_failed"
	reasonInternal           = "internal_error"
)

type errorPayload struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, reason string) {
	writeJSON(w, status, errorPayload{Error: reason})
}

// noteJSON is the wire shape of a note.
type noteJSON struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toNoteJSON(n *model.Note) noteJSON {
	return noteJSON{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		UserID:    n.UserID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
