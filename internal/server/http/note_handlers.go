package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/and161185/notekeeper/internal/errs"
	"github.com/and161185/notekeeper/internal/model"
)

// noteCreateRequest uses pointer fields so missing keys are distinguishable
// from empty strings; both keys must be present.
type noteCreateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type noteUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// noteID parses the {noteID} route param. A non-numeric id cannot name an
// existing note, so it maps to 404 like any other unknown id.
func noteID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
	return id, err == nil && id > 0
}

// writeNoteError maps service sentinels for note operations: missing -> 404,
// owned by someone else -> 403, translation exhausted -> 502.
func (s *Server) writeNoteError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		writeError(w, http.StatusNotFound, reasonNotFound)
	case errors.Is(err, errs.ErrForbidden):
		writeError(w, http.StatusForbidden, reasonForbidden)
	case errors.Is(err, errs.ErrUpstreamUnavailable):
		writeError(w, http.StatusBadGateway, reasonTranslationFailed)
	default:
		s.log.Error(op, zap.Error(err))
		writeError(w, http.StatusInternalServerError, reasonInternal)
	}
}

func (s *Server) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromCtx(r.Context())
	var req noteCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == nil || req.Content == nil {
		writeError(w, http.StatusBadRequest, reasonInvalidRequest)
		return
	}
	n, err := s.notes.Create(r.Context(), u.ID, *req.Title, *req.Content)
	if err != nil {
		s.writeNoteError(w, "create note", err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}

func (s *Server) handleGetNote(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromCtx(r.Context())
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, reasonNotFound)
		return
	}
	n, err := s.notes.Get(r.Context(), u.ID, id)
	if err != nil {
		s.writeNoteError(w, "get note", err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}

func (s *Server) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromCtx(r.Context())
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, reasonNotFound)
		return
	}
	var req noteUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, reasonInvalidRequest)
		return
	}
	n, err := s.notes.Update(r.Context(), u.ID, id, model.NotePatch{Title: req.Title, Content: req.Content})
	if err != nil {
		s.writeNoteError(w, "update note", err)
		return
	}
	writeJSON(w, http.StatusOK, toNoteJSON(n))
}

func (s *Server) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromCtx(r.Context())
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, reasonNotFound)
		return
	}
	if err := s.notes.Delete(r.Context(), u.ID, id); err != nil {
		s.writeNoteError(w, "delete note", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Note deleted successfully"})
}

func (s *Server) handleListNotes(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromCtx(r.Context())
	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	notes, err := s.notes.List(r.Context(), u.ID, skip, limit)
	if err != nil {
		s.writeNoteError(w, "list notes", err)
		return
	}
	out := make([]noteJSON, 0, len(notes))
	for i := range notes {
		out = append(out, toNoteJSON(&notes[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleTranslateNote(w http.ResponseWriter, r *http.Request) {
	u, _ := UserFromCtx(r.Context())
	id, ok := noteID(r)
	if !ok {
		writeError(w, http.StatusNotFound, reasonNotFound)
		return
	}
	text, err := s.notes.Translate(r.Context(), u.ID, id)
	if err != nil {
		s.writeNoteError(w, "translate note", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"translated_text": text})
}
