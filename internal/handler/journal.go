package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"daybook/internal/domain"
	"daybook/internal/service"
)

// JournalHandler handles journal entry HTTP requests. All routes sit behind
// RequireAuth, so UserFromContext is always non-nil here; the user id is
// passed explicitly into every service call.
type JournalHandler struct {
	journal *service.JournalService
}

// NewJournalHandler creates a new JournalHandler.
func NewJournalHandler(journal *service.JournalService) *JournalHandler {
	return &JournalHandler{journal: journal}
}

// HandleList returns the user's entries, optionally scoped to a day and a
// mood label.
// GET /api/journal/entries?day=2006-01-02&mood=😊
// Response: {"entries": [...]}
func (h *JournalHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var (
		entries []domain.Entry
		err     error
	)
	if day := r.URL.Query().Get("day"); day != "" {
		entries, err = h.journal.ListDay(r.Context(), user.ID, day, r.URL.Query().Get("mood"))
	} else {
		entries, err = h.journal.List(r.Context(), user.ID)
	}
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.Error("list entries", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entries": toEntryDTOs(entries),
	})
}

// HandleCreate saves a new entry. The content is classified for mood before
// anything is stored.
// POST /api/journal/entries
// Request:  {"title":"...","content":"..."}
// Response: {"entry": {...}}
func (h *JournalHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	entry, err := h.journal.Add(r.Context(), user.ID, req.Title, req.Content)
	if err != nil {
		h.writeJournalError(w, err, "create entry")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"entry": toEntryDTO(entry),
	})
}

// HandleGet returns a single entry.
// GET /api/journal/entries/{id}
// Response: {"entry": {...}} or 404
func (h *JournalHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	entry, err := h.journal.Get(r.Context(), user.ID, r.PathValue("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found.")
			return
		}
		slog.Error("get entry", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entry": toEntryDTO(entry),
	})
}

// HandleUpdate rewrites an entry's title and content and refreshes its mood.
// PUT /api/journal/entries/{id}
// Request:  {"title":"...","content":"..."}
// Response: {"entry": {...}}
func (h *JournalHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
	}
	if err := readJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}

	entry, err := h.journal.Update(r.Context(), user.ID, r.PathValue("id"), req.Title, req.Content)
	if err != nil {
		h.writeJournalError(w, err, "update entry")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"entry": toEntryDTO(entry),
	})
}

// HandleDelete removes an entry.
// DELETE /api/journal/entries/{id}
// Response: 204 No Content or 404
func (h *JournalHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	if err := h.journal.Delete(r.Context(), user.ID, r.PathValue("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Entry not found.")
			return
		}
		slog.Error("delete entry", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleMoods returns the distinct mood labels across the user's entries.
// GET /api/journal/moods
// Response: {"moods": ["😊", ...]}
func (h *JournalHandler) HandleMoods(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	moods, err := h.journal.Moods(r.Context(), user.ID)
	if err != nil {
		slog.Error("list moods", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if moods == nil {
		moods = []string{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"moods": moods,
	})
}

// HandleSaving reports whether a save is in flight for the user, so the
// client can disable its save button.
// GET /api/journal/saving
// Response: {"isSaving": bool}
func (h *JournalHandler) HandleSaving(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())

	writeJSON(w, http.StatusOK, map[string]any{
		"isSaving": h.journal.Saving(user.ID),
	})
}

func (h *JournalHandler) writeJournalError(w http.ResponseWriter, err error, op string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Entry not found.")
	case errors.Is(err, domain.ErrInvalidInput):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrSaveInProgress):
		writeError(w, http.StatusConflict, "Another save is already in progress.")
	case errors.Is(err, domain.ErrClassifier):
		slog.Error(op, "error", err)
		writeError(w, http.StatusBadGateway, "Mood analysis is unavailable right now. Your entry was not saved.")
	default:
		slog.Error(op, "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
