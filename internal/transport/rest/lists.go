package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// listsService defines the minimal interface needed by ListsHandler.
type listsService interface {
	List(ctx context.Context, kind domain.ListKind) ([]domain.UserContent, error)
	Add(ctx context.Context, kind domain.ListKind, c domain.Content) (bool, error)
	Remove(ctx context.Context, kind domain.ListKind, contentID int64) error
	MarkWatched(ctx context.Context, contentID int64) (*domain.UserContent, error)
	ClearAll(ctx context.Context) error

	History(ctx context.Context) ([]domain.HistoryItem, error)
	AddHistory(ctx context.Context, c domain.Content) (*domain.HistoryItem, error)
	ToggleHistoryWatched(ctx context.Context, historyID uuid.UUID) (*domain.HistoryItem, error)
	DeleteHistory(ctx context.Context, historyID uuid.UUID) error

	Settings(ctx context.Context) (domain.UserSettings, error)
	UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.UserSettings, error)
}

// ListsHandler serves the signed-in user's lists, history and settings.
type ListsHandler struct {
	svc listsService
	log *slog.Logger
}

// NewListsHandler creates a ListsHandler.
func NewListsHandler(svc listsService, logger *slog.Logger) *ListsHandler {
	return &ListsHandler{svc: svc, log: logger.With("handler", "lists")}
}

type contentRequest struct {
	Content *domain.Content `json:"content"`
}

func (req contentRequest) content() (domain.Content, bool) {
	if req.Content == nil {
		return domain.Content{}, false
	}
	return *req.Content, true
}

// List handles GET /api/me/lists/{list}.
func (h *ListsHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context(), listKind(r))
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/me/lists/{list}.
func (h *ListsHandler) Add(w http.ResponseWriter, r *http.Request) {
	c, ok := h.readContent(w, r)
	if !ok {
		return
	}

	added, err := h.svc.Add(r.Context(), listKind(r), c)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, map[string]bool{"added": added})
}

// Remove handles DELETE /api/me/lists/{list}/{contentID}.
func (h *ListsHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id, ok := contentIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.Remove(r.Context(), listKind(r), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MarkWatched handles POST /api/me/lists/watchlist/{contentID}/watched.
func (h *ListsHandler) MarkWatched(w http.ResponseWriter, r *http.Request) {
	id, ok := contentIDParam(w, r)
	if !ok {
		return
	}

	entry, err := h.svc.MarkWatched(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

// ClearAll handles DELETE /api/me/lists.
func (h *ListsHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ClearAll(r.Context()); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// History handles GET /api/me/history.
func (h *ListsHandler) History(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.History(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// AddHistory handles POST /api/me/history.
func (h *ListsHandler) AddHistory(w http.ResponseWriter, r *http.Request) {
	c, ok := h.readContent(w, r)
	if !ok {
		return
	}

	item, err := h.svc.AddHistory(r.Context(), c)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// ToggleHistoryWatched handles POST /api/me/history/{historyID}/toggle-watched.
func (h *ListsHandler) ToggleHistoryWatched(w http.ResponseWriter, r *http.Request) {
	id, ok := historyIDParam(w, r)
	if !ok {
		return
	}

	item, err := h.svc.ToggleHistoryWatched(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteHistory handles DELETE /api/me/history/{historyID}.
func (h *ListsHandler) DeleteHistory(w http.ResponseWriter, r *http.Request) {
	id, ok := historyIDParam(w, r)
	if !ok {
		return
	}

	if err := h.svc.DeleteHistory(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Settings handles GET /api/me/settings.
func (h *ListsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Settings(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// UpdateSettings handles PATCH /api/me/settings.
func (h *ListsHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var patch domain.SettingsPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	s, err := h.svc.UpdateSettings(r.Context(), patch)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *ListsHandler) readContent(w http.ResponseWriter, r *http.Request) (domain.Content, bool) {
	var req contentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return domain.Content{}, false
	}
	c, ok := req.content()
	if !ok {
		writeError(w, http.StatusBadRequest, "content is required")
		return domain.Content{}, false
	}
	return c, true
}

func listKind(r *http.Request) domain.ListKind {
	return domain.ListKind(chi.URLParam(r, "list"))
}

func contentIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "contentID"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid content id")
		return 0, false
	}
	return id, true
}

func historyIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "historyID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid history id")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ListsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.FirstMessage())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "Access denied")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
