package rest

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
	"github.com/heartmarshall/escolhe-pra-mim/pkg/ctxutil"
)

// discoverer defines the discovery operations needed by CatalogHandler.
type discoverer interface {
	Discover(ctx context.Context, f domain.FilterOptions) ([]domain.Content, error)
	Genres(ctx context.Context, t domain.ContentType) ([]domain.Genre, error)
}

// exclusionSource yields the content IDs a signed-in user should not draw.
type exclusionSource interface {
	ExcludedIDs(ctx context.Context) ([]int64, error)
}

// contentLister lists the stored catalog snapshot.
type contentLister interface {
	ListAll(ctx context.Context) ([]domain.Content, error)
}

// CatalogHandler serves discovery, genres and the stored contents.
type CatalogHandler struct {
	discovery  discoverer
	exclusions exclusionSource
	contents   contentLister
	log        *slog.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(d discoverer, ex exclusionSource, contents contentLister, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		discovery:  d,
		exclusions: ex,
		contents:   contents,
		log:        logger.With("handler", "catalog"),
	}
}

type listMeta struct {
	Count int                `json:"count"`
	Type  domain.ContentType `json:"type"`
}

// Discover handles GET /api/v1/discover?type=&genres=&providers=.
func (h *CatalogHandler) Discover(w http.ResponseWriter, r *http.Request) {
	f, errs := parseDiscoverQuery(r.URL.Query())
	if len(errs) > 0 {
		writeEnvelopeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameters", errs)
		return
	}

	f.ExcludeIDs = h.excludedIDs(r)

	items, err := h.discovery.Discover(r.Context(), f)
	if err != nil {
		h.log.ErrorContext(r.Context(), "discover failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
		return
	}

	writeSuccess(w, items, listMeta{Count: len(items), Type: f.Type})
}

// Genres handles GET /api/v1/genres?type=.
func (h *CatalogHandler) Genres(w http.ResponseWriter, r *http.Request) {
	t := domain.ContentType(r.URL.Query().Get("type"))
	if !t.IsValid() {
		writeEnvelopeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid query parameters",
			[]domain.FieldError{{Field: "type", Message: typeMessage}})
		return
	}

	genres, err := h.discovery.Genres(r.Context(), t)
	if err != nil {
		h.log.ErrorContext(r.Context(), "genres failed", slog.String("error", err.Error()))
		writeEnvelopeError(w, http.StatusInternalServerError, CodeInternal, "Internal server error", nil)
		return
	}

	writeSuccess(w, genres, listMeta{Count: len(genres), Type: t})
}

// Contents handles GET /api/contents.
func (h *CatalogHandler) Contents(w http.ResponseWriter, r *http.Request) {
	items, err := h.contents.ListAll(r.Context())
	if err != nil {
		h.log.ErrorContext(r.Context(), "list contents failed", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// excludedIDs returns the caller's watched IDs, or nil for anonymous
// callers. A lookup failure only costs the exclusion, not the draw.
func (h *CatalogHandler) excludedIDs(r *http.Request) []int64 {
	if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok || h.exclusions == nil {
		return nil
	}
	ids, err := h.exclusions.ExcludedIDs(r.Context())
	if err != nil {
		h.log.WarnContext(r.Context(), "watched exclusions unavailable", slog.String("error", err.Error()))
		return nil
	}
	return ids
}

const typeMessage = "Invalid type"

// parseDiscoverQuery validates the discover query and collects every
// field error rather than stopping at the first. Genre tokens that are
// not integers are ignored.
func parseDiscoverQuery(q url.Values) (domain.FilterOptions, []domain.FieldError) {
	var (
		f    domain.FilterOptions
		errs []domain.FieldError
	)

	f.Type = domain.ContentType(q.Get("type"))
	if !f.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: typeMessage})
	}

	f.Providers = splitPipe(q.Get("providers"))
	if len(f.Providers) == 0 {
		errs = append(errs, domain.FieldError{Field: "providers", Message: "At least one provider required"})
	}

	f.Genres = parseGenreIDs(q.Get("genres"))
	if len(f.Genres) == 0 {
		errs = append(errs, domain.FieldError{Field: "genres", Message: "At least one genre required"})
	}

	return f, errs
}

func parseGenreIDs(raw string) []int {
	parts := splitPipe(raw)
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		if id, err := strconv.Atoi(p); err == nil {
			ids = append(ids, id)
		}
	}
	return ids
}

func splitPipe(raw string) []string {
	var out []string
	for _, p := range strings.Split(raw, "|") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
