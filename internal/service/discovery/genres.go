package discovery

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/escolhe-pra-mim/internal/catalog"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Genres returns the selectable genres for t: the catalog's real genres
// followed by the virtual genres (negative IDs). The real list falls back
// to the built-in one when the catalog is unavailable.
func (s *Service) Genres(ctx context.Context, t domain.ContentType) ([]domain.Genre, error) {
	genres := s.realGenres(ctx, t)
	return append(genres, catalog.VirtualGenreList(t)...), nil
}

func (s *Service) realGenres(ctx context.Context, t domain.ContentType) []domain.Genre {
	if s.client == nil {
		return catalog.StaticGenres(t)
	}

	if cached, ok := s.genres.Get(t); ok {
		return clone(cached)
	}

	fetched, err := s.client.Genres(ctx, t)
	if err != nil {
		s.log.WarnContext(ctx, "genre list unavailable, using static genres",
			slog.String("type", t.String()),
			slog.String("error", err.Error()),
		)
		return catalog.StaticGenres(t)
	}

	s.genres.Add(t, fetched)
	return clone(fetched)
}

func clone(g []domain.Genre) []domain.Genre {
	out := make([]domain.Genre, len(g), len(g)+len(catalog.VirtualGenres))
	copy(out, g)
	return out
}
