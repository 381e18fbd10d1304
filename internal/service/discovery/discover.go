package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/escolhe-pra-mim/internal/catalog"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
	"github.com/heartmarshall/escolhe-pra-mim/internal/provider"
)

const (
	defaultResultLimit   = 10
	defaultMaxPages      = 50
	defaultTimeout       = 10 * time.Second
	defaultGenreCacheTTL = 6 * time.Hour
)

// Discover returns up to ResultLimit random items matching f.
//
// Upstream failures are logged and yield an empty result; only a
// cancelled caller context is returned as an error.
func (s *Service) Discover(ctx context.Context, f domain.FilterOptions) ([]domain.Content, error) {
	if s.client == nil {
		return s.discoverMock(f)
	}

	timeout := s.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	reqCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	items, err := s.discoverRemote(reqCtx, f)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("discovery: %w", ctx.Err())
		}
		s.log.WarnContext(ctx, "discover failed, returning empty result",
			slog.String("type", f.Type.String()),
			slog.String("error", err.Error()),
		)
		return []domain.Content{}, nil
	}

	s.log.DebugContext(ctx, "discover done",
		slog.String("type", f.Type.String()),
		slog.Int("count", len(items)),
	)
	return items, nil
}

func (s *Service) discoverMock(f domain.FilterOptions) ([]domain.Content, error) {
	all, err := catalog.MockContents()
	if err != nil {
		return nil, fmt.Errorf("discovery: %w", err)
	}

	genreNames := catalog.GenreNames(f.Genres, f.Type)

	matched := make([]domain.Content, 0, len(all))
	for _, c := range all {
		if c.Type != f.Type || f.Excludes(c.ID) {
			continue
		}
		if !c.HasAnyProvider(f.Providers) || !c.HasAnyGenre(genreNames) {
			continue
		}
		matched = append(matched, c)
	}

	return shuffleTake(s.rnd, matched, s.limit()), nil
}

func (s *Service) discoverRemote(ctx context.Context, f domain.FilterOptions) ([]domain.Content, error) {
	providerIDs := catalog.ProviderIDs(f.Providers)
	if len(providerIDs) == 0 {
		return []domain.Content{}, nil
	}

	params := s.baseParams(providerIDs, catalog.ExpandGenres(f.Genres, f.Type))

	first, err := s.probe(ctx, f.Type, params)
	if err != nil {
		return nil, err
	}

	maxPages := s.cfg.MaxPages
	if maxPages <= 0 {
		maxPages = defaultMaxPages
	}
	totalPages := min(first.TotalPages, maxPages)
	if totalPages <= 0 {
		return []domain.Content{}, nil
	}

	page := first
	if n := s.rnd.IntN(totalPages) + 1; n != 1 {
		params.Set("page", strconv.Itoa(n))
		page, err = s.client.Discover(ctx, f.Type, params)
		if err != nil {
			return nil, fmt.Errorf("fetch page %d: %w", n, err)
		}
	}

	picked := shuffleTake(s.rnd, uniqueItems(page.Items, f), s.limit())
	if len(picked) == 0 {
		return []domain.Content{}, nil
	}

	return s.enrich(ctx, f.Type, picked)
}

func (s *Service) baseParams(providerIDs, genreIDs []int) url.Values {
	params := url.Values{}
	params.Set("language", s.cfg.Language)
	params.Set("watch_region", s.cfg.Region)
	params.Set("with_watch_providers", joinInts(providerIDs))
	if len(genreIDs) > 0 {
		params.Set("with_genres", joinInts(genreIDs))
	}
	params.Set("sort_by", "popularity.desc")
	params.Set("vote_count.gte", strconv.Itoa(s.cfg.MinVoteCount))
	params.Set("page", "1")
	return params
}

// probe fetches page 1, relaxing first the vote-count floor and then the
// genre filter while the catalog reports no pages.
func (s *Service) probe(ctx context.Context, t domain.ContentType, params url.Values) (*provider.DiscoverPage, error) {
	page, err := s.client.Discover(ctx, t, params)
	if err != nil {
		return nil, fmt.Errorf("probe: %w", err)
	}
	if page.TotalPages > 0 {
		return page, nil
	}

	for _, relax := range []string{"vote_count.gte", "with_genres"} {
		if !params.Has(relax) {
			continue
		}
		params.Del(relax)
		s.log.DebugContext(ctx, "discover relaxing filter", slog.String("dropped", relax))

		page, err = s.client.Discover(ctx, t, params)
		if err != nil {
			return nil, fmt.Errorf("probe without %s: %w", relax, err)
		}
		if page.TotalPages > 0 {
			return page, nil
		}
	}
	return page, nil
}

// uniqueItems drops excluded IDs and repeated IDs, keeping the first.
func uniqueItems(items []provider.DiscoverItem, f domain.FilterOptions) []provider.DiscoverItem {
	seen := make(map[int64]struct{}, len(items))
	out := make([]provider.DiscoverItem, 0, len(items))
	for _, it := range items {
		if f.Excludes(it.ID) {
			continue
		}
		if _, ok := seen[it.ID]; ok {
			continue
		}
		seen[it.ID] = struct{}{}
		out = append(out, it)
	}
	return out
}

// enrich fetches details and watch providers for every item concurrently.
// Items whose details lookup fails are dropped; the rest keep their
// shuffled order.
func (s *Service) enrich(ctx context.Context, t domain.ContentType, items []provider.DiscoverItem) ([]domain.Content, error) {
	results := make([]*domain.Content, len(items))

	g, gctx := errgroup.WithContext(ctx)
	for i, it := range items {
		g.Go(func() error {
			c, err := s.enrichItem(gctx, t, it)
			if err != nil {
				if isCancellation(err) {
					return err
				}
				s.log.DebugContext(gctx, "dropping item after enrichment failure",
					slog.Int64("id", it.ID),
					slog.String("error", err.Error()),
				)
				return nil
			}
			results[i] = &c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("enrich: %w", err)
	}

	out := make([]domain.Content, 0, len(results))
	for _, c := range results {
		if c != nil {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (s *Service) enrichItem(ctx context.Context, t domain.ContentType, it provider.DiscoverItem) (domain.Content, error) {
	var (
		details *provider.Details
		offers  []provider.WatchProvider
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		d, err := s.client.Details(gctx, t, it.ID)
		details = d
		return err
	})
	g.Go(func() error {
		p, err := s.client.WatchProviders(gctx, t, it.ID)
		if err != nil {
			if isCancellation(err) {
				return err
			}
			s.log.DebugContext(gctx, "watch providers unavailable, keeping item without streaming",
				slog.Int64("id", it.ID),
				slog.String("error", err.Error()),
			)
			return nil
		}
		offers = p
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.Content{}, err
	}

	var genres []string
	if details != nil {
		genres = details.Genres
	}
	return s.normalize(t, it, genres, streamingNames(offers)), nil
}

// streamingNames keeps offers from known providers, mapped to their names.
func streamingNames(offers []provider.WatchProvider) []string {
	seen := make(map[string]struct{}, len(offers))
	names := make([]string, 0, len(offers))
	for _, o := range offers {
		name, ok := catalog.ProviderName(o.ID)
		if !ok {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

func (s *Service) normalize(t domain.ContentType, it provider.DiscoverItem, genres, streaming []string) domain.Content {
	if genres == nil {
		genres = []string{}
	}
	date := domain.FirstNonEmpty(it.ReleaseDate, it.FirstAirDate)
	return domain.Content{
		ID:           it.ID,
		Title:        domain.FirstNonEmpty(it.Title, it.Name),
		Type:         t,
		Genres:       genres,
		Streaming:    streaming,
		Overview:     it.Overview,
		PosterPath:   catalog.ImageURL(s.cfg.ImageBaseURL, catalog.PosterSize, it.PosterPath),
		BackdropPath: catalog.ImageURL(s.cfg.ImageBaseURL, catalog.BackdropSize, it.BackdropPath),
		ReleaseDate:  date,
		Rating:       it.VoteAverage,
		Year:         domain.YearFromDate(date),
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "|")
}
