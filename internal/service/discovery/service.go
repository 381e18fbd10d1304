package discovery

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"net/url"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/escolhe-pra-mim/internal/config"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
	"github.com/heartmarshall/escolhe-pra-mim/internal/provider"
)

// catalogClient defines the remote catalog operations needed by discovery.
type catalogClient interface {
	Discover(ctx context.Context, t domain.ContentType, params url.Values) (*provider.DiscoverPage, error)
	Details(ctx context.Context, t domain.ContentType, id int64) (*provider.Details, error)
	WatchProviders(ctx context.Context, t domain.ContentType, id int64) ([]provider.WatchProvider, error)
	Genres(ctx context.Context, t domain.ContentType) ([]domain.Genre, error)
}

// randomizer picks pages and orders results.
type randomizer interface {
	IntN(n int) int
	Shuffle(n int, swap func(i, j int))
}

type globalRand struct{}

func (globalRand) IntN(n int) int                     { return rand.IntN(n) }
func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// Mode names the source discovery reads from.
type Mode string

const (
	ModeTMDB Mode = "tmdb"
	ModeMock Mode = "mock"
)

// Service draws random, enriched content matching a filter.
type Service struct {
	log    *slog.Logger
	client catalogClient
	cfg    config.TMDBConfig
	rnd    randomizer
	genres *expirable.LRU[domain.ContentType, []domain.Genre]
}

// Option customizes a Service.
type Option func(*Service)

// WithRandom replaces the source of randomness (for tests).
func WithRandom(r randomizer) Option {
	return func(s *Service) { s.rnd = r }
}

// NewService creates a discovery service. A nil client switches the
// service to the bundled mock catalog.
func NewService(logger *slog.Logger, client catalogClient, cfg config.TMDBConfig, opts ...Option) *Service {
	ttl := cfg.GenreCacheTTL
	if ttl <= 0 {
		ttl = defaultGenreCacheTTL
	}

	s := &Service{
		log:    logger.With("service", "discovery"),
		client: client,
		cfg:    cfg,
		rnd:    globalRand{},
		genres: expirable.NewLRU[domain.ContentType, []domain.Genre](4, nil, ttl),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode reports whether the service queries TMDB or the mock catalog.
func (s *Service) Mode() Mode {
	if s.client == nil {
		return ModeMock
	}
	return ModeTMDB
}

func (s *Service) limit() int {
	if s.cfg.ResultLimit <= 0 {
		return defaultResultLimit
	}
	return s.cfg.ResultLimit
}

// shuffleTake shuffles items in place and returns at most n of them.
func shuffleTake[T any](r randomizer, items []T, n int) []T {
	r.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })
	if len(items) > n {
		items = items[:n]
	}
	return items
}
