package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/heartmarshall/escolhe-pra-mim/internal/config"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
	"github.com/heartmarshall/escolhe-pra-mim/internal/provider"
)

const (
	defaultRetryDelay       = 500 * time.Millisecond
	defaultFailureThreshold = 5
	defaultOpenTimeout      = 30 * time.Second
)

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tmdb_requests_total",
		Help: "Total number of TMDB API requests by endpoint and outcome",
	},
	[]string{"endpoint", "status"},
)

// Client talks to the TMDB v3 REST API.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	region     string
	httpClient *http.Client
	retryDelay time.Duration
	breaker    *gobreaker.CircuitBreaker[[]byte]
	log        *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL (for testing).
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryDelay sets the pause before the single retry.
func WithRetryDelay(d time.Duration) Option {
	return func(c *Client) { c.retryDelay = d }
}

// NewClient creates a Client from cfg.
func NewClient(cfg config.TMDBConfig, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		language:   cfg.Language,
		region:     cfg.Region,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryDelay: defaultRetryDelay,
		log:        logger.With("adapter", "tmdb"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "tmdb",
		MaxRequests: 1,
		Timeout:     defaultOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= defaultFailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrNotFound) || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("tmdb circuit breaker state change",
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	})

	return c
}

// Region returns the watch region the client filters providers by.
func (c *Client) Region() string { return c.region }

// Discover fetches one page of discover/{movie|tv} filtered by params.
func (c *Client) Discover(ctx context.Context, t domain.ContentType, params url.Values) (*provider.DiscoverPage, error) {
	var resp apiDiscoverResponse
	if err := c.getJSON(ctx, "discover", "/discover/"+t.TMDBPath(), params, &resp); err != nil {
		return nil, err
	}

	page := &provider.DiscoverPage{
		Page:         resp.Page,
		TotalPages:   resp.TotalPages,
		TotalResults: resp.TotalResults,
		Items:        make([]provider.DiscoverItem, 0, len(resp.Results)),
	}
	for _, h := range resp.Results {
		page.Items = append(page.Items, provider.DiscoverItem{
			ID:           h.ID,
			Title:        h.Title,
			Name:         h.Name,
			Overview:     h.Overview,
			PosterPath:   h.PosterPath,
			BackdropPath: h.BackdropPath,
			ReleaseDate:  h.ReleaseDate,
			FirstAirDate: h.FirstAirDate,
			VoteAverage:  h.VoteAverage,
			GenreIDs:     h.GenreIDs,
		})
	}
	return page, nil
}

// Details fetches the localized genre names of one item.
func (c *Client) Details(ctx context.Context, t domain.ContentType, id int64) (*provider.Details, error) {
	params := url.Values{}
	params.Set("language", c.language)

	var resp apiDetails
	path := "/" + t.TMDBPath() + "/" + strconv.FormatInt(id, 10)
	if err := c.getJSON(ctx, "details", path, params, &resp); err != nil {
		return nil, err
	}

	genres := make([]string, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, g.Name)
	}
	return &provider.Details{ID: resp.ID, Genres: genres}, nil
}

// WatchProviders returns the flat-rate (subscription) offers for one item
// in the client's region. An item with no offers yields an empty slice.
func (c *Client) WatchProviders(ctx context.Context, t domain.ContentType, id int64) ([]provider.WatchProvider, error) {
	var resp apiWatchProviders
	path := "/" + t.TMDBPath() + "/" + strconv.FormatInt(id, 10) + "/watch/providers"
	if err := c.getJSON(ctx, "watch_providers", path, nil, &resp); err != nil {
		return nil, err
	}

	offers := resp.Results[c.region]
	return mapProviders(offers.Flatrate), nil
}

// Genres fetches the localized genre list for t.
func (c *Client) Genres(ctx context.Context, t domain.ContentType) ([]domain.Genre, error) {
	params := url.Values{}
	params.Set("language", c.language)

	var resp apiGenreList
	if err := c.getJSON(ctx, "genres", "/genre/"+t.TMDBPath()+"/list", params, &resp); err != nil {
		return nil, err
	}

	genres := make([]domain.Genre, 0, len(resp.Genres))
	for _, g := range resp.Genres {
		genres = append(genres, domain.Genre{ID: g.ID, Name: g.Name})
	}
	return genres, nil
}

// RegionProviders lists every provider available for t in the client's region.
func (c *Client) RegionProviders(ctx context.Context, t domain.ContentType) ([]provider.WatchProvider, error) {
	params := url.Values{}
	params.Set("language", c.language)
	params.Set("watch_region", c.region)

	var resp apiProviderList
	if err := c.getJSON(ctx, "region_providers", "/watch/providers/"+t.TMDBPath(), params, &resp); err != nil {
		return nil, err
	}
	return mapProviders(resp.Results), nil
}

// Ping checks that the API key is accepted.
func (c *Client) Ping(ctx context.Context) error {
	var discard map[string]any
	return c.getJSON(ctx, "configuration", "/configuration", nil, &discard)
}

func mapProviders(in []apiProvider) []provider.WatchProvider {
	out := make([]provider.WatchProvider, 0, len(in))
	for _, p := range in {
		out = append(out, provider.WatchProvider{ID: p.ProviderID, Name: p.ProviderName, Priority: p.DisplayPriority})
	}
	return out
}

// getJSON fetches path through the circuit breaker and decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, path string, params url.Values, out any) error {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, endpoint, path, params)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			requestsTotal.WithLabelValues(endpoint, "breaker_open").Inc()
			return fmt.Errorf("tmdb: %s: %w: %v", endpoint, domain.ErrUpstream, err)
		}
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("tmdb: %s: decode json: %w", endpoint, err)
	}
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint, path string, params url.Values) ([]byte, error) {
	q := url.Values{}
	for k, vs := range params {
		q[k] = vs
	}
	q.Set("api_key", c.apiKey)
	reqURL := c.baseURL + path + "?" + q.Encode()

	c.log.DebugContext(ctx, "tmdb request", slog.String("endpoint", endpoint), slog.String("path", path))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("tmdb: create request: %w", err)
	}

	resp, err := c.doWithRetry(ctx, req, endpoint)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		if ctx.Err() != nil {
			return nil, fmt.Errorf("tmdb: %s: %w", endpoint, ctx.Err())
		}
		c.log.ErrorContext(ctx, "tmdb request failed", slog.String("endpoint", endpoint), slog.String("error", err.Error()))
		return nil, fmt.Errorf("tmdb: %s: %w: %v", endpoint, domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		requestsTotal.WithLabelValues(endpoint, "not_found").Inc()
		return nil, fmt.Errorf("tmdb: %s: %w", endpoint, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("tmdb: %s: %w: unexpected status %d", endpoint, domain.ErrUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		requestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, fmt.Errorf("tmdb: %s: read body: %w", endpoint, err)
	}

	requestsTotal.WithLabelValues(endpoint, "ok").Inc()
	return body, nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (c *Client) doWithRetry(ctx context.Context, req *http.Request, endpoint string) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	c.log.WarnContext(ctx, "tmdb retry", slog.String("endpoint", endpoint), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(c.retryDelay):
	}

	return c.httpClient.Do(req)
}
