// Package content serves the stored catalog snapshot and seeds it from the
// bundled mock catalog.
package content

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/escolhe-pra-mim/internal/catalog"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// contentRepo defines the content repository interface needed by content service.
type contentRepo interface {
	ListAll(ctx context.Context) ([]domain.Content, error)
	UpsertMany(ctx context.Context, items []domain.Content) (int, error)
	Count(ctx context.Context) (int64, error)
}

// Service implements catalog snapshot operations.
type Service struct {
	log  *slog.Logger
	repo contentRepo
}

// NewService creates a new content service instance.
func NewService(logger *slog.Logger, repo contentRepo) *Service {
	return &Service{
		log:  logger.With("service", "content"),
		repo: repo,
	}
}

// ListAll returns every stored content.
func (s *Service) ListAll(ctx context.Context) ([]domain.Content, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.ListAll: %w", err)
	}
	if items == nil {
		items = []domain.Content{}
	}
	return items, nil
}

// Count returns the number of stored contents.
func (s *Service) Count(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("content.Count: %w", err)
	}
	return n, nil
}

// SeedFromMock upserts the bundled mock catalog and returns how many rows
// were written. Invalid entries are skipped with a warning.
func (s *Service) SeedFromMock(ctx context.Context) (int, error) {
	all, err := catalog.MockContents()
	if err != nil {
		return 0, fmt.Errorf("content.SeedFromMock: %w", err)
	}

	valid := make([]domain.Content, 0, len(all))
	for _, c := range all {
		if err := c.Validate(); err != nil {
			s.log.WarnContext(ctx, "skipping invalid mock entry",
				slog.Int64("id", c.ID),
				slog.String("error", err.Error()))
			continue
		}
		valid = append(valid, c)
	}

	n, err := s.repo.UpsertMany(ctx, valid)
	if err != nil {
		return n, fmt.Errorf("content.SeedFromMock: %w", err)
	}

	s.log.InfoContext(ctx, "catalog seeded", slog.Int("written", n))
	return n, nil
}
