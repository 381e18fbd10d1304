package lists

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// History returns the user's draw history, newest first.
func (s *Service) History(ctx context.Context) ([]domain.HistoryItem, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.history.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("lists.History: %w", err)
	}
	if items == nil {
		items = []domain.HistoryItem{}
	}
	return items, nil
}

// AddHistory records c as a new unwatched history item. The same content
// may be recorded any number of times.
func (s *Service) AddHistory(ctx context.Context, c domain.Content) (*domain.HistoryItem, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	item := domain.NewHistoryItem(c, s.now())
	if err := s.history.Add(ctx, userID, item); err != nil {
		return nil, fmt.Errorf("lists.AddHistory: %w", err)
	}
	return &item, nil
}

// ToggleHistoryWatched flips the watched flag of a single history item.
func (s *Service) ToggleHistoryWatched(ctx context.Context, historyID uuid.UUID) (*domain.HistoryItem, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	item, err := s.history.ToggleWatched(ctx, userID, historyID)
	if err != nil {
		return nil, fmt.Errorf("lists.ToggleHistoryWatched: %w", err)
	}
	return item, nil
}

// DeleteHistory removes a single history item.
func (s *Service) DeleteHistory(ctx context.Context, historyID uuid.UUID) error {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.history.Delete(ctx, userID, historyID); err != nil {
		return fmt.Errorf("lists.DeleteHistory: %w", err)
	}
	return nil
}
