package lists

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// List returns the entries of one list, newest first.
func (s *Service) List(ctx context.Context, kind domain.ListKind) ([]domain.UserContent, error) {
	if err := validateKind(kind); err != nil {
		return nil, err
	}
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	items, err := s.lists.List(ctx, userID, kind)
	if err != nil {
		return nil, fmt.Errorf("lists.List: %w", err)
	}
	if items == nil {
		items = []domain.UserContent{}
	}
	return items, nil
}

// Add stores c in the list. An ID already in the list is left untouched
// and reported as added=false. Adding to the watched list also drops the
// title from the watchlist.
func (s *Service) Add(ctx context.Context, kind domain.ListKind, c domain.Content) (bool, error) {
	if err := validateKind(kind); err != nil {
		return false, err
	}
	if err := c.Validate(); err != nil {
		return false, err
	}
	userID, err := userFromCtx(ctx)
	if err != nil {
		return false, err
	}

	if kind != domain.ListWatched {
		added, err := s.lists.Add(ctx, userID, kind, c, s.now())
		if err != nil {
			return false, fmt.Errorf("lists.Add: %w", err)
		}
		return added, nil
	}

	var added bool
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		added, err = s.lists.Add(txCtx, userID, domain.ListWatched, c, s.now())
		if err != nil {
			return err
		}
		return ignoreNotFound(s.lists.Remove(txCtx, userID, domain.ListWatchlist, c.ID))
	})
	if err != nil {
		return false, fmt.Errorf("lists.Add: %w", err)
	}
	return added, nil
}

// Remove deletes one entry. Returns ErrNotFound if the list lacks contentID.
func (s *Service) Remove(ctx context.Context, kind domain.ListKind, contentID int64) error {
	if err := validateKind(kind); err != nil {
		return err
	}
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	if err := s.lists.Remove(ctx, userID, kind, contentID); err != nil {
		return fmt.Errorf("lists.Remove: %w", err)
	}
	return nil
}

// MarkWatched moves a watchlist entry to the watched list with a fresh
// timestamp. Returns ErrNotFound if the watchlist lacks contentID.
func (s *Service) MarkWatched(ctx context.Context, contentID int64) (*domain.UserContent, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	var moved domain.UserContent
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		entry, err := s.lists.Get(txCtx, userID, domain.ListWatchlist, contentID)
		if err != nil {
			return err
		}
		if err := s.lists.Remove(txCtx, userID, domain.ListWatchlist, contentID); err != nil {
			return err
		}

		moved = domain.UserContent{Content: entry.Content, AddedAt: s.now()}
		added, err := s.lists.Add(txCtx, userID, domain.ListWatched, moved.Content, moved.AddedAt)
		if err != nil || added {
			return err
		}

		// Already watched: report the stored entry.
		stored, err := s.lists.Get(txCtx, userID, domain.ListWatched, contentID)
		if err != nil {
			return err
		}
		moved = *stored
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("lists.MarkWatched: %w", err)
	}

	s.log.InfoContext(ctx, "moved to watched",
		slog.Int64("user_id", userID),
		slog.Int64("content_id", contentID))
	return &moved, nil
}

// ExcludedIDs returns the content IDs a draw for the current user should
// skip: the watched list, unless the user opted to include it.
func (s *Service) ExcludedIDs(ctx context.Context) ([]int64, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := s.loadSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings.IncludeWatchedInDraw {
		return nil, nil
	}

	ids, err := s.lists.ContentIDs(ctx, userID, domain.ListWatched)
	if err != nil {
		return nil, fmt.Errorf("lists.ExcludedIDs: %w", err)
	}
	return ids, nil
}

func ignoreNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	return err
}
