// Package lists manages a signed-in user's saved titles: the watchlist,
// watched and saved lists, the draw history and display settings.
package lists

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
	"github.com/heartmarshall/escolhe-pra-mim/pkg/ctxutil"
)

// listRepo defines the list repository interface needed by lists service.
type listRepo interface {
	List(ctx context.Context, userID int64, kind domain.ListKind) ([]domain.UserContent, error)
	ContentIDs(ctx context.Context, userID int64, kind domain.ListKind) ([]int64, error)
	Add(ctx context.Context, userID int64, kind domain.ListKind, c domain.Content, addedAt time.Time) (bool, error)
	Get(ctx context.Context, userID int64, kind domain.ListKind, contentID int64) (*domain.UserContent, error)
	Remove(ctx context.Context, userID int64, kind domain.ListKind, contentID int64) error
	DeleteAll(ctx context.Context, userID int64) error
}

// historyRepo defines the history repository interface needed by lists service.
type historyRepo interface {
	List(ctx context.Context, userID int64) ([]domain.HistoryItem, error)
	Add(ctx context.Context, userID int64, item domain.HistoryItem) error
	ToggleWatched(ctx context.Context, userID int64, id uuid.UUID) (*domain.HistoryItem, error)
	Delete(ctx context.Context, userID int64, id uuid.UUID) error
	DeleteAll(ctx context.Context, userID int64) error
}

// settingsRepo defines the settings repository interface needed by lists service.
type settingsRepo interface {
	GetSettings(ctx context.Context, userID int64) (*domain.UserSettings, error)
	UpsertSettings(ctx context.Context, userID int64, s domain.UserSettings) error
	DeleteSettings(ctx context.Context, userID int64) error
}

// txManager defines the transaction manager interface needed by lists service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements list, history and settings operations for the
// user found in the request context.
type Service struct {
	log      *slog.Logger
	lists    listRepo
	history  historyRepo
	settings settingsRepo
	tx       txManager
	now      func() time.Time
}

// NewService creates a new lists service instance.
func NewService(
	logger *slog.Logger,
	lists listRepo,
	history historyRepo,
	settings settingsRepo,
	tx txManager,
) *Service {
	return &Service{
		log:      logger.With("service", "lists"),
		lists:    lists,
		history:  history,
		settings: settings,
		tx:       tx,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func userFromCtx(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	return userID, nil
}

func validateKind(kind domain.ListKind) error {
	if !kind.IsValid() {
		return domain.NewValidationError("list", "list must be 'watchlist', 'watched' or 'saved'")
	}
	return nil
}

// ClearAll removes every list entry and history item of the user and
// resets settings to their defaults.
func (s *Service) ClearAll(ctx context.Context) error {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return err
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.lists.DeleteAll(txCtx, userID); err != nil {
			return err
		}
		if err := s.history.DeleteAll(txCtx, userID); err != nil {
			return err
		}
		return s.settings.DeleteSettings(txCtx, userID)
	})
	if err != nil {
		return fmt.Errorf("lists.ClearAll: %w", err)
	}

	s.log.InfoContext(ctx, "user data cleared", slog.Int64("user_id", userID))
	return nil
}
