package lists

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Settings returns the user's settings, or the defaults if none are stored.
func (s *Service) Settings(ctx context.Context) (domain.UserSettings, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return domain.UserSettings{}, err
	}
	return s.loadSettings(ctx, userID)
}

func (s *Service) loadSettings(ctx context.Context, userID int64) (domain.UserSettings, error) {
	stored, err := s.settings.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.DefaultUserSettings(), nil
		}
		return domain.UserSettings{}, fmt.Errorf("lists.Settings: %w", err)
	}
	return *stored, nil
}

// UpdateSettings merges the present fields of patch into the stored
// settings and returns the result.
func (s *Service) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.UserSettings, error) {
	userID, err := userFromCtx(ctx)
	if err != nil {
		return domain.UserSettings{}, err
	}

	var updated domain.UserSettings
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.loadSettings(txCtx, userID)
		if err != nil {
			return err
		}
		updated = current.Merge(patch)
		return s.settings.UpsertSettings(txCtx, userID, updated)
	})
	if err != nil {
		return domain.UserSettings{}, fmt.Errorf("lists.UpdateSettings: %w", err)
	}

	s.log.InfoContext(ctx, "settings updated", slog.Int64("user_id", userID))
	return updated, nil
}
