package lists

import (
	"context"
	"sync"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Ensure, that settingsRepoMock does implement settingsRepo.
// If this is not the case, regenerate this file with moq.
var _ settingsRepo = &settingsRepoMock{}

type settingsRepoMock struct {
	// DeleteSettingsFunc mocks the DeleteSettings method.
	DeleteSettingsFunc func(ctx context.Context, userID int64) error

	// GetSettingsFunc mocks the GetSettings method.
	GetSettingsFunc func(ctx context.Context, userID int64) (*domain.UserSettings, error)

	// UpsertSettingsFunc mocks the UpsertSettings method.
	UpsertSettingsFunc func(ctx context.Context, userID int64, s domain.UserSettings) error

	calls struct {
		DeleteSettings []struct {
			Ctx    context.Context
			UserID int64
		}
		GetSettings []struct {
			Ctx    context.Context
			UserID int64
		}
		UpsertSettings []struct {
			Ctx    context.Context
			UserID int64
			S      domain.UserSettings
		}
	}
	lockDeleteSettings sync.RWMutex
	lockGetSettings    sync.RWMutex
	lockUpsertSettings sync.RWMutex
}

// DeleteSettings calls DeleteSettingsFunc.
func (mock *settingsRepoMock) DeleteSettings(ctx context.Context, userID int64) error {
	if mock.DeleteSettingsFunc == nil {
		panic("settingsRepoMock.DeleteSettingsFunc: method is nil but settingsRepo.DeleteSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDeleteSettings.Lock()
	mock.calls.DeleteSettings = append(mock.calls.DeleteSettings, callInfo)
	mock.lockDeleteSettings.Unlock()
	return mock.DeleteSettingsFunc(ctx, userID)
}

// DeleteSettingsCalls gets all the calls that were made to DeleteSettings.
func (mock *settingsRepoMock) DeleteSettingsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
	}
	mock.lockDeleteSettings.RLock()
	calls = mock.calls.DeleteSettings
	mock.lockDeleteSettings.RUnlock()
	return calls
}

// GetSettings calls GetSettingsFunc.
func (mock *settingsRepoMock) GetSettings(ctx context.Context, userID int64) (*domain.UserSettings, error) {
	if mock.GetSettingsFunc == nil {
		panic("settingsRepoMock.GetSettingsFunc: method is nil but settingsRepo.GetSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetSettings.Lock()
	mock.calls.GetSettings = append(mock.calls.GetSettings, callInfo)
	mock.lockGetSettings.Unlock()
	return mock.GetSettingsFunc(ctx, userID)
}

// GetSettingsCalls gets all the calls that were made to GetSettings.
func (mock *settingsRepoMock) GetSettingsCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
	}
	mock.lockGetSettings.RLock()
	calls = mock.calls.GetSettings
	mock.lockGetSettings.RUnlock()
	return calls
}

// UpsertSettings calls UpsertSettingsFunc.
func (mock *settingsRepoMock) UpsertSettings(ctx context.Context, userID int64, s domain.UserSettings) error {
	if mock.UpsertSettingsFunc == nil {
		panic("settingsRepoMock.UpsertSettingsFunc: method is nil but settingsRepo.UpsertSettings was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		S      domain.UserSettings
	}{
		Ctx:    ctx,
		UserID: userID,
		S:      s,
	}
	mock.lockUpsertSettings.Lock()
	mock.calls.UpsertSettings = append(mock.calls.UpsertSettings, callInfo)
	mock.lockUpsertSettings.Unlock()
	return mock.UpsertSettingsFunc(ctx, userID, s)
}

// UpsertSettingsCalls gets all the calls that were made to UpsertSettings.
func (mock *settingsRepoMock) UpsertSettingsCalls() []struct {
	Ctx    context.Context
	UserID int64
	S      domain.UserSettings
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
		S      domain.UserSettings
	}
	mock.lockUpsertSettings.RLock()
	calls = mock.calls.UpsertSettings
	mock.lockUpsertSettings.RUnlock()
	return calls
}
