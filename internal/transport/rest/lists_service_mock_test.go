package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Ensure, that listsServiceMock does implement listsService.
// If this is not the case, regenerate this file with moq.
var _ listsService = &listsServiceMock{}

type listsServiceMock struct {
	// AddFunc mocks the Add method.
	AddFunc func(ctx context.Context, kind domain.ListKind, c domain.Content) (bool, error)

	// AddHistoryFunc mocks the AddHistory method.
	AddHistoryFunc func(ctx context.Context, c domain.Content) (*domain.HistoryItem, error)

	// ClearAllFunc mocks the ClearAll method.
	ClearAllFunc func(ctx context.Context) error

	// DeleteHistoryFunc mocks the DeleteHistory method.
	DeleteHistoryFunc func(ctx context.Context, historyID uuid.UUID) error

	// HistoryFunc mocks the History method.
	HistoryFunc func(ctx context.Context) ([]domain.HistoryItem, error)

	// ListFunc mocks the List method.
	ListFunc func(ctx context.Context, kind domain.ListKind) ([]domain.UserContent, error)

	// MarkWatchedFunc mocks the MarkWatched method.
	MarkWatchedFunc func(ctx context.Context, contentID int64) (*domain.UserContent, error)

	// RemoveFunc mocks the Remove method.
	RemoveFunc func(ctx context.Context, kind domain.ListKind, contentID int64) error

	// SettingsFunc mocks the Settings method.
	SettingsFunc func(ctx context.Context) (domain.UserSettings, error)

	// ToggleHistoryWatchedFunc mocks the ToggleHistoryWatched method.
	ToggleHistoryWatchedFunc func(ctx context.Context, historyID uuid.UUID) (*domain.HistoryItem, error)

	// UpdateSettingsFunc mocks the UpdateSettings method.
	UpdateSettingsFunc func(ctx context.Context, patch domain.SettingsPatch) (domain.UserSettings, error)

	calls struct {
		Add []struct {
			Ctx  context.Context
			Kind domain.ListKind
			C    domain.Content
		}
		AddHistory []struct {
			Ctx context.Context
			C   domain.Content
		}
		ClearAll []struct {
			Ctx context.Context
		}
		DeleteHistory []struct {
			Ctx       context.Context
			HistoryID uuid.UUID
		}
		History []struct {
			Ctx context.Context
		}
		List []struct {
			Ctx  context.Context
			Kind domain.ListKind
		}
		MarkWatched []struct {
			Ctx       context.Context
			ContentID int64
		}
		Remove []struct {
			Ctx       context.Context
			Kind      domain.ListKind
			ContentID int64
		}
		Settings []struct {
			Ctx context.Context
		}
		ToggleHistoryWatched []struct {
			Ctx       context.Context
			HistoryID uuid.UUID
		}
		UpdateSettings []struct {
			Ctx   context.Context
			Patch domain.SettingsPatch
		}
	}
	lockAdd                  sync.RWMutex
	lockAddHistory           sync.RWMutex
	lockClearAll             sync.RWMutex
	lockDeleteHistory        sync.RWMutex
	lockHistory              sync.RWMutex
	lockList                 sync.RWMutex
	lockMarkWatched          sync.RWMutex
	lockRemove               sync.RWMutex
	lockSettings             sync.RWMutex
	lockToggleHistoryWatched sync.RWMutex
	lockUpdateSettings       sync.RWMutex
}

// Add calls AddFunc.
func (mock *listsServiceMock) Add(ctx context.Context, kind domain.ListKind, c domain.Content) (bool, error) {
	if mock.AddFunc == nil {
		panic("listsServiceMock.AddFunc: method is nil but listsService.Add was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ListKind
		C    domain.Content
	}{
		Ctx:  ctx,
		Kind: kind,
		C:    c,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, kind, c)
}

// AddCalls gets all the calls that were made to Add.
func (mock *listsServiceMock) AddCalls() []struct {
	Ctx  context.Context
	Kind domain.ListKind
	C    domain.Content
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.ListKind
		C    domain.Content
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

// AddHistory calls AddHistoryFunc.
func (mock *listsServiceMock) AddHistory(ctx context.Context, c domain.Content) (*domain.HistoryItem, error) {
	if mock.AddHistoryFunc == nil {
		panic("listsServiceMock.AddHistoryFunc: method is nil but listsService.AddHistory was just called")
	}
	callInfo := struct {
		Ctx context.Context
		C   domain.Content
	}{
		Ctx: ctx,
		C:   c,
	}
	mock.lockAddHistory.Lock()
	mock.calls.AddHistory = append(mock.calls.AddHistory, callInfo)
	mock.lockAddHistory.Unlock()
	return mock.AddHistoryFunc(ctx, c)
}

// AddHistoryCalls gets all the calls that were made to AddHistory.
func (mock *listsServiceMock) AddHistoryCalls() []struct {
	Ctx context.Context
	C   domain.Content
} {
	var calls []struct {
		Ctx context.Context
		C   domain.Content
	}
	mock.lockAddHistory.RLock()
	calls = mock.calls.AddHistory
	mock.lockAddHistory.RUnlock()
	return calls
}

// ClearAll calls ClearAllFunc.
func (mock *listsServiceMock) ClearAll(ctx context.Context) error {
	if mock.ClearAllFunc == nil {
		panic("listsServiceMock.ClearAllFunc: method is nil but listsService.ClearAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockClearAll.Lock()
	mock.calls.ClearAll = append(mock.calls.ClearAll, callInfo)
	mock.lockClearAll.Unlock()
	return mock.ClearAllFunc(ctx)
}

// ClearAllCalls gets all the calls that were made to ClearAll.
func (mock *listsServiceMock) ClearAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockClearAll.RLock()
	calls = mock.calls.ClearAll
	mock.lockClearAll.RUnlock()
	return calls
}

// DeleteHistory calls DeleteHistoryFunc.
func (mock *listsServiceMock) DeleteHistory(ctx context.Context, historyID uuid.UUID) error {
	if mock.DeleteHistoryFunc == nil {
		panic("listsServiceMock.DeleteHistoryFunc: method is nil but listsService.DeleteHistory was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		HistoryID uuid.UUID
	}{
		Ctx:       ctx,
		HistoryID: historyID,
	}
	mock.lockDeleteHistory.Lock()
	mock.calls.DeleteHistory = append(mock.calls.DeleteHistory, callInfo)
	mock.lockDeleteHistory.Unlock()
	return mock.DeleteHistoryFunc(ctx, historyID)
}

// DeleteHistoryCalls gets all the calls that were made to DeleteHistory.
func (mock *listsServiceMock) DeleteHistoryCalls() []struct {
	Ctx       context.Context
	HistoryID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		HistoryID uuid.UUID
	}
	mock.lockDeleteHistory.RLock()
	calls = mock.calls.DeleteHistory
	mock.lockDeleteHistory.RUnlock()
	return calls
}

// History calls HistoryFunc.
func (mock *listsServiceMock) History(ctx context.Context) ([]domain.HistoryItem, error) {
	if mock.HistoryFunc == nil {
		panic("listsServiceMock.HistoryFunc: method is nil but listsService.History was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockHistory.Lock()
	mock.calls.History = append(mock.calls.History, callInfo)
	mock.lockHistory.Unlock()
	return mock.HistoryFunc(ctx)
}

// HistoryCalls gets all the calls that were made to History.
func (mock *listsServiceMock) HistoryCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockHistory.RLock()
	calls = mock.calls.History
	mock.lockHistory.RUnlock()
	return calls
}

// List calls ListFunc.
func (mock *listsServiceMock) List(ctx context.Context, kind domain.ListKind) ([]domain.UserContent, error) {
	if mock.ListFunc == nil {
		panic("listsServiceMock.ListFunc: method is nil but listsService.List was just called")
	}
	callInfo := struct {
		Ctx  context.Context
		Kind domain.ListKind
	}{
		Ctx:  ctx,
		Kind: kind,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, kind)
}

// ListCalls gets all the calls that were made to List.
func (mock *listsServiceMock) ListCalls() []struct {
	Ctx  context.Context
	Kind domain.ListKind
} {
	var calls []struct {
		Ctx  context.Context
		Kind domain.ListKind
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

// MarkWatched calls MarkWatchedFunc.
func (mock *listsServiceMock) MarkWatched(ctx context.Context, contentID int64) (*domain.UserContent, error) {
	if mock.MarkWatchedFunc == nil {
		panic("listsServiceMock.MarkWatchedFunc: method is nil but listsService.MarkWatched was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		ContentID int64
	}{
		Ctx:       ctx,
		ContentID: contentID,
	}
	mock.lockMarkWatched.Lock()
	mock.calls.MarkWatched = append(mock.calls.MarkWatched, callInfo)
	mock.lockMarkWatched.Unlock()
	return mock.MarkWatchedFunc(ctx, contentID)
}

// MarkWatchedCalls gets all the calls that were made to MarkWatched.
func (mock *listsServiceMock) MarkWatchedCalls() []struct {
	Ctx       context.Context
	ContentID int64
} {
	var calls []struct {
		Ctx       context.Context
		ContentID int64
	}
	mock.lockMarkWatched.RLock()
	calls = mock.calls.MarkWatched
	mock.lockMarkWatched.RUnlock()
	return calls
}

// Remove calls RemoveFunc.
func (mock *listsServiceMock) Remove(ctx context.Context, kind domain.ListKind, contentID int64) error {
	if mock.RemoveFunc == nil {
		panic("listsServiceMock.RemoveFunc: method is nil but listsService.Remove was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		Kind      domain.ListKind
		ContentID int64
	}{
		Ctx:       ctx,
		Kind:      kind,
		ContentID: contentID,
	}
	mock.lockRemove.Lock()
	mock.calls.Remove = append(mock.calls.Remove, callInfo)
	mock.lockRemove.Unlock()
	return mock.RemoveFunc(ctx, kind, contentID)
}

// RemoveCalls gets all the calls that were made to Remove.
func (mock *listsServiceMock) RemoveCalls() []struct {
	Ctx       context.Context
	Kind      domain.ListKind
	ContentID int64
} {
	var calls []struct {
		Ctx       context.Context
		Kind      domain.ListKind
		ContentID int64
	}
	mock.lockRemove.RLock()
	calls = mock.calls.Remove
	mock.lockRemove.RUnlock()
	return calls
}

// Settings calls SettingsFunc.
func (mock *listsServiceMock) Settings(ctx context.Context) (domain.UserSettings, error) {
	if mock.SettingsFunc == nil {
		panic("listsServiceMock.SettingsFunc: method is nil but listsService.Settings was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockSettings.Lock()
	mock.calls.Settings = append(mock.calls.Settings, callInfo)
	mock.lockSettings.Unlock()
	return mock.SettingsFunc(ctx)
}

// SettingsCalls gets all the calls that were made to Settings.
func (mock *listsServiceMock) SettingsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockSettings.RLock()
	calls = mock.calls.Settings
	mock.lockSettings.RUnlock()
	return calls
}

// ToggleHistoryWatched calls ToggleHistoryWatchedFunc.
func (mock *listsServiceMock) ToggleHistoryWatched(ctx context.Context, historyID uuid.UUID) (*domain.HistoryItem, error) {
	if mock.ToggleHistoryWatchedFunc == nil {
		panic("listsServiceMock.ToggleHistoryWatchedFunc: method is nil but listsService.ToggleHistoryWatched was just called")
	}
	callInfo := struct {
		Ctx       context.Context
		HistoryID uuid.UUID
	}{
		Ctx:       ctx,
		HistoryID: historyID,
	}
	mock.lockToggleHistoryWatched.Lock()
	mock.calls.ToggleHistoryWatched = append(mock.calls.ToggleHistoryWatched, callInfo)
	mock.lockToggleHistoryWatched.Unlock()
	return mock.ToggleHistoryWatchedFunc(ctx, historyID)
}

// ToggleHistoryWatchedCalls gets all the calls that were made to ToggleHistoryWatched.
func (mock *listsServiceMock) ToggleHistoryWatchedCalls() []struct {
	Ctx       context.Context
	HistoryID uuid.UUID
} {
	var calls []struct {
		Ctx       context.Context
		HistoryID uuid.UUID
	}
	mock.lockToggleHistoryWatched.RLock()
	calls = mock.calls.ToggleHistoryWatched
	mock.lockToggleHistoryWatched.RUnlock()
	return calls
}

// UpdateSettings calls UpdateSettingsFunc.
func (mock *listsServiceMock) UpdateSettings(ctx context.Context, patch domain.SettingsPatch) (domain.UserSettings, error) {
	if mock.UpdateSettingsFunc == nil {
		panic("listsServiceMock.UpdateSettingsFunc: method is nil but listsService.UpdateSettings was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Patch domain.SettingsPatch
	}{
		Ctx:   ctx,
		Patch: patch,
	}
	mock.lockUpdateSettings.Lock()
	mock.calls.UpdateSettings = append(mock.calls.UpdateSettings, callInfo)
	mock.lockUpdateSettings.Unlock()
	return mock.UpdateSettingsFunc(ctx, patch)
}

// UpdateSettingsCalls gets all the calls that were made to UpdateSettings.
func (mock *listsServiceMock) UpdateSettingsCalls() []struct {
	Ctx   context.Context
	Patch domain.SettingsPatch
} {
	var calls []struct {
		Ctx   context.Context
		Patch domain.SettingsPatch
	}
	mock.lockUpdateSettings.RLock()
	calls = mock.calls.UpdateSettings
	mock.lockUpdateSettings.RUnlock()
	return calls
}
