package lists

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Ensure, that historyRepoMock does implement historyRepo.
// If this is not the case, regenerate this file with moq.
var _ historyRepo = &historyRepoMock{}

type historyRepoMock struct {
	// AddFunc mocks the Add method.
	AddFunc func(ctx context.Context, userID int64, item domain.HistoryItem) error

	// DeleteFunc mocks the Delete method.
	DeleteFunc func(ctx context.Context, userID int64, id uuid.UUID) error

	// DeleteAllFunc mocks the DeleteAll method.
	DeleteAllFunc func(ctx context.Context, userID int64) error

	// ListFunc mocks the List method.
	ListFunc func(ctx context.Context, userID int64) ([]domain.HistoryItem, error)

	// ToggleWatchedFunc mocks the ToggleWatched method.
	ToggleWatchedFunc func(ctx context.Context, userID int64, id uuid.UUID) (*domain.HistoryItem, error)

	calls struct {
		Add []struct {
			Ctx    context.Context
			UserID int64
			Item   domain.HistoryItem
		}
		Delete []struct {
			Ctx    context.Context
			UserID int64
			ID     uuid.UUID
		}
		DeleteAll []struct {
			Ctx    context.Context
			UserID int64
		}
		List []struct {
			Ctx    context.Context
			UserID int64
		}
		ToggleWatched []struct {
			Ctx    context.Context
			UserID int64
			ID     uuid.UUID
		}
	}
	lockAdd           sync.RWMutex
	lockDelete        sync.RWMutex
	lockDeleteAll     sync.RWMutex
	lockList          sync.RWMutex
	lockToggleWatched sync.RWMutex
}

// Add calls AddFunc.
func (mock *historyRepoMock) Add(ctx context.Context, userID int64, item domain.HistoryItem) error {
	if mock.AddFunc == nil {
		panic("historyRepoMock.AddFunc: method is nil but historyRepo.Add was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		Item   domain.HistoryItem
	}{
		Ctx:    ctx,
		UserID: userID,
		Item:   item,
	}
	mock.lockAdd.Lock()
	mock.calls.Add = append(mock.calls.Add, callInfo)
	mock.lockAdd.Unlock()
	return mock.AddFunc(ctx, userID, item)
}

// AddCalls gets all the calls that were made to Add.
func (mock *historyRepoMock) AddCalls() []struct {
	Ctx    context.Context
	UserID int64
	Item   domain.HistoryItem
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
		Item   domain.HistoryItem
	}
	mock.lockAdd.RLock()
	calls = mock.calls.Add
	mock.lockAdd.RUnlock()
	return calls
}

// Delete calls DeleteFunc.
func (mock *historyRepoMock) Delete(ctx context.Context, userID int64, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("historyRepoMock.DeleteFunc: method is nil but historyRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

// DeleteCalls gets all the calls that were made to Delete.
func (mock *historyRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID int64
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
		ID     uuid.UUID
	}
	mock.lockDelete.RLock()
	calls = mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

// DeleteAll calls DeleteAllFunc.
func (mock *historyRepoMock) DeleteAll(ctx context.Context, userID int64) error {
	if mock.DeleteAllFunc == nil {
		panic("historyRepoMock.DeleteAllFunc: method is nil but historyRepo.DeleteAll was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockDeleteAll.Lock()
	mock.calls.DeleteAll = append(mock.calls.DeleteAll, callInfo)
	mock.lockDeleteAll.Unlock()
	return mock.DeleteAllFunc(ctx, userID)
}

// DeleteAllCalls gets all the calls that were made to DeleteAll.
func (mock *historyRepoMock) DeleteAllCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
	}
	mock.lockDeleteAll.RLock()
	calls = mock.calls.DeleteAll
	mock.lockDeleteAll.RUnlock()
	return calls
}

// List calls ListFunc.
func (mock *historyRepoMock) List(ctx context.Context, userID int64) ([]domain.HistoryItem, error) {
	if mock.ListFunc == nil {
		panic("historyRepoMock.ListFunc: method is nil but historyRepo.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID)
}

// ListCalls gets all the calls that were made to List.
func (mock *historyRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID int64
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

// ToggleWatched calls ToggleWatchedFunc.
func (mock *historyRepoMock) ToggleWatched(ctx context.Context, userID int64, id uuid.UUID) (*domain.HistoryItem, error) {
	if mock.ToggleWatchedFunc == nil {
		panic("historyRepoMock.ToggleWatchedFunc: method is nil but historyRepo.ToggleWatched was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID int64
		ID     uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
		ID:     id,
	}
	mock.lockToggleWatched.Lock()
	mock.calls.ToggleWatched = append(mock.calls.ToggleWatched, callInfo)
	mock.lockToggleWatched.Unlock()
	return mock.ToggleWatchedFunc(ctx, userID, id)
}

// ToggleWatchedCalls gets all the calls that were made to ToggleWatched.
func (mock *historyRepoMock) ToggleWatchedCalls() []struct {
	Ctx    context.Context
	UserID int64
	ID     uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID int64
		ID     uuid.UUID
	}
	mock.lockToggleWatched.RLock()
	calls = mock.calls.ToggleWatched
	mock.lockToggleWatched.RUnlock()
	return calls
}
