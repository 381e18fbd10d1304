package content

import (
	"context"
	"sync"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Ensure, that contentRepoMock does implement contentRepo.
// If this is not the case, regenerate this file with moq.
var _ contentRepo = &contentRepoMock{}

type contentRepoMock struct {
	// CountFunc mocks the Count method.
	CountFunc func(ctx context.Context) (int64, error)

	// ListAllFunc mocks the ListAll method.
	ListAllFunc func(ctx context.Context) ([]domain.Content, error)

	// UpsertManyFunc mocks the UpsertMany method.
	UpsertManyFunc func(ctx context.Context, items []domain.Content) (int, error)

	calls struct {
		Count []struct {
			Ctx context.Context
		}
		ListAll []struct {
			Ctx context.Context
		}
		UpsertMany []struct {
			Ctx   context.Context
			Items []domain.Content
		}
	}
	lockCount      sync.RWMutex
	lockListAll    sync.RWMutex
	lockUpsertMany sync.RWMutex
}

// Count calls CountFunc.
func (mock *contentRepoMock) Count(ctx context.Context) (int64, error) {
	if mock.CountFunc == nil {
		panic("contentRepoMock.CountFunc: method is nil but contentRepo.Count was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockCount.Lock()
	mock.calls.Count = append(mock.calls.Count, callInfo)
	mock.lockCount.Unlock()
	return mock.CountFunc(ctx)
}

// CountCalls gets all the calls that were made to Count.
func (mock *contentRepoMock) CountCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockCount.RLock()
	calls = mock.calls.Count
	mock.lockCount.RUnlock()
	return calls
}

// ListAll calls ListAllFunc.
func (mock *contentRepoMock) ListAll(ctx context.Context) ([]domain.Content, error) {
	if mock.ListAllFunc == nil {
		panic("contentRepoMock.ListAllFunc: method is nil but contentRepo.ListAll was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListAll.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, callInfo)
	mock.lockListAll.Unlock()
	return mock.ListAllFunc(ctx)
}

// ListAllCalls gets all the calls that were made to ListAll.
func (mock *contentRepoMock) ListAllCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListAll.RLock()
	calls = mock.calls.ListAll
	mock.lockListAll.RUnlock()
	return calls
}

// UpsertMany calls UpsertManyFunc.
func (mock *contentRepoMock) UpsertMany(ctx context.Context, items []domain.Content) (int, error) {
	if mock.UpsertManyFunc == nil {
		panic("contentRepoMock.UpsertManyFunc: method is nil but contentRepo.UpsertMany was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Items []domain.Content
	}{
		Ctx:   ctx,
		Items: items,
	}
	mock.lockUpsertMany.Lock()
	mock.calls.UpsertMany = append(mock.calls.UpsertMany, callInfo)
	mock.lockUpsertMany.Unlock()
	return mock.UpsertManyFunc(ctx, items)
}

// UpsertManyCalls gets all the calls that were made to UpsertMany.
func (mock *contentRepoMock) UpsertManyCalls() []struct {
	Ctx   context.Context
	Items []domain.Content
} {
	var calls []struct {
		Ctx   context.Context
		Items []domain.Content
	}
	mock.lockUpsertMany.RLock()
	calls = mock.calls.UpsertMany
	mock.lockUpsertMany.RUnlock()
	return calls
}
