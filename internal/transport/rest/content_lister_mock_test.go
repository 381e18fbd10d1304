package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
)

// Ensure, that contentListerMock does implement contentLister.
// If this is not the case, regenerate this file with moq.
var _ contentLister = &contentListerMock{}

type contentListerMock struct {
	// ListAllFunc mocks the ListAll method.
	ListAllFunc func(ctx context.Context) ([]domain.Content, error)

	calls struct {
		ListAll []struct {
			Ctx context.Context
		}
	}
	lockListAll sync.RWMutex
}

// ListAll calls ListAllFunc.
func (mock *contentListerMock) ListAll(ctx context.Context) ([]domain.Content, error) {
	if mock.ListAllFunc == nil {
		panic("contentListerMock.ListAllFunc: method is nil but contentLister.ListAll was just called")
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
func (mock *contentListerMock) ListAllCalls() []struct {
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
