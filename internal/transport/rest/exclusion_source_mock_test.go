package rest

import (
	"context"
	"sync"
)

// Ensure, that exclusionSourceMock does implement exclusionSource.
// If this is not the case, regenerate this file with moq.
var _ exclusionSource = &exclusionSourceMock{}

type exclusionSourceMock struct {
	// ExcludedIDsFunc mocks the ExcludedIDs method.
	ExcludedIDsFunc func(ctx context.Context) ([]int64, error)

	calls struct {
		ExcludedIDs []struct {
			Ctx context.Context
		}
	}
	lockExcludedIDs sync.RWMutex
}

// ExcludedIDs calls ExcludedIDsFunc.
func (mock *exclusionSourceMock) ExcludedIDs(ctx context.Context) ([]int64, error) {
	if mock.ExcludedIDsFunc == nil {
		panic("exclusionSourceMock.ExcludedIDsFunc: method is nil but exclusionSource.ExcludedIDs was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockExcludedIDs.Lock()
	mock.calls.ExcludedIDs = append(mock.calls.ExcludedIDs, callInfo)
	mock.lockExcludedIDs.Unlock()
	return mock.ExcludedIDsFunc(ctx)
}

// ExcludedIDsCalls gets all the calls that were made to ExcludedIDs.
func (mock *exclusionSourceMock) ExcludedIDsCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockExcludedIDs.RLock()
	calls = mock.calls.ExcludedIDs
	mock.lockExcludedIDs.RUnlock()
	return calls
}
