package discovery

import (
	"context"
	"net/url"
	"sync"

	"github.com/heartmarshall/escolhe-pra-mim/internal/domain"
	"github.com/heartmarshall/escolhe-pra-mim/internal/provider"
)

var _ catalogClient = &catalogClientMock{}

type catalogClientMock struct {
	DiscoverFunc       func(ctx context.Context, t domain.ContentType, params url.Values) (*provider.DiscoverPage, error)
	DetailsFunc        func(ctx context.Context, t domain.ContentType, id int64) (*provider.Details, error)
	WatchProvidersFunc func(ctx context.Context, t domain.ContentType, id int64) ([]provider.WatchProvider, error)
	GenresFunc         func(ctx context.Context, t domain.ContentType) ([]domain.Genre, error)

	calls struct {
		Discover []struct {
			T      domain.ContentType
			Params string
		}
		Details []struct {
			T  domain.ContentType
			ID int64
		}
		WatchProviders []struct {
			T  domain.ContentType
			ID int64
		}
		Genres []struct {
			T domain.ContentType
		}
	}
	lockDiscover       sync.RWMutex
	lockDetails        sync.RWMutex
	lockWatchProviders sync.RWMutex
	lockGenres         sync.RWMutex
}

func (mock *catalogClientMock) Discover(ctx context.Context, t domain.ContentType, params url.Values) (*provider.DiscoverPage, error) {
	if mock.DiscoverFunc == nil {
		panic("catalogClientMock.DiscoverFunc: method is nil but catalogClient.Discover was just called")
	}
	callInfo := struct {
		T      domain.ContentType
		Params string
	}{T: t, Params: params.Encode()}
	mock.lockDiscover.Lock()
	mock.calls.Discover = append(mock.calls.Discover, callInfo)
	mock.lockDiscover.Unlock()
	return mock.DiscoverFunc(ctx, t, params)
}

// DiscoverCalls returns the recorded calls. Params are encoded at call
// time because the caller mutates the same url.Values between calls.
func (mock *catalogClientMock) DiscoverCalls() []struct {
	T      domain.ContentType
	Params string
} {
	mock.lockDiscover.RLock()
	calls := mock.calls.Discover
	mock.lockDiscover.RUnlock()
	return calls
}

func (mock *catalogClientMock) Details(ctx context.Context, t domain.ContentType, id int64) (*provider.Details, error) {
	if mock.DetailsFunc == nil {
		panic("catalogClientMock.DetailsFunc: method is nil but catalogClient.Details was just called")
	}
	callInfo := struct {
		T  domain.ContentType
		ID int64
	}{T: t, ID: id}
	mock.lockDetails.Lock()
	mock.calls.Details = append(mock.calls.Details, callInfo)
	mock.lockDetails.Unlock()
	return mock.DetailsFunc(ctx, t, id)
}

func (mock *catalogClientMock) DetailsCalls() []struct {
	T  domain.ContentType
	ID int64
} {
	mock.lockDetails.RLock()
	calls := mock.calls.Details
	mock.lockDetails.RUnlock()
	return calls
}

func (mock *catalogClientMock) WatchProviders(ctx context.Context, t domain.ContentType, id int64) ([]provider.WatchProvider, error) {
	if mock.WatchProvidersFunc == nil {
		panic("catalogClientMock.WatchProvidersFunc: method is nil but catalogClient.WatchProviders was just called")
	}
	callInfo := struct {
		T  domain.ContentType
		ID int64
	}{T: t, ID: id}
	mock.lockWatchProviders.Lock()
	mock.calls.WatchProviders = append(mock.calls.WatchProviders, callInfo)
	mock.lockWatchProviders.Unlock()
	return mock.WatchProvidersFunc(ctx, t, id)
}

func (mock *catalogClientMock) WatchProvidersCalls() []struct {
	T  domain.ContentType
	ID int64
} {
	mock.lockWatchProviders.RLock()
	calls := mock.calls.WatchProviders
	mock.lockWatchProviders.RUnlock()
	return calls
}

func (mock *catalogClientMock) Genres(ctx context.Context, t domain.ContentType) ([]domain.Genre, error) {
	if mock.GenresFunc == nil {
		panic("catalogClientMock.GenresFunc: method is nil but catalogClient.Genres was just called")
	}
	callInfo := struct {
		T domain.ContentType
	}{T: t}
	mock.lockGenres.Lock()
	mock.calls.Genres = append(mock.calls.Genres, callInfo)
	mock.lockGenres.Unlock()
	return mock.GenresFunc(ctx, t)
}

func (mock *catalogClientMock) GenresCalls() []struct {
	T domain.ContentType
} {
	mock.lockGenres.RLock()
	calls := mock.calls.Genres
	mock.lockGenres.RUnlock()
	return calls
}
