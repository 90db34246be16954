package catalog

import (
	"context"
	"sync"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/watch"
)

var _ catalogRepo = &catalogRepoMock{}

type catalogRepoMock struct {
	GetByKeyFunc    func(ctx context.Context, storageKey string) (*domain.CatalogEntry, error)
	ListFunc        func(ctx context.Context, limit int) ([]domain.CatalogEntry, error)
	SearchFunc      func(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error)
	CountFunc       func(ctx context.Context) (int, error)
	UpsertFunc      func(ctx context.Context, e domain.CatalogEntry) error
	UpsertBatchFunc func(ctx context.Context, entries []domain.CatalogEntry) (int, error)

	calls struct {
		GetByKey []struct{ StorageKey string }
		List     []struct{ Limit int }
		Search   []struct {
			Query string
			Limit int
		}
		Count       []struct{}
		Upsert      []struct{ Entry domain.CatalogEntry }
		UpsertBatch []struct{ Entries []domain.CatalogEntry }
	}
	lock sync.RWMutex
}

func (mock *catalogRepoMock) GetByKey(ctx context.Context, storageKey string) (*domain.CatalogEntry, error) {
	if mock.GetByKeyFunc == nil {
		panic("catalogRepoMock.GetByKeyFunc: method is nil but catalogRepo.GetByKey was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByKey = append(mock.calls.GetByKey, struct{ StorageKey string }{storageKey})
	mock.lock.Unlock()
	return mock.GetByKeyFunc(ctx, storageKey)
}

func (mock *catalogRepoMock) GetByKeyCalls() []struct{ StorageKey string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByKey
}

func (mock *catalogRepoMock) List(ctx context.Context, limit int) ([]domain.CatalogEntry, error) {
	if mock.ListFunc == nil {
		panic("catalogRepoMock.ListFunc: method is nil but catalogRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Limit int }{limit})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, limit)
}

func (mock *catalogRepoMock) ListCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *catalogRepoMock) Search(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error) {
	if mock.SearchFunc == nil {
		panic("catalogRepoMock.SearchFunc: method is nil but catalogRepo.Search was just called")
	}
	mock.lock.Lock()
	mock.calls.Search = append(mock.calls.Search, struct {
		Query string
		Limit int
	}{query, limit})
	mock.lock.Unlock()
	return mock.SearchFunc(ctx, query, limit)
}

func (mock *catalogRepoMock) SearchCalls() []struct {
	Query string
	Limit int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Search
}

func (mock *catalogRepoMock) Count(ctx context.Context) (int, error) {
	if mock.CountFunc == nil {
		panic("catalogRepoMock.CountFunc: method is nil but catalogRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{}{})
	mock.lock.Unlock()
	return mock.CountFunc(ctx)
}

func (mock *catalogRepoMock) CountCalls() []struct{} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Count
}

func (mock *catalogRepoMock) Upsert(ctx context.Context, e domain.CatalogEntry) error {
	if mock.UpsertFunc == nil {
		panic("catalogRepoMock.UpsertFunc: method is nil but catalogRepo.Upsert was just called")
	}
	mock.lock.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, struct{ Entry domain.CatalogEntry }{e})
	mock.lock.Unlock()
	return mock.UpsertFunc(ctx, e)
}

func (mock *catalogRepoMock) UpsertCalls() []struct{ Entry domain.CatalogEntry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Upsert
}

func (mock *catalogRepoMock) UpsertBatch(ctx context.Context, entries []domain.CatalogEntry) (int, error) {
	if mock.UpsertBatchFunc == nil {
		panic("catalogRepoMock.UpsertBatchFunc: method is nil but catalogRepo.UpsertBatch was just called")
	}
	mock.lock.Lock()
	mock.calls.UpsertBatch = append(mock.calls.UpsertBatch, struct{ Entries []domain.CatalogEntry }{entries})
	mock.lock.Unlock()
	return mock.UpsertBatchFunc(ctx, entries)
}

func (mock *catalogRepoMock) UpsertBatchCalls() []struct{ Entries []domain.CatalogEntry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpsertBatch
}

var _ changeNotifier = &changeNotifierMock{}

type changeNotifierMock struct {
	calls struct {
		Publish []struct{ Event watch.Event }
	}
	lock sync.RWMutex
}

func (mock *changeNotifierMock) Publish(e watch.Event) {
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct{ Event watch.Event }{e})
	mock.lock.Unlock()
}

func (mock *changeNotifierMock) PublishCalls() []struct{ Event watch.Event } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Publish
}
