package inventory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/adapter/postgres/paint"
	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/watch"
)

var _ paintRepo = &paintRepoMock{}

type paintRepoMock struct {
	GetByIDFunc      func(ctx context.Context, warehouseID string, id uuid.UUID) (*domain.Paint, error)
	ListFunc         func(ctx context.Context, warehouseID string, f paint.Filter) ([]domain.Paint, int, error)
	ListAllFunc      func(ctx context.Context, warehouseID string, limit int) ([]domain.Paint, error)
	CountFunc        func(ctx context.Context, warehouseID string) (int, error)
	CreateFunc       func(ctx context.Context, p *domain.Paint) (*domain.Paint, error)
	UpdateFunc       func(ctx context.Context, p *domain.Paint) (*domain.Paint, error)
	UpdateStatusFunc func(ctx context.Context, warehouseID string, id uuid.UUID, status domain.PaintStatus) (*domain.Paint, error)
	DeleteFunc       func(ctx context.Context, warehouseID string, id uuid.UUID) error

	calls struct {
		GetByID []struct {
			WarehouseID string
			ID          uuid.UUID
		}
		List []struct {
			WarehouseID string
			Filter      paint.Filter
		}
		ListAll []struct {
			WarehouseID string
			Limit       int
		}
		Count []struct {
			WarehouseID string
		}
		Create []struct {
			Paint *domain.Paint
		}
		Update []struct {
			Paint *domain.Paint
		}
		UpdateStatus []struct {
			WarehouseID string
			ID          uuid.UUID
			Status      domain.PaintStatus
		}
		Delete []struct {
			WarehouseID string
			ID          uuid.UUID
		}
	}
	lock sync.RWMutex
}

func (mock *paintRepoMock) GetByID(ctx context.Context, warehouseID string, id uuid.UUID) (*domain.Paint, error) {
	if mock.GetByIDFunc == nil {
		panic("paintRepoMock.GetByIDFunc: method is nil but paintRepo.GetByID was just called")
	}
	mock.lock.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct {
		WarehouseID string
		ID          uuid.UUID
	}{warehouseID, id})
	mock.lock.Unlock()
	return mock.GetByIDFunc(ctx, warehouseID, id)
}

func (mock *paintRepoMock) GetByIDCalls() []struct {
	WarehouseID string
	ID          uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetByID
}

func (mock *paintRepoMock) List(ctx context.Context, warehouseID string, f paint.Filter) ([]domain.Paint, int, error) {
	if mock.ListFunc == nil {
		panic("paintRepoMock.ListFunc: method is nil but paintRepo.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct {
		WarehouseID string
		Filter      paint.Filter
	}{warehouseID, f})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, warehouseID, f)
}

func (mock *paintRepoMock) ListCalls() []struct {
	WarehouseID string
	Filter      paint.Filter
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

func (mock *paintRepoMock) ListAll(ctx context.Context, warehouseID string, limit int) ([]domain.Paint, error) {
	if mock.ListAllFunc == nil {
		panic("paintRepoMock.ListAllFunc: method is nil but paintRepo.ListAll was just called")
	}
	mock.lock.Lock()
	mock.calls.ListAll = append(mock.calls.ListAll, struct {
		WarehouseID string
		Limit       int
	}{warehouseID, limit})
	mock.lock.Unlock()
	return mock.ListAllFunc(ctx, warehouseID, limit)
}

func (mock *paintRepoMock) ListAllCalls() []struct {
	WarehouseID string
	Limit       int
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListAll
}

func (mock *paintRepoMock) Count(ctx context.Context, warehouseID string) (int, error) {
	if mock.CountFunc == nil {
		panic("paintRepoMock.CountFunc: method is nil but paintRepo.Count was just called")
	}
	mock.lock.Lock()
	mock.calls.Count = append(mock.calls.Count, struct{ WarehouseID string }{warehouseID})
	mock.lock.Unlock()
	return mock.CountFunc(ctx, warehouseID)
}

func (mock *paintRepoMock) CountCalls() []struct{ WarehouseID string } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Count
}

func (mock *paintRepoMock) Create(ctx context.Context, p *domain.Paint) (*domain.Paint, error) {
	if mock.CreateFunc == nil {
		panic("paintRepoMock.CreateFunc: method is nil but paintRepo.Create was just called")
	}
	mock.lock.Lock()
	mock.calls.Create = append(mock.calls.Create, struct{ Paint *domain.Paint }{p})
	mock.lock.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *paintRepoMock) CreateCalls() []struct{ Paint *domain.Paint } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Create
}

func (mock *paintRepoMock) Update(ctx context.Context, p *domain.Paint) (*domain.Paint, error) {
	if mock.UpdateFunc == nil {
		panic("paintRepoMock.UpdateFunc: method is nil but paintRepo.Update was just called")
	}
	mock.lock.Lock()
	mock.calls.Update = append(mock.calls.Update, struct{ Paint *domain.Paint }{p})
	mock.lock.Unlock()
	return mock.UpdateFunc(ctx, p)
}

func (mock *paintRepoMock) UpdateCalls() []struct{ Paint *domain.Paint } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Update
}

func (mock *paintRepoMock) UpdateStatus(ctx context.Context, warehouseID string, id uuid.UUID, status domain.PaintStatus) (*domain.Paint, error) {
	if mock.UpdateStatusFunc == nil {
		panic("paintRepoMock.UpdateStatusFunc: method is nil but paintRepo.UpdateStatus was just called")
	}
	mock.lock.Lock()
	mock.calls.UpdateStatus = append(mock.calls.UpdateStatus, struct {
		WarehouseID string
		ID          uuid.UUID
		Status      domain.PaintStatus
	}{warehouseID, id, status})
	mock.lock.Unlock()
	return mock.UpdateStatusFunc(ctx, warehouseID, id, status)
}

func (mock *paintRepoMock) UpdateStatusCalls() []struct {
	WarehouseID string
	ID          uuid.UUID
	Status      domain.PaintStatus
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.UpdateStatus
}

func (mock *paintRepoMock) Delete(ctx context.Context, warehouseID string, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("paintRepoMock.DeleteFunc: method is nil but paintRepo.Delete was just called")
	}
	mock.lock.Lock()
	mock.calls.Delete = append(mock.calls.Delete, struct {
		WarehouseID string
		ID          uuid.UUID
	}{warehouseID, id})
	mock.lock.Unlock()
	return mock.DeleteFunc(ctx, warehouseID, id)
}

func (mock *paintRepoMock) DeleteCalls() []struct {
	WarehouseID string
	ID          uuid.UUID
} {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Delete
}

var _ catalogReader = &catalogReaderMock{}

type catalogReaderMock struct {
	ListFunc func(ctx context.Context, limit int) ([]domain.CatalogEntry, error)

	calls struct {
		List []struct{ Limit int }
	}
	lock sync.RWMutex
}

func (mock *catalogReaderMock) List(ctx context.Context, limit int) ([]domain.CatalogEntry, error) {
	if mock.ListFunc == nil {
		panic("catalogReaderMock.ListFunc: method is nil but catalogReader.List was just called")
	}
	mock.lock.Lock()
	mock.calls.List = append(mock.calls.List, struct{ Limit int }{limit})
	mock.lock.Unlock()
	return mock.ListFunc(ctx, limit)
}

func (mock *catalogReaderMock) ListCalls() []struct{ Limit int } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.List
}

var _ catalogPublisher = &catalogPublisherMock{}

type catalogPublisherMock struct {
	PublishFunc func(ctx context.Context, e domain.CatalogEntry) error

	calls struct {
		Publish []struct{ Entry domain.CatalogEntry }
	}
	lock sync.RWMutex
}

func (mock *catalogPublisherMock) Publish(ctx context.Context, e domain.CatalogEntry) error {
	if mock.PublishFunc == nil {
		panic("catalogPublisherMock.PublishFunc: method is nil but catalogPublisher.Publish was just called")
	}
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct{ Entry domain.CatalogEntry }{e})
	mock.lock.Unlock()
	return mock.PublishFunc(ctx, e)
}

func (mock *catalogPublisherMock) PublishCalls() []struct{ Entry domain.CatalogEntry } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Publish
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback inline, no transaction involved.
type txManagerMock struct {
	RunInTxFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (mock *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mock.RunInTxFunc != nil {
		return mock.RunInTxFunc(ctx, fn)
	}
	return fn(ctx)
}

var _ changeNotifier = &changeNotifierMock{}

type changeNotifierMock struct {
	PublishFunc func(e watch.Event)

	calls struct {
		Publish []struct{ Event watch.Event }
	}
	lock sync.RWMutex
}

func (mock *changeNotifierMock) Publish(e watch.Event) {
	mock.lock.Lock()
	mock.calls.Publish = append(mock.calls.Publish, struct{ Event watch.Event }{e})
	mock.lock.Unlock()
	if mock.PublishFunc != nil {
		mock.PublishFunc(e)
	}
}

func (mock *changeNotifierMock) PublishCalls() []struct{ Event watch.Event } {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.Publish
}
