package rest

import (
	"context"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/internal/resolver"
	"github.com/vrusch/ModSkl/internal/service/assistant"
	"github.com/vrusch/ModSkl/internal/service/catalog"
	"github.com/vrusch/ModSkl/internal/service/inventory"
)

// Simple func-field mocks for handler tests. Unset funcs return zero
// values so each test only wires what it asserts on.

type inventoryServiceMock struct {
	SaveFunc         func(ctx context.Context, input inventory.SaveInput) (*domain.Paint, error)
	ToggleStatusFunc func(ctx context.Context, id uuid.UUID) (*domain.Paint, error)
	DeleteFunc       func(ctx context.Context, id uuid.UUID) error
	FindFunc         func(ctx context.Context, input inventory.FindInput) ([]domain.Paint, int, error)
	GetFunc          func(ctx context.Context, id uuid.UUID) (*domain.Paint, error)
	ResolveDraftFunc func(ctx context.Context, input inventory.ResolveInput) (resolver.Result, error)
	ImportFunc       func(ctx context.Context, input inventory.ImportInput) (*inventory.ImportResult, error)
	ExportFunc       func(ctx context.Context) ([]domain.Paint, error)
	ShoppingListFunc func(ctx context.Context) (string, error)
}

func (m *inventoryServiceMock) Save(ctx context.Context, input inventory.SaveInput) (*domain.Paint, error) {
	if m.SaveFunc == nil {
		return nil, nil
	}
	return m.SaveFunc(ctx, input)
}

func (m *inventoryServiceMock) ToggleStatus(ctx context.Context, id uuid.UUID) (*domain.Paint, error) {
	if m.ToggleStatusFunc == nil {
		return nil, nil
	}
	return m.ToggleStatusFunc(ctx, id)
}

func (m *inventoryServiceMock) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc == nil {
		return nil
	}
	return m.DeleteFunc(ctx, id)
}

func (m *inventoryServiceMock) Find(ctx context.Context, input inventory.FindInput) ([]domain.Paint, int, error) {
	if m.FindFunc == nil {
		return nil, 0, nil
	}
	return m.FindFunc(ctx, input)
}

func (m *inventoryServiceMock) Get(ctx context.Context, id uuid.UUID) (*domain.Paint, error) {
	if m.GetFunc == nil {
		return nil, domain.ErrNotFound
	}
	return m.GetFunc(ctx, id)
}

func (m *inventoryServiceMock) ResolveDraft(ctx context.Context, input inventory.ResolveInput) (resolver.Result, error) {
	if m.ResolveDraftFunc == nil {
		return resolver.Result{}, nil
	}
	return m.ResolveDraftFunc(ctx, input)
}

func (m *inventoryServiceMock) Import(ctx context.Context, input inventory.ImportInput) (*inventory.ImportResult, error) {
	if m.ImportFunc == nil {
		return &inventory.ImportResult{}, nil
	}
	return m.ImportFunc(ctx, input)
}

func (m *inventoryServiceMock) Export(ctx context.Context) ([]domain.Paint, error) {
	if m.ExportFunc == nil {
		return nil, nil
	}
	return m.ExportFunc(ctx)
}

func (m *inventoryServiceMock) ShoppingList(ctx context.Context) (string, error) {
	if m.ShoppingListFunc == nil {
		return "", nil
	}
	return m.ShoppingListFunc(ctx)
}

type catalogServiceMock struct {
	SearchFunc     func(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error)
	GetFunc        func(ctx context.Context, brand, code string) (*domain.CatalogEntry, error)
	BulkImportFunc func(ctx context.Context, input catalog.BulkImportInput) (*catalog.BulkImportResult, error)
}

func (m *catalogServiceMock) Search(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error) {
	if m.SearchFunc == nil {
		return nil, nil
	}
	return m.SearchFunc(ctx, query, limit)
}

func (m *catalogServiceMock) Get(ctx context.Context, brand, code string) (*domain.CatalogEntry, error) {
	if m.GetFunc == nil {
		return nil, domain.ErrNotFound
	}
	return m.GetFunc(ctx, brand, code)
}

func (m *catalogServiceMock) BulkImport(ctx context.Context, input catalog.BulkImportInput) (*catalog.BulkImportResult, error) {
	if m.BulkImportFunc == nil {
		return &catalog.BulkImportResult{}, nil
	}
	return m.BulkImportFunc(ctx, input)
}

type assistantServiceMock struct {
	EnabledFunc        func() bool
	RecognizeLabelFunc func(ctx context.Context, input assistant.RecognizeInput) (*assistant.LabelGuess, error)
	AdviseFunc         func(ctx context.Context, input assistant.AdviseInput) (string, error)
}

func (m *assistantServiceMock) Enabled() bool {
	if m.EnabledFunc == nil {
		return true
	}
	return m.EnabledFunc()
}

func (m *assistantServiceMock) RecognizeLabel(ctx context.Context, input assistant.RecognizeInput) (*assistant.LabelGuess, error) {
	if m.RecognizeLabelFunc == nil {
		return nil, nil
	}
	return m.RecognizeLabelFunc(ctx, input)
}

func (m *assistantServiceMock) Advise(ctx context.Context, input assistant.AdviseInput) (string, error) {
	if m.AdviseFunc == nil {
		return "", nil
	}
	return m.AdviseFunc(ctx, input)
}

type tokenIssuerMock struct {
	GenerateTokenFunc func(warehouseID, role string) (string, error)
}

func (m *tokenIssuerMock) GenerateToken(warehouseID, role string) (string, error) {
	if m.GenerateTokenFunc == nil {
		return "test-token", nil
	}
	return m.GenerateTokenFunc(warehouseID, role)
}
