package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/vrusch/ModSkl/internal/domain"
)

// Search returns catalog entries matching the query over brand, code,
// and name. An empty query lists the catalog from the top.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.CatalogEntry, error) {
	limit = clampLimit(limit, MaxSearchLimit, DefaultSearchLimit)

	query = strings.TrimSpace(query)
	if query == "" {
		entries, err := s.entries.List(ctx, limit)
		if err != nil {
			return nil, fmt.Errorf("list catalog: %w", err)
		}
		return entries, nil
	}

	entries, err := s.entries.Search(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search catalog: %w", err)
	}
	return entries, nil
}

// Snapshot returns the full catalog for client-side resolution, capped
// at the configured maximum.
func (s *Service) Snapshot(ctx context.Context) ([]domain.CatalogEntry, error) {
	entries, err := s.entries.List(ctx, s.cfg.MaxEntries)
	if err != nil {
		return nil, fmt.Errorf("list catalog: %w", err)
	}
	return entries, nil
}

// Get returns one entry by the storage key derived from brand and code.
func (s *Service) Get(ctx context.Context, brand, code string) (*domain.CatalogEntry, error) {
	brand = strings.TrimSpace(brand)

	var errs []domain.FieldError
	if brand == "" {
		errs = append(errs, domain.FieldError{Field: "brand", Message: "required"})
	}
	if domain.CleanCode(code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	entry, err := s.entries.GetByKey(ctx, domain.StorageKey(brand, code))
	if err != nil {
		return nil, fmt.Errorf("get catalog entry: %w", err)
	}
	return entry, nil
}
