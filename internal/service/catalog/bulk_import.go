package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vrusch/ModSkl/internal/domain"
	"github.com/vrusch/ModSkl/pkg/ctxutil"
)

// BulkEntry is one row of an administrative catalog import.
type BulkEntry struct {
	Brand string
	Code  string
	Name  string
	Type  string
	Hex   string
}

// BulkImportInput holds the parameters for an administrative import.
type BulkImportInput struct {
	Entries []BulkEntry
}

// Validate checks all fields and collects all errors.
func (i BulkImportInput) Validate() error {
	if len(i.Entries) == 0 {
		return domain.NewValidationError("entries", "required")
	}
	return nil
}

// BulkImportError describes why one row was not imported.
type BulkImportError struct {
	LineNumber int
	Brand      string
	Code       string
	Reason     string
}

// BulkImportResult summarizes an administrative import.
type BulkImportResult struct {
	Imported int
	Skipped  int
	Errors   []BulkImportError
}

// BulkImport merges a batch of entries into the catalog. Admin only.
// Entries go to the store in chunks; a failed chunk is reported and
// the rest still lands. Rows within the file that collapse to the same
// storage key merge in file order, matching repeated single publishes.
func (s *Service) BulkImport(ctx context.Context, input BulkImportInput) (*BulkImportResult, error) {
	if ctxutil.RoleFromCtx(ctx) != domain.RoleAdmin.String() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	count, err := s.entries.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count catalog: %w", err)
	}
	if count+len(input.Entries) > s.cfg.MaxEntries {
		return nil, domain.NewValidationError("entries", "importing these entries would exceed the catalog limit")
	}

	result := &BulkImportResult{}

	chunkSize := s.cfg.ImportChunkSize
	if chunkSize <= 0 {
		chunkSize = 450
	}

	var pending []domain.CatalogEntry
	flush := func() {
		if len(pending) == 0 {
			return
		}
		n, upsertErr := s.entries.UpsertBatch(ctx, pending)
		if upsertErr != nil {
			s.log.ErrorContext(ctx, "catalog import chunk failed",
				slog.Int("size", len(pending)),
				slog.Any("error", upsertErr),
			)
			result.Skipped += len(pending) - n
			result.Errors = append(result.Errors, BulkImportError{
				Reason: "chunk upsert failed: " + upsertErr.Error(),
			})
			result.Imported += n
		} else {
			result.Imported += n
		}
		pending = pending[:0]
	}

	for i, row := range input.Entries {
		brand := strings.TrimSpace(row.Brand)
		code := strings.TrimSpace(row.Code)
		if brand == "" || domain.CleanCode(code) == "" {
			result.Skipped++
			result.Errors = append(result.Errors, BulkImportError{
				LineNumber: i + 1,
				Brand:      row.Brand,
				Code:       row.Code,
				Reason:     "missing brand or code",
			})
			continue
		}

		pending = append(pending, domain.CatalogEntry{
			StorageKey: domain.StorageKey(brand, code),
			Brand:      brand,
			Code:       code,
			Name:       strings.TrimSpace(row.Name),
			Type:       strings.TrimSpace(row.Type),
			Hex:        strings.TrimSpace(row.Hex),
		})
		if len(pending) >= chunkSize {
			flush()
		}
	}
	flush()

	if result.Imported > 0 {
		s.publishEvent(domain.ChangeActionUpdate)
	}

	s.log.InfoContext(ctx, "catalog bulk import finished",
		slog.Int("imported", result.Imported),
		slog.Int("skipped", result.Skipped),
	)

	return result, nil
}
