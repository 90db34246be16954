package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vrusch/ModSkl/internal/domain"
)

// Publish merges one entry into the shared catalog. This is the
// crowdsourcing hook: every saved paint passes through here, so the
// operation must be idempotent and must never blank out fields an
// earlier contributor filled in (the repository upsert keeps existing
// non-empty values).
func (s *Service) Publish(ctx context.Context, e domain.CatalogEntry) error {
	e.Brand = strings.TrimSpace(e.Brand)
	e.Code = strings.TrimSpace(e.Code)

	var errs []domain.FieldError
	if e.Brand == "" {
		errs = append(errs, domain.FieldError{Field: "brand", Message: "required"})
	}
	if domain.CleanCode(e.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}

	// The key is always derived here; callers cannot address foreign rows.
	e.StorageKey = domain.StorageKey(e.Brand, e.Code)

	if err := s.entries.Upsert(ctx, e); err != nil {
		return fmt.Errorf("upsert catalog entry: %w", err)
	}

	s.publishEvent(domain.ChangeActionUpdate)

	s.log.DebugContext(ctx, "catalog entry published",
		slog.String("storage_key", e.StorageKey),
		slog.String("brand", e.Brand),
		slog.String("code", e.Code),
	)

	return nil
}
