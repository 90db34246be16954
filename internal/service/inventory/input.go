package inventory

import (
	"strings"

	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
)

// SaveInput holds the parameters for creating or updating a paint.
// A zero ID means create; a non-zero ID updates the existing record.
type SaveInput struct {
	ID      uuid.UUID
	Brand   string
	Code    string
	Name    string
	Type    string
	Status  domain.PaintStatus
	Hex     *string
	Note    *string
	Thinner *string
	Ratio   *string
}

// Validate checks all fields and collects all errors.
func (i SaveInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Brand) == "" {
		errs = append(errs, domain.FieldError{Field: "brand", Message: "required"})
	}
	if domain.CleanCode(i.Code) == "" {
		errs = append(errs, domain.FieldError{Field: "code", Message: "required"})
	}
	if strings.TrimSpace(i.Type) == "" {
		errs = append(errs, domain.FieldError{Field: "type", Message: "required"})
	}
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be OWNED or WANT_TO_BUY"})
	}
	if i.Hex != nil && !validHex(*i.Hex) {
		errs = append(errs, domain.FieldError{Field: "hex", Message: "must be #RRGGBB"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// validHex accepts "#" followed by exactly six hex digits.
func validHex(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// FindInput holds the parameters for the filtered inventory listing.
type FindInput struct {
	Search    *string
	Status    *domain.PaintStatus
	Type      *string
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i FindInput) Validate() error {
	var errs []domain.FieldError
	if i.Status != nil && !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "must be OWNED or WANT_TO_BUY"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be non-negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ResolveInput holds the in-progress form state for keystroke resolution.
type ResolveInput struct {
	Brand     string
	Code      string
	Editing   bool
	Prefilled bool
}

// ImportItem is one record of a JSON backup being restored.
type ImportItem struct {
	Brand   string
	Code    string
	Name    string
	Type    string
	Status  domain.PaintStatus
	Hex     *string
	Note    *string
	Thinner *string
	Ratio   *string
}

// ImportInput holds the parameters for a backup restore.
type ImportInput struct {
	Items []ImportItem
}

// Validate checks all fields and collects all errors.
func (i ImportInput) Validate() error {
	if len(i.Items) == 0 {
		return domain.NewValidationError("items", "required")
	}
	return nil
}

// ImportError describes why one backup line was not imported.
type ImportError struct {
	LineNumber int
	Brand      string
	Code       string
	Reason     string
}

// ImportResult summarizes a backup restore.
type ImportResult struct {
	Imported int
	Skipped  int
	Errors   []ImportError
}
