// Package resolver matches an in-progress brand+code pair against the
// shared catalog and the warehouse's own records. All operations are
// pure functions over snapshots handed in by the caller; the package
// never performs I/O.
package resolver

import (
	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
)

// Input is the form state a resolution runs against.
type Input struct {
	Brand   string
	Code    string
	Catalog []domain.CatalogEntry
	Records []domain.Paint

	// Editing means an existing record is open; its loaded values stay
	// authoritative and a match only drives the recognized indicator.
	Editing bool
	// Prefilled means the form was seeded externally (vision guess).
	// Seeded values must not be silently overwritten by a lookup.
	Prefilled bool
}

// Result reports the outcome of a resolution.
//
// Found and the resolved fields are always populated on a hit; AutoFill
// tells the caller whether it may copy them into the form. Editing and
// prefilled sessions get Found for the indicator but AutoFill=false.
type Result struct {
	Found    bool
	AutoFill bool

	Name string
	Hex  string

	// Type holds the resolved type when it is one of the recognized
	// standard values. Otherwise TypeIsCustom is set and the raw string
	// is preserved in CustomType so it is not lost.
	Type         string
	TypeIsCustom bool
	CustomType   string
}

// DuplicateInput is the finalized identity the user is about to save.
type DuplicateInput struct {
	Brand  string
	Code   string
	Status domain.PaintStatus

	// ExcludeID skips the record being edited so it does not collide
	// with itself. uuid.Nil means no exclusion.
	ExcludeID uuid.UUID

	Records []domain.Paint
}

// DuplicateResult reports a per-status identity collision. The
// conflicting record's code is returned as stored so error messages can
// show the spelling the user will recognize.
type DuplicateResult struct {
	IsDuplicate     bool
	ConflictingID   uuid.UUID
	ConflictingCode string
}
