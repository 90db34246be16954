package paint

import "github.com/vrusch/ModSkl/internal/domain"

// Filter defines parameters for searching and paginating paints
// within one warehouse.
type Filter struct {
	// Search performs ILIKE '%...%' on brand, code, and name.
	// nil or empty string means no text filter.
	Search *string

	// Status restricts to one status bucket (shelf or shopping list).
	Status *domain.PaintStatus

	// Type restricts to one paint type (exact match on the stored value).
	Type *string

	// SortBy determines the sort column: "created_at", "brand", "code", "name".
	// Default: "created_at".
	SortBy string

	// SortOrder: "ASC" or "DESC". Default: "DESC" (newest first).
	SortOrder string

	// Limit is the maximum number of paints to return. Default: 50, max: 500.
	Limit int

	// Offset is the number of paints to skip.
	Offset int
}

const (
	defaultLimit = 50
	maxLimit     = 500

	sortByCreatedAt = "created_at"
	sortByBrand     = "brand"
	sortByCode      = "code"
	sortByName      = "name"

	sortOrderASC  = "ASC"
	sortOrderDESC = "DESC"
)

// normalize applies defaults and clamps values.
func (f *Filter) normalize() {
	switch f.SortBy {
	case sortByCreatedAt, sortByBrand, sortByCode, sortByName:
		// valid
	default:
		f.SortBy = sortByCreatedAt
	}

	switch f.SortOrder {
	case sortOrderASC, sortOrderDESC:
		// valid
	default:
		f.SortOrder = sortOrderDESC
	}

	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}

	if f.Offset < 0 {
		f.Offset = 0
	}
}
