package resolver

import (
	"github.com/google/uuid"

	"github.com/vrusch/ModSkl/internal/domain"
)

// CheckDuplicate scans the warehouse's records for another record with
// the same identity and the same status. Uniqueness is per status: one
// bottle on the shelf and the same paint on the shopping list may
// coexist, two identical shopping-list rows may not.
func CheckDuplicate(in DuplicateInput) DuplicateResult {
	key := domain.MatchKey(in.Brand, in.Code)
	if key == "" {
		return DuplicateResult{}
	}

	for i := range in.Records {
		p := &in.Records[i]
		if in.ExcludeID != uuid.Nil && p.ID == in.ExcludeID {
			continue
		}
		if p.Status != in.Status {
			continue
		}
		if p.MatchKey() == key {
			return DuplicateResult{
				IsDuplicate:     true,
				ConflictingID:   p.ID,
				ConflictingCode: p.Code,
			}
		}
	}
	return DuplicateResult{}
}
