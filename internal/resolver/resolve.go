package resolver

import "github.com/vrusch/ModSkl/internal/domain"

// Resolve looks the candidate brand+code up against the catalog first
// and the warehouse's own records second, so a paint the community has
// not cataloged yet can still be filled from the user's history.
// Absence of a match is a normal outcome, not an error.
func Resolve(in Input) Result {
	// Partial input guard: until the code carries at least one
	// meaningful character, every lookup would be noise.
	if domain.CleanCode(in.Code) == "" {
		return Result{}
	}
	key := domain.MatchKey(in.Brand, in.Code)
	if key == "" {
		return Result{}
	}

	name, hex, typ, ok := lookup(key, in.Catalog, in.Records)
	if !ok {
		return Result{}
	}

	res := Result{
		Found:    true,
		AutoFill: !in.Editing && !in.Prefilled,
		Name:     name,
		Hex:      hex,
	}
	if domain.IsStandardType(typ) {
		res.Type = typ
	} else {
		res.TypeIsCustom = true
		res.CustomType = typ
	}
	return res
}

func lookup(key string, catalog []domain.CatalogEntry, records []domain.Paint) (name, hex, typ string, ok bool) {
	for i := range catalog {
		if catalog[i].MatchKey() == key {
			return catalog[i].Name, catalog[i].Hex, catalog[i].Type, true
		}
	}
	for i := range records {
		if records[i].MatchKey() == key {
			p := &records[i]
			if p.Hex != nil {
				hex = *p.Hex
			}
			return p.Name, hex, p.Type, true
		}
	}
	return "", "", "", false
}
