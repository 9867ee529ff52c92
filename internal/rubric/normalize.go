package rubric

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// overrides holds item ids whose category is forced to "Not applicable"
// regardless of what the model produced. Items 3 and 4 assess non-verbal
// behaviour that a text chat cannot exhibit. The set is fixed domain
// policy, not configurable per call.
var overrides = map[int]struct{}{
	3: {},
	4: {},
}

// Overridden reports whether the item id is in the fixed override set.
func Overridden(id int) bool {
	_, ok := overrides[id]
	return ok
}

var categoryByText = map[string]pkg.Category{
	"done well":          pkg.CategoryDoneWell,
	"needs improvements": pkg.CategoryNeedsImprovements,
	"not done":           pkg.CategoryNotDone,
	"not applicable":     pkg.CategoryNotApplicable,
}

var categoryByCode = map[int]pkg.Category{
	1: pkg.CategoryDoneWell,
	2: pkg.CategoryNeedsImprovements,
	3: pkg.CategoryNotDone,
	4: pkg.CategoryNotApplicable,
}

// NormalizeCategory maps a raw category value onto exactly one canonical
// category. String matching is case-insensitive after trimming; numeric
// codes 1–4 map in checklist order. Anything else (empty, unrecognized
// text, out-of-range numbers, nil) falls back to "Not applicable". The
// function is total: it never returns an error.
func NormalizeCategory(raw any) pkg.Category {
	switch v := raw.(type) {
	case string:
		if c, ok := categoryByText[strings.ToLower(strings.TrimSpace(v))]; ok {
			return c
		}
	case pkg.Category:
		return NormalizeCategory(string(v))
	case int:
		if c, ok := categoryByCode[v]; ok {
			return c
		}
	case float64:
		// JSON numbers decode as float64; accept only whole values.
		if v == math.Trunc(v) {
			if c, ok := categoryByCode[int(v)]; ok {
				return c
			}
		}
	case json.Number:
		if n, err := v.Int64(); err == nil {
			if c, ok := categoryByCode[int(n)]; ok {
				return c
			}
		}
	}
	return pkg.CategoryNotApplicable
}

// itemID validates a raw id value as an integer in 1–24.
func itemID(raw any) (int, bool) {
	var id int
	switch v := raw.(type) {
	case int:
		id = v
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		id = int(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0, false
		}
		id = int(n)
	default:
		return 0, false
	}
	if id < 1 || id > 24 {
		return 0, false
	}
	return id, true
}

// SanitizeItems turns the raw item sequence from a generation response into
// normalized items. Items with a missing, non-integer, or out-of-range id
// are silently dropped; the result can therefore be shorter than 24. A
// supplied section is trusted as-is, a missing one is derived from the id.
// Output order matches input order and duplicate ids pass through as given.
// SanitizeItems never fails.
func SanitizeItems(raw []pkg.RawRubricItem) []pkg.RubricItem {
	out := make([]pkg.RubricItem, 0, len(raw))
	for _, r := range raw {
		id, ok := itemID(r.ID)
		if !ok {
			continue
		}
		section := pkg.Section(r.Section)
		if section == "" {
			section, _ = SectionForID(id)
		}
		label := r.Label
		if label == "" {
			label = LabelForID(id)
		}
		category := NormalizeCategory(r.Category)
		if Overridden(id) {
			category = pkg.CategoryNotApplicable
		}
		out = append(out, pkg.RubricItem{
			ID:       id,
			Section:  section,
			Label:    label,
			Category: category,
			Comment:  r.Comment,
		})
	}
	return out
}
