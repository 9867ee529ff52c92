package rubric

import "github.com/Yang-domain/simulation-for-nursing-education/pkg"

// Aggregate tallies sanitized items into category totals overall and per
// section. Both maps come back fully populated (every canonical category
// and every section appears with an explicit zero) so renderers never need
// existence checks. Items whose section is not one of A–G (possible when
// the model supplied a bogus section that was trusted as-is) still count in
// ByCategory and land in BySection under the value given.
func Aggregate(items []pkg.RubricItem) pkg.Totals {
	t := pkg.Totals{
		ByCategory: make(map[pkg.Category]int, len(pkg.Categories)),
		BySection:  make(map[pkg.Section]map[pkg.Category]int, len(Sections)),
	}
	for _, c := range pkg.Categories {
		t.ByCategory[c] = 0
	}
	for _, s := range Sections {
		row := make(map[pkg.Category]int, len(pkg.Categories))
		for _, c := range pkg.Categories {
			row[c] = 0
		}
		t.BySection[s] = row
	}
	for _, it := range items {
		t.ByCategory[it.Category]++
		row, ok := t.BySection[it.Section]
		if !ok {
			row = make(map[pkg.Category]int, len(pkg.Categories))
			for _, c := range pkg.Categories {
				row[c] = 0
			}
			t.BySection[it.Section] = row
		}
		row[it.Category]++
	}
	return t
}

// EffectiveCount is the number of scorable items: everything not marked
// "Not applicable".
func EffectiveCount(items []pkg.RubricItem, t pkg.Totals) int {
	return len(items) - t.ByCategory[pkg.CategoryNotApplicable]
}
