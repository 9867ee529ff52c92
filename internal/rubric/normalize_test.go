package rubric

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

func TestNormalizeCategoryRecognizedInputs(t *testing.T) {
	cases := []struct {
		in   any
		want pkg.Category
	}{
		{"Done well", pkg.CategoryDoneWell},
		{"DONE WELL", pkg.CategoryDoneWell},
		{" done well ", pkg.CategoryDoneWell},
		{1, pkg.CategoryDoneWell},
		{float64(1), pkg.CategoryDoneWell},
		{json.Number("1"), pkg.CategoryDoneWell},
		{"needs improvements", pkg.CategoryNeedsImprovements},
		{2, pkg.CategoryNeedsImprovements},
		{"Not Done", pkg.CategoryNotDone},
		{3, pkg.CategoryNotDone},
		{"not applicable", pkg.CategoryNotApplicable},
		{4, pkg.CategoryNotApplicable},
	}
	for _, c := range cases {
		if got := NormalizeCategory(c.in); got != c.want {
			t.Errorf("NormalizeCategory(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestNormalizeCategoryFallsBackToNotApplicable(t *testing.T) {
	for _, in := range []any{"", "unknown", 5, 0, -1, 2.5, nil, true, []string{"done well"}} {
		if got := NormalizeCategory(in); got != pkg.CategoryNotApplicable {
			t.Errorf("NormalizeCategory(%v) = %q, want %q", in, got, pkg.CategoryNotApplicable)
		}
	}
}

func TestSectionForID(t *testing.T) {
	cases := map[int]pkg.Section{1: SectionA, 3: SectionA, 4: SectionB, 7: SectionC, 10: SectionC, 13: SectionD, 17: SectionE, 20: SectionF, 21: SectionG, 24: SectionG}
	for id, want := range cases {
		got, ok := SectionForID(id)
		if !ok || got != want {
			t.Errorf("SectionForID(%d) = %q,%v, want %q", id, got, ok, want)
		}
	}
	if _, ok := SectionForID(0); ok {
		t.Error("SectionForID(0) should not resolve")
	}
	if _, ok := SectionForID(25); ok {
		t.Error("SectionForID(25) should not resolve")
	}
}

func TestSanitizeItemsDropsInvalidIDs(t *testing.T) {
	raw := []pkg.RawRubricItem{
		{ID: nil, Category: "done well"},
		{ID: "seven", Category: "done well"},
		{ID: float64(2.5), Category: "done well"},
		{ID: float64(0), Category: "done well"},
		{ID: float64(25), Category: "not done"},
		{ID: float64(7), Category: "done well"},
	}
	got := SanitizeItems(raw)
	if len(got) != 1 || got[0].ID != 7 {
		t.Fatalf("expected only id 7 to survive, got %+v", got)
	}
}

func TestSanitizeItemsOverridesItems3And4(t *testing.T) {
	raw := []pkg.RawRubricItem{
		{ID: float64(3), Category: "Done well"},
		{ID: float64(4), Category: 1},
	}
	for _, it := range SanitizeItems(raw) {
		if it.Category != pkg.CategoryNotApplicable {
			t.Errorf("item %d: category = %q, want forced %q", it.ID, it.Category, pkg.CategoryNotApplicable)
		}
	}
}

func TestSanitizeItemsDerivesSectionAndLabel(t *testing.T) {
	got := SanitizeItems([]pkg.RawRubricItem{{ID: float64(7), Category: "done well"}})
	if got[0].Section != SectionC {
		t.Errorf("section = %q, want C", got[0].Section)
	}
	if got[0].Label != LabelForID(7) {
		t.Errorf("label = %q, want schema label", got[0].Label)
	}
	// A supplied section is trusted even when it disagrees with the id.
	got = SanitizeItems([]pkg.RawRubricItem{{ID: float64(1), Section: "G", Category: "done well"}})
	if got[0].Section != SectionG {
		t.Errorf("supplied section not trusted: got %q", got[0].Section)
	}
}

func TestSanitizeItemsKeepsOrderAndDuplicates(t *testing.T) {
	raw := []pkg.RawRubricItem{
		{ID: float64(9), Category: "not done"},
		{ID: float64(5), Category: "done well"},
		{ID: float64(9), Category: "done well"},
	}
	got := SanitizeItems(raw)
	ids := []int{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []int{9, 5, 9}) {
		t.Fatalf("order/duplicates not preserved: %v", ids)
	}
}

func TestSanitizeItemsIdempotent(t *testing.T) {
	raw := []pkg.RawRubricItem{
		{ID: float64(1), Category: "done well", Comment: "good opening"},
		{ID: float64(3), Category: "Done well"},
		{ID: float64(12), Category: 2},
	}
	first := SanitizeItems(raw)
	again := make([]pkg.RawRubricItem, len(first))
	for i, it := range first {
		again[i] = pkg.RawRubricItem{
			ID:       float64(it.ID),
			Section:  string(it.Section),
			Label:    it.Label,
			Category: string(it.Category),
			Comment:  it.Comment,
		}
	}
	second := SanitizeItems(again)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("sanitize is not a fixed point:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestSanitizeAndAggregateEndToEnd(t *testing.T) {
	raw := []pkg.RawRubricItem{
		{ID: float64(1), Category: "done well"},
		{ID: float64(3), Category: "Done well"},
		{ID: float64(25), Category: "Not done"},
	}
	items := SanitizeItems(raw)
	if len(items) != 2 {
		t.Fatalf("expected id 25 dropped, got %d items", len(items))
	}
	if items[0].ID != 1 || items[0].Category != pkg.CategoryDoneWell || items[0].Section != SectionA {
		t.Errorf("item 1 wrong: %+v", items[0])
	}
	if items[1].ID != 3 || items[1].Category != pkg.CategoryNotApplicable {
		t.Errorf("item 3 not overridden: %+v", items[1])
	}
	totals := Aggregate(items)
	want := map[pkg.Category]int{
		pkg.CategoryDoneWell:          1,
		pkg.CategoryNeedsImprovements: 0,
		pkg.CategoryNotDone:           0,
		pkg.CategoryNotApplicable:     1,
	}
	if !reflect.DeepEqual(totals.ByCategory, want) {
		t.Errorf("byCategory = %v, want %v", totals.ByCategory, want)
	}
}
