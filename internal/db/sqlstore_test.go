package db

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// createTestStore opens an in-memory SQLite database with the schema applied.
func createTestStore(t *testing.T) *SQLStore {
	t.Helper()
	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	store := NewSQLStore(conn, "sqlite")
	if err := store.ensureSchema(context.Background()); err != nil {
		t.Fatalf("schema: %v", err)
	}
	return store
}

func TestSQLStoreRoundTrip(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	tr := sampleTranscript()
	tr.Report = &pkg.RubricReport{
		Summary: "전반적으로 양호",
		Items: []pkg.RubricItem{
			{ID: 1, Section: "A", Label: "Greets the patient", Category: pkg.CategoryDoneWell},
		},
		Totals: pkg.Totals{
			ByCategory: map[pkg.Category]int{pkg.CategoryDoneWell: 1},
			BySection:  map[pkg.Section]map[pkg.Category]int{"A": {pkg.CategoryDoneWell: 1}},
		},
	}
	id, err := store.Append(ctx, tr)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Student.Name != "김간호" || got.Scenario.Goal != "공감, OPQRST 사정" {
		t.Errorf("fields lost: %+v", got)
	}
	if got.Report == nil || got.Report.Totals.ByCategory[pkg.CategoryDoneWell] != 1 {
		t.Errorf("report lost: %+v", got.Report)
	}
	if got.SavedAt.IsZero() {
		t.Error("savedAt not persisted")
	}
}

func TestSQLStoreListAndNotFound(t *testing.T) {
	store := createTestStore(t)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// No report on save is fine; report_json stays NULL.
	id, err := store.Append(ctx, sampleTranscript())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	got, err := store.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Report != nil {
		t.Errorf("expected nil report, got %+v", got.Report)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || list[0].ID != id {
		t.Fatalf("list = %+v", list)
	}
}

func TestRebind(t *testing.T) {
	s := &SQLStore{driver: "sqlite"}
	got := s.rebind(`INSERT INTO t (a,b) VALUES ($1,$12)`)
	want := `INSERT INTO t (a,b) VALUES (?,?)`
	if got != want {
		t.Errorf("rebind = %q, want %q", got, want)
	}
	s.driver = "postgres"
	if got := s.rebind(`SELECT $1`); got != `SELECT $1` {
		t.Errorf("postgres rebind changed query: %q", got)
	}
}
