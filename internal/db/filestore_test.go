package db

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

func sampleTranscript() pkg.Transcript {
	return pkg.Transcript{
		Student:  pkg.Student{ID: "2024001", Name: "김간호"},
		Scenario: pkg.Scenario{Title: "흉통 호소 성인", Text: "54세 남성", Goal: "공감, OPQRST 사정"},
		History: []pkg.ChatTurn{
			{Who: pkg.WhoStudent, Text: "안녕하세요, 담당 간호학생입니다."},
			{Who: pkg.WhoPatient, Text: "가슴이 너무 아파요."},
		},
	}
}

func TestFileStoreAppendListGet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.json")
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	ctx := context.Background()

	id1, err := store.Append(ctx, sampleTranscript())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	id2, err := store.Append(ctx, sampleTranscript())
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if id1 == id2 {
		t.Fatal("append assigned duplicate ids")
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("list returned %d entries, want 2", len(list))
	}
	if list[0].ID != id1 || list[1].ID != id2 {
		t.Error("list order does not match append order")
	}
	if list[0].Scenario.Title != "흉통 호소 성인" {
		t.Errorf("summary scenario = %q", list[0].Scenario.Title)
	}
	if list[0].SavedAt.IsZero() {
		t.Error("savedAt not assigned")
	}

	got, err := store.Get(ctx, id2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.History) != 2 || got.History[1].Who != pkg.WhoPatient {
		t.Errorf("history round-trip wrong: %+v", got.History)
	}
}

func TestFileStoreGetUnknownID(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "transcripts.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcripts.json")
	ctx := context.Background()

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	tr := sampleTranscript()
	report := &pkg.RubricReport{Summary: "양호"}
	tr.Report = report
	id, err := store.Append(ctx, tr)
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	reopened, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got, err := reopened.Get(ctx, id)
	if err != nil {
		t.Fatalf("get after reopen: %v", err)
	}
	if got.Report == nil || got.Report.Summary != "양호" {
		t.Errorf("report not persisted: %+v", got.Report)
	}
}
