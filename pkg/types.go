package pkg

import "time"

// Category is one of the four fixed rubric outcomes. Every item in a
// sanitized report carries exactly one of these values, never free text.
type Category string

const (
	CategoryDoneWell          Category = "Done well"
	CategoryNeedsImprovements Category = "Needs improvements"
	CategoryNotDone           Category = "Not done"
	CategoryNotApplicable     Category = "Not applicable"
)

// Categories lists the canonical values in display order.
var Categories = []Category{
	CategoryDoneWell,
	CategoryNeedsImprovements,
	CategoryNotDone,
	CategoryNotApplicable,
}

// Section is one of the seven checklist groupings (A–G), each covering a
// phase of a clinical communication encounter.
type Section string

// Who identifies the author of a conversation turn.
type Who string

const (
	WhoStudent Who = "student"
	WhoPatient Who = "patient"
	WhoSystem  Who = "system"
)

// ChatTurn is a single utterance in the conversation history.
type ChatTurn struct {
	Who  Who    `json:"who"`
	Text string `json:"text"`
}

// Scenario describes the clinical situation presented to the student.
type Scenario struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	Goal  string `json:"goal"`
}

// Empty reports whether the scenario carries no content at all.
func (s Scenario) Empty() bool {
	return s.Title == "" && s.Text == "" && s.Goal == ""
}

// Student identifies the learner a session belongs to.
type Student struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RawRubricItem is one checklist row as produced by the model. None of its
// fields are trusted: the id may be missing or out of range, the category
// free-form, and section/label/comment may be absent entirely.
type RawRubricItem struct {
	ID       any    `json:"id"`
	Section  string `json:"section,omitempty"`
	Label    string `json:"label,omitempty"`
	Category any    `json:"category"`
	Comment  string `json:"comment,omitempty"`
}

// RubricItem is a sanitized checklist row: validated id, derived section,
// canonical category.
type RubricItem struct {
	ID       int      `json:"id"`
	Section  Section  `json:"section"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	Comment  string   `json:"comment"`
}

// Totals aggregates sanitized items by category and by section. Both maps
// are always fully populated, with zero counts where no items landed.
type Totals struct {
	ByCategory map[Category]int             `json:"byCategory"`
	BySection  map[Section]map[Category]int `json:"bySection"`
}

// RubricReport is the debrief result handed back to the student and
// optionally persisted with the transcript.
type RubricReport struct {
	Summary string       `json:"summary"`
	Items   []RubricItem `json:"items"`
	Totals  Totals       `json:"totals"`
}

// Transcript is one saved session. It is created once at save time and
// never mutated afterwards.
type Transcript struct {
	ID       string        `json:"id"`
	Student  Student       `json:"student"`
	Scenario Scenario      `json:"scenario"`
	History  []ChatTurn    `json:"history"`
	Report   *RubricReport `json:"report,omitempty"`
	SavedAt  time.Time     `json:"savedAt"`
}

// TranscriptSummary is the admin list entry for a saved session.
type TranscriptSummary struct {
	ID       string    `json:"id"`
	Student  Student   `json:"student"`
	Scenario Scenario  `json:"scenario"`
	SavedAt  time.Time `json:"savedAt"`
}
