package core

import (
	"context"
	"fmt"

	"github.com/Yang-domain/simulation-for-nursing-education/internal/llm"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/rubric"
	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// rawReport is the pre-aggregation shape the model is asked to emit.
type rawReport struct {
	Summary string              `json:"summary"`
	Items   []pkg.RawRubricItem `json:"items"`
}

// DebriefService scores a finished conversation against the communication
// checklist: one LLM call, then normalization, overrides and aggregation on
// the server side.
type DebriefService struct {
	LLM    llm.Client
	Prompt string
}

// NewDebriefService constructs a DebriefService. An empty prompt selects
// the built-in checklist prompt.
func NewDebriefService(client llm.Client, prompt string) *DebriefService {
	if prompt == "" {
		prompt = DebriefPrompt
	}
	return &DebriefService{LLM: client, Prompt: prompt}
}

// Evaluate runs the debrief and returns the finished report. Item-level
// noise from the model (bad ids, free-form categories) is absorbed by the
// sanitizer; a response with no decodable report at all is ErrInvalidFormat.
func (s *DebriefService) Evaluate(ctx context.Context, student pkg.Student, scenario pkg.Scenario, history []pkg.ChatTurn) (pkg.RubricReport, error) {
	out, err := s.LLM.Generate(ctx, s.Prompt, buildDebriefInput(student, scenario, history))
	if err != nil {
		return pkg.RubricReport{}, fmt.Errorf("debrief: %w", err)
	}
	var raw rawReport
	if !llm.ExtractJSON(out, &raw) {
		return pkg.RubricReport{}, ErrInvalidFormat
	}
	items := rubric.SanitizeItems(raw.Items)
	return pkg.RubricReport{
		Summary: raw.Summary,
		Items:   items,
		Totals:  rubric.Aggregate(items),
	}, nil
}
