package core

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yang-domain/simulation-for-nursing-education/internal/llm"
	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// ErrInvalidFormat signals that the model answered, but with text the
// server could not turn into the expected JSON shape. Callers surface it
// distinctly from transport failures.
var ErrInvalidFormat = errors.New("model response has invalid format")

// ScenarioService generates clinical practice scenarios via the LLM.
type ScenarioService struct {
	LLM    llm.Client
	Prompt string
}

// NewScenarioService constructs a ScenarioService. An empty prompt selects
// the built-in default.
func NewScenarioService(client llm.Client, prompt string) *ScenarioService {
	if prompt == "" {
		prompt = ScenarioPrompt
	}
	return &ScenarioService{LLM: client, Prompt: prompt}
}

// Generate asks the model for one scenario and parses it. extras carries
// optional caller hints (difficulty, topic) and may be nil.
func (s *ScenarioService) Generate(ctx context.Context, extras map[string]any) (pkg.Scenario, error) {
	out, err := s.LLM.Generate(ctx, s.Prompt, buildScenarioInput(extras))
	if err != nil {
		return pkg.Scenario{}, fmt.Errorf("generate scenario: %w", err)
	}
	var scenario pkg.Scenario
	if !llm.ExtractJSON(out, &scenario) || scenario.Empty() {
		return pkg.Scenario{}, ErrInvalidFormat
	}
	return scenario, nil
}
