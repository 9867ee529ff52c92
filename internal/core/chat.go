package core

import (
	"context"
	"fmt"

	"github.com/Yang-domain/simulation-for-nursing-education/internal/llm"
	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// ChatService produces the simulated patient's side of the conversation.
// Each turn is a blocking call that delegates to the LLM; the full history
// travels in the user input so the service itself stays stateless.
type ChatService struct {
	LLM    llm.Client
	Prompt string
}

// NewChatService constructs a ChatService. An empty prompt selects the
// built-in patient guide.
func NewChatService(client llm.Client, prompt string) *ChatService {
	if prompt == "" {
		prompt = PatientGuidePrompt
	}
	return &ChatService{LLM: client, Prompt: prompt}
}

// Reply generates the patient's answer to the student's latest message.
func (s *ChatService) Reply(ctx context.Context, scenario string, history []pkg.ChatTurn, message string) (string, error) {
	out, err := s.LLM.Generate(ctx, s.Prompt, buildPatientInput(scenario, history, message))
	if err != nil {
		return "", fmt.Errorf("patient reply: %w", err)
	}
	return out, nil
}
