package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/Yang-domain/simulation-for-nursing-education/internal/auth"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/config"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/core"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/db"
	httpserver "github.com/Yang-domain/simulation-for-nursing-education/internal/http"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/llm"
)

func main() {
	cfg := config.FromEnv()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	store, err := db.Open(ctx, db.Driver(cfg.StoreDriver), cfg.StoreDSN)
	if err != nil {
		log.Fatalf("open transcript store: %v", err)
	}

	// OpenAI client (uses env: OPENAI_API_KEY, OPENAI_MODEL)
	client := llm.NewOpenAIClient()

	srv := httpserver.NewServer(
		core.NewScenarioService(client, cfg.ScenarioPrompt),
		core.NewChatService(client, cfg.PatientPrompt),
		core.NewDebriefService(client, cfg.DebriefPrompt),
		store,
		auth.NewGuard(cfg.AdminPassword, cfg.AdminPassHash),
		auth.NewTokenService(cfg.AuthSecret),
		cfg.WebDir,
	)

	log.Printf("listening on %s (store=%s)", cfg.HTTPAddr, cfg.StoreDriver)
	if err := http.ListenAndServe(cfg.HTTPAddr, srv.Routes()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
