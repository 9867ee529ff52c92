package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/Yang-domain/simulation-for-nursing-education/internal/auth"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/core"
	"github.com/Yang-domain/simulation-for-nursing-education/internal/db"
	"github.com/Yang-domain/simulation-for-nursing-education/pkg"
)

// Server bundles the dependencies required by the HTTP handlers.
type Server struct {
	Scenarios *core.ScenarioService
	Chat      *core.ChatService
	Debrief   *core.DebriefService
	Store     db.Store
	Guard     *auth.Guard
	Tokens    *auth.TokenService
	WebDir    string
}

// NewServer constructs a Server.
func NewServer(scenarios *core.ScenarioService, chat *core.ChatService, debrief *core.DebriefService, store db.Store, guard *auth.Guard, tokens *auth.TokenService, webDir string) *Server {
	return &Server{
		Scenarios: scenarios,
		Chat:      chat,
		Debrief:   debrief,
		Store:     store,
		Guard:     guard,
		Tokens:    tokens,
		WebDir:    webDir,
	}
}

// Routes builds the router. The front end is a static bundle served from
// WebDir; everything else is a JSON API.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/api/generate-scenario", s.handleGenerateScenario)
	r.Post("/api/chat", s.handleChat)
	r.Post("/api/debrief", s.handleDebrief)
	r.Post("/api/transcript", s.handleSaveTranscript)
	r.Post("/api/admin/login", s.handleAdminLogin)
	r.Get("/api/transcripts", s.handleListTranscripts)
	r.Get("/api/transcripts/{id}", s.handleGetTranscript)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	if s.WebDir != "" {
		if _, err := os.Stat(filepath.Join(s.WebDir, "index.html")); err == nil {
			r.Handle("/*", http.FileServer(http.Dir(s.WebDir)))
		}
	}
	return r
}

type errResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeGenerationError maps core errors onto the two failure codes the
// front end distinguishes: unusable model output vs. everything else.
func writeGenerationError(w http.ResponseWriter, err error) {
	log.Println("generation error:", err)
	if errors.Is(err, core.ErrInvalidFormat) {
		writeJSON(w, http.StatusInternalServerError, errResp{"invalid_format"})
		return
	}
	writeJSON(w, http.StatusInternalServerError, errResp{"llm_failed"})
}

func (s *Server) handleGenerateScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Extras map[string]any `json:"extras"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&req) // extras are optional
	}
	scenario, err := s.Scenarios.Generate(r.Context(), req.Extras)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"scenario": scenario})
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Scenario string         `json:"scenario"`
		History  []pkg.ChatTurn `json:"history"`
		Message  string         `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{"bad json"})
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeJSON(w, http.StatusBadRequest, errResp{"message required"})
		return
	}
	reply, err := s.Chat.Reply(r.Context(), req.Scenario, req.History, req.Message)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

func (s *Server) handleDebrief(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Student  pkg.Student    `json:"student"`
		Scenario pkg.Scenario   `json:"scenario"`
		History  []pkg.ChatTurn `json:"history"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{"bad json"})
		return
	}
	report, err := s.Debrief.Evaluate(r.Context(), req.Student, req.Scenario, req.History)
	if err != nil {
		writeGenerationError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"report": report})
}

func (s *Server) handleSaveTranscript(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Student  pkg.Student       `json:"student"`
		Scenario pkg.Scenario      `json:"scenario"`
		History  []pkg.ChatTurn    `json:"history"`
		Report   *pkg.RubricReport `json:"report"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "bad json"})
		return
	}
	if req.Scenario.Empty() {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "scenario required"})
		return
	}
	if len(req.History) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "history required"})
		return
	}
	id, err := s.Store.Append(r.Context(), pkg.Transcript{
		Student:  req.Student,
		Scenario: req.Scenario,
		History:  req.History,
		Report:   req.Report,
	})
	if err != nil {
		log.Println("save transcript:", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"ok": false, "error": "store_failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errResp{"bad json"})
		return
	}
	if !s.Guard.Check(req.Password) {
		writeJSON(w, http.StatusUnauthorized, errResp{"unauthorized"})
		return
	}
	tok, err := s.Tokens.Issue()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errResp{"token_failed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"access_token": tok})
}

// authorized accepts either the shared password in the query string (the
// original contract) or a previously issued bearer token.
func (s *Server) authorized(r *http.Request) bool {
	if s.Guard.Check(r.URL.Query().Get("password")) {
		return true
	}
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return s.Tokens.Verify(strings.TrimPrefix(h, "Bearer "))
	}
	return false
}

func (s *Server) handleListTranscripts(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, errResp{"unauthorized"})
		return
	}
	list, err := s.Store.List(r.Context())
	if err != nil {
		log.Println("list transcripts:", err)
		writeJSON(w, http.StatusInternalServerError, errResp{"store_failed"})
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (s *Server) handleGetTranscript(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeJSON(w, http.StatusUnauthorized, errResp{"unauthorized"})
		return
	}
	id := chi.URLParam(r, "id")
	t, err := s.Store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errResp{"not found"})
			return
		}
		log.Println("get transcript:", err)
		writeJSON(w, http.StatusInternalServerError, errResp{"store_failed"})
		return
	}
	writeJSON(w, http.StatusOK, t)
}
