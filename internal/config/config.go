package config

import "os"

type Config struct {
	HTTPAddr string

	// Transcript store: file (default), sqlite or postgres.
	StoreDriver string
	StoreDSN    string // file path for the file driver, DSN otherwise

	// Prompt overrides; empty selects the built-in Korean defaults.
	ScenarioPrompt string
	PatientPrompt  string
	DebriefPrompt  string

	// Admin access. The bcrypt hash wins over the plaintext password when
	// both are set.
	AdminPassword string
	AdminPassHash string
	AuthSecret    string // HMAC secret for admin tokens

	WebDir string // static front end; "" disables serving it
}

func FromEnv() Config {
	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":3000"),
		StoreDriver:    envOr("STORE_DRIVER", "file"),
		StoreDSN:       envOr("STORE_DSN", os.Getenv("TRANSCRIPTS_PATH")),
		ScenarioPrompt: os.Getenv("SCENARIO_PROMPT"),
		PatientPrompt:  os.Getenv("PATIENT_GUIDE_PROMPT"),
		DebriefPrompt:  os.Getenv("DEBRIEF_PROMPT"),
		AdminPassword:  envOr("ADMIN_PASSWORD", "1234"),
		AdminPassHash:  os.Getenv("ADMIN_PASS_HASH"),
		AuthSecret:     envOr("AUTH_HMAC_SECRET", "nursing-sim-dev-secret"),
		WebDir:         envOr("WEB_DIR", "web"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
