package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// DefaultProject is the research effort analyzed when a tool call omits the
// project argument.
const DefaultProject = "ridekick"

// Config holds process configuration read from the environment.
type Config struct {
	// Environment is "production" or "development"; it only affects logging.
	Environment string

	// DataDir is the directory holding the local record store. Empty means
	// no local store (REST-only mode).
	DataDir string

	// ResearchDBURL and ResearchDBKey configure the hosted table endpoint
	// used when no local store is available. Both are required for that
	// code path; neither is needed otherwise.
	ResearchDBURL string
	ResearchDBKey string

	// OpenAIKey gates the AI analysis capability. Empty disables it.
	OpenAIKey   string
	OpenAIModel string
}

// Load reads configuration from the environment, optionally preloading a
// .env file. A missing .env file is not an error.
func Load(envFile string) *Config {
	if envFile != "" {
		godotenv.Load(envFile)
	} else {
		godotenv.Load()
	}

	return &Config{
		Environment:   getEnv("INSIGHTS_ENV", "production"),
		DataDir:       getEnv("INSIGHTS_DATA_DIR", ""),
		ResearchDBURL: getEnv("RESEARCH_DB_URL", ""),
		ResearchDBKey: getEnv("RESEARCH_DB_KEY", ""),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
	}
}

// ValidateREST checks the credentials required by the direct table-endpoint
// fetcher. It is only called when that code path is selected.
func (c *Config) ValidateREST() error {
	if c.ResearchDBURL == "" {
		return fmt.Errorf("RESEARCH_DB_URL is required when no local record store is configured")
	}
	if c.ResearchDBKey == "" {
		return fmt.Errorf("RESEARCH_DB_KEY is required when no local record store is configured")
	}
	return nil
}

// HasLocalStore reports whether a local record store directory is configured.
func (c *Config) HasLocalStore() bool {
	return c.DataDir != ""
}

// HasAI reports whether the AI analysis capability is configured.
func (c *Config) HasAI() bool {
	return c.OpenAIKey != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
