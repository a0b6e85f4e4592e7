// Package exa provides a client for the Exa neural search API.
package exa

import (
	"os"
	"time"
)

// DefaultBaseURL is the public Exa API host.
const DefaultBaseURL = "https://api.exa.ai"

// Config holds configuration for the Exa API client.
type Config struct {
	APIKey  string        // API key for authentication
	BaseURL string        // Base URL for the API (e.g., "https://api.exa.ai")
	Timeout time.Duration // HTTP request timeout
}

// LoadConfig loads Exa configuration from environment variables.
func LoadConfig() Config {
	base := os.Getenv("EXA_BASE_URL")
	if base == "" {
		base = DefaultBaseURL
	}
	return Config{
		APIKey:  os.Getenv("EXA_API_KEY"),
		BaseURL: base,
		Timeout: 10 * time.Second,
	}
}
