package config

import (
	"os"
	"strings"
	"time"
)

// Fixed container locations. The credential file sits next to app.py because
// the Streamlit app loads firebase_key.json from its own directory, and the
// Google SDKs find it through GOOGLE_APPLICATION_CREDENTIALS.
const (
	CredentialFile = "/app/firebase_key.json"
	BindAddress    = "0.0.0.0"
	AppFile        = "app.py"
)

// Config holds launcher configuration
type Config struct {
	Port         string
	FirebaseKey  string
	StreamlitBin string
	StartupDelay time.Duration
}

// LoadConfig loads configuration from environment variables.
// Port stays a string and is handed to Streamlit verbatim; Streamlit rejects
// malformed values itself.
func LoadConfig() *Config {
	return &Config{
		Port:         GetEnvOrDefault("PORT", "8501"),
		FirebaseKey:  os.Getenv("FIREBASE_KEY"),
		StreamlitBin: GetEnvOrDefault("STREAMLIT_BIN", "streamlit"),
		StartupDelay: GetEnvAsDuration("STARTUP_DELAY", 0),
	}
}

// GetEnvOrDefault returns environment variable value or default
func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvAsDuration parses environment variable as a duration
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d >= 0 {
			return d
		}
	}
	return defaultValue
}
