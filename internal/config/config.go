package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration. The only knob that changes
// core behavior is FirestoreCredentials: when set, the remote storage engine
// is preferred at startup.
type Config struct {
	ListenAddr string
	DataDir    string

	FirestoreCredentials string
	FirestoreProject     string
	FirestoreCollection  string

	SiteContentPath string
	GeminiAPIKey    string
	CoupleNames     string

	DemoMode bool
	LogLevel string
}

// LoadConfig loads configuration from environment variables or defaults.
func LoadConfig() *Config {
	return &Config{
		ListenAddr:           getEnv("WEDDING_ADDR", ":3000"),
		DataDir:              getEnv("WEDDING_DATA_DIR", "data"),
		FirestoreCredentials: getEnv("FIRESTORE_CREDENTIALS_FILE", ""),
		FirestoreProject:     getEnv("FIRESTORE_PROJECT_ID", ""),
		FirestoreCollection:  getEnv("FIRESTORE_COLLECTION", "guests"),
		SiteContentPath:      getEnv("SITE_CONTENT_FILE", ""),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		CoupleNames:          getEnv("COUPLE_NAMES", "Aarav and Diya"),
		DemoMode:             getEnvBool("WEDDING_DEMO_MODE", false),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
