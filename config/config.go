package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DataPath    string // sqlite file backing the local store
	FrontendURL string
	// BackendBaseURL is where the embedded API shim forwards AI endpoints.
	BackendBaseURL string
	// OpenRouter (LLM provider) configuration
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	OpenRouterModel   string
	// Demo / local-first behavior
	DemoSeed           bool
	SimulatedLatencyMS int
	MaxUploadSizeMB    int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DataPath:          getEnv("DATA_PATH", "resume-builder.db"),
		FrontendURL:       strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		BackendBaseURL:    strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:8080"), "/"),
		OpenRouterAPIKey:  getEnv("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: strings.TrimRight(getEnv("OPENROUTER_BASE_URL", ""), "/"),
		OpenRouterModel:   getEnv("OPENROUTER_MODEL", "qwen/qwen2.5-32b-instruct"),
		DemoSeed:          getEnvBool("DEMO_SEED", true),
		// Latency simulation is for UI realism only; off by default server-side.
		SimulatedLatencyMS: getEnvInt("SIMULATED_LATENCY_MS", 0),
		MaxUploadSizeMB:    getEnvInt("MAX_UPLOAD_SIZE_MB", 10),
	}

	if cfg.OpenRouterAPIKey == "" {
		log.Println("WARNING: OPENROUTER_API_KEY is missing. Tailoring endpoints will fail.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
