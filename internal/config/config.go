package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/nfrund/chatrelay/internal/chat"
)

const (
	// DefaultSystemPrompt steers the upstream model for every conversation.
	DefaultSystemPrompt = "You are a helpful assistant. Keep your answers short and to the point."

	defaultPort    = "3000"
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"
)

// Config holds all configuration for the application.
type Config struct {
	Port          string
	OpenAIKey     string
	OpenAIBaseURL string
	Model         string
	MaxTurns      int
	SystemPrompt  string
	// StaticDir overrides the embedded frontend with a directory on disk.
	// Empty means serve the bundled assets.
	StaticDir string
}

// New loads configuration from environment variables. The upstream credential
// is required; a missing key kills the process here rather than on the first
// chat request.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	cfg := &Config{
		Port:          getEnv("PORT", defaultPort),
		OpenAIKey:     os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", defaultBaseURL),
		Model:         getEnv("CHAT_MODEL", defaultModel),
		MaxTurns:      getEnvInt("MAX_TURNS", chat.DefaultMaxTurns),
		SystemPrompt:  getEnv("SYSTEM_PROMPT", DefaultSystemPrompt),
		StaticDir:     os.Getenv("STATIC_DIR"),
	}

	if cfg.OpenAIKey == "" {
		log.Fatal("Required environment variable OPENAI_API_KEY is not set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("Ignoring invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}
