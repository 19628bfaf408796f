package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the server reads from the environment.
type Config struct {
	Port               string
	DatabaseURL        string
	GeminiAPIKey       string
	OpenAIKey          string
	TranscribeUpstream string
	JWTSecret          string
	JWTExpiresIn       time.Duration
}

// MustLoad reads the environment (and a .env file if present) and applies
// defaults for everything that can have one. Secrets have no defaults; the
// handlers that need them fail closed when they are missing.
func MustLoad() Config {
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	upstream := os.Getenv("TRANSCRIBE_UPSTREAM")
	if upstream == "" {
		upstream = "https://api.openai.com/v1/audio/transcriptions"
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-only-secret-change-in-prod"
	}

	jwtExpiresIn := 24 * time.Hour
	if s := os.Getenv("JWT_EXPIRES_IN"); s != "" {
		if d, err := time.ParseDuration(s); err == nil {
			jwtExpiresIn = d
		}
	}

	return Config{
		Port:               port,
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		OpenAIKey:          os.Getenv("OPENAI_KEY"),
		TranscribeUpstream: upstream,
		JWTSecret:          jwtSecret,
		JWTExpiresIn:       jwtExpiresIn,
	}
}
