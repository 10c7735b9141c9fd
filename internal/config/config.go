package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr      string
	StaticDir     string
	QuestionsPath string

	// Empty when the Telegram front end is disabled.
	TelegramToken string

	MinAge         int
	MaxAge         int
	TotalQuestions int // expected bank length; mismatch warns, never fails

	SessionTTL    time.Duration
	SweepInterval time.Duration

	AuthSecret  string
	CORSOrigins []string
}

func FromEnv() Config {
	// .env is a development convenience; absence is fine.
	_ = godotenv.Load()

	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "your_bot_token_here" {
		// Placeholder from the sample env file counts as unset.
		token = ""
	}

	return Config{
		HTTPAddr:       envOr("HTTP_ADDR", ":8080"),
		StaticDir:      envOr("STATIC_DIR", "./web"),
		QuestionsPath:  envOr("QUESTIONS_PATH", "./questions.json"),
		TelegramToken:  token,
		MinAge:         envInt("MIN_AGE", 16),
		MaxAge:         envInt("MAX_AGE", 99),
		TotalQuestions: envInt("TOTAL_QUESTIONS", 20),
		SessionTTL:     envDuration("SESSION_TTL", 24*time.Hour),
		SweepInterval:  envDuration("SWEEP_INTERVAL", 6*time.Hour),
		AuthSecret:     envOr("AUTH_HMAC_SECRET", "supersecret-dev-key"),
		CORSOrigins:    csvOr("CORS_ORIGINS", "http://localhost:3000,http://localhost:8080"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(k string, def time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
