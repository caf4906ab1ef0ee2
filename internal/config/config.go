package config

import (
	"log"
	"os"
)

type Config struct {
	Port        string
	DBDSN       string
	GeminiKey   string
	GeminiModel string
	LogFile     string
}

// Load reads configuration from the environment. The database DSN and the
// provider API key have no defaults: the process refuses to start without them.
func Load() Config {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("[config] DB_DSN is required")
	}
	key := os.Getenv("GEMINI_API_KEY")
	if key == "" {
		log.Fatal("[config] GEMINI_API_KEY is required")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.0-flash"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{Port: port, DBDSN: dsn, GeminiKey: key, GeminiModel: model, LogFile: logFile}
	log.Printf("[config] PORT=%s DB_DSN=%s GEMINI_MODEL=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.GeminiModel, cfg.LogFile)
	return cfg
}
