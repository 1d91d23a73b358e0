package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port           string
	DBPath         string
	LogLevel       string
	LogFormat      string
	LogFile        string
	LLMEndpoint    string
	LLMAPIKey      string
	LLMModel       string
	SimLatency     bool
	SensorInterval time.Duration
	MarketInterval time.Duration
	SprinklerDemo  bool
	StaticDir      string
}

func Load() AppConfig {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "error", err)
	}
	cfg := load(os.Getenv)
	slog.Info("config loaded",
		"port", cfg.Port, "db", cfg.DBPath, "log_level", cfg.LogLevel,
		"llm", cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "", "sim_latency", cfg.SimLatency)
	return cfg
}

func load(getenv func(string) string) AppConfig {
	get := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	flag := func(k string, def bool) bool {
		v := getenv(k)
		if v == "" {
			return def
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid boolean, using default", "key", k, "value", v, "default", def)
			return def
		}
		return b
	}
	dur := func(k string, def time.Duration) time.Duration {
		v := getenv(k)
		if v == "" {
			return def
		}
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			slog.Warn("invalid duration, using default", "key", k, "value", v, "default", def)
			return def
		}
		return d
	}
	return AppConfig{
		Port:           get("PORT", "8080"),
		DBPath:         get("DB_PATH", "growsphere.db"),
		LogLevel:       get("LOG_LEVEL", "info"),
		LogFormat:      get("LOG_FORMAT", "text"),
		LogFile:        getenv("LOG_FILE"),
		LLMEndpoint:    getenv("LLM_ENDPOINT"),
		LLMAPIKey:      getenv("LLM_API_KEY"),
		LLMModel:       get("LLM_MODEL", "gpt-4o-mini"),
		SimLatency:     flag("SIM_LATENCY", true),
		SensorInterval: dur("SENSOR_INTERVAL", 3*time.Second),
		MarketInterval: dur("MARKET_INTERVAL", 5*time.Minute),
		SprinklerDemo:  flag("SPRINKLER_DEMO", true),
		StaticDir:      get("STATIC_DIR", "static"),
	}
}
