package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App        AppConfig
	Session    SessionConfig
	Simulation SimulationConfig
	Tracing    TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	// NatsURL and RedisURL are optional; an empty value disables the
	// integration.
	NatsURL  string
	RedisURL string
}

type SessionConfig struct {
	TTL time.Duration
}

// SimulationConfig holds the artificial delays of the canned operations.
type SimulationConfig struct {
	ParseDelay         time.Duration
	EnhancementDelay   time.Duration
	ClusteringDelay    time.Duration
	BuildDelay         time.Duration
	ChatReplyDelay     time.Duration
	VisualizationDelay time.Duration
}

type TracingConfig struct {
	Enabled     bool
	Endpoint    string
	ServiceName string
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "ws.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Session: SessionConfig{
			TTL: getEnvAsDuration("SESSION_TTL", time.Hour),
		},
		Simulation: SimulationConfig{
			ParseDelay:         getEnvAsDuration("SIM_PARSE_DELAY", 1500*time.Millisecond),
			EnhancementDelay:   getEnvAsDuration("SIM_ENHANCEMENT_DELAY", 2*time.Second),
			ClusteringDelay:    getEnvAsDuration("SIM_CLUSTERING_DELAY", 3*time.Second),
			BuildDelay:         getEnvAsDuration("SIM_BUILD_DELAY", 3*time.Second),
			ChatReplyDelay:     getEnvAsDuration("SIM_CHAT_DELAY", 2*time.Second),
			VisualizationDelay: getEnvAsDuration("SIM_VISUALIZATION_DELAY", 1500*time.Millisecond),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "knowex-backend"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	if value, err := strconv.ParseBool(getEnv(key, "")); err == nil {
		return value
	}
	return fallback
}

// getEnvAsDuration accepts Go durations ("1500ms") and bare milliseconds.
func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if d, err := time.ParseDuration(strValue); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
