package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Claude   ClaudeConfig
	Mapbox   MapboxConfig
	Defaults DefaultsConfig
	Logger   LoggerConfig
}

type LoggerConfig struct {
	Level string
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ClaudeConfig struct {
	APIKey    string
	Model     string
	MaxTokens int
	Version   string
	Timeout   time.Duration
}

type MapboxConfig struct {
	Token     string
	MapWidth  int
	MapHeight int
	MapZoom   int
}

// DefaultsConfig carries the location and user identifiers stamped onto
// donation inserts. The chat flow has no authentication or geocoding wired in,
// so these are explicit configuration instead of literals buried in the
// orchestrator.
type DefaultsConfig struct {
	LocationID int64
	UserID     int64
}

func Load() (*Config, error) {
	// Try to load .env file from current directory or project root
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}
	// No .env is fine, environment variables still apply (Docker/K8s)

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	claudeTimeout, _ := strconv.Atoi(getEnv("CLAUDE_TIMEOUT_SECONDS", "60"))
	maxTokens, _ := strconv.Atoi(getEnv("CLAUDE_MAX_TOKENS", "1024"))
	mapWidth, _ := strconv.Atoi(getEnv("MAPBOX_MAP_WIDTH", "600"))
	mapHeight, _ := strconv.Atoi(getEnv("MAPBOX_MAP_HEIGHT", "400"))
	mapZoom, _ := strconv.Atoi(getEnv("MAPBOX_MAP_ZOOM", "14"))
	defaultLocationID, _ := strconv.ParseInt(getEnv("DEFAULT_LOCATION_ID", "1"), 10, 64)
	defaultUserID, _ := strconv.ParseInt(getEnv("DEFAULT_USER_ID", "1"), 10, 64)

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "gazelle"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Claude: ClaudeConfig{
			APIKey:    getEnv("CLAUDE_API_KEY", ""),
			Model:     getEnv("CLAUDE_MODEL", "claude-3-5-sonnet-20241022"),
			MaxTokens: maxTokens,
			Version:   getEnv("CLAUDE_API_VERSION", "2023-06-01"),
			Timeout:   time.Duration(claudeTimeout) * time.Second,
		},
		Mapbox: MapboxConfig{
			Token:     getEnv("MAPBOX_TOKEN", ""),
			MapWidth:  mapWidth,
			MapHeight: mapHeight,
			MapZoom:   mapZoom,
		},
		Defaults: DefaultsConfig{
			LocationID: defaultLocationID,
			UserID:     defaultUserID,
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
