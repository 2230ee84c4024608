package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Game    GameConfig
	Logging LoggingConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port string
	Host string
	Env  string // "development" or "production"

	// AllowedOrigins lists browser origins allowed to call the API and open
	// websockets. "*" allows any origin.
	AllowedOrigins []string
}

// GameConfig holds game-related configuration
type GameConfig struct {
	MinPlayers       int
	TickInterval     time.Duration
	TopicsFile       string // YAML topic pool; empty uses the built-in pool
	RandomSeed       uint64 // 0 seeds every room from crypto/rand
	RoomCodeLength   int
	StaleRoomTimeout time.Duration
}

// LoggingConfig holds logging-related configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// Load loads configuration from environment variables with defaults
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Host: getEnv("HOST", "0.0.0.0"),
			Env:  getEnv("ENV", "development"),

			AllowedOrigins: getEnvList("ALLOWED_ORIGINS", []string{"*"}),
		},
		Game: GameConfig{
			MinPlayers:       getEnvInt("MIN_PLAYERS", 3),
			TickInterval:     time.Duration(getEnvInt("TIMER_TICK_MS", 1000)) * time.Millisecond,
			TopicsFile:       getEnv("TOPICS_FILE", ""),
			RandomSeed:       getEnvUint("RANDOM_SEED", 0),
			RoomCodeLength:   getEnvInt("ROOM_CODE_LENGTH", 6),
			StaleRoomTimeout: time.Duration(getEnvInt("STALE_ROOM_MINUTES", 120)) * time.Minute,
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}
}

// LoadWithEnvFiles reads the given .env files (".env" when none are named)
// into the environment, then loads configuration. Variables already set in
// the environment win over file values. Missing files are not an error.
func LoadWithEnvFiles(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	return Load(), nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

// GetAddr returns the server address in host:port format
func (c *Config) GetAddr() string {
	return c.Server.Host + ":" + c.Server.Port
}

// getEnv returns an environment variable or a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvList returns a comma-separated environment variable as a list or a default value
func getEnvList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	if len(list) == 0 {
		return defaultValue
	}
	return list
}

// getEnvInt returns an environment variable as an integer or a default value
func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvUint returns an environment variable as an unsigned integer or a default value
func getEnvUint(key string, defaultValue uint64) uint64 {
	if value, exists := os.LookupEnv(key); exists {
		if uintValue, err := strconv.ParseUint(value, 10, 64); err == nil {
			return uintValue
		}
	}
	return defaultValue
}
