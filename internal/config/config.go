package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTP      HTTPConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Bootstrap BootstrapConfig
	Assistant AssistantConfig
	RateLimit RateLimitConfig
	Log       LogConfig
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// BootstrapConfig - учетные данные, при регистрации с которыми пользователь
// получает роль Admin или Manager
type BootstrapConfig struct {
	AdminEmail      string
	AdminPassword   string
	ManagerEmail    string
	ManagerPassword string
}

type AssistantConfig struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

type RateLimitConfig struct {
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	Limit         int
	Window        time.Duration
}

type LogConfig struct {
	Level       string
	Development bool
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTP: HTTPConfig{
			Addr:            getEnv("HTTP_ADDR", ":8080"),
			ShutdownTimeout: getDuration("HTTP_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "tracker"),
			Password: getEnv("DB_PASSWORD", "tracker"),
			DBName:   getEnv("DB_NAME", "project_tracker"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDuration("JWT_TTL", 7*24*time.Hour),
		},
		Bootstrap: BootstrapConfig{
			AdminEmail:      getEnv("ADMIN_EMAIL", ""),
			AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
			ManagerEmail:    getEnv("MANAGER_EMAIL", ""),
			ManagerPassword: getEnv("MANAGER_PASSWORD", ""),
		},
		Assistant: AssistantConfig{
			APIKey:  getEnv("GEMINI_API_KEY", ""),
			Model:   getEnv("GEMINI_MODEL", "gemini-3-flash-preview"),
			Timeout: getDuration("ASSISTANT_TIMEOUT", 20*time.Second),
		},
		RateLimit: RateLimitConfig{
			RedisAddr:     getEnv("RATE_LIMIT_REDIS_ADDR", ""),
			RedisPassword: getEnv("RATE_LIMIT_REDIS_PASSWORD", ""),
			RedisDB:       getInt("RATE_LIMIT_REDIS_DB", 0),
			Limit:         getInt("RATE_LIMIT_ASSISTANT", 30),
			Window:        getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Log: LogConfig{
			Level:       getEnv("LOG_LEVEL", "info"),
			Development: getBool("LOG_DEVELOPMENT", false),
		},
	}
}

// ErrMissingJWTSecret - JWT_SECRET не задан; без него токены нельзя подписывать
var ErrMissingJWTSecret = errors.New("JWT_SECRET must be set")

// Validate проверяет настройки, без которых сервис запускать нельзя
func (c *Config) Validate() error {
	if c.Auth.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	return nil
}

// MustLoad загружает конфигурацию и паникует, если она невалидна
func MustLoad() *Config {
	cfg := Load()
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invalid config: %v", err))
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return defaultValue
	}
	return parsed
}

func getBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return defaultValue
	}
	return parsed
}

// getDuration принимает как "30s"/"5m", так и число секунд
func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	seconds, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("invalid value for %s: %v", key, err)
		return defaultValue
	}
	return time.Duration(seconds) * time.Second
}
