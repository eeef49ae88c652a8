package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Directory DirectoryConfig
	Ledger    LedgerConfig
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret string
}

// DirectoryConfig selects where the employee master comes from:
// "postgres" reads the HR database, "seed" generates the fixture
// roster (dev/demo).
type DirectoryConfig struct {
	Source string
	Seed   int64
	Count  int
}

// LedgerConfig holds the ledger policy knobs.
type LedgerConfig struct {
	PageSize int
	Seed     int64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	config := &Config{}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr-console"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.JWT = JWTConfig{
		Secret: getEnv("JWT_SECRET_KEY", ""),
	}

	directorySeed, err := strconv.ParseInt(getEnv("DIRECTORY_SEED", "1"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_SEED: %w", err)
	}

	directoryCount, err := strconv.Atoi(getEnv("DIRECTORY_COUNT", "400"))
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_COUNT: %w", err)
	}

	config.Directory = DirectoryConfig{
		Source: getEnv("DIRECTORY_SOURCE", "seed"),
		Seed:   directorySeed,
		Count:  directoryCount,
	}

	pageSize, err := strconv.Atoi(getEnv("LEDGER_PAGE_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_PAGE_SIZE: %w", err)
	}

	ledgerSeed, err := strconv.ParseInt(getEnv("LEDGER_SEED", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_SEED: %w", err)
	}

	config.Ledger = LedgerConfig{
		PageSize: pageSize,
		Seed:     ledgerSeed,
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Directory.Source != "seed" && c.Directory.Source != "postgres" {
		return fmt.Errorf("DIRECTORY_SOURCE must be seed or postgres, got %q", c.Directory.Source)
	}
	if c.Directory.Source == "postgres" && c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when DIRECTORY_SOURCE is postgres")
	}
	if c.Ledger.PageSize < 1 {
		return fmt.Errorf("LEDGER_PAGE_SIZE must be positive")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
