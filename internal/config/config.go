package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Score floor strategies accepted by Referral.ScoreFloor
const (
	ScoreFloorRandom = "random"
	ScoreFloorNone   = "none"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port            string `yaml:"port" env:"SERVER_PORT"`
		Mode            string `yaml:"mode" env:"SERVER_MODE"`
		ReadTimeout     string `yaml:"read_timeout" env:"SERVER_READ_TIMEOUT"`
		WriteTimeout    string `yaml:"write_timeout" env:"SERVER_WRITE_TIMEOUT"`
		ShutdownTimeout string `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Notification struct {
		SimulatedDelay string `yaml:"simulated_delay" env:"NOTIFY_SIMULATED_DELAY"`
		QueueSize      int    `yaml:"queue_size" env:"NOTIFY_QUEUE_SIZE"`
		Workers        int    `yaml:"workers" env:"NOTIFY_WORKERS"`
		Timeout        string `yaml:"timeout" env:"NOTIFY_TIMEOUT"`

		SMTP struct {
			Host     string `yaml:"host" env:"SMTP_HOST"`
			Port     int    `yaml:"port" env:"SMTP_PORT"`
			Username string `yaml:"username" env:"SMTP_USERNAME"`
			Password string `yaml:"password" env:"SMTP_PASSWORD"`
			From     string `yaml:"from" env:"SMTP_FROM"`
		} `yaml:"smtp"`
	} `yaml:"notification"`

	Referral struct {
		ScoreFloor   string `yaml:"score_floor" env:"REFERRAL_SCORE_FLOOR"`
		UniquePerJob bool   `yaml:"unique_per_job" env:"REFERRAL_UNIQUE_PER_JOB"`
	} `yaml:"referral"`

	Seed struct {
		AdminEmail    string `yaml:"admin_email" env:"SEED_ADMIN_EMAIL"`
		AdminPassword string `yaml:"admin_password" env:"SEED_ADMIN_PASSWORD"`
		SampleData    bool   `yaml:"sample_data" env:"SEED_SAMPLE_DATA"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file, a .env file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.ReadTimeout = "15s"
	config.Server.WriteTimeout = "15s"
	config.Server.ShutdownTimeout = "10s"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "hirehunt"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "hirehunt.app"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Notification.SimulatedDelay = "500ms"
	config.Notification.QueueSize = 100
	config.Notification.Workers = 2
	config.Notification.Timeout = "10s"
	config.Notification.SMTP.Port = 587

	config.Referral.ScoreFloor = ScoreFloorRandom
	config.Referral.UniquePerJob = false

	config.Seed.AdminEmail = "admin@hirehunt.app"
	config.Seed.SampleData = true
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return applyEnvOverrides(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	durations := map[string]string{
		"JWT access token expiration": config.JWT.AccessTokenExpiration,
		"notification simulated delay": config.Notification.SimulatedDelay,
		"notification timeout":         config.Notification.Timeout,
		"server shutdown timeout":      config.Server.ShutdownTimeout,
	}
	for name, value := range durations {
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("invalid %s format: %w", name, err)
		}
	}

	switch config.Referral.ScoreFloor {
	case ScoreFloorRandom, ScoreFloorNone:
	default:
		return fmt.Errorf("referral score floor must be %q or %q, got %q",
			ScoreFloorRandom, ScoreFloorNone, config.Referral.ScoreFloor)
	}

	if config.Notification.QueueSize < 1 || config.Notification.Workers < 1 {
		return fmt.Errorf("notification queue size and workers must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// SMTPEnabled reports whether a real mail provider is configured
func (c *Config) SMTPEnabled() bool {
	return c.Notification.SMTP.Host != ""
}
