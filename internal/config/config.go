package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	JWTTTLHours int    `mapstructure:"JWT_TTL_HOURS"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Email configuration
	EmailProvider     string `mapstructure:"EMAIL_PROVIDER"` // "ses" or "smtp"
	EmailFrom         string `mapstructure:"EMAIL_FROM"`
	SESRegion         string `mapstructure:"SES_REGION"`
	SMTPHost          string `mapstructure:"SMTP_HOST"`
	SMTPPort          int    `mapstructure:"SMTP_PORT"`
	SMTPUser          string `mapstructure:"SMTP_USER"`
	SMTPPassword      string `mapstructure:"SMTP_PASSWORD"`
	EmailPollInterval int    `mapstructure:"EMAIL_POLL_INTERVAL_SECONDS"`
	EmailBatchSize    int    `mapstructure:"EMAIL_BATCH_SIZE"`

	// YouTube configuration
	YouTubeAPIKey           string `mapstructure:"YOUTUBE_API_KEY"`
	YouTubeSyncIntervalMins int    `mapstructure:"YOUTUBE_SYNC_INTERVAL_MINUTES"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "podcastflow")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", "your-secret-key-change-in-production")
	viper.SetDefault("JWT_TTL_HOURS", 8)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Email defaults
	viper.SetDefault("EMAIL_PROVIDER", "smtp")
	viper.SetDefault("EMAIL_FROM", "noreply@podcastflow.local")
	viper.SetDefault("SES_REGION", "us-east-1")
	viper.SetDefault("SMTP_HOST", "localhost")
	viper.SetDefault("SMTP_PORT", 1025)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("EMAIL_POLL_INTERVAL_SECONDS", 30)
	viper.SetDefault("EMAIL_BATCH_SIZE", 25)

	// YouTube defaults
	viper.SetDefault("YOUTUBE_API_KEY", "")
	viper.SetDefault("YOUTUBE_SYNC_INTERVAL_MINUTES", 360)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == "your-secret-key-change-in-production" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.EmailProvider == "ses" && config.SESRegion == "" {
			return fmt.Errorf("SES_REGION must be set when EMAIL_PROVIDER=ses")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.EmailProvider != "ses" && config.EmailProvider != "smtp" {
		return fmt.Errorf("EMAIL_PROVIDER must be 'ses' or 'smtp', got %q", config.EmailProvider)
	}

	return nil
}

// EmailPollDuration returns the queue poll interval as a duration
func (c *Config) EmailPollDuration() time.Duration {
	if c.EmailPollInterval <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.EmailPollInterval) * time.Second
}

// YouTubeSyncDuration returns the sync sweep interval as a duration
func (c *Config) YouTubeSyncDuration() time.Duration {
	if c.YouTubeSyncIntervalMins <= 0 {
		return 6 * time.Hour
	}
	return time.Duration(c.YouTubeSyncIntervalMins) * time.Minute
}

// JWTTTL returns the token lifetime as a duration
func (c *Config) JWTTTL() time.Duration {
	if c.JWTTTLHours <= 0 {
		return 8 * time.Hour
	}
	return time.Duration(c.JWTTTLHours) * time.Hour
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
