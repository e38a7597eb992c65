package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server Configuration
	Environment string `env:"ENV" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"5000"`
	ClientURL   string `env:"CLIENT_URL" envDefault:"http://localhost:3000"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"LOG_FILE"`

	// Portfolio content database (sqlite)
	DatabasePath string `env:"DB_PATH" envDefault:"./data/portfolio.db"`

	// Email Configuration
	EmailService string `env:"EMAIL_SERVICE"` // "gmail" selects the Gmail preset
	EmailUser    string `env:"EMAIL_USER"`
	EmailPass    string `env:"EMAIL_PASS"`
	ContactEmail string `env:"CONTACT_EMAIL"` // falls back to EmailUser

	// Generic SMTP relay (used when EmailService is not "gmail")
	SMTPHost   string `env:"SMTP_HOST"`
	SMTPPort   int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPSecure bool   `env:"SMTP_SECURE" envDefault:"false"`
}

// Load loads the configuration from environment variables and .env files
func Load() (*Config, error) {
	// Load .env file if it exists. godotenv does not overwrite
	// variables that are already set, so the process environment wins.
	envLocations := []string{".env"}
	if envName := os.Getenv("ENV"); envName != "" {
		envLocations = append([]string{fmt.Sprintf(".env.%s", envName)}, envLocations...)
	}
	for _, loc := range envLocations {
		if err := godotenv.Load(loc); err == nil {
			break
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.ContactEmail == "" {
		cfg.ContactEmail = cfg.EmailUser
	}

	// Set default log file if not set
	if cfg.LogFile == "" {
		if cfg.Environment == "production" {
			cfg.LogFile = "/app/logs/api.log"
		} else {
			cfg.LogFile = "./logs/api.log"
		}
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return cfg, nil
}

// SMTPAddr returns the host:port of the configured outbound relay.
// The "gmail" service shortcut mirrors the original transport presets.
func (c *Config) SMTPAddr() (addr string, host string) {
	host = c.SMTPHost
	port := c.SMTPPort
	if c.EmailService == "gmail" {
		host = "smtp.gmail.com"
		port = 587
	}
	return net.JoinHostPort(host, strconv.Itoa(port)), host
}
