package config

import (
	"fmt"
	"strings"
	"time"

	"homework_status_bot/internal/infra/practicum"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken string `envconfig:"PRACTICUM_TOKEN"`
	TelegramToken  string `envconfig:"TELEGRAM_TOKEN"`
	TelegramChatID string `envconfig:"TELEGRAM_CHAT_ID"`

	PracticumEndpoint string        `envconfig:"PRACTICUM_ENDPOINT"` // practicum.DefaultEndpoint when unset
	TelegramAPIURL    string        `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org"`
	HTTPTimeout       time.Duration `envconfig:"HTTP_TIMEOUT" default:"30s"`
	PollSchedule      string        `envconfig:"POLL_SCHEDULE" default:"@every 10m"` // 600 seconds between cycles

	LogLevel    string `envconfig:"LOG_LEVEL" default:"debug"`
	LogFile     string `envconfig:"LOG_FILE" default:"bot_logs.log"`
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
}

// ConfigError lists the required credentials that are absent or empty.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("required environment variables are not set: %s", strings.Join(e.Missing, ", "))
}

// Load reads configuration from environment variables and .env file (if present).
// Credentials are not checked here; call Validate once logging is set up.
func Load() (*AppConfig, error) {
	// Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	if strings.TrimSpace(cfg.PracticumEndpoint) == "" {
		cfg.PracticumEndpoint = practicum.DefaultEndpoint
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.Environment = strings.ToLower(strings.TrimSpace(cfg.Environment))
	if cfg.HTTPTimeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT: %s", cfg.HTTPTimeout)
	}

	return cfg, nil
}

// Validate checks that the three credentials are present.
func (c *AppConfig) Validate() error {
	var missing []string
	for _, v := range []struct{ name, value string }{
		{"PRACTICUM_TOKEN", c.PracticumToken},
		{"TELEGRAM_TOKEN", c.TelegramToken},
		{"TELEGRAM_CHAT_ID", c.TelegramChatID},
	} {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Missing: missing}
	}
	return nil
}
