package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`
	// DefaultWebhookURL is the outbound target in effect until the ERP
	// reconfigures it through POST /webhook/config
	DefaultWebhookURL string `mapstructure:"DEFAULT_WEBHOOK_URL"`
	// ConsoleOrigins is a comma-separated list of browser origins treated
	// as the operator console
	ConsoleOrigins        string `mapstructure:"CONSOLE_ORIGINS"`
	WebhookTimeoutSeconds int    `mapstructure:"WEBHOOK_TIMEOUT_SECONDS"`
	// SeedFile points at a seed.yaml; empty means the built-in demo customers
	SeedFile string `mapstructure:"SEED_FILE"`
}

func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8000")
	viper.SetDefault("DEFAULT_WEBHOOK_URL", "http://localhost:8001/api/webhooks/third-party/sync")
	viper.SetDefault("CONSOLE_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	viper.SetDefault("WEBHOOK_TIMEOUT_SECONDS", 5)
	viper.SetDefault("SEED_FILE", "")

	// The config file is optional; env vars and defaults cover everything
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}

// ConsoleOriginList splits the configured console origins
func (c *Config) ConsoleOriginList() []string {
	parts := strings.Split(c.ConsoleOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if o := strings.TrimSpace(p); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// WebhookTimeout returns the outbound delivery timeout
func (c *Config) WebhookTimeout() time.Duration {
	return time.Duration(c.WebhookTimeoutSeconds) * time.Second
}
