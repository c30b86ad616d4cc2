package config

import (
	"fmt"
	"os"

	"github.com/diegoclair/slack-oncall/internal/domain"
	"github.com/go-playground/validator/v10"
)

// Names of the secrets resolved through the credential provider.
const (
	SlackTokenKey    = "SLACK_API_TOKEN"
	SigningSecretKey = "SLACK_SIGNING_SECRET"
	GoogleKeyfileKey = "GOOGLE_SERVICE_ACCOUNT_KEYFILE"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds the non-secret process settings.
type Config struct {
	DatabasePath    string `validate:"required"`
	RotationFile    string `validate:"required"`
	LogLevel        string `validate:"oneof=debug info warn error"`
	LogFormat       string `validate:"oneof=json console"`
	Port            string `validate:"required,numeric"`
	RunAt           string `validate:"required"`
	AnnounceChannel string
	PushgatewayURL  string `validate:"omitempty,url"`
}

func Load() *Config {
	return &Config{
		DatabasePath:    getEnv("DATABASE_PATH", "./oncall.db"),
		RotationFile:    getEnv("ROTATION_FILE", "./rotation.yaml"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		Port:            getEnv("PORT", "3000"),
		RunAt:           getEnv("RUN_AT", domain.DefaultRunAt),
		AnnounceChannel: getEnv("ANNOUNCE_CHANNEL", ""),
		PushgatewayURL:  getEnv("PUSHGATEWAY_URL", ""),
	}
}

func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrConfiguration, err)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
