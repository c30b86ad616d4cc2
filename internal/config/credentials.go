package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/diegoclair/slack-oncall/internal/domain"
)

// EnvCredentials resolves secrets from the environment. A secret NAME is read
// from $NAME, or from the file at $NAME_FILE when $NAME is unset.
type EnvCredentials struct {
	lookup   func(string) string
	readFile func(string) ([]byte, error)
}

func NewEnvCredentials() *EnvCredentials {
	return &EnvCredentials{
		lookup:   os.Getenv,
		readFile: os.ReadFile,
	}
}

func (c *EnvCredentials) Resolve(name string) (string, error) {
	if value := strings.TrimSpace(c.lookup(name)); value != "" {
		return value, nil
	}

	path := c.lookup(name + "_FILE")
	if path == "" {
		return "", fmt.Errorf("%w: %s (or %s_FILE) is not set", domain.ErrConfiguration, name, name)
	}

	data, err := c.readFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read %s_FILE: %v", domain.ErrConfiguration, name, err)
	}

	value := strings.TrimSpace(string(data))
	if value == "" {
		return "", fmt.Errorf("%w: %s_FILE points to an empty file", domain.ErrConfiguration, name)
	}

	return value, nil
}
