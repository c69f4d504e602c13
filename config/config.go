package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFilenames are the config file names looked up from the working
// directory toward the filesystem root.
var DefaultFilenames = []string{".gqlagent.yml", "gqlagent.yml", ".gqlagent.yaml", "gqlagent.yaml"}

// adminSecretHeader is the header the backend expects the admin secret on.
const adminSecretHeader = "x-hasura-admin-secret"

// Config represents the config file.
type Config struct {
	Endpoint *EndpointConfig `yaml:"endpoint"`
}

// EndpointConfig are the allowed options for the 'endpoint' config
type EndpointConfig struct {
	URL         string            `yaml:"url"`
	AdminSecret string            `yaml:"admin_secret,omitempty"`
	Headers     map[string]string `yaml:"headers,omitempty"`
}

// HeaderMap merges the static headers with the admin-secret header. An
// explicit entry in Headers wins over the admin_secret shorthand.
func (e *EndpointConfig) HeaderMap() map[string]string {
	headers := make(map[string]string, len(e.Headers)+1)
	if e.AdminSecret != "" {
		headers[adminSecretHeader] = e.AdminSecret
	}
	for key, value := range e.Headers {
		headers[key] = value
	}

	return headers
}

// Load reads and parses one config file. Environment references in the
// file body ($VAR or ${VAR}) are expanded before parsing so secrets can
// stay out of the file itself.
func Load(filename string) (*Config, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("unable to read config: %w", err)
	}

	var cfg Config
	confContent := []byte(os.ExpandEnv(string(b)))
	if err := yaml.Unmarshal(confContent, &cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadDefault finds the nearest config file starting at dir and loads it.
// When no file exists, the endpoint may still be configured entirely from
// the environment.
func LoadDefault(dir string) (*Config, error) {
	cfgFile, err := FindConfigFile(dir, DefaultFilenames)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}

		cfg := &Config{}
		if err := cfg.applyEnv(); err != nil {
			return nil, err
		}

		return cfg, nil
	}

	return Load(cfgFile)
}

// applyEnv lets GQLAGENT_ENDPOINT and GQLAGENT_ADMIN_SECRET override the
// file values, and validates that an endpoint URL is set at all.
func (c *Config) applyEnv() error {
	if c.Endpoint == nil {
		c.Endpoint = &EndpointConfig{}
	}
	if url := os.Getenv("GQLAGENT_ENDPOINT"); url != "" {
		c.Endpoint.URL = url
	}
	if secret := os.Getenv("GQLAGENT_ADMIN_SECRET"); secret != "" {
		c.Endpoint.AdminSecret = secret
	}

	if c.Endpoint.URL == "" {
		return errors.New("no endpoint configured: set endpoint.url in the config file or GQLAGENT_ENDPOINT")
	}

	return nil
}
