package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"time"

	"careermcp/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const APP_NAME = "careermcp" // application name used for config directory

// Defaults applied before the config file and environment are read.
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8086
	DefaultUpstreamTimeout = 15 * time.Second
)

// phoneNumberRe matches {country_code}{number}: digits only, no leading
// zero, 8-15 digits total (E.164 bounds).
var phoneNumberRe = regexp.MustCompile(`^[1-9][0-9]{7,14}$`)

// Config holds the process-wide configuration for the gateway. It is
// constructed once at startup and passed by reference; nothing mutates it
// afterwards.
type Config struct {
	// AuthToken is the shared bearer secret callers must present.
	AuthToken string
	// PhoneNumber is the identity claim returned by the validate tool,
	// formatted as {country_code}{number} with digits only.
	PhoneNumber string

	Host string
	Port int

	// InsightsAPIURL is the optional upstream market-insights endpoint.
	// When empty, tools fall back to their built-in analysis templates.
	InsightsAPIURL string
	// UpstreamTimeout bounds each call to the insights endpoint.
	UpstreamTimeout time.Duration
}

// ConfigPath returns the standard config file path for the current platform
func ConfigPath() string {
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// Load assembles the configuration: defaults, then the optional config
// file, then environment variables (which always win), then validation.
// Deployments that only set AUTH_TOKEN and MY_NUMBER need no file.
func Load() (*Config, error) {
	cfg := &Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		UpstreamTimeout: DefaultUpstreamTimeout,
	}

	path := ConfigPath()
	if _, err := os.Stat(path); err == nil {
		logging.Debug("Loading config file", "path", path)
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFrom loads config from a specific path, applies the environment on
// top, and validates. Used by tests and by deployments with a non-standard
// config location.
func LoadFrom(path string) (*Config, error) {
	cfg := &Config{
		Host:            DefaultHost,
		Port:            DefaultPort,
		UpstreamTimeout: DefaultUpstreamTimeout,
	}
	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// fileValues mirrors Config for YAML decoding. The upstream timeout is a
// string here so config files can write durations like "15s".
type fileValues struct {
	AuthToken       string `yaml:"auth_token"`
	PhoneNumber     string `yaml:"phone_number"`
	Host            string `yaml:"host"`
	Port            int    `yaml:"port"`
	InsightsAPIURL  string `yaml:"insights_api_url"`
	UpstreamTimeout string `yaml:"upstream_timeout"`
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var fv fileValues
	if err := yaml.NewDecoder(f).Decode(&fv); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fv.AuthToken != "" {
		c.AuthToken = fv.AuthToken
	}
	if fv.PhoneNumber != "" {
		c.PhoneNumber = fv.PhoneNumber
	}
	if fv.Host != "" {
		c.Host = fv.Host
	}
	if fv.Port != 0 {
		c.Port = fv.Port
	}
	if fv.InsightsAPIURL != "" {
		c.InsightsAPIURL = fv.InsightsAPIURL
	}
	if fv.UpstreamTimeout != "" {
		d, err := time.ParseDuration(fv.UpstreamTimeout)
		if err != nil {
			return fmt.Errorf("upstream_timeout in %s must be a duration like 15s, got %q: %w", path, fv.UpstreamTimeout, err)
		}
		c.UpstreamTimeout = d
	}
	return nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv("AUTH_TOKEN"); v != "" {
		c.AuthToken = v
	}
	if v := os.Getenv("MY_NUMBER"); v != "" {
		c.PhoneNumber = v
	}
	if v := os.Getenv("HOST"); v != "" {
		c.Host = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT must be an integer, got %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("INSIGHTS_API_URL"); v != "" {
		c.InsightsAPIURL = v
	}
	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("UPSTREAM_TIMEOUT must be a duration like 15s, got %q: %w", v, err)
		}
		c.UpstreamTimeout = d
	}
	return nil
}

// Validate checks that the configuration is complete and well-formed.
// A failure here is a startup error: the process must exit non-zero.
func (c *Config) Validate() error {
	if c.AuthToken == "" {
		return fmt.Errorf("AUTH_TOKEN is required: set it in the environment or in %s", ConfigPath())
	}
	if c.PhoneNumber == "" {
		return fmt.Errorf("MY_NUMBER is required: set it in the environment or in %s", ConfigPath())
	}
	if !phoneNumberRe.MatchString(c.PhoneNumber) {
		return fmt.Errorf("MY_NUMBER must be digits only in {country_code}{number} form, got %q", c.PhoneNumber)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", c.Port)
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstream timeout must be positive, got %s", c.UpstreamTimeout)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
