package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultBaseURL      = "https://mlb24.theshow.com/apis"
	DefaultUserAgent    = "showmarket/1.0"
	DefaultAddr         = ":8080"
	DefaultTimeout      = 15 * time.Second
	DefaultReadTimeout  = 10 * time.Second
	DefaultWriteTimeout = 30 * time.Second
	DefaultWindowSize   = 5
	minWindowSize       = 3
)

// Config holds all application configuration.
type Config struct {
	Upstream struct {
		BaseURL   string        `yaml:"base_url"`
		Timeout   time.Duration `yaml:"timeout"`
		UserAgent string        `yaml:"user_agent"`
	} `yaml:"upstream"`
	Server struct {
		Addr          string        `yaml:"addr"`
		AllowedOrigin string        `yaml:"allowed_origin"`
		ReadTimeout   time.Duration `yaml:"read_timeout"`
		WriteTimeout  time.Duration `yaml:"write_timeout"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"log"`
	Pager struct {
		WindowSize int `yaml:"window_size"`
	} `yaml:"pager"`
}

// ValidationError reports one invalid configuration field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config %s: %s", e.Field, e.Reason)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if len(data) > 0 {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	env := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := env("SHOWMARKET_BASE_URL"); ok {
		c.Upstream.BaseURL = v
	}
	if v, ok := env("SHOWMARKET_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := env("SHOWMARKET_LOG_LEVEL"); ok {
		c.Log.Level = v
	}
	if v, ok := env("SHOWMARKET_LOG_FORMAT"); ok {
		c.Log.Format = v
	}
	if v, ok := env("SHOWMARKET_LOG_FILE"); ok {
		c.Log.File = v
	}
	if v, ok := env("SHOWMARKET_WINDOW_SIZE"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Field: "SHOWMARKET_WINDOW_SIZE", Reason: fmt.Sprintf("not an integer: %q", v)}
		}
		c.Pager.WindowSize = n
	}
	if v, ok := env("SHOWMARKET_TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return &ValidationError{Field: "SHOWMARKET_TIMEOUT", Reason: fmt.Sprintf("not a duration: %q", v)}
		}
		c.Upstream.Timeout = d
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = DefaultBaseURL
	}
	if c.Upstream.Timeout == 0 {
		c.Upstream.Timeout = DefaultTimeout
	}
	if c.Upstream.UserAgent == "" {
		c.Upstream.UserAgent = DefaultUserAgent
	}
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.AllowedOrigin == "" {
		c.Server.AllowedOrigin = "*"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = DefaultReadTimeout
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = DefaultWriteTimeout
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "json"
	}
	if c.Pager.WindowSize == 0 {
		c.Pager.WindowSize = DefaultWindowSize
	}
}

// Validate checks every field a running process depends on.
func (c *Config) Validate() error {
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return &ValidationError{Field: "upstream.base_url", Reason: "must be an absolute http(s) URL"}
	}
	if c.Upstream.Timeout <= 0 {
		return &ValidationError{Field: "upstream.timeout", Reason: "must be positive"}
	}
	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 {
		return &ValidationError{Field: "server", Reason: "timeouts must not be negative"}
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Field: "log.level", Reason: fmt.Sprintf("unknown level %q", c.Log.Level)}
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return &ValidationError{Field: "log.format", Reason: fmt.Sprintf("unknown format %q", c.Log.Format)}
	}
	if c.Pager.WindowSize < minWindowSize {
		return &ValidationError{Field: "pager.window_size", Reason: fmt.Sprintf("must be at least %d", minWindowSize)}
	}
	return nil
}
