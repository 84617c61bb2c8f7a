// Package config loads tohtml5 settings. Values come from built-in defaults,
// then an optional TOML file, then TOHTML5_* environment variables; command
// line flags are applied on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/gaurav-prasanna/tohtml5/core"
	"github.com/gaurav-prasanna/tohtml5/core/fetch"
	"github.com/gaurav-prasanna/tohtml5/core/outline"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "tohtml5.toml"

type Config struct {
	// Passes applied when a caller selects none explicitly.
	Passes outline.Passes

	Format      string
	InputFormat string
	Scope       string

	FetchTimeout time.Duration
	UserAgent    string

	Addr         string
	MaxBodyBytes int64
}

// fileConfig mirrors the TOML layout.
//
//	[passes]
//	hgroup = true
//	section = true
//	normalize = false
//
//	[output]
//	format = "html"
//	scope = "main"
//
//	[input]
//	format = "auto"
//
//	[fetch]
//	timeout = "30s"
//	user_agent = "..."
//
//	[server]
//	addr = ":8080"
//	max_body_bytes = 10485760
type fileConfig struct {
	Passes struct {
		HGroup    *bool `toml:"hgroup"`
		Section   *bool `toml:"section"`
		Normalize *bool `toml:"normalize"`
	} `toml:"passes"`
	Output struct {
		Format string `toml:"format"`
		Scope  string `toml:"scope"`
	} `toml:"output"`
	Input struct {
		Format string `toml:"format"`
	} `toml:"input"`
	Fetch struct {
		Timeout   string `toml:"timeout"`
		UserAgent string `toml:"user_agent"`
	} `toml:"fetch"`
	Server struct {
		Addr         string `toml:"addr"`
		MaxBodyBytes int64  `toml:"max_body_bytes"`
	} `toml:"server"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Format:       core.FormatHTML,
		InputFormat:  core.InputAuto,
		FetchTimeout: fetch.DefaultTimeout,
		UserAgent:    fetch.DefaultUserAgent,
		Addr:         ":8080",
		MaxBodyBytes: 10 << 20, // 10MB
	}
}

// Load builds the configuration. path names a TOML file; when empty,
// $TOHTML5_CONFIG is used, then ./tohtml5.toml if it exists. A named file
// that does not exist is an error.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("TOHTML5_CONFIG")
	}
	if path != "" {
		if err := cfg.loadFile(path); err != nil {
			return Config{}, err
		}
	} else if err := cfg.loadFile(DefaultFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	cfg.Format = envOr("TOHTML5_FORMAT", cfg.Format)
	cfg.InputFormat = envOr("TOHTML5_INPUT_FORMAT", cfg.InputFormat)
	cfg.Scope = envOr("TOHTML5_SCOPE", cfg.Scope)
	cfg.FetchTimeout = envDuration("TOHTML5_FETCH_TIMEOUT", cfg.FetchTimeout)
	cfg.UserAgent = envOr("TOHTML5_USER_AGENT", cfg.UserAgent)
	cfg.Addr = envOr("TOHTML5_ADDR", cfg.Addr)
	cfg.MaxBodyBytes = envInt64("TOHTML5_MAX_BODY_BYTES", cfg.MaxBodyBytes)

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	setBool(&c.Passes.Group, fc.Passes.HGroup)
	setBool(&c.Passes.Section, fc.Passes.Section)
	setBool(&c.Passes.Normalize, fc.Passes.Normalize)
	setString(&c.Format, fc.Output.Format)
	setString(&c.Scope, fc.Output.Scope)
	setString(&c.InputFormat, fc.Input.Format)
	setString(&c.UserAgent, fc.Fetch.UserAgent)
	setString(&c.Addr, fc.Server.Addr)
	if fc.Server.MaxBodyBytes != 0 {
		c.MaxBodyBytes = fc.Server.MaxBodyBytes
	}
	if fc.Fetch.Timeout != "" {
		d, err := time.ParseDuration(fc.Fetch.Timeout)
		if err != nil {
			return fmt.Errorf("parsing config %s: fetch.timeout: %w", path, err)
		}
		c.FetchTimeout = d
	}
	return nil
}

// Validate checks formats and limits.
func (c Config) Validate() error {
	if !slices.Contains(core.Formats, c.Format) {
		return fmt.Errorf("unsupported output format %q (want one of %v)", c.Format, core.Formats)
	}
	if !slices.Contains(core.InputFormats, c.InputFormat) {
		return fmt.Errorf("unsupported input format %q (want one of %v)", c.InputFormat, core.InputFormats)
	}
	if c.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %s", c.FetchTimeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("max body bytes must be positive, got %d", c.MaxBodyBytes)
	}
	return nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
