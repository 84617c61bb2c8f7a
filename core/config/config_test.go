package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/tohtml5/core/outline"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOHTML5_CONFIG", "")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
	assert.False(t, cfg.Passes.Any())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[passes]
hgroup = true
section = true

[output]
format = "json"
scope = "main"

[input]
format = "markdown"

[fetch]
timeout = "5s"
user_agent = "bot/1"

[server]
addr = ":9090"
max_body_bytes = 2048
`)

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, outline.Passes{Group: true, Section: true}, cfg.Passes)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "main", cfg.Scope)
	assert.Equal(t, "markdown", cfg.InputFormat)
	assert.Equal(t, 5*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "bot/1", cfg.UserAgent)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, int64(2048), cfg.MaxBodyBytes)
}

func TestLoadDefaultFileFromWorkingDir(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "[output]\nformat = \"markdown\"\n")
	t.Chdir(dir)
	t.Setenv("TOHTML5_CONFIG", "")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "markdown", cfg.Format)
	assert.Equal(t, Default().Addr, cfg.Addr)
}

func TestLoadConfigFromEnvPath(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[passes]\nnormalize = true\n")
	t.Setenv("TOHTML5_CONFIG", path)

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, outline.Passes{Normalize: true}, cfg.Passes)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[output]\nformat = \"json\"\n")
	t.Setenv("TOHTML5_FORMAT", "pdf")
	t.Setenv("TOHTML5_SCOPE", "article")
	t.Setenv("TOHTML5_FETCH_TIMEOUT", "1m")
	t.Setenv("TOHTML5_MAX_BODY_BYTES", "100")
	t.Setenv("TOHTML5_ADDR", "127.0.0.1:0")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "pdf", cfg.Format)
	assert.Equal(t, "article", cfg.Scope)
	assert.Equal(t, time.Minute, cfg.FetchTimeout)
	assert.Equal(t, int64(100), cfg.MaxBodyBytes)
	assert.Equal(t, "127.0.0.1:0", cfg.Addr)
}

func TestLoadIgnoresMalformedEnvNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TOHTML5_CONFIG", "")
	t.Setenv("TOHTML5_FETCH_TIMEOUT", "soon")
	t.Setenv("TOHTML5_MAX_BODY_BYTES", "lots")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, Default().FetchTimeout, cfg.FetchTimeout)
	assert.Equal(t, Default().MaxBodyBytes, cfg.MaxBodyBytes)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("[passes\nhgroup = "), 0644))
	_, err = Load(bad)
	assert.Error(t, err)

	timeout := filepath.Join(dir, "timeout.toml")
	require.NoError(t, os.WriteFile(timeout, []byte("[fetch]\ntimeout = \"forever\"\n"), 0644))
	_, err = Load(timeout)
	assert.ErrorContains(t, err, "fetch.timeout")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"format", func(c *Config) { c.Format = "docx" }},
		{"input format", func(c *Config) { c.InputFormat = "rst" }},
		{"timeout", func(c *Config) { c.FetchTimeout = 0 }},
		{"body limit", func(c *Config) { c.MaxBodyBytes = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
