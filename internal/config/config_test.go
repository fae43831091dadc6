package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	testChdir(t, t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logger.Level)
	assert.Equal(t, "console", cfg.Logger.Format)
	assert.Equal(t, "pentasign", cfg.Logger.ServiceName)
	assert.Equal(t, 220.0, cfg.Render.Size)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	body := "logger:\n  level: debug\n  format: json\nrender:\n  size: 512\n  indent: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	t.Setenv("PENTASIGN_OUTPUT_FORMAT", "yaml")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.Equal(t, 512.0, cfg.Render.Size)
	assert.Equal(t, 2, cfg.Render.Indent)
	assert.Equal(t, "yaml", cfg.Output.Format)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(New(), filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_NonFiniteSizeFromEnv(t *testing.T) {
	testChdir(t, t.TempDir())
	t.Setenv("PENTASIGN_RENDER_SIZE", "NaN")

	_, err := Load(New(), "")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Logger: LoggerConfig{Format: "console"},
			Render: RenderConfig{Size: 220},
			Output: OutputConfig{Format: "json"},
		}
	}

	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{"valid", func(*Config) {}, true},
		{"bad log format", func(c *Config) { c.Logger.Format = "xml" }, false},
		{"zero size", func(c *Config) { c.Render.Size = 0 }, false},
		{"NaN size", func(c *Config) { c.Render.Size = math.NaN() }, false},
		{"+Inf size", func(c *Config) { c.Render.Size = math.Inf(1) }, false},
		{"-Inf size", func(c *Config) { c.Render.Size = math.Inf(-1) }, false},
		{"negative indent", func(c *Config) { c.Render.Indent = -1 }, false},
		{"bad output", func(c *Config) { c.Output.Format = "png" }, false},
		{"upper-case output", func(c *Config) { c.Output.Format = "SVG" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := base()
			tc.mutate(&c)
			err := c.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			}
		})
	}
}
