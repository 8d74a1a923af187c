package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coregx/regexviz/config"
	"github.com/coregx/regexviz/match"
	"github.com/coregx/regexviz/render"
)

func TestValidate_ZeroConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := config.Config{}
	require.NoError(t, cfg.Validate())
}

func TestValidate_InvalidFields_ReturnSentinels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*config.Config)
		want   error
	}{
		{"dialect", func(c *config.Config) { c.Match.Dialect = "pcre" }, config.ErrInvalidDialect},
		{"timeout", func(c *config.Config) { c.Match.Timeout = -time.Second }, config.ErrInvalidTimeout},
		{"flags", func(c *config.Config) { c.Match.Flags = "gx" }, config.ErrInvalidFlags},
		{"format", func(c *config.Config) { c.Output.Format = "xml" }, config.ErrInvalidFormat},
		{"color", func(c *config.Config) { c.Output.Color = "sometimes" }, config.ErrInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Config{}
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.want)
		})
	}
}

func TestSegmenter_MapsMatchSection(t *testing.T) {
	t.Parallel()

	cfg := config.Config{Match: config.MatchConfig{
		Dialect: "ecmascript",
		Timeout: 250 * time.Millisecond,
	}}

	mc := cfg.Segmenter()
	assert.Equal(t, match.DialectECMAScript, mc.Dialect)
	assert.Equal(t, 250*time.Millisecond, mc.MatchTimeout)
	assert.False(t, mc.LiteralFastPath)
	require.NoError(t, mc.Validate())

	empty := config.Config{}
	assert.Equal(t, match.DialectAuto, empty.Segmenter().Dialect)
}

func TestUseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mode     string
		terminal bool
		want     bool
	}{
		{config.ColorAlways, false, true},
		{config.ColorNever, true, false},
		{config.ColorAuto, true, true},
		{config.ColorAuto, false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		cfg := config.Config{Output: config.OutputConfig{Color: tt.mode}}
		assert.Equal(t, tt.want, cfg.UseColor(tt.terminal), "mode=%q terminal=%v", tt.mode, tt.terminal)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDialect, cfg.Match.Dialect)
	assert.Equal(t, config.DefaultTimeout, cfg.Match.Timeout)
	assert.True(t, cfg.Match.LiteralFastPath)
	assert.Empty(t, cfg.Match.Flags)
	assert.Equal(t, render.FormatText, cfg.Format())
	assert.Equal(t, config.ColorAuto, cfg.Output.Color)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regexviz.yaml")
	content := `match:
  dialect: re2
  timeout: 250ms
  literal_fast_path: false
  flags: gi
output:
  format: json
  color: never
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "re2", cfg.Match.Dialect)
	assert.Equal(t, 250*time.Millisecond, cfg.Match.Timeout)
	assert.False(t, cfg.Match.LiteralFastPath)
	assert.Equal(t, "gi", cfg.Match.Flags)
	assert.Equal(t, render.FormatJSON, cfg.Format())
	assert.Equal(t, config.ColorNever, cfg.Output.Color)
}

func TestLoadConfig_SearchesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".regexviz.yaml"), []byte("output:\n  format: yaml\n"), 0o600))

	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, render.FormatYAML, cfg.Format())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regexviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("match:\n  dialect: re2\n"), 0o600))

	t.Setenv("REGEXVIZ_MATCH_DIALECT", "ecmascript")
	t.Setenv("REGEXVIZ_OUTPUT_COLOR", "always")

	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ecmascript", cfg.Match.Dialect)
	assert.Equal(t, config.ColorAlways, cfg.Output.Color)
}

func TestLoadConfig_InvalidValue_ReturnsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regexviz.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  format: xml\n"), 0o600))

	_, err := config.LoadConfig(path)
	require.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestLoadConfig_MissingExplicitFile_ReturnsError(t *testing.T) {
	_, err := config.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
