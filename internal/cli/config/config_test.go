package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/stylebridge/internal/testutil"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "stylebridge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.BoolP("verbose", "v", false, "")
	flags.StringP("output", "o", "", "")
	flags.Int("concurrency", 0, "")
	flags.String("config", "", "")
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfigFrom("", t.TempDir(), nil)
	require.NoError(t, err)

	assert.False(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.Equal(t, 0, cfg.Concurrency)
	assert.Empty(t, cfg.Checks)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `output: markdown
concurrency: 2
checks:
  - name: LineLength
    properties:
      max: 100
`)

	t.Run("file over defaults", func(t *testing.T) {
		cfg, err := LoadConfigFrom("", dir, newFlags())
		require.NoError(t, err)
		assert.Equal(t, "markdown", cfg.OutputFormat)
		assert.Equal(t, 2, cfg.Concurrency)
		require.Len(t, cfg.Checks, 1)
		assert.Equal(t, Values{"100"}, cfg.Checks[0].Properties["max"])
		assert.Equal(t, dir, cfg.ProjectRoot)
	})

	t.Run("env over file", func(t *testing.T) {
		t.Setenv("STYLEBRIDGE_OUTPUT", "json")
		cfg, err := LoadConfigFrom("", dir, newFlags())
		require.NoError(t, err)
		assert.Equal(t, "json", cfg.OutputFormat)
	})

	t.Run("flags over env", func(t *testing.T) {
		t.Setenv("STYLEBRIDGE_OUTPUT", "json")
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"-o", "yaml", "--concurrency", "4"}))

		cfg, err := LoadConfigFrom("", dir, flags)
		require.NoError(t, err)
		assert.Equal(t, "yaml", cfg.OutputFormat)
		assert.Equal(t, 4, cfg.Concurrency)
	})

	t.Run("unset flags do not override", func(t *testing.T) {
		flags := newFlags()
		require.NoError(t, flags.Parse([]string{"--verbose"}))

		cfg, err := LoadConfigFrom("", dir, flags)
		require.NoError(t, err)
		assert.True(t, cfg.Verbose)
		assert.Equal(t, "markdown", cfg.OutputFormat)
	})
}

func TestLoadConfigSearchesUpward(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "checks:\n  - name: NeedBraces\n")
	nested := filepath.Join(root, "src", "main")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	cfg, err := LoadConfigFrom("", nested, nil)
	require.NoError(t, err)
	assert.Equal(t, path, cfg.ConfigFile)
	assert.Equal(t, root, cfg.ProjectRoot)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("checks:\n  - name: LeftCurly\n"), 0o600))

	cfg, err := LoadConfigFrom(path, t.TempDir(), nil)
	require.NoError(t, err)
	require.Len(t, cfg.Checks, 1)
	assert.Equal(t, "LeftCurly", cfg.Checks[0].Name)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing explicit file", func(t *testing.T) {
		_, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir(), nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "error reading config file")
	})

	t.Run("invalid output", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "output: html\n")
		_, err := LoadConfigFrom("", dir, nil)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("check without name", func(t *testing.T) {
		dir := t.TempDir()
		writeConfig(t, dir, "checks:\n  - name: TreeWalker\n    children:\n      - properties:\n          max: 3\n")
		_, err := LoadConfigFrom("", dir, nil)
		require.ErrorIs(t, err, ErrInvalidConfig)
		assert.Contains(t, err.Error(), "checks[0].children[0]")
	})
}

func TestProject(t *testing.T) {
	cfg := &Config{Concurrency: 3, Checks: []Check{{Name: "LineLength"}}}
	project := cfg.Project()
	assert.Equal(t, 3, project.Concurrency)
	assert.Equal(t, []string{"LineLength"}, project.CheckNames())
}

func TestGetLogger(t *testing.T) {
	logger := testutil.NewTestLogger(t)
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))

	assert.NotNil(t, GetLogger(context.Background()))
	assert.Equal(t, loggerKey{}, LoggerKey())
}

func TestConfigContext(t *testing.T) {
	_, ok := FromContext(context.Background())
	assert.False(t, ok)

	cfg := &Config{OutputFormat: "json"}
	got, ok := FromContext(WithConfig(context.Background(), cfg))
	require.True(t, ok)
	assert.Same(t, cfg, got)
}
