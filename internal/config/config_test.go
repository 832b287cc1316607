package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"sharapu/internal/filter"
	"sharapu/internal/store"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Tests in this file mutate the environment, so they do not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("SHARAPU_CONFIG_DIR", cfgDir)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(cfgDir, "content"), cfg.Dir)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join(cfgDir, "logs", "sharapu.log"), cfg.LogFile)
	assert.Equal(t, filter.MatchAny, cfg.TagPolicy)
	assert.Equal(t, store.DefaultCategories(), cfg.Categories)
	assert.Equal(t, 30*time.Second, cfg.CacheTTL)
}

func TestLoad_FileThenEnvThenFlags(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("SHARAPU_CONFIG_DIR", cfgDir)

	yml := `
format: table
log:
  level: debug
filter:
  tags: all
categories:
  - Beginner's Guide
  - SharApu NEWS
cache:
  ttl: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(yml), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Format)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, filter.MatchAll, cfg.TagPolicy)
	assert.Equal(t, []string{"Beginner's Guide", "SharApu NEWS"}, cfg.Categories)
	assert.Equal(t, 5*time.Second, cfg.CacheTTL)

	t.Setenv("SHARAPU_LOG_LEVEL", "warn")
	t.Setenv("SHARAPU_FILTER_TAGS", "any")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, filter.MatchAny, cfg.TagPolicy)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "", "")
	fs.String("match", "", "")
	require.NoError(t, fs.Parse([]string{"--format", "edn", "--match", "all"}))
	cfg, err = Load(WithFlags(
		FlagBinding{Key: KeyFormat, Flag: fs.Lookup("format")},
		FlagBinding{Key: KeyTagMatch, Flag: fs.Lookup("match")},
	))
	require.NoError(t, err)
	assert.Equal(t, "edn", cfg.Format)
	assert.Equal(t, filter.MatchAll, cfg.TagPolicy)
}

func TestLoad_UnchangedFlagsDoNotOverride(t *testing.T) {
	t.Setenv("SHARAPU_CONFIG_DIR", t.TempDir())

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("format", "", "")
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(WithFlags(FlagBinding{Key: KeyFormat, Flag: fs.Lookup("format")}))
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_Errors(t *testing.T) {
	cfgDir := t.TempDir()
	t.Setenv("SHARAPU_CONFIG_DIR", cfgDir)

	_, err := Load(WithConfigPath(filepath.Join(cfgDir, "missing.yaml")))
	require.Error(t, err, "explicit config file must exist")

	_, err = Load(WithConfigPath(""))
	require.Error(t, err)

	_, err = Load(WithFlags(FlagBinding{Key: KeyFormat}))
	require.Error(t, err)

	t.Setenv("SHARAPU_FILTER_TAGS", "some")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "filter.tags")

	t.Setenv("SHARAPU_FILTER_TAGS", "")
	t.Setenv("SHARAPU_FORMAT", "xml")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestLoad_ExplicitPath(t *testing.T) {
	t.Setenv("SHARAPU_CONFIG_DIR", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dir: /tmp/sharapu-content\n"), 0o644))

	cfg, err := Load(WithConfigPath(path))
	require.NoError(t, err)
	assert.Equal(t, "/tmp/sharapu-content", cfg.Dir)
}
