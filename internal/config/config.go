// Package config resolves sharapu settings from defaults, the config file,
// SHARAPU_* environment variables and command-line flags (in rising priority).
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"sharapu/internal/filter"
	"sharapu/internal/store"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the environment variable prefix (SHARAPU_LOG_LEVEL, ...).
	EnvPrefix = "SHARAPU"

	configFileName = "config"
	configFileType = "yaml"
)

// Keys.
const (
	KeyDir        = "dir"
	KeyFormat     = "format"
	KeyPretty     = "pretty"
	KeyLogLevel   = "log.level"
	KeyLogFile    = "log.file"
	KeyTagMatch   = "filter.tags"
	KeyCategories = "categories"
	KeyCacheTTL   = "cache.ttl"
)

type Config struct {
	Dir        string
	Format     string
	Pretty     bool
	LogLevel   string
	LogFile    string
	TagPolicy  filter.TagPolicy
	Categories []string
	CacheTTL   time.Duration
}

// FlagBinding maps a config key to a command-line flag.
type FlagBinding struct {
	Key  string
	Flag *pflag.Flag
}

type loaderConfig struct {
	path  string
	flags []FlagBinding
}

type Option func(*loaderConfig) error

// WithConfigPath reads settings from an explicit file instead of <config dir>/config.yaml.
func WithConfigPath(path string) Option {
	return func(c *loaderConfig) error {
		if strings.TrimSpace(path) == "" {
			return errors.New("config path is required")
		}
		c.path = filepath.Clean(path)
		return nil
	}
}

// WithFlags binds flags over file and environment values.
func WithFlags(bindings ...FlagBinding) Option {
	return func(c *loaderConfig) error {
		for _, b := range bindings {
			if b.Flag == nil {
				return fmt.Errorf("flag for %q is nil", b.Key)
			}
		}
		c.flags = append(c.flags, bindings...)
		return nil
	}
}

// Load resolves the configuration. A missing default config file is not an error;
// a missing explicit one is.
func Load(opts ...Option) (*Config, error) {
	var lc loaderConfig
	for _, o := range opts {
		if err := o(&lc); err != nil {
			return nil, err
		}
	}

	cfgDir, err := store.ConfigDir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v, cfgDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if lc.path != "" {
		v.SetConfigFile(lc.path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", lc.path, err)
		}
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(cfgDir)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	for _, b := range lc.flags {
		if err := v.BindPFlag(b.Key, b.Flag); err != nil {
			return nil, fmt.Errorf("bind flag %s: %w", b.Flag.Name, err)
		}
	}

	return fromViper(v)
}

func setDefaults(v *viper.Viper, cfgDir string) {
	v.SetDefault(KeyDir, filepath.Join(cfgDir, "content"))
	v.SetDefault(KeyFormat, "json")
	v.SetDefault(KeyPretty, false)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, filepath.Join(cfgDir, "logs", "sharapu.log"))
	v.SetDefault(KeyTagMatch, "any")
	v.SetDefault(KeyCategories, store.DefaultCategories())
	v.SetDefault(KeyCacheTTL, "30s")
}

func fromViper(v *viper.Viper) (*Config, error) {
	policy, err := filter.ParseTagPolicy(v.GetString(KeyTagMatch))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", KeyTagMatch, err)
	}

	format := strings.ToLower(strings.TrimSpace(v.GetString(KeyFormat)))
	switch format {
	case "json", "edn", "table":
	default:
		return nil, fmt.Errorf("%s: unknown format %q (want json|edn|table)", KeyFormat, format)
	}

	var cats []string
	for _, c := range v.GetStringSlice(KeyCategories) {
		if c = strings.TrimSpace(c); c != "" {
			cats = append(cats, c)
		}
	}

	return &Config{
		Dir:        strings.TrimSpace(v.GetString(KeyDir)),
		Format:     format,
		Pretty:     v.GetBool(KeyPretty),
		LogLevel:   v.GetString(KeyLogLevel),
		LogFile:    strings.TrimSpace(v.GetString(KeyLogFile)),
		TagPolicy:  policy,
		Categories: cats,
		CacheTTL:   v.GetDuration(KeyCacheTTL),
	}, nil
}
