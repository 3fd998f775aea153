package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig holds HTTP server and logging options.
type ServerConfig struct {
	Port               string `mapstructure:"port"`
	Env                string `mapstructure:"env"`       // prod, dev or local
	LogLevel           string `mapstructure:"log_level"` // debug, info, warn, error (default: determined by env)
	MaxBodyBytes       int64  `mapstructure:"max_body_bytes"`
	DefaultSearchLimit int    `mapstructure:"default_search_limit"`
	MaxSearchLimit     int    `mapstructure:"max_search_limit"`
}

// Config is the full application configuration.
type Config struct {
	Server  ServerConfig    `mapstructure:"server"`
	Matcher MatcherSettings `mapstructure:"matcher"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "dev")
	v.SetDefault("server.log_level", "")
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.default_search_limit", 20)
	v.SetDefault("server.max_search_limit", 200)

	// Matcher keys must be known to viper for LABELMATCH_MATCHER_* variables to apply.
	m := DefaultMatcherSettings()
	v.SetDefault("matcher.fuzzy_damping", m.FuzzyDamping)
	v.SetDefault("matcher.short_query_fuzzy_threshold", m.ShortQueryFuzzyThreshold)
	v.SetDefault("matcher.long_query_fuzzy_threshold", m.LongQueryFuzzyThreshold)
	v.SetDefault("matcher.short_query_max_length", m.ShortQueryMaxLength)
	v.SetDefault("matcher.min_fuzzy_query_length", m.MinFuzzyQueryLength)
	v.SetDefault("matcher.parallel_threshold", m.ParallelThreshold)
	v.SetDefault("matcher.max_workers", m.MaxWorkers)
}

// NewViper returns a viper instance wired for labelmatch: defaults, the
// LABELMATCH_ environment prefix and an optional config file.
func NewViper(cfgFile string) *viper.Viper {
	v := viper.New()
	SetDefaults(v)

	v.SetEnvPrefix("labelmatch")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("labelmatch")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}
	return v
}

// Load reads the config file (if any) and decodes the full configuration.
// A missing default config file is not an error; a missing explicit file is.
func Load(v *viper.Viper) (Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg.Matcher.ApplyDefaults()
	if problems := cfg.Matcher.Validate(); len(problems) > 0 {
		return Config{}, fmt.Errorf("invalid matcher settings: %s", strings.Join(problems, "; "))
	}
	if cfg.Server.DefaultSearchLimit <= 0 || cfg.Server.MaxSearchLimit < cfg.Server.DefaultSearchLimit {
		return Config{}, fmt.Errorf("invalid search limits: default %d, max %d",
			cfg.Server.DefaultSearchLimit, cfg.Server.MaxSearchLimit)
	}

	return cfg, nil
}
