package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. VECNAME_LOG_LEVEL.
const EnvPrefix = "VECNAME"

// Config holds all vecname configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Engine EngineConfig `mapstructure:"engine"`
	Output OutputConfig `mapstructure:"output"`
}

// LogConfig controls the stderr logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	JSON  bool   `mapstructure:"json"`
}

// EngineConfig holds classification engine settings.
type EngineConfig struct {
	LegacyTable     bool   `mapstructure:"legacy_table"`     // merge the 6x keyword table
	KeywordResolver string `mapstructure:"keyword_resolver"` // "opm", "none"
}

// OutputConfig holds output destination settings.
type OutputConfig struct {
	Format    string `mapstructure:"format"`    // "json", "yaml", "text"
	Verbosity string `mapstructure:"verbosity"` // "minimal", "standard", "full"
	Pretty    bool   `mapstructure:"pretty"`
	File      string `mapstructure:"file"` // NDJSON file path, empty for none
}

// SetDefaults registers every key with its default so env overrides are seen
// by Unmarshal.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.json", false)
	v.SetDefault("engine.legacy_table", true)
	v.SetDefault("engine.keyword_resolver", "opm")
	v.SetDefault("output.format", "json")
	v.SetDefault("output.verbosity", "standard")
	v.SetDefault("output.pretty", false)
	v.SetDefault("output.file", "")
}

// New returns a viper instance with defaults, env binding and the optional
// vecname.{yaml,toml} config file from the working directory or ~/.vecname.
func New() (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	v.SetConfigName("vecname")
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".vecname"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "read config file")
		}
	}
	return v, nil
}

// Load reads configuration from the config file and VECNAME_* environment
// variables, with sensible defaults.
func Load() (Config, error) {
	v, err := New()
	if err != nil {
		return Config{}, err
	}
	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates configuration from v.
func LoadWithViper(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	if err := oneOf("output.format", c.Output.Format, "json", "yaml", "text"); err != nil {
		return err
	}
	if err := oneOf("output.verbosity", c.Output.Verbosity, "minimal", "standard", "full"); err != nil {
		return err
	}
	return oneOf("engine.keyword_resolver", c.Engine.KeywordResolver, "opm", "none")
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return errors.Newf("config %s: %q is not one of %s", key, value, strings.Join(allowed, ", "))
}
