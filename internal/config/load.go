package config

import (
	"context"
	stderrors "errors"
	"os"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-viper/mapstructure/v2"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/mrz1836/rcli/internal/constants"
	"github.com/mrz1836/rcli/internal/errors"
)

// newViperInstance creates a new Viper instance with standard rcli configuration.
// This includes environment variable prefix (RCLI_), key replacer, and defaults.
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// isConfigNotFoundError returns true if the error is a viper config file not found error.
func isConfigNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	var configNotFoundErr viper.ConfigFileNotFoundError
	return stderrors.As(err, &configNotFoundErr)
}

// unmarshalAndValidate unmarshals viper config into Config struct and validates it.
func unmarshalAndValidate(ctx context.Context, v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg, viperDecoderOption()); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	logger := zerolog.Ctx(ctx).With().Str("component", "config").Logger()
	logger.Debug().
		Str("text.format", cfg.Text.Format).
		Int("genpass.length", cfg.GenPass.Length).
		Str("base64.format", cfg.Base64.Format).
		Str("csv.format", cfg.CSV.Format).
		Msg("configuration loaded and unmarshaled")

	if err := Validate(&cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return &cfg, nil
}

// Load reads configuration from all available sources with proper precedence.
// Configuration is loaded in the following order (highest precedence first):
//  1. Environment variables (RCLI_* prefix)
//  2. Project config (.rcli/config.yaml)
//  3. Global config (~/.rcli/config.yaml)
//  4. Built-in defaults
//
// Missing config files are not an error.
func Load(ctx context.Context) (*Config, error) {
	v := newViperInstance()

	if err := loadGlobalConfig(v); err != nil {
		return nil, err
	}
	if err := loadProjectConfig(v); err != nil {
		return nil, err
	}

	return unmarshalAndValidate(ctx, v)
}

// loadGlobalConfig attempts to load the global config file.
// Returns nil if the file doesn't exist or home directory cannot be determined.
func loadGlobalConfig(v *viper.Viper) error {
	path, err := GlobalConfigPath()
	if err != nil || !fileExists(path) {
		return nil //nolint:nilerr // missing home directory means no global config
	}

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read global config file")
	}
	return nil
}

// loadProjectConfig attempts to load the project config file (.rcli/config.yaml).
// Returns nil if the file doesn't exist.
func loadProjectConfig(v *viper.Viper) error {
	path := ProjectConfigPath()
	if !fileExists(path) {
		return nil
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) {
		return errors.Wrap(err, "failed to read project config file")
	}
	return nil
}

// fileExists returns true if the file at path exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadFromPaths loads configuration from specific file paths for testing.
// Either path can be empty to skip that level.
func LoadFromPaths(ctx context.Context, projectConfigPath, globalConfigPath string) (*Config, error) {
	v := newViperInstance()

	if globalConfigPath != "" {
		v.SetConfigFile(globalConfigPath)
		if err := v.ReadInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read global config: %s", globalConfigPath)
		}
	}

	if projectConfigPath != "" {
		v.SetConfigFile(projectConfigPath)
		if err := v.MergeInConfig(); err != nil && !isConfigNotFoundError(err) && !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "failed to read project config: %s", projectConfigPath)
		}
	}

	return unmarshalAndValidate(ctx, v)
}

// setDefaults configures all default values on the Viper instance.
// IMPORTANT: Keys must match the YAML tag names exactly for proper mapping.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("text.format", d.Text.Format)
	v.SetDefault("text.key_dir", d.Text.KeyDir)

	v.SetDefault("genpass.length", d.GenPass.Length)
	v.SetDefault("genpass.uppercase", d.GenPass.Uppercase)
	v.SetDefault("genpass.lowercase", d.GenPass.Lowercase)
	v.SetDefault("genpass.number", d.GenPass.Number)
	v.SetDefault("genpass.symbol", d.GenPass.Symbol)

	v.SetDefault("base64.format", d.Base64.Format)

	v.SetDefault("csv.format", d.CSV.Format)
	v.SetDefault("csv.delimiter", d.CSV.Delimiter.String())
	v.SetDefault("csv.header", d.CSV.Header)
}

// viperDecoderOption returns the decoder options for Viper unmarshal.
// This configures mapstructure to decode one-character strings into a Delimiter.
func viperDecoderOption() viper.DecoderConfigOption {
	return viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			stringToDelimiterHookFunc(),
		),
	)
}

// stringToDelimiterHookFunc converts a string to a Delimiter. `\t` is accepted
// as an escape for tab since YAML and environment values rarely carry a raw tab.
func stringToDelimiterHookFunc() mapstructure.DecodeHookFuncType {
	delimType := reflect.TypeOf(Delimiter(0))
	return func(f, t reflect.Type, data any) (any, error) {
		if f.Kind() != reflect.String || t != delimType {
			return data, nil
		}
		s, _ := data.(string)
		if s == `\t` {
			return Delimiter('\t'), nil
		}
		if utf8.RuneCountInString(s) != 1 {
			return nil, errors.Wrapf(errors.ErrConfigInvalidCSV,
				"csv.delimiter must be a single character, got %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return Delimiter(r), nil
	}
}
