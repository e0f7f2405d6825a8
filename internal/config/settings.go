package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rgehrsitz/creatorcalc/internal/registry"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable override, e.g. CREATORCALC_LOGGING_LEVEL.
const EnvPrefix = "CREATORCALC"

// Settings holds the application settings, as opposed to scenario files
type Settings struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Server   ServerConfig   `mapstructure:"server"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional file output
}

// DefaultsConfig selects the region, niche and period used when a request names none
type DefaultsConfig struct {
	Region     string `mapstructure:"region"`
	Niche      string `mapstructure:"niche"`
	TimePeriod string `mapstructure:"time_period"`
}

// ServerConfig configures the HTTP API
type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output_file", "")
	v.SetDefault("defaults.region", "us")
	v.SetDefault("defaults.niche", registry.DefaultNicheID)
	v.SetDefault("defaults.time_period", registry.DefaultTimePeriodID)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// LoadSettings reads settings from path, or from creatorcalc.yaml in the working directory
// or $HOME/.config/creatorcalc when path is empty. A missing default file is not an error.
// Environment variables override file values.
func LoadSettings(path string) (*Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	} else {
		v.SetConfigName("creatorcalc")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/creatorcalc")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read settings file: %w", err)
			}
		}
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// DefaultSettings returns the built-in settings without reading any file or environment.
func DefaultSettings() *Settings {
	v := viper.New()
	setDefaults(v)
	var settings Settings
	// defaults always decode
	_ = v.Unmarshal(&settings)
	return &settings
}

// Validate checks the settings values
func (s *Settings) Validate() error {
	var errs []error
	switch strings.ToLower(s.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Field: "logging.level", Message: fmt.Sprintf("invalid log level %q", s.Logging.Level)})
	}
	switch strings.ToLower(s.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, &ValidationError{Field: "logging.format", Message: fmt.Sprintf("invalid log format %q", s.Logging.Format)})
	}
	if _, ok := registry.LookupRegion(s.Defaults.Region); !ok {
		errs = append(errs, &ValidationError{Field: "defaults.region", Message: fmt.Sprintf("unknown region %q", s.Defaults.Region)})
	}
	if _, ok := registry.LookupNiche(s.Defaults.Niche); !ok {
		errs = append(errs, &ValidationError{Field: "defaults.niche", Message: fmt.Sprintf("unknown niche %q", s.Defaults.Niche)})
	}
	if _, ok := registry.LookupTimePeriod(s.Defaults.TimePeriod); !ok {
		errs = append(errs, &ValidationError{Field: "defaults.time_period", Message: fmt.Sprintf("unknown time period %q", s.Defaults.TimePeriod)})
	}
	if s.Server.ShutdownTimeout < 0 {
		errs = append(errs, &ValidationError{Field: "server.shutdown_timeout", Message: "cannot be negative"})
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}
