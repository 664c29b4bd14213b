package main

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/zam-dot/articleparams/internal/appearance"
	"github.com/zam-dot/articleparams/internal/apperr"
)

// Config holds reader settings loaded from YAML, flags and environment.
type Config struct {
	Source string    `yaml:"source"`
	Log    LogConfig `yaml:"log"`
	UI     UIConfig  `yaml:"ui"`
}

// LogConfig controls the rotating log file.
type LogConfig struct {
	Level      string `yaml:"level"       validate:"omitempty,oneof=trace debug info warn error disabled"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0,lte=1024"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0,lte=100"`
	Human      bool   `yaml:"human"`
}

// UIConfig toggles terminal features.
type UIConfig struct {
	Mouse     bool `yaml:"mouse"`
	AltScreen bool `yaml:"alt_screen"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Source: builtinSource,
		Log: LogConfig{
			Level:      "info",
			File:       defaultLogFile(),
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
		UI: UIConfig{
			Mouse:     true,
			AltScreen: true,
		},
	}
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "articleparams", "articleparams.log")
}

// LoadConfig reads path over the defaults. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if strings.TrimSpace(path) == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), apperr.NewParseError(path, err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultConfig(), apperr.NewParseError(path, err)
	}

	if err := config.Validate(); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// Validate checks field ranges with the shared validator.
func (c Config) Validate() error {
	if err := appearance.Validator().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperr.NewValidationError(fe.Namespace(), "failed "+fe.Tag()+" validation", err)
		}
		return apperr.NewValidationError("config", "invalid configuration", err)
	}
	return nil
}

func applyEnvOverrides(config Config) Config {
	if val := os.Getenv("ARTICLEPARAMS_SOURCE"); val != "" {
		config.Source = val
	}
	if val := os.Getenv("ARTICLEPARAMS_LOG_LEVEL"); val != "" {
		config.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("ARTICLEPARAMS_LOG_FILE"); val != "" {
		config.Log.File = val
	}
	if val := os.Getenv("ARTICLEPARAMS_MOUSE"); val != "" {
		if enabled, err := strconv.ParseBool(val); err == nil {
			config.UI.Mouse = enabled
		}
	}

	return config
}
