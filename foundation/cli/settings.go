// File: settings.go
// Title: Application Settings
// Description: Loads application settings from a TOML or YAML file with
//              MCLI_ environment overrides and applies them to an App.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package cli

import (
	"github.com/msto63/mCLI/foundation/core/config"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

// EnvPrefix prefixes environment overrides, e.g. MCLI_LOG_LEVEL
const EnvPrefix = "MCLI"

// Settings are the file-configurable parts of an App. Start from
// DefaultSettings: the zero value has ShowName false and hides the banner.
type Settings struct {
	Name        string `config:"name"`
	Description string `config:"description"`
	ShowName    bool   `config:"show_name"`
	LogLevel    string `config:"log_level"`
	LogFormat   string `config:"log_format"`
}

// DefaultSettings returns the settings used when nothing is configured. The
// empty log fields keep the logger the App was created with.
func DefaultSettings() Settings {
	return Settings{ShowName: true}
}

// LoadSettings reads settings from path. An empty path searches the working
// directory and the user config directory for <app>.toml, <app>.yaml or
// <app>.yml; finding none is not an error.
func LoadSettings(app, path string) (Settings, error) {
	var (
		cfg *config.Config
		err error
	)
	if path == "" {
		options := config.DefaultDiscoveryOptions(app)
		options.EnvPrefix = EnvPrefix
		cfg, err = config.Discover(options)
	} else {
		cfg, err = config.LoadWithOptions(path, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: EnvPrefix,
		})
	}
	if err != nil {
		return Settings{}, err
	}
	return SettingsFrom(cfg)
}

// SettingsFrom binds settings from an already loaded configuration
func SettingsFrom(cfg *config.Config) (Settings, error) {
	settings := DefaultSettings()
	if err := cfg.BindToStruct("", &settings); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Configure applies settings. Empty strings keep the current values;
// ShowName is always applied, so a zero Settings hides the banner.
func (a *App) Configure(s Settings) error {
	if !a.state.acceptsRegistration() {
		return lateRegistration(a.state)
	}

	if s.Name != "" {
		a.name = s.Name
	}
	if s.Description != "" {
		a.description = s.Description
	}
	a.hideName = !s.ShowName

	logger := a.logger
	if s.LogLevel != "" {
		level, err := mdwlog.ParseLevel(s.LogLevel)
		if err != nil {
			return invalidSetting(err, "log_level", s.LogLevel)
		}
		logger = logger.WithLevel(level)
	}
	if s.LogFormat != "" {
		format, err := mdwlog.ParseFormat(s.LogFormat)
		if err != nil {
			return invalidSetting(err, "log_format", s.LogFormat)
		}
		logger = logger.WithFormat(format)
	}
	a.logger = logger
	return nil
}

func invalidSetting(err error, key, value string) error {
	return mdwerror.Wrap(err, "invalid setting "+key).
		WithCode(mdwerror.CodeConfigError).
		WithOperation("cli.Configure").
		WithDetail("key", key).
		WithDetail("value", value)
}
