// Package config loads engine settings from TOML or YAML files with
// environment variable overrides.
//
// Package: config
// Title: mCLI Configuration Loader
// Description: Reads a configuration file (format detected from the
//              extension), exposes dot notation lookups and binds sections
//              onto tagged structs. Every lookup consults the environment
//              first: with prefix "MCLI" the key "log.level" is overridden
//              by MCLI_LOG_LEVEL.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Trimmed to a synchronous loader; file watching removed
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("mcli.toml", config.LoadOptions{EnvPrefix: "MCLI"})
//	if err != nil {
//		return err
//	}
//
//	var settings struct {
//		Name     string `config:"name"`
//		LogLevel string `config:"log_level"`
//	}
//	err = cfg.BindToStruct("", &settings)
package config
