// File: settings_test.go
// Title: Application Settings Tests
// Description: Tests for loading settings and applying them to an App.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/mCLI/foundation/cli/registry"
	"github.com/msto63/mCLI/foundation/core/config"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tool.toml")
	content := `
name = "tool"
description = "Project tool"
show_name = false
log_level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MCLI_LOG_FORMAT", "json")

	got, err := LoadSettings("tool", path)
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	want := Settings{
		Name:        "tool",
		Description: "Project tool",
		ShowName:    false,
		LogLevel:    "debug",
		LogFormat:   "json",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("LoadSettings() mismatch (-want +got):\n%s", diff)
	}
}

func TestSettingsFromYAMLKeepsDefaults(t *testing.T) {
	cfg, err := config.LoadFromString("description: From yaml\n", config.FormatYAML)
	if err != nil {
		t.Fatal(err)
	}
	got, err := SettingsFrom(cfg)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultSettings()
	want.Description = "From yaml"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SettingsFrom() mismatch (-want +got):\n%s", diff)
	}
}

func TestConfigure(t *testing.T) {
	out := &bytes.Buffer{}
	app := New("tool", Options{Logger: mdwlog.Discard(), Output: out})
	if err := app.Configure(Settings{Name: "renamed", Description: "Renamed tool", ShowName: false}); err != nil {
		t.Fatal(err)
	}
	if err := app.RegisterCommand(registry.NewCommand("noop", registry.Handler{
		Fn: func(context.Context, registry.Args) error { return nil },
	})); err != nil {
		t.Fatal(err)
	}
	if err := app.Run(context.Background(), []string{"noop"}); err != nil {
		t.Fatal(err)
	}
	if app.Name() != "renamed" || app.Description() != "Renamed tool" {
		t.Errorf("Name/Description = %q/%q", app.Name(), app.Description())
	}
	if out.Len() != 0 {
		t.Errorf("banner printed although show_name is false: %q", out.String())
	}
	if err := app.Configure(DefaultSettings()); !mdwerror.HasCode(err, mdwerror.CodeLateRegistration) {
		t.Errorf("Configure() after Run error = %v, want LATE_REGISTRATION", err)
	}
}

func TestConfigureRejectsBadLogLevel(t *testing.T) {
	app := New("tool", Options{Logger: mdwlog.Discard()})
	s := DefaultSettings()
	s.LogLevel = "loud"
	if err := app.Configure(s); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("Configure() error = %v, want CONFIG_ERROR", err)
	}
}

func TestConfigureBanner(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     string
	}{
		{"defaults show the name", DefaultSettings(), "tool\n"},
		{"zero value hides the name", Settings{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			app := New("tool", Options{Logger: mdwlog.Discard(), Output: out})
			if err := app.Configure(tt.settings); err != nil {
				t.Fatal(err)
			}
			if err := app.RegisterCommand(registry.NewCommand("noop", registry.Handler{
				Fn: func(context.Context, registry.Args) error { return nil },
			})); err != nil {
				t.Fatal(err)
			}
			if err := app.Run(context.Background(), []string{"noop"}); err != nil {
				t.Fatal(err)
			}
			if got := out.String(); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}
