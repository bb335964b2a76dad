// File: app_test.go
// Title: Application Tests
// Description: Tests for the engine states, help fallback, dispatch,
//              error propagation and exit codes.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17

package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/msto63/mCLI/foundation/cli/container"
	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/registry"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

type greeting struct{ prefix string }

type fixture struct {
	app  *App
	out  *bytes.Buffer
	errs *bytes.Buffer
	got  map[string]interface{}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{out: &bytes.Buffer{}, errs: &bytes.Buffer{}}
	f.app = New("greeter", Options{
		Logger:    mdwlog.Discard(),
		Output:    f.out,
		ErrOutput: f.errs,
	})

	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	must(f.app.RegisterArgument(definition.New("name").SetShortcut("n").SetFormat("string:1..16")))
	must(f.app.RegisterArgument(definition.New("times").SetShortcut("t").SetFormat("?int:1..3")))
	must(f.app.RegisterSwitch(definition.New("loud").SetShortcut("l")))
	must(f.app.RegisterCommand(registry.NewCommand("hello", registry.Handler{
		Params: []registry.Param{registry.Arg("name"), registry.Arg("times"), registry.Arg("loud")},
		Fn: func(_ context.Context, args registry.Args) error {
			f.got = map[string]interface{}{}
			for _, name := range []string{"name", "times", "loud"} {
				f.got[name], _ = args.Get(name)
			}
			return nil
		},
	}).SetDescription("Say hello").WithRequired("name").WithOptional("times").WithSwitch("loud")))
	return f
}

func TestRunDispatchesCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want map[string]interface{}
	}{
		{
			name: "long forms",
			args: []string{"--name", "ada", "--loud", "hello"},
			want: map[string]interface{}{"name": "ada", "times": nil, "loud": true},
		},
		{
			name: "shortcuts",
			args: []string{"hello", "-n=bob", "-t=2", "-l"},
			want: map[string]interface{}{"name": "bob", "times": "2", "loud": true},
		},
		{
			name: "switch defaults to false",
			args: []string{"-n=eve", "hello"},
			want: map[string]interface{}{"name": "eve", "times": nil, "loud": false},
		},
		{
			name: "last value wins",
			args: []string{"-n=first", "--name", "second", "hello"},
			want: map[string]interface{}{"name": "second", "times": nil, "loud": false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			if err := f.app.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, f.got); diff != "" {
				t.Errorf("handler args mismatch (-want +got):\n%s", diff)
			}
			if f.app.State() != StateDone {
				t.Errorf("State() = %v, want done", f.app.State())
			}
			if got := f.out.String(); got != "greeter\n" {
				t.Errorf("banner = %q", got)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code mdwerror.Code
		exit int
	}{
		{"unknown long", []string{"--nope", "hello"}, mdwerror.CodeUnknownToken, 20},
		{"unknown shortcut", []string{"-x", "hello"}, mdwerror.CodeUnknownShortcut, 21},
		{"unknown command", []string{"goodbye"}, mdwerror.CodeUnknownCommand, 22},
		{"missing required", []string{"hello"}, mdwerror.CodeMissingRequired, 30},
		{"bad format", []string{"-n=ada", "-t=9", "hello"}, mdwerror.CodeFormatValidation, 31},
		{"empty required value", []string{"--name", "", "hello"}, mdwerror.CodeFormatValidation, 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			err := f.app.Run(context.Background(), tt.args)
			if !mdwerror.HasCode(err, tt.code) {
				t.Fatalf("Run() error = %v, want code %s", err, tt.code)
			}
			if got := ExitCode(err); got != tt.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tt.exit)
			}
			if f.got != nil {
				t.Error("handler ran")
			}
			if f.app.State() != StateDone {
				t.Errorf("State() = %v, want done", f.app.State())
			}
		})
	}
}

func TestRunWithoutCommandShowsHelp(t *testing.T) {
	f := newFixture(t)
	f.app.SetDescription("Greets people")

	if err := f.app.Run(context.Background(), []string{"--name", "ada"}); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if f.got != nil {
		t.Error("handler ran")
	}
	out := f.out.String()
	for _, want := range []string{"Greets people\n", "hello:\n", "--name [--times] [[--loud]]", "--name, -n:\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("help output missing %q:\n%s", want, out)
		}
	}
}

func TestRunOnlyOnce(t *testing.T) {
	f := newFixture(t)
	if err := f.app.Run(context.Background(), nil); err != nil {
		t.Fatalf("first Run() error = %v", err)
	}
	first := f.app.RunID()
	if _, err := uuid.Parse(first); err != nil {
		t.Errorf("RunID() = %q is not a uuid", first)
	}

	if err := f.app.Run(context.Background(), nil); !mdwerror.HasCode(err, mdwerror.CodeLateRegistration) {
		t.Errorf("second Run() error = %v, want LATE_REGISTRATION", err)
	}
	if err := f.app.RegisterSwitch(definition.New("late")); !mdwerror.HasCode(err, mdwerror.CodeLateRegistration) {
		t.Errorf("RegisterSwitch() after Run error = %v, want LATE_REGISTRATION", err)
	}
	if f.app.RunID() != first {
		t.Error("rejected Run changed the run ID")
	}
}

func TestRunHandlerFailure(t *testing.T) {
	app := New("tool", Options{Logger: mdwlog.Discard(), Output: &bytes.Buffer{}})
	app.HideName()
	cause := errors.New("disk full")
	if err := app.RegisterCommand(registry.NewCommand("save", registry.Handler{
		Fn: func(context.Context, registry.Args) error { return cause },
	})); err != nil {
		t.Fatal(err)
	}

	err := app.Run(context.Background(), []string{"save"})
	if !errors.Is(err, cause) {
		t.Errorf("Run() error = %v, want to wrap %v", err, cause)
	}
	if got := ExitCode(err); got != 40 {
		t.Errorf("ExitCode() = %d, want 40", got)
	}
}

func TestFailureReportsOneMessage(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"handler error", []string{"save"}, "Error: disk full\n"},
		{"handler panic", []string{"crash"}, "Error: out of range\n"},
		{"missing required", []string{"copy"}, "Error: missing required argument --src\n"},
		{"unknown command", []string{"nope"}, "Error: unknown command (nope)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			logger := mdwlog.NewWithConfig(mdwlog.Config{
				Level:  mdwlog.LevelWarn,
				Format: mdwlog.FormatText,
				Output: &stderr,
			})
			app := New("tool", Options{Logger: logger, Output: &bytes.Buffer{}, ErrOutput: &stderr})

			must := func(err error) {
				t.Helper()
				if err != nil {
					t.Fatal(err)
				}
			}
			must(app.RegisterArgument(definition.New("src")))
			must(app.RegisterCommand(registry.NewCommand("save", registry.Handler{
				Fn: func(context.Context, registry.Args) error { return errors.New("disk full") },
			})))
			must(app.RegisterCommand(registry.NewCommand("crash", registry.Handler{
				Fn: func(context.Context, registry.Args) error { panic("out of range") },
			})))
			must(app.RegisterCommand(registry.NewCommand("copy", registry.Handler{
				Params: []registry.Param{registry.Arg("src")},
				Fn:     func(context.Context, registry.Args) error { return nil },
			}).WithRequired("src")))

			app.Report(app.Run(context.Background(), tt.args))
			if got := stderr.String(); got != tt.want {
				t.Errorf("error output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRunResolvesDependencies(t *testing.T) {
	out := &bytes.Buffer{}
	c := container.New(container.Options{Logger: mdwlog.Discard()})
	if err := container.Provide(c, &greeting{prefix: "hi"}); err != nil {
		t.Fatal(err)
	}

	app := New("tool", Options{Logger: mdwlog.Discard(), Output: out, Resolver: c})
	app.HideName()
	var got string
	if err := app.RegisterCommand(registry.NewCommand("greet", registry.Handler{
		Params: []registry.Param{registry.Dep[*greeting]("g")},
		Fn: func(_ context.Context, args registry.Args) error {
			g, ok := registry.Dependency[*greeting](args, "g")
			if !ok {
				return errors.New("no greeting bound")
			}
			got = g.prefix
			return nil
		},
	})); err != nil {
		t.Fatal(err)
	}

	if err := app.RunString(context.Background(), "greet"); err != nil {
		t.Fatalf("RunString() error = %v", err)
	}
	if got != "hi" {
		t.Errorf("dependency prefix = %q, want hi", got)
	}
	if out.Len() != 0 {
		t.Errorf("hidden name printed %q", out.String())
	}
}

func TestRunUnresolvedDependency(t *testing.T) {
	app := New("tool", Options{Logger: mdwlog.Discard(), Output: &bytes.Buffer{}})
	if err := app.RegisterCommand(registry.NewCommand("greet", registry.Handler{
		Params: []registry.Param{registry.Dep[*greeting]("g")},
		Fn:     func(context.Context, registry.Args) error { return nil },
	})); err != nil {
		t.Fatal(err)
	}

	err := app.Run(context.Background(), []string{"greet"})
	if !mdwerror.HasCode(err, mdwerror.CodeUnresolvedDependency) {
		t.Errorf("Run() error = %v, want UNRESOLVED_DEPENDENCY", err)
	}
}

func TestReport(t *testing.T) {
	f := newFixture(t)
	err := f.app.Run(context.Background(), []string{"goodbye"})

	if got := f.app.Report(err); got != 22 {
		t.Errorf("Report() = %d, want 22", got)
	}
	if got, want := f.errs.String(), "Error: unknown command (goodbye)\n"; got != want {
		t.Errorf("error output = %q, want %q", got, want)
	}
	if got := f.app.Report(nil); got != 0 {
		t.Errorf("Report(nil) = %d, want 0", got)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"duplicate", mdwerror.New("dup").WithCode(mdwerror.CodeDuplicateName), 10},
		{"wrapped", mdwerror.Wrap(mdwerror.New("x").WithCode(mdwerror.CodeUnknownShortcut), "outer"), 21},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
