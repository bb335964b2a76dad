// File: app.go
// Title: Command-Line Application
// Description: The App ties the registry, parser and executor together and
//              drives one command line through the engine states.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine
// - 2026-10-17 v0.2.0: State machine, help screen and run IDs

package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/executor"
	"github.com/msto63/mCLI/foundation/cli/parser"
	"github.com/msto63/mCLI/foundation/cli/registry"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
)

// Options configures an App
type Options struct {
	Logger        *mdwlog.Logger
	Output        io.Writer // Help screen and banner, defaults to stdout
	ErrOutput     io.Writer // Error reports, defaults to stderr
	HelpRenderer  HelpRenderer
	ErrorRenderer ErrorRenderer
	Resolver      executor.Resolver
}

// App is a command-line application. It is used for a single Run.
type App struct {
	name        string
	description string
	hideName    bool

	registry *registry.Registry
	resolver executor.Resolver

	help   HelpRenderer
	errors ErrorRenderer
	out    io.Writer
	errOut io.Writer

	logger *mdwlog.Logger
	state  State
	runID  string
}

// New creates an application called name
func New(name string, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = mdwlog.GetDefault()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.ErrOutput == nil {
		opts.ErrOutput = os.Stderr
	}
	if opts.HelpRenderer == nil {
		opts.HelpRenderer = PlainRenderer{}
	}
	if opts.ErrorRenderer == nil {
		opts.ErrorRenderer = PlainRenderer{}
	}

	logger := opts.Logger.WithField("app", name)
	return &App{
		name:     name,
		registry: registry.New(registry.Options{Logger: logger}),
		resolver: opts.Resolver,
		help:     opts.HelpRenderer,
		errors:   opts.ErrorRenderer,
		out:      opts.Output,
		errOut:   opts.ErrOutput,
		logger:   logger.WithField("component", "cli"),
		state:    StateIdle,
	}
}

// Name returns the application name
func (a *App) Name() string { return a.name }

// Description returns the application description
func (a *App) Description() string { return a.description }

// SetDescription sets the first line of the help screen
func (a *App) SetDescription(text string) *App {
	a.description = text
	return a
}

// ShowName prints the application name before dispatch (default)
func (a *App) ShowName() *App {
	a.hideName = false
	return a
}

// HideName suppresses the application name before dispatch
func (a *App) HideName() *App {
	a.hideName = true
	return a
}

// SetResolver sets the dependency resolver used when binding handlers
func (a *App) SetResolver(resolver executor.Resolver) *App {
	a.resolver = resolver
	return a
}

// Registry returns the underlying registry
func (a *App) Registry() *registry.Registry { return a.registry }

// State returns the current engine state
func (a *App) State() State { return a.state }

// RunID returns the identifier of the current or last run
func (a *App) RunID() string { return a.runID }

// RegisterArgument declares a value-bearing argument
func (a *App) RegisterArgument(def *definition.Definition) error {
	return a.register(func() error { return a.registry.RegisterArgument(def) })
}

// RegisterSwitch declares a boolean switch
func (a *App) RegisterSwitch(def *definition.Definition) error {
	return a.register(func() error { return a.registry.RegisterSwitch(def) })
}

// RegisterCommand declares a command
func (a *App) RegisterCommand(cmd *registry.Command) error {
	return a.register(func() error { return a.registry.RegisterCommand(cmd) })
}

func (a *App) register(fn func() error) error {
	if !a.state.acceptsRegistration() {
		return lateRegistration(a.state)
	}
	a.transition(StateRegistering)
	return fn()
}

// Run parses args, then shows help or dispatches the selected command. The
// registry is sealed by the first Run and an App runs only once.
func (a *App) Run(ctx context.Context, args []string) error {
	if !a.state.acceptsRegistration() {
		return lateRegistration(a.state)
	}

	a.registry.Seal()
	a.runID = uuid.NewString()
	logger := a.logger.WithRequestID(a.runID)
	defer a.transition(StateDone)

	a.transition(StateParsing)
	p := parser.New(a.registry, parser.Options{Logger: logger})
	result, err := p.Parse(args)
	if err != nil {
		return a.fail(logger, err)
	}

	if !result.HasCommand {
		a.transition(StateHelpShown)
		return a.ShowHelp()
	}

	cmd, ok := a.registry.Command(result.Command)
	if !ok {
		return a.fail(logger, unknownCommand(result.Command))
	}

	a.transition(StateDispatching)
	if !a.hideName {
		if err := a.banner(); err != nil {
			return a.fail(logger, err)
		}
	}

	engine := executor.New(executor.Options{Logger: logger})
	if err := engine.Dispatch(ctx, cmd, a.resolver, a.registry); err != nil {
		return a.fail(logger, err)
	}
	return nil
}

// RunString splits line with shell quoting rules and runs it
func (a *App) RunString(ctx context.Context, line string) error {
	args, err := parser.SplitString(line)
	if err != nil {
		return err
	}
	return a.Run(ctx, args)
}

// ShowHelp renders the help screen to the output
func (a *App) ShowHelp() error {
	return a.help.RenderHelp(a.out, BuildHelp(a.name, a.description, a.registry))
}

// Report renders err to the error output and returns the exit status for it
func (a *App) Report(err error) int {
	if err == nil {
		return 0
	}
	if rerr := a.errors.RenderError(a.errOut, err); rerr != nil {
		a.logger.WarnWithErr("error report failed", rerr)
	}
	return ExitCode(err)
}

func (a *App) banner() error {
	if b, ok := a.help.(BannerRenderer); ok {
		return b.RenderBanner(a.out, a.name)
	}
	_, err := fmt.Fprintln(a.out, a.name)
	return err
}

// fail leaves the user-facing message to Report
func (a *App) fail(logger *mdwlog.Logger, err error) error {
	a.transition(StateError)
	logger.Debug("run failed", mdwlog.Fields{
		"error":      err.Error(),
		"error_code": string(mdwerror.GetCode(err)),
		"state":      a.state.String(),
	})
	return err
}

func (a *App) transition(to State) {
	if a.state == to {
		return
	}
	a.logger.Trace("state changed", mdwlog.Fields{
		"from": a.state.String(),
		"to":   to.String(),
	})
	a.state = to
}

func lateRegistration(state State) error {
	return mdwerror.New("application already ran").
		WithCode(mdwerror.CodeLateRegistration).
		WithOperation("cli.App").
		WithDetail("state", state.String())
}

func unknownCommand(name string) error {
	return mdwerror.New(fmt.Sprintf("unknown command (%s)", name)).
		WithCode(mdwerror.CodeUnknownCommand).
		WithOperation("cli.Run").
		WithDetail("command", name)
}
