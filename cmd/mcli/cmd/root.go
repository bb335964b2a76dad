package cmd

import (
	"context"
	"io"
	"os"

	"github.com/msto63/mCLI/foundation/cli"
	"github.com/msto63/mCLI/foundation/cli/container"
	"github.com/msto63/mCLI/foundation/cli/definition"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
	"github.com/msto63/mCLI/pkg/render"
	"github.com/msto63/mCLI/pkg/version"
)

// ConfigEnv names a settings file to load instead of searching for
// mcli.toml, mcli.yaml or mcli.yml
const ConfigEnv = "MCLI_CONFIG"

// Streams are the writers a run prints to
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Execute runs mcli with args and returns the process exit status
func Execute(ctx context.Context, args []string) int {
	return run(ctx, args, Streams{Out: os.Stdout, Err: os.Stderr})
}

func run(ctx context.Context, args []string, streams Streams) int {
	renderer := render.New(render.Options{Bell: true})

	app, err := newApp(streams, renderer)
	if err != nil {
		_ = renderer.RenderError(streams.Err, err)
		return cli.ExitCode(err)
	}
	return app.Report(app.Run(ctx, args))
}

func newApp(streams Streams, renderer *render.Renderer) (*cli.App, error) {
	settings, err := cli.LoadSettings("mcli", os.Getenv(ConfigEnv))
	if err != nil {
		return nil, err
	}

	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.DefaultLevel(),
		Format: mdwlog.FormatConsole,
		Output: streams.Err,
		Name:   "mcli",
	})

	deps := container.New(container.Options{Logger: logger})
	if err := container.Provide(deps, logger); err != nil {
		return nil, err
	}
	if err := container.Provide(deps, version.Current()); err != nil {
		return nil, err
	}

	app := cli.New("mcli", cli.Options{
		Logger:        logger,
		Output:        streams.Out,
		ErrOutput:     streams.Err,
		HelpRenderer:  renderer,
		ErrorRenderer: renderer,
		Resolver:      deps,
	})
	app.SetDescription("mcli - scaffolding for command-line tools")
	if err := app.Configure(settings); err != nil {
		return nil, err
	}

	if err := register(app, streams.Out); err != nil {
		return nil, mdwerror.Wrap(err, "registering mcli commands")
	}
	return app, nil
}

func register(app *cli.App, out io.Writer) error {
	steps := []func() error{
		func() error {
			return app.RegisterArgument(definition.New("name").
				SetShortcut("n").
				SetFormat("string:1..64").
				SetDescription("Tool name, also the directory it is created in"))
		},
		func() error {
			return app.RegisterArgument(definition.New("dir").
				SetShortcut("d").
				SetFormat("?path").
				SetDescription("Parent directory, defaults to the working directory"))
		},
		func() error {
			return app.RegisterSwitch(definition.New("force").
				SetShortcut("f").
				SetDescription("Overwrite an existing main.go"))
		},
		func() error {
			return app.RegisterSwitch(definition.New("debug").
				SetDescription("Print more details"))
		},
		func() error { return app.RegisterCommand(createCommand(out)) },
		func() error { return app.RegisterCommand(versionCommand(out)) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
