package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/msto63/mCLI/foundation/cli/registry"
	mdwlog "github.com/msto63/mCLI/foundation/core/log"
	"github.com/msto63/mCLI/internal/scaffold"
)

func createCommand(out io.Writer) *registry.Command {
	return registry.NewCommand("create", registry.Handler{
		Params: []registry.Param{
			registry.Arg("name"),
			registry.Arg("dir"),
			registry.Arg("force"),
			registry.Arg("debug"),
			registry.Dep[*mdwlog.Logger]("log"),
		},
		Fn: func(_ context.Context, args registry.Args) error {
			logger, _ := registry.Dependency[*mdwlog.Logger](args, "log")
			opts := scaffold.Options{
				Name:  args.String("name"),
				Dir:   args.String("dir"),
				Force: args.Bool("force"),
			}
			logger.Debug("generating skeleton", mdwlog.Fields{
				"name":  opts.Name,
				"dir":   opts.Dir,
				"force": opts.Force,
			})

			res, err := scaffold.Generate(opts)
			if err != nil {
				return err
			}

			path := res.Relative
			if args.Bool("debug") {
				path = res.Path
			}
			if res.Overwritten {
				fmt.Fprintf(out, "Overwrote %s\n", path)
			} else {
				fmt.Fprintf(out, "Created %s\n", path)
			}
			return nil
		},
	}).
		SetDescription("Create a command-line tool skeleton with the given name").
		WithRequired("name").
		WithOptional("dir").
		WithSwitch("force", "debug")
}
