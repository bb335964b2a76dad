package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/msto63/mCLI/foundation/cli/registry"
	"github.com/msto63/mCLI/pkg/version"
)

func versionCommand(out io.Writer) *registry.Command {
	return registry.NewCommand("version", registry.Handler{
		Params: []registry.Param{
			registry.Arg("debug"),
			registry.Dep[*version.Info]("build"),
		},
		Fn: func(_ context.Context, args registry.Args) error {
			build, _ := registry.Dependency[*version.Info](args, "build")
			fmt.Fprintln(out, build.Short("mcli"))
			if args.Bool("debug") {
				for _, line := range build.Details() {
					fmt.Fprintln(out, "  "+line)
				}
			}
			return nil
		},
	}).SetDescription("Show the version").WithSwitch("debug")
}
