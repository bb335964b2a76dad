// Package cli is the command-line front-end engine.
//
// Package: cli
// Title: mCLI Engine
// Description: An App collects argument, switch and command declarations,
//              then parses one command line, binds the parsed values to the
//              selected command's handler and runs it. Without a command
//              token the help screen is rendered. Errors are returned to the
//              caller, which picks the process exit status with ExitCode.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial high-level engine
// - 2026-10-16 v0.2.0: Command-line engine with help model and exit codes
//
// Usage:
//
//	app := cli.New("greeter", cli.Options{})
//	app.RegisterArgument(definition.New("name").SetShortcut("n"))
//	app.RegisterCommand(registry.NewCommand("hello", registry.Handler{
//		Params: []registry.Param{registry.Arg("name")},
//		Fn: func(ctx context.Context, args registry.Args) error {
//			fmt.Println("hello", args.String("name"))
//			return nil
//		},
//	}).WithRequired("name"))
//
//	os.Exit(app.Report(app.Run(context.Background(), os.Args[1:])))
package cli
