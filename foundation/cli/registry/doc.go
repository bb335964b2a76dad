// Package registry holds the arguments, switches and commands a CLI
// declares.
//
// Package: registry
// Title: Command-Line Registry
// Description: Stores argument and switch Definitions by name, a shortcut
//              table shared by both, and Commands naming which of them they
//              accept. Registration enforces the uniqueness invariants:
//              names are unique across arguments and switches, shortcuts
//              are unique globally, and commands may only reference names
//              registered before them. Registration order is kept for help
//              output. The registry is used from a single goroutine and
//              does not lock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial object registry
// - 2026-10-15 v0.2.0: Reworked for arguments, switches and commands
//
// Usage:
//
//	reg := registry.New(registry.Options{})
//	reg.RegisterArgument(definition.New("name").SetShortcut("n"))
//	reg.RegisterSwitch(definition.New("force").SetShortcut("f"))
//
//	create := registry.NewCommand("create", registry.Handler{
//		Params: []registry.Param{registry.Arg("name"), registry.Arg("force")},
//		Fn: func(ctx context.Context, args registry.Args) error {
//			return scaffold(args.String("name"), args.Bool("force"))
//		},
//	}).WithRequired("name").WithSwitch("force")
//	reg.RegisterCommand(create)
package registry
