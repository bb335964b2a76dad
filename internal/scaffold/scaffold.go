// File: scaffold.go
// Title: CLI Skeleton Generator
// Description: Writes the main.go of a new command-line tool built on the
//              mCLI engine.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial generator

package scaffold

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	"github.com/msto63/mCLI/foundation/utils/filex"
)

// FileName is the name of the generated file
const FileName = "main.go"

const mainTemplate = `// Command {{.Name}} was generated by mcli create.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/msto63/mCLI/foundation/cli"
	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/registry"
)

func main() {
	app := cli.New({{printf "%q" .Name}}, cli.Options{})
	app.SetDescription({{printf "%q" .Description}})

	must(app.RegisterArgument(definition.New("who").
		SetShortcut("w").
		SetFormat("?string:1..64").
		SetDescription("Who to greet")))

	must(app.RegisterCommand(registry.NewCommand("hello", registry.Handler{
		Params: []registry.Param{registry.Arg("who")},
		Fn: func(_ context.Context, args registry.Args) error {
			who := args.String("who")
			if who == "" {
				who = "world"
			}
			fmt.Printf("hello, %s\n", who)
			return nil
		},
	}).SetDescription("Print a greeting").WithOptional("who")))

	os.Exit(app.Report(app.Run(context.Background(), os.Args[1:])))
}

func must(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitCode(err))
	}
}
`

var mainTmpl = template.Must(template.New("main").Parse(mainTemplate))

// Options describes the tool to generate
type Options struct {
	Name        string // Tool name, also the directory created under Dir
	Description string
	Dir         string // Parent directory, defaults to the working directory
	Force       bool   // Overwrite an existing main.go
}

// Result reports what was written
type Result struct {
	Path        string // Absolute path of the generated file
	Relative    string // Path relative to the working directory
	Overwritten bool
}

// Render returns the generated source without writing it
func Render(opts Options) ([]byte, error) {
	if err := checkName(opts.Name); err != nil {
		return nil, err
	}
	if opts.Description == "" {
		opts.Description = opts.Name + " command-line tool"
	}

	var buf bytes.Buffer
	if err := mainTmpl.Execute(&buf, opts); err != nil {
		return nil, mdwerror.Wrap(err, "rendering template failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("scaffold.Render")
	}
	return buf.Bytes(), nil
}

// Generate writes <Dir>/<Name>/main.go. An existing file is kept unless
// Force is set.
func Generate(opts Options) (Result, error) {
	source, err := Render(opts)
	if err != nil {
		return Result{}, err
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	dir, err = filepath.Abs(filepath.Join(dir, opts.Name))
	if err != nil {
		return Result{}, mdwerror.Wrap(err, "resolving target directory failed").
			WithCode(mdwerror.CodeInternal).
			WithOperation("scaffold.Generate").
			WithDetail("dir", dir)
	}
	path := filepath.Join(dir, FileName)

	existed, err := filex.WriteFile(path, source, 0o644, filex.WriteOptions{Overwrite: opts.Force})
	if err != nil {
		return Result{}, err
	}
	return Result{
		Path:        path,
		Relative:    filex.RelativeToWorkingDir(path),
		Overwritten: existed,
	}, nil
}

func checkName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalidName(name, "name is empty")
	case name == "." || name == "..":
		return invalidName(name, "name is a relative directory")
	case strings.ContainsAny(name, `/\`):
		return invalidName(name, "name contains a path separator")
	}
	return nil
}

func invalidName(name, reason string) error {
	return mdwerror.New(fmt.Sprintf("invalid tool name %q: %s", name, reason)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("scaffold.Generate").
		WithDetail("name", name)
}
