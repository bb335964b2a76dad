// File: help.go
// Title: Help Model and Plain Renderer
// Description: Builds a renderer-neutral description of the registered
//              commands, arguments and switches and renders it as plain
//              text. Terminal styling lives in renderers outside this
//              package.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/registry"
)

// Undescribed is shown for declarations without a description
const Undescribed = "undescribed"

// Help describes everything a help screen shows
type Help struct {
	Name        string
	Description string
	Usage       string
	Commands    []CommandHelp
	Arguments   []DefinitionHelp
	Switches    []DefinitionHelp
}

// CommandHelp describes one command
type CommandHelp struct {
	Name        string
	Description string
	Required    []string
	Optional    []string
	Switches    []string
}

// DefinitionHelp describes one argument or switch
type DefinitionHelp struct {
	Name        string
	Shortcut    string
	Description string
	Format      string
}

// HelpRenderer writes a help screen
type HelpRenderer interface {
	RenderHelp(w io.Writer, help Help) error
}

// ErrorRenderer writes an error report
type ErrorRenderer interface {
	RenderError(w io.Writer, err error) error
}

// BannerRenderer is implemented by renderers that style the application
// name printed before dispatch
type BannerRenderer interface {
	RenderBanner(w io.Writer, name string) error
}

// Title returns the description, or the name when there is none
func (h Help) Title() string {
	if h.Description != "" {
		return h.Description
	}
	return h.Name
}

// Synopsis returns the argument line of a command: required arguments
// bare, optional ones in brackets and switches in double brackets
func (c CommandHelp) Synopsis() string {
	parts := make([]string, 0, len(c.Required)+len(c.Optional)+len(c.Switches))
	for _, name := range c.Required {
		parts = append(parts, "--"+name)
	}
	for _, name := range c.Optional {
		parts = append(parts, "[--"+name+"]")
	}
	for _, name := range c.Switches {
		parts = append(parts, "[[--"+name+"]]")
	}
	return strings.Join(parts, " ")
}

// Summary returns the description or Undescribed
func (c CommandHelp) Summary() string {
	return describe(c.Description)
}

// Flag returns the long form and, when present, the shortcut
func (d DefinitionHelp) Flag() string {
	if d.Shortcut == "" {
		return "--" + d.Name
	}
	return "--" + d.Name + ", -" + d.Shortcut
}

// Summary returns the description or Undescribed
func (d DefinitionHelp) Summary() string {
	return describe(d.Description)
}

func describe(text string) string {
	if text == "" {
		return Undescribed
	}
	return text
}

// BuildHelp collects the help model from a registry
func BuildHelp(name, description string, reg *registry.Registry) Help {
	help := Help{
		Name:        name,
		Description: description,
		Usage:       fmt.Sprintf("%s command [arguments] [switches]", name),
	}

	for _, cmd := range reg.Commands() {
		help.Commands = append(help.Commands, CommandHelp{
			Name:        cmd.Name(),
			Description: cmd.Description(),
			Required:    cmd.Required(),
			Optional:    cmd.Optional(),
			Switches:    cmd.Switches(),
		})
	}
	help.Arguments = describeAll(reg.Arguments())
	help.Switches = describeAll(reg.Switches())

	return help
}

func describeAll(defs []*definition.Definition) []DefinitionHelp {
	out := make([]DefinitionHelp, 0, len(defs))
	for _, def := range defs {
		out = append(out, DefinitionHelp{
			Name:        def.Name(),
			Shortcut:    def.Shortcut(),
			Description: def.Description(),
			Format:      def.Format(),
		})
	}
	return out
}

// PlainRenderer renders help and errors without terminal styling
type PlainRenderer struct{}

// RenderHelp implements HelpRenderer
func (PlainRenderer) RenderHelp(w io.Writer, help Help) error {
	var b strings.Builder

	b.WriteString(help.Title() + "\n")
	b.WriteString("Usage:\n")
	b.WriteString("    " + help.Usage + "\n\n")

	if len(help.Commands) == 0 {
		b.WriteString("No command defined yet.\n")
	} else {
		b.WriteString("Commands:\n")
		for _, cmd := range help.Commands {
			b.WriteString(cmd.Name + ":\n")
			b.WriteString("    " + cmd.Summary() + "\n")
			if synopsis := cmd.Synopsis(); synopsis != "" {
				b.WriteString("    " + synopsis + "\n")
			}
		}
	}

	writeSection(&b, "Arguments", help.Arguments)
	writeSection(&b, "Switches", help.Switches)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeSection(b *strings.Builder, title string, defs []DefinitionHelp) {
	if len(defs) == 0 {
		return
	}
	b.WriteString("\n" + title + ":\n")
	for _, def := range defs {
		b.WriteString(def.Flag() + ":\n")
		b.WriteString("    " + def.Summary() + "\n")
	}
}

// RenderError implements ErrorRenderer
func (PlainRenderer) RenderError(w io.Writer, err error) error {
	_, werr := fmt.Fprintf(w, "Error: %s\n", err)
	return werr
}
