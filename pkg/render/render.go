// File: render.go
// Title: Terminal Renderer
// Description: lipgloss rendering of the help screen, the name banner and
//              error reports.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/mCLI/foundation/cli"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
)

const indent = "    "

// Options configures a Renderer
type Options struct {
	// Bell rings the terminal bell before error reports on terminals
	Bell bool
	// ShowCodes appends the error code to error reports
	ShowCodes bool
}

// Renderer renders engine output with terminal styling
type Renderer struct {
	opts Options
}

var (
	_ cli.HelpRenderer   = (*Renderer)(nil)
	_ cli.ErrorRenderer  = (*Renderer)(nil)
	_ cli.BannerRenderer = (*Renderer)(nil)
)

// New creates a renderer
func New(opts Options) *Renderer {
	return &Renderer{opts: opts}
}

// RenderHelp implements cli.HelpRenderer. Descriptions wrap at the
// terminal width.
func (r *Renderer) RenderHelp(w io.Writer, help cli.Help) error {
	st := newStyles(lipgloss.NewRenderer(w))
	wrap := r.wrapper(w, st)

	var b strings.Builder
	b.WriteString(st.title.Render(help.Title()) + "\n")
	b.WriteString(st.heading.Render("Usage:") + "\n")
	b.WriteString(indent + help.Usage + "\n\n")

	if len(help.Commands) == 0 {
		b.WriteString(st.muted.Render("No command defined yet.") + "\n")
	} else {
		b.WriteString(st.heading.Render("Commands:") + "\n")
		for _, cmd := range help.Commands {
			b.WriteString(st.name.Render(cmd.Name) + ":\n")
			b.WriteString(wrap(cmd.Description) + "\n")
			if synopsis := cmd.Synopsis(); synopsis != "" {
				b.WriteString(indent + st.synopsis.Render(synopsis) + "\n")
			}
		}
	}

	section := func(title string, defs []cli.DefinitionHelp) {
		if len(defs) == 0 {
			return
		}
		b.WriteString("\n" + st.heading.Render(title+":") + "\n")
		for _, def := range defs {
			b.WriteString(st.flag.Render(def.Flag()) + ":\n")
			b.WriteString(wrap(def.Description) + "\n")
		}
	}
	section("Arguments", help.Arguments)
	section("Switches", help.Switches)

	_, err := io.WriteString(w, b.String())
	return err
}

// wrapper returns a function rendering an indented description, or the
// muted placeholder for an empty one
func (r *Renderer) wrapper(w io.Writer, st styles) func(string) string {
	width := Columns(w) - len(indent)
	return func(text string) string {
		if text == "" {
			return indent + st.muted.Render(cli.Undescribed)
		}
		if !IsTerminal(w) || lipgloss.Width(text) <= width {
			return indent + text
		}
		wrapped := lipgloss.NewStyle().Width(width).Render(text)
		lines := strings.Split(wrapped, "\n")
		for i, line := range lines {
			lines[i] = indent + strings.TrimRight(line, " ")
		}
		return strings.Join(lines, "\n")
	}
}

// RenderBanner implements cli.BannerRenderer
func (r *Renderer) RenderBanner(w io.Writer, name string) error {
	st := newStyles(lipgloss.NewRenderer(w))
	_, err := fmt.Fprintln(w, st.title.Render(name))
	return err
}

// RenderError implements cli.ErrorRenderer
func (r *Renderer) RenderError(w io.Writer, err error) error {
	st := newStyles(lipgloss.NewRenderer(w))

	var b strings.Builder
	if r.opts.Bell && IsTerminal(w) {
		b.WriteString("\a")
	}
	b.WriteString(st.errorLabel.Render("Error:") + " " + err.Error())
	if r.opts.ShowCodes {
		if code := mdwerror.GetCode(err); code != mdwerror.CodeUnknown {
			b.WriteString(" " + st.muted.Render("["+code.String()+"]"))
		}
	}
	b.WriteString("\n")

	_, werr := io.WriteString(w, b.String())
	return werr
}
