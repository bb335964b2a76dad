// File: render_test.go
// Title: Terminal Renderer Tests
// Description: Tests that non-terminal output is plain text and that
//              terminal queries fall back to defaults.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17

package render

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/msto63/mCLI/foundation/cli"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
)

func sampleHelp() cli.Help {
	return cli.Help{
		Name:  "mcli",
		Usage: "mcli command [arguments] [switches]",
		Commands: []cli.CommandHelp{
			{Name: "create", Description: "Create a CLI skeleton", Required: []string{"name"}, Optional: []string{"dir"}, Switches: []string{"force"}},
			{Name: "version"},
		},
		Arguments: []cli.DefinitionHelp{{Name: "name", Shortcut: "n"}, {Name: "dir", Shortcut: "d", Description: "Target directory"}},
		Switches:  []cli.DefinitionHelp{{Name: "force", Shortcut: "f"}},
	}
}

func TestRenderHelpMatchesPlainOffTerminal(t *testing.T) {
	tests := []struct {
		name string
		help cli.Help
	}{
		{"full", sampleHelp()},
		{"no commands", cli.Help{Name: "empty", Description: "Nothing here", Usage: "empty command [arguments] [switches]"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var plain, styled bytes.Buffer
			if err := (cli.PlainRenderer{}).RenderHelp(&plain, tt.help); err != nil {
				t.Fatal(err)
			}
			if err := New(Options{}).RenderHelp(&styled, tt.help); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(plain.String(), styled.String()); diff != "" {
				t.Errorf("RenderHelp() mismatch (-plain +styled):\n%s", diff)
			}
		})
	}
}

func TestRenderError(t *testing.T) {
	err := mdwerror.New("unknown command (nope)").WithCode(mdwerror.CodeUnknownCommand)

	tests := []struct {
		name string
		opts Options
		err  error
		want string
	}{
		{"plain", Options{}, err, "Error: unknown command (nope)\n"},
		{"bell off terminal", Options{Bell: true}, err, "Error: unknown command (nope)\n"},
		{"with code", Options{ShowCodes: true}, err, "Error: unknown command (nope) [UNKNOWN_COMMAND]\n"},
		{"uncoded", Options{ShowCodes: true}, errors.New("boom"), "Error: boom\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := New(tt.opts).RenderError(&buf, tt.err); err != nil {
				t.Fatal(err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("RenderError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderBanner(t *testing.T) {
	var buf bytes.Buffer
	if err := New(Options{}).RenderBanner(&buf, "mcli"); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "mcli\n" {
		t.Errorf("RenderBanner() = %q", got)
	}
}

func TestSize(t *testing.T) {
	origTerm, origSize := isTerminalFn, getSizeFn
	t.Cleanup(func() { isTerminalFn, getSizeFn = origTerm, origSize })

	tests := []struct {
		name     string
		w        interface{ Write([]byte) (int, error) }
		terminal bool
		cols     int
		sizeErr  error
		wantCols int
		wantRows int
	}{
		{"buffer", &bytes.Buffer{}, true, 120, nil, DefaultColumns, 0},
		{"not a terminal", os.Stdout, false, 120, nil, DefaultColumns, 0},
		{"terminal", os.Stdout, true, 120, nil, 120, 40},
		{"size error", os.Stdout, true, 0, errors.New("ioctl"), DefaultColumns, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isTerminalFn = func(int) bool { return tt.terminal }
			getSizeFn = func(int) (int, int, error) { return tt.cols, 40, tt.sizeErr }

			cols, rows := Size(tt.w)
			if cols != tt.wantCols || rows != tt.wantRows {
				t.Errorf("Size() = %d, %d, want %d, %d", cols, rows, tt.wantCols, tt.wantRows)
			}
			if got := Columns(tt.w); got != tt.wantCols {
				t.Errorf("Columns() = %d, want %d", got, tt.wantCols)
			}
		})
	}
}
