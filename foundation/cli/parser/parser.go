// File: parser.go
// Title: Command-Line Parser
// Description: Applies classified tokens to the definitions of a lookup
//              table and records the selected command.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial recursive descent parser
// - 2026-10-16 v0.2.0: Single pass command-line parser

package parser

import (
	"fmt"

	"github.com/google/shlex"

	"github.com/msto63/mCLI/foundation/cli/definition"
	"github.com/msto63/mCLI/foundation/cli/registry"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	"github.com/msto63/mCLI/foundation/core/log"
)

// Table resolves long names and shortcuts to definitions
type Table interface {
	LookupName(name string) (*definition.Definition, registry.Kind, bool)
	ResolveShortcut(shortcut string) (*definition.Definition, registry.Kind, bool)
}

// Options configures parser behavior
type Options struct {
	Logger *log.Logger
}

// Parser applies tokens to a Table
type Parser struct {
	table  Table
	logger *log.Logger
}

// Result is the outcome of a successful parse
type Result struct {
	Command    string // Last bare token
	HasCommand bool   // Whether any bare token was seen
	Consumed   int    // Number of tokens read
}

// New creates a parser over table
func New(table Table, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}
	return &Parser{
		table:  table,
		logger: opts.Logger.WithField("component", "cli-parser"),
	}
}

// Parse applies tokens in order. An empty token is skipped and never
// selects a command, the same outcome as ParseString, which drops empty
// items while splitting. A value consumed after a long argument is taken
// verbatim, even when empty.
// Definition values written before a failing token stay written.
func (p *Parser) Parse(tokens []string) (Result, error) {
	var result Result
	cursor := NewCursor(tokens)

	for !cursor.Done() {
		pos := cursor.Pos()
		raw, _ := cursor.Next()
		if raw == "" {
			continue
		}

		token := Classify(raw)
		p.logger.Trace("token classified", log.Fields{
			"position": pos,
			"token":    raw,
			"kind":     token.Kind.String(),
		})

		switch token.Kind {
		case TokenLong:
			def, kind, ok := p.table.LookupName(token.Name)
			if !ok {
				return result, unknownToken(raw, pos, token.Name)
			}
			if kind == registry.KindSwitch {
				def.SetValue(true)
				break
			}
			// The next token is taken verbatim, even when it looks like an option
			if value, ok := cursor.Next(); ok {
				def.SetValue(value)
			} else {
				def.SetValue(nil)
			}

		case TokenShortValue:
			def, _, ok := p.table.ResolveShortcut(token.Name)
			if !ok {
				return result, unknownShortcut(raw, pos, token.Name)
			}
			def.SetValue(token.Value)

		case TokenShortFlag:
			def, _, ok := p.table.ResolveShortcut(token.Name)
			if !ok {
				return result, unknownShortcut(raw, pos, token.Name)
			}
			def.SetValue(true)

		case TokenBare:
			result.Command = raw
			result.HasCommand = true
		}
	}

	result.Consumed = cursor.Pos()

	p.logger.Debug("command line parsed", log.Fields{
		"tokens":  len(tokens),
		"command": result.Command,
	})
	return result, nil
}

// ParseString splits s with shell quoting rules and parses the result
func (p *Parser) ParseString(s string) (Result, error) {
	tokens, err := SplitString(s)
	if err != nil {
		return Result{}, err
	}
	return p.Parse(tokens)
}

// SplitString splits s into tokens with shell quoting rules and drops
// empty items
func SplitString(s string) ([]string, error) {
	parts, err := shlex.Split(s)
	if err != nil {
		return nil, mdwerror.Wrap(err, "cannot split command line").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("parser.SplitString").
			WithDetail("input", s)
	}

	tokens := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}
	return tokens, nil
}

func unknownToken(raw string, pos int, name string) error {
	return mdwerror.New(fmt.Sprintf("unknown argument or switch --%s", name)).
		WithCode(mdwerror.CodeUnknownToken).
		WithOperation("parser.Parse").
		WithDetail("name", name).
		WithDetail("token", raw).
		WithDetail("position", pos)
}

func unknownShortcut(raw string, pos int, shortcut string) error {
	return mdwerror.New(fmt.Sprintf("unknown shortcut -%s", shortcut)).
		WithCode(mdwerror.CodeUnknownShortcut).
		WithOperation("parser.Parse").
		WithDetail("shortcut", shortcut).
		WithDetail("token", raw).
		WithDetail("position", pos)
}
