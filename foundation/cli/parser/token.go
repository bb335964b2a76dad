// File: token.go
// Title: Token Classification
// Description: Pure classification of raw command-line tokens.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-16 v0.2.0: Four command-line token forms

package parser

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// TokenKind represents the grammatical form of a raw token
type TokenKind int

const (
	// TokenLong is --name
	TokenLong TokenKind = iota

	// TokenShortValue is -c=rest
	TokenShortValue

	// TokenShortFlag is -c
	TokenShortFlag

	// TokenBare is anything else
	TokenBare
)

// String returns a string representation of the token kind
func (k TokenKind) String() string {
	switch k {
	case TokenLong:
		return "LONG"
	case TokenShortValue:
		return "SHORT_VALUE"
	case TokenShortFlag:
		return "SHORT_FLAG"
	case TokenBare:
		return "BARE"
	default:
		return "UNKNOWN"
	}
}

// Token is a classified raw token
type Token struct {
	Kind  TokenKind
	Raw   string // Token as given
	Name  string // Long name or shortcut; the raw text for bare tokens
	Value string // Text after '=' for TokenShortValue
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case TokenShortValue:
		return fmt.Sprintf("%s(%s=%s)", t.Kind, t.Name, t.Value)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind, t.Name)
	}
}

// Classify returns the form of raw. The first matching form wins.
func Classify(raw string) Token {
	if name, ok := strings.CutPrefix(raw, "--"); ok {
		return Token{Kind: TokenLong, Raw: raw, Name: name}
	}

	if rest, ok := strings.CutPrefix(raw, "-"); ok && rest != "" {
		c, size := utf8.DecodeRuneInString(rest)
		if c != '\n' && c != utf8.RuneError {
			shortcut := rest[:size]
			after := rest[size:]

			if value, ok := strings.CutPrefix(after, "="); ok {
				return Token{Kind: TokenShortValue, Raw: raw, Name: shortcut, Value: value}
			}
			if after == "" {
				return Token{Kind: TokenShortFlag, Raw: raw, Name: shortcut}
			}
		}
	}

	return Token{Kind: TokenBare, Raw: raw, Name: raw}
}
