// File: cursor.go
// Title: Token Cursor
// Description: Explicit read position over the raw token stream.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package parser

// Cursor walks a token slice front to back
type Cursor struct {
	tokens []string
	pos    int
}

// NewCursor creates a cursor positioned before the first token
func NewCursor(tokens []string) *Cursor {
	return &Cursor{tokens: tokens}
}

// Next returns the next token and advances
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	token := c.tokens[c.pos]
	c.pos++
	return token, true
}

// Peek returns the next token without advancing
func (c *Cursor) Peek() (string, bool) {
	if c.pos >= len(c.tokens) {
		return "", false
	}
	return c.tokens[c.pos], true
}

// Done reports whether every token was consumed
func (c *Cursor) Done() bool {
	return c.pos >= len(c.tokens)
}

// Pos returns the index of the next token
func (c *Cursor) Pos() int {
	return c.pos
}

// Remaining returns the number of unread tokens
func (c *Cursor) Remaining() int {
	return len(c.tokens) - c.pos
}
