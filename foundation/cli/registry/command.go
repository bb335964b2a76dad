// File: command.go
// Title: Command Declarations
// Description: A Command names the arguments it requires, the arguments it
//              accepts optionally and the switches it takes, and carries the
//              handler that runs it.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package registry

import (
	"fmt"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
)

// Command is a named action the command line can select
type Command struct {
	name        string
	description string
	required    []string
	optional    []string
	switches    []string
	handler     Handler
	declared    map[string]struct{}
	declErr     error
}

// NewCommand creates a command with the given handler
func NewCommand(name string, handler Handler) *Command {
	return &Command{
		name:     name,
		handler:  handler,
		declared: make(map[string]struct{}),
	}
}

// SetDescription sets the help text
func (c *Command) SetDescription(text string) *Command {
	c.description = text
	return c
}

// WithRequired declares required arguments
func (c *Command) WithRequired(names ...string) *Command {
	c.required = c.declare(c.required, names)
	return c
}

// WithOptional declares optional arguments
func (c *Command) WithOptional(names ...string) *Command {
	c.optional = c.declare(c.optional, names)
	return c
}

// WithSwitch declares accepted switches
func (c *Command) WithSwitch(names ...string) *Command {
	c.switches = c.declare(c.switches, names)
	return c
}

// declare appends names to list. A name declared twice on the same command
// is remembered as an error and reported when the command is registered.
func (c *Command) declare(list []string, names []string) []string {
	for _, name := range names {
		if _, dup := c.declared[name]; dup {
			if c.declErr == nil {
				c.declErr = mdwerror.New(fmt.Sprintf("command %q declares %q more than once", c.name, name)).
					WithCode(mdwerror.CodeDuplicateName).
					WithOperation("registry.Command.declare").
					WithDetail("command", c.name).
					WithDetail("name", name)
			}
			continue
		}
		c.declared[name] = struct{}{}
		list = append(list, name)
	}
	return list
}

// Name returns the command name
func (c *Command) Name() string { return c.name }

// Description returns the help text
func (c *Command) Description() string { return c.description }

// Required returns the required argument names in declaration order
func (c *Command) Required() []string { return append([]string(nil), c.required...) }

// Optional returns the optional argument names in declaration order
func (c *Command) Optional() []string { return append([]string(nil), c.optional...) }

// Switches returns the switch names in declaration order
func (c *Command) Switches() []string { return append([]string(nil), c.switches...) }

// Handler returns the handler descriptor
func (c *Command) Handler() Handler { return c.handler }

// Declared returns required, optional and switch names in that order
func (c *Command) Declared() []string {
	names := make([]string, 0, len(c.declared))
	names = append(names, c.required...)
	names = append(names, c.optional...)
	return append(names, c.switches...)
}

// Declares reports whether the command declares name in any list
func (c *Command) Declares(name string) bool {
	_, ok := c.declared[name]
	return ok
}

// IsRequired reports whether name is a required argument of the command
func (c *Command) IsRequired(name string) bool {
	for _, r := range c.required {
		if r == name {
			return true
		}
	}
	return false
}
