// File: registry.go
// Title: Registry Implementation
// Description: Implements registration and lookup of arguments, switches
//              and commands.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial object registry
// - 2026-10-15 v0.2.0: Arguments, switches, shortcuts and commands

package registry

import (
	"fmt"
	"strings"

	"github.com/msto63/mCLI/foundation/cli/definition"
	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	"github.com/msto63/mCLI/foundation/core/log"
)

// Kind distinguishes arguments from switches
type Kind int

const (
	// KindArgument is a definition that takes a value
	KindArgument Kind = iota

	// KindSwitch is a boolean definition
	KindSwitch
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindArgument:
		return "argument"
	case KindSwitch:
		return "switch"
	default:
		return "unknown"
	}
}

// Options configures registry behavior
type Options struct {
	Logger *log.Logger
}

// Registry stores the declared command-line surface
type Registry struct {
	arguments map[string]*definition.Definition
	switches  map[string]*definition.Definition
	shortcuts map[string]string
	commands  map[string]*Command

	argumentOrder []string
	switchOrder   []string
	commandOrder  []string

	sealed bool
	logger *log.Logger
}

// New creates an empty registry
func New(opts Options) *Registry {
	if opts.Logger == nil {
		opts.Logger = log.GetDefault()
	}

	return &Registry{
		arguments: make(map[string]*definition.Definition),
		switches:  make(map[string]*definition.Definition),
		shortcuts: make(map[string]string),
		commands:  make(map[string]*Command),
		logger:    opts.Logger.WithField("component", "cli-registry"),
	}
}

// RegisterArgument registers a definition that takes a value
func (r *Registry) RegisterArgument(def *definition.Definition) error {
	if err := r.checkDefinition(def, "registry.RegisterArgument"); err != nil {
		return err
	}

	r.arguments[def.Name()] = def
	r.argumentOrder = append(r.argumentOrder, def.Name())
	r.addShortcut(def)

	r.logger.Debug("argument registered", log.Fields{
		"name":     def.Name(),
		"shortcut": def.Shortcut(),
		"format":   def.Format(),
	})
	return nil
}

// RegisterSwitch registers a boolean definition. Its value is initialised
// to false; a rejected definition is left untouched.
func (r *Registry) RegisterSwitch(def *definition.Definition) error {
	if err := r.checkDefinition(def, "registry.RegisterSwitch"); err != nil {
		return err
	}

	def.SetValue(false)
	r.switches[def.Name()] = def
	r.switchOrder = append(r.switchOrder, def.Name())
	r.addShortcut(def)

	r.logger.Debug("switch registered", log.Fields{
		"name":     def.Name(),
		"shortcut": def.Shortcut(),
	})
	return nil
}

// RegisterCommand registers a command. Every name it declares must already
// be registered as an argument (required and optional lists) or a switch.
func (r *Registry) RegisterCommand(cmd *Command) error {
	const op = "registry.RegisterCommand"

	if err := r.checkOpen(op); err != nil {
		return err
	}
	if cmd == nil {
		return invalid(op, "command cannot be nil", "")
	}

	name := cmd.Name()
	if strings.TrimSpace(name) == "" || strings.HasPrefix(name, "-") {
		return invalid(op, fmt.Sprintf("invalid command name %q", name), name)
	}
	if cmd.Handler().Fn == nil {
		return invalid(op, fmt.Sprintf("command %q has no handler", name), name)
	}
	if cmd.declErr != nil {
		return cmd.declErr
	}

	if _, exists := r.commands[name]; exists {
		return duplicateName(op, name, "command")
	}

	for _, arg := range append(cmd.Required(), cmd.Optional()...) {
		if _, ok := r.arguments[arg]; !ok {
			return unknownArgument(op, name, arg, KindArgument)
		}
	}
	for _, sw := range cmd.Switches() {
		if _, ok := r.switches[sw]; !ok {
			return unknownArgument(op, name, sw, KindSwitch)
		}
	}

	r.commands[name] = cmd
	r.commandOrder = append(r.commandOrder, name)

	r.logger.Debug("command registered", log.Fields{
		"name":     name,
		"required": cmd.Required(),
		"optional": cmd.Optional(),
		"switches": cmd.Switches(),
	})
	return nil
}

// Seal freezes the registry; later registrations fail with
// LATE_REGISTRATION
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether the registry was sealed
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Argument returns the argument called name
func (r *Registry) Argument(name string) (*definition.Definition, bool) {
	def, ok := r.arguments[name]
	return def, ok
}

// Switch returns the switch called name
func (r *Registry) Switch(name string) (*definition.Definition, bool) {
	def, ok := r.switches[name]
	return def, ok
}

// LookupName returns the argument or switch called name
func (r *Registry) LookupName(name string) (*definition.Definition, Kind, bool) {
	if def, ok := r.arguments[name]; ok {
		return def, KindArgument, true
	}
	if def, ok := r.switches[name]; ok {
		return def, KindSwitch, true
	}
	return nil, 0, false
}

// ResolveShortcut returns the argument or switch owning the shortcut
func (r *Registry) ResolveShortcut(shortcut string) (*definition.Definition, Kind, bool) {
	name, ok := r.shortcuts[shortcut]
	if !ok {
		return nil, 0, false
	}
	return r.LookupName(name)
}

// Lookup resolves a long name first, then a shortcut
func (r *Registry) Lookup(nameOrShortcut string) (*definition.Definition, Kind, bool) {
	if def, kind, ok := r.LookupName(nameOrShortcut); ok {
		return def, kind, true
	}
	return r.ResolveShortcut(nameOrShortcut)
}

// Command returns the command called name
func (r *Registry) Command(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Arguments returns the arguments in registration order
func (r *Registry) Arguments() []*definition.Definition {
	return ordered(r.arguments, r.argumentOrder)
}

// Switches returns the switches in registration order
func (r *Registry) Switches() []*definition.Definition {
	return ordered(r.switches, r.switchOrder)
}

// Commands returns the commands in registration order
func (r *Registry) Commands() []*Command {
	cmds := make([]*Command, 0, len(r.commandOrder))
	for _, name := range r.commandOrder {
		cmds = append(cmds, r.commands[name])
	}
	return cmds
}

func ordered(defs map[string]*definition.Definition, order []string) []*definition.Definition {
	result := make([]*definition.Definition, 0, len(order))
	for _, name := range order {
		result = append(result, defs[name])
	}
	return result
}

func (r *Registry) checkOpen(op string) error {
	if !r.sealed {
		return nil
	}
	return mdwerror.New("registration is closed once the command line has been parsed").
		WithCode(mdwerror.CodeLateRegistration).
		WithOperation(op)
}

func (r *Registry) checkDefinition(def *definition.Definition, op string) error {
	if err := r.checkOpen(op); err != nil {
		return err
	}
	if def == nil {
		return invalid(op, "definition cannot be nil", "")
	}
	if err := def.Check(); err != nil {
		return err
	}

	if _, exists := r.arguments[def.Name()]; exists {
		return duplicateName(op, def.Name(), KindArgument.String())
	}
	if _, exists := r.switches[def.Name()]; exists {
		return duplicateName(op, def.Name(), KindSwitch.String())
	}
	if sc := def.Shortcut(); sc != "" {
		if owner, exists := r.shortcuts[sc]; exists {
			return mdwerror.New(fmt.Sprintf("shortcut -%s of %q is already used by %q", sc, def.Name(), owner)).
				WithCode(mdwerror.CodeDuplicateShortcut).
				WithOperation(op).
				WithDetail("shortcut", sc).
				WithDetail("name", def.Name()).
				WithDetail("owner", owner)
		}
	}
	return nil
}

func (r *Registry) addShortcut(def *definition.Definition) {
	if sc := def.Shortcut(); sc != "" {
		r.shortcuts[sc] = def.Name()
	}
}

func duplicateName(op, name, existing string) error {
	return mdwerror.New(fmt.Sprintf("%q is already registered as %s", name, existing)).
		WithCode(mdwerror.CodeDuplicateName).
		WithOperation(op).
		WithDetail("name", name).
		WithDetail("existing", existing)
}

func unknownArgument(op, command, name string, want Kind) error {
	return mdwerror.New(fmt.Sprintf("command %q references unknown %s %q", command, want, name)).
		WithCode(mdwerror.CodeUnknownArgument).
		WithOperation(op).
		WithDetail("command", command).
		WithDetail("name", name).
		WithDetail("kind", want.String())
}

func invalid(op, message, name string) error {
	err := mdwerror.New(message).
		WithCode(mdwerror.CodeInvalidDefinition).
		WithOperation(op)
	if name != "" {
		err = err.WithDetail("name", name)
	}
	return err
}
