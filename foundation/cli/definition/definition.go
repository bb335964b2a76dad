// File: definition.go
// Title: Definition Implementation
// Description: Implements Definition with builder style setters, value
//              storage and required/format validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15

package definition

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
	"github.com/msto63/mCLI/foundation/core/validation"
)

// Definition describes one named argument or switch
type Definition struct {
	name        string
	shortcut    string
	format      string
	description string
	value       Value
}

// New creates a Definition with the given name and no value
func New(name string) *Definition {
	return &Definition{name: name}
}

// SetShortcut sets the one character shortcut
func (d *Definition) SetShortcut(shortcut string) *Definition {
	d.shortcut = shortcut
	return d
}

// SetFormat sets the format rule values are validated against
func (d *Definition) SetFormat(rule string) *Definition {
	d.format = rule
	return d
}

// SetDescription sets the help text
func (d *Definition) SetDescription(text string) *Definition {
	d.description = text
	return d
}

// SetValue stores v and marks the definition set. No coercion is applied.
func (d *Definition) SetValue(v interface{}) *Definition {
	d.value = Set(v)
	return d
}

// Reset clears the value
func (d *Definition) Reset() {
	d.value = Unset()
}

// Name returns the long name
func (d *Definition) Name() string { return d.name }

// Shortcut returns the shortcut, empty when none was set
func (d *Definition) Shortcut() string { return d.shortcut }

// Format returns the format rule, empty when none was set
func (d *Definition) Format() string { return d.format }

// Description returns the help text
func (d *Definition) Description() string { return d.description }

// Value returns the current value, nil when unset
func (d *Definition) Value() interface{} {
	return d.value.Or(nil)
}

// Tagged returns the current value as a tagged optional
func (d *Definition) Tagged() Value {
	return d.value
}

// IsSet reports whether a value was stored
func (d *Definition) IsSet() bool {
	return d.value.IsSet()
}

// Check verifies that the definition is well formed: a name without
// whitespace that does not start with '-', a shortcut of exactly one
// character other than '-' or '=', and a parseable format rule.
func (d *Definition) Check() error {
	fail := func(reason string) error {
		return mdwerror.New(fmt.Sprintf("invalid definition %q: %s", d.name, reason)).
			WithCode(mdwerror.CodeInvalidDefinition).
			WithOperation("definition.Check").
			WithDetail("name", d.name)
	}

	if strings.TrimSpace(d.name) == "" {
		return fail("name cannot be empty")
	}
	if strings.HasPrefix(d.name, "-") {
		return fail("name cannot start with '-'")
	}
	if strings.IndexFunc(d.name, unicode.IsSpace) >= 0 {
		return fail("name cannot contain whitespace")
	}

	if d.shortcut != "" {
		if utf8.RuneCountInString(d.shortcut) != 1 {
			return fail(fmt.Sprintf("shortcut %q must be a single character", d.shortcut))
		}
		if d.shortcut == "-" || d.shortcut == "=" || strings.TrimSpace(d.shortcut) == "" {
			return fail(fmt.Sprintf("shortcut %q is not allowed", d.shortcut))
		}
	}

	if d.format != "" {
		if _, err := validation.Parse(d.format); err != nil {
			return mdwerror.Wrap(err, fmt.Sprintf("invalid definition %q", d.name)).
				WithCode(mdwerror.CodeInvalidDefinition).
				WithOperation("definition.Check").
				WithDetail("name", d.name).
				WithDetail("format", d.format)
		}
	}

	return nil
}

// Validate checks the value. A required definition must be set; a set
// value is checked against the format rule, using the nullable variant of
// the rule when the definition is optional. Unset optional definitions
// always pass.
func (d *Definition) Validate(required bool) error {
	if !d.value.IsSet() {
		if required {
			return mdwerror.New(fmt.Sprintf("missing required argument --%s", d.name)).
				WithCode(mdwerror.CodeMissingRequired).
				WithOperation("definition.Validate").
				WithDetail("name", d.name)
		}
		return nil
	}

	if d.format == "" {
		return nil
	}

	rule, err := validation.Parse(d.format)
	if err != nil {
		return mdwerror.Wrap(err, fmt.Sprintf("invalid definition %q", d.name)).
			WithCode(mdwerror.CodeInvalidDefinition).
			WithOperation("definition.Validate").
			WithDetail("name", d.name)
	}
	if !required {
		rule = rule.AsNullable()
	}

	value := d.value.Or(nil)
	if result := rule.Validate(value); !result.Valid {
		return mdwerror.New(fmt.Sprintf("invalid value for --%s", d.name)).
			WithCode(mdwerror.CodeFormatValidation).
			WithOperation("definition.Validate").
			WithDetail("name", d.name).
			WithDetail("format", rule.String()).
			WithDetail("value", value).
			WithCause(result.WithField(d.name).ToError())
	}

	return nil
}

// String returns a short description for logs
func (d *Definition) String() string {
	if d.shortcut == "" {
		return fmt.Sprintf("--%s=%s", d.name, d.value)
	}
	return fmt.Sprintf("--%s|-%s=%s", d.name, d.shortcut, d.value)
}
