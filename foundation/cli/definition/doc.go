// Package definition provides the Definition type shared by command-line
// arguments and switches.
//
// Package: definition
// Title: Argument and Switch Definitions
// Description: A Definition names a value the command line can carry: its
//              long name, an optional one character shortcut, an optional
//              format rule and a description. The current value is a
//              tagged optional so "never given" and "given as nil" stay
//              distinguishable.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation
//
// Usage:
//
//	name := definition.New("name").
//		SetShortcut("n").
//		SetFormat("string:1..64").
//		SetDescription("Name of the generated command")
//
//	name.SetValue("demo")
//	if err := name.Validate(true); err != nil {
//		// MISSING_REQUIRED or FORMAT_VALIDATION
//	}
package definition
