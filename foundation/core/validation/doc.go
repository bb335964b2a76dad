// Package validation checks values against format rules such as "int",
// "string:1..64", "int|bool" or the nullable "?path".
//
// Package: validation
// Title: mCLI Format Rule Validation
// Description: Parses format rules into Rule values and validates arbitrary
//              values against them, returning structured ValidationResults.
//              Validators compose with Chain and custom types can be added
//              with RegisterType.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial validation interfaces implementation
// - 2026-10-15 v0.2.0: Format rule grammar for command-line values
//
// Rule grammar:
//
//	rule   = ["?"] term { "|" term }
//	term   = type [ ":" range ]
//	range  = number | [number] ".." [number]
//
// A leading "?" also accepts nil. A range bounds the rune length of string
// and path values and the numeric value of int and float values.
//
// Usage:
//
//	rule, err := validation.Parse("string:1..64")
//	if err != nil {
//		return err
//	}
//	if result := rule.Validate("demo"); !result.Valid {
//		return result.ToError()
//	}
package validation
