// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the CLI
//              engine. Every code maps to one distinct process exit status.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-14 v0.2.0: Replaced platform codes with registration, parse and dispatch codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeConfigError  Code = "CONFIG_ERROR"

	// Registration
	CodeDuplicateName     Code = "DUPLICATE_NAME"
	CodeDuplicateShortcut Code = "DUPLICATE_SHORTCUT"
	CodeUnknownArgument   Code = "UNKNOWN_ARGUMENT"
	CodeInvalidDefinition Code = "INVALID_DEFINITION"
	CodeLateRegistration  Code = "LATE_REGISTRATION"

	// Parsing
	CodeUnknownToken    Code = "UNKNOWN_TOKEN"
	CodeUnknownShortcut Code = "UNKNOWN_SHORTCUT"
	CodeUnknownCommand  Code = "UNKNOWN_COMMAND"

	// Binding and dispatch
	CodeMissingRequired      Code = "MISSING_REQUIRED"
	CodeFormatValidation     Code = "FORMAT_VALIDATION"
	CodeUnresolvedParameter  Code = "UNRESOLVED_PARAMETER"
	CodeUnresolvedDependency Code = "UNRESOLVED_DEPENDENCY"
	CodeWorker               Code = "WORKER"
)

// exitCodes assigns each code its process exit status
var exitCodes = map[Code]int{
	CodeDuplicateName:        10,
	CodeDuplicateShortcut:    11,
	CodeUnknownArgument:      12,
	CodeInvalidDefinition:    13,
	CodeLateRegistration:     14,
	CodeUnknownToken:         20,
	CodeUnknownShortcut:      21,
	CodeUnknownCommand:       22,
	CodeMissingRequired:      30,
	CodeFormatValidation:     31,
	CodeUnresolvedParameter:  32,
	CodeUnresolvedDependency: 33,
	CodeWorker:               40,
}

// String returns the string representation of the code
func (c Code) String() string {
	return string(c)
}

// ExitStatus returns the process exit status for the code, 1 for codes
// without a dedicated status
func (c Code) ExitStatus() int {
	if status, ok := exitCodes[c]; ok {
		return status
	}
	return 1
}

// IsRegistration reports whether the code is raised while declaring the CLI
func (c Code) IsRegistration() bool {
	switch c {
	case CodeDuplicateName, CodeDuplicateShortcut, CodeUnknownArgument,
		CodeInvalidDefinition, CodeLateRegistration:
		return true
	}
	return false
}

// IsUsage reports whether the code stems from the user's command line
func (c Code) IsUsage() bool {
	switch c {
	case CodeUnknownToken, CodeUnknownShortcut, CodeUnknownCommand,
		CodeMissingRequired, CodeFormatValidation:
		return true
	}
	return false
}
