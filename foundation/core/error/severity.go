// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger uses the
//              severity to pick the level an error is written at.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-14 v0.2.0: Severity derived from CLI engine codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a user mistake on the command line
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed command
	SeverityMedium

	// SeverityHigh indicates a broken CLI declaration
	SeverityHigh

	// SeverityCritical indicates an engine fault
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch {
	case code == CodeInternal:
		return SeverityCritical
	case code.IsRegistration():
		return SeverityHigh
	case code.IsUsage(), code == CodeInvalidInput:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
