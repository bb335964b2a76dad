// Package error provides the coded error type shared by every mCLI package.
//
// Package: error
// Title: mCLI Error Handling Framework
// Description: Structured errors carrying a machine readable code, a severity,
//              the failing operation and key/value details. Registration,
//              parsing and dispatch failures of the CLI engine are all values
//              of this one type, distinguished by their Code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-14 v0.2.0: CLI engine codes, chain aware HasCode/GetCode
//
// Usage:
//
//	import mdwerror "github.com/msto63/mCLI/foundation/core/error"
//
//	err := mdwerror.New("argument already registered").
//		WithCode(mdwerror.CodeDuplicateName).
//		WithOperation("registry.RegisterArgument").
//		WithDetail("name", "verbose")
//
//	if mdwerror.HasCode(err, mdwerror.CodeDuplicateName) {
//		// handle registration conflicts
//	}
package error
