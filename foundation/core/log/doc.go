// Package log provides structured logging for the mCLI foundation.
//
// Package: log
// Title: mCLI Structured Logging
// Description: Structured logger with contextual fields, level filtering and
//              several output formats. Every engine component receives a
//              *Logger through its Options and derives a component logger
//              with WithField("component", ...).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-14 v0.2.0: Synchronous writer only, stderr default, fatih/color console output
//
// Usage:
//
//	logger := log.New().
//	  WithLevel(log.LevelDebug).
//	  WithFormat(log.FormatConsole).
//	  WithField("component", "cli-parser")
//
//	logger.Debug("token classified", log.Fields{"token": "--name", "kind": "long"})
//	logger.LogError(err)
package log
