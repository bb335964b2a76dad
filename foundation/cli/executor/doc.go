// Package executor binds parsed values to a command's handler and runs it.
//
// Package: executor
// Title: Binder and Dispatcher
// Description: For every parameter of a handler descriptor, in order, the
//              binder takes the value of an argument (validated against its
//              required flag and format rule) or a switch the command
//              declares, or asks a Resolver for a dependency of the
//              parameter's type. Any other parameter is an error. Handler
//              failures and panics come back as WORKER errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial service routing executor
// - 2026-10-16 v0.2.0: Parameter binding and handler dispatch
package executor
