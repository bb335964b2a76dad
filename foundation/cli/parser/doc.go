// Package parser turns raw command-line tokens into definition values and
// a selected command name.
//
// Package: parser
// Title: Command-Line Tokenizer and Parser
// Description: Classify sorts each raw token into one of four forms, tried
//              in order:
//
//	--name     long: an argument takes the next token as its value, a
//	           switch becomes true
//	-c=rest    short with value: the definition owning shortcut c gets rest
//	-c         short flag: the definition owning shortcut c becomes true
//	other      bare: selects the command, the last bare token wins
//
//              A long argument at the end of the input is set to nil. "--"
//              is a long token with an empty name and is rejected; "-" and
//              "-ab" are bare tokens.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-16
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer and parser
// - 2026-10-16 v0.2.0: Reworked for the four form command-line grammar
package parser
