// Package filex implements the file helpers used by mCLI tools.
//
// Package: filex
// Title: File Helpers
// Description: Existence checks, guarded writes that refuse to replace
//              existing files unless asked to, and relative path display.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with file utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers the scaffold tool needs
//
// Usage:
//
//	existed, err := filex.WriteFile(path, data, 0o644, filex.WriteOptions{Overwrite: force})
//	fmt.Println(filex.RelativeToWorkingDir(path))
package filex
