// File: exit.go
// Title: Exit Codes
// Description: Maps engine errors to process exit statuses.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-16
// Modified: 2026-10-16

package cli

import mdwerror "github.com/msto63/mCLI/foundation/core/error"

// ExitCode returns 0 for nil, the status assigned to the error's code, or 1
// for errors without one
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return mdwerror.GetCode(err).ExitStatus()
}
