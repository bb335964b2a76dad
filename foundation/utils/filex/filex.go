// File: filex.go
// Title: File Helpers
// Description: Implements existence checks, guarded writes and relative
//              path helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with file utilities
// - 2026-10-17 v0.2.0: Guarded writes and relative paths

package filex

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	mdwerror "github.com/msto63/mCLI/foundation/core/error"
)

// WriteOptions controls WriteFile
type WriteOptions struct {
	Overwrite bool        // Replace an existing file
	DirPerm   os.FileMode // Permissions of created parent directories, 0755 when zero
}

// Exists checks if a file or directory exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsFile checks if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// IsDir checks if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// WriteFile writes data to path, creating parent directories. An existing
// file is only replaced with Overwrite; the result reports whether one
// existed.
func WriteFile(path string, data []byte, perm os.FileMode, opts WriteOptions) (bool, error) {
	info, err := os.Stat(path)
	existed := err == nil
	switch {
	case existed && info.IsDir():
		return true, mdwerror.New(fmt.Sprintf("%s is a directory", path)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.WriteFile").
			WithDetail("path", path)
	case existed && !opts.Overwrite:
		return true, mdwerror.New(fmt.Sprintf("%s already exists", path)).
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("filex.WriteFile").
			WithDetail("path", path)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return false, ioError(err, path)
	}

	dirPerm := opts.DirPerm
	if dirPerm == 0 {
		dirPerm = 0o755
	}
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return existed, ioError(err, path)
	}
	if err := os.WriteFile(path, data, perm); err != nil {
		return existed, ioError(err, path)
	}
	return existed, nil
}

// RelativePath returns to relative to the directory from. Paths that cannot
// be made relative are returned unchanged.
func RelativePath(from, to string) string {
	rel, err := filepath.Rel(from, to)
	if err != nil {
		return to
	}
	return rel
}

// RelativeToWorkingDir returns path relative to the working directory
func RelativeToWorkingDir(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	return RelativePath(wd, path)
}

func ioError(err error, path string) error {
	return mdwerror.Wrap(err, "file operation failed").
		WithCode(mdwerror.CodeInternal).
		WithOperation("filex.WriteFile").
		WithDetail("path", path)
}
