// ============================================================================
// mCLI - command-line front-end engine
// ============================================================================
//
// Package:     version
// Description: Build information of the mcli binary
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Set at build time with -ldflags "-X github.com/msto63/mCLI/pkg/version.Version=..."
var (
	Version   = "0.1.0"
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes a build
type Info struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Current returns the build information of the running binary
func Current() *Info {
	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// Short returns "<name> v<version>"
func (i *Info) Short(name string) string {
	return fmt.Sprintf("%s v%s", name, i.Version)
}

// Details returns the labelled build lines printed by "version --debug"
func (i *Info) Details() []string {
	return []string{
		"Git Commit: " + i.GitCommit,
		"Build Date: " + i.BuildDate,
		"Go Version: " + i.GoVersion,
		"OS/Arch:    " + i.Platform,
	}
}
