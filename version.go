/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactstore

import "runtime"

// Build information, overridden with -ldflags "-X github.com/suparena/contactstore.GitCommit=...".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
	GoVersion = "unknown"
)

// VersionInfo is the build information reported by the contacts CLI.
type VersionInfo struct {
	Version   string `json:"version"`
	GitCommit string `json:"gitCommit"`
	BuildDate string `json:"buildDate"`
	GoVersion string `json:"goVersion"`
}

// GetVersionInfo returns the build information. GoVersion falls back to
// the running toolchain when it was not set at build time.
func GetVersionInfo() VersionInfo {
	goVersion := GoVersion
	if goVersion == "unknown" {
		goVersion = runtime.Version()
	}
	return VersionInfo{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: goVersion,
	}
}
