/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package contactstore

import (
	"runtime"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	info := GetVersionInfo()
	if info.Version != Version {
		t.Errorf("Expected version %q, got %q", Version, info.Version)
	}
	if GoVersion == "unknown" && info.GoVersion != runtime.Version() {
		t.Errorf("Expected the running toolchain %q, got %q", runtime.Version(), info.GoVersion)
	}
}
