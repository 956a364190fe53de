// Package version reports build metadata for cmd/jsonrepair: the repair
// engine version, VCS revision, and toolchain info, assembled the way
// `go build` embeds them rather than via ldflags the caller must remember
// to pass.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/Latias94/jsonrepair/repair"
)

// Revision is the VCS commit the running binary was built from, or
// "unknown" outside a module build (e.g. `go run` on a bare file).
var Revision = getRevision()

// GoVersion, GoOS and GoArch describe the toolchain and target that
// produced the running binary.
var (
	GoVersion = runtime.Version()
	GoOS      = runtime.GOOS
	GoArch    = runtime.GOARCH
)

func getRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}
	return "unknown"
}

// String renders a single human-readable build-info line, the output of
// the CLI's `version` subcommand.
func String() string {
	return fmt.Sprintf("jsonrepair %s (revision %s, %s, %s/%s)",
		repair.Version(), Revision, GoVersion, GoOS, GoArch)
}
