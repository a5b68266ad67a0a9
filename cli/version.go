package cli

import "runtime/debug"

// Name is the program name shown in usage and version output.
const Name = "apptemplate"

// Description is shown at the top of the usage text.
const Description = "Application template with structured logging and a demo mode."

// Epilog is shown at the bottom of the usage text.
const Epilog = "Without arguments, the application will simply start and finish."

// version is set at build time via ldflags.
var version string

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Version resolves the program version: the ldflags value when set,
// else the main module version from the build info, else "(devel)".
func Version() string {
	if version != "" {
		return version
	}
	if info, ok := readBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
