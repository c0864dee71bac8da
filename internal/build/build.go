// Package build holds build-time information set by the linker.
package build

// Version is the application version. It defaults to "dev" and is
// overwritten by release builds.
var Version = "dev"

// Commit is the git commit the binary was built from.
var Commit = "none"

// Date is the build timestamp.
var Date = "unknown"
