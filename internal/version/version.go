// internal/version/version.go
package version

// Version is the released tool version, overridable at link time.
var Version = "0.2.0"
