// Package version carries the build version, overridable at link time via
// -ldflags "-X yt-study-copilot/internal/version.Value=v1.2.3".
package version

var Value = "dev"
