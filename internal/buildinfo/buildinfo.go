// Package buildinfo holds build-time metadata injected via -ldflags.
package buildinfo

// Version is the semantic version or tag for this build.
// Inject via: -X github.com/achabot/messenger-shopbot-go/internal/buildinfo.Version=...
var Version = ""

// Commit is the git commit SHA for this build.
// Inject via: -X github.com/achabot/messenger-shopbot-go/internal/buildinfo.Commit=...
var Commit = ""

// BuildDate is the RFC3339 build timestamp.
// Inject via: -X github.com/achabot/messenger-shopbot-go/internal/buildinfo.BuildDate=...
var BuildDate = ""

// Release returns a Sentry-style release identifier, empty when the build
// carries no version metadata.
func Release() string {
	if Version == "" {
		return ""
	}
	if Commit == "" {
		return Version
	}
	return Version + "+" + Commit
}
