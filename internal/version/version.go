// Package version provides version information for the fontship binary.
package version

import (
	_ "embed"
	"strings"
	"sync"
)

// VERSION contains the version from the VERSION file.
// This is used as a fallback when no git describe string was injected at
// build time (e.g., go install).
//
//go:embed VERSION
var VERSION string

// Describe is the output of `git describe --tags` captured at build time:
//
//	go build -ldflags "-X github.com/theleagueof/fontship/internal/version.Describe=$(git describe --tags)"
var Describe string

// Get returns the version of the running binary. It is resolved once per
// process and never changes afterwards.
var Get = sync.OnceValue(func() string {
	return resolve(Describe, VERSION)
})

func resolve(describe, pkg string) string {
	if d := strings.TrimSpace(describe); d != "" {
		return d
	}
	return strings.TrimSpace(pkg)
}
