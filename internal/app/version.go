package app

import "strings"

const appName = "escolhe-pra-mim"

// Build metadata, injected with
//
//	go build -ldflags "-X github.com/heartmarshall/escolhe-pra-mim/internal/app.Version=v1.2.0 -X ...Commit=$(git rev-parse HEAD)"
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion renders the build metadata for startup logs and /health,
// e.g. "v1.2.0 (3f9c2ab, 2024-05-01T12:00:00Z)". Unknown parts are left out.
func BuildVersion() string {
	var parts []string
	if known(Commit) {
		parts = append(parts, shortCommit(Commit))
	}
	if known(BuildTime) {
		parts = append(parts, BuildTime)
	}
	if len(parts) == 0 {
		return Version
	}
	return Version + " (" + strings.Join(parts, ", ") + ")"
}

func known(s string) bool {
	return s != "" && s != "unknown"
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
