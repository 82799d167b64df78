package version

import (
	"runtime"
	"time"
)

// Plugin identity as declared to the host.
const (
	Component = "theme_envf"
	Release   = "0.1.0"
	Maturity  = "alpha"
)

var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2025-08-11T18:42:00Z
	GoVersion = runtime.Version()               // go version
)
