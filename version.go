package main

import "fmt"

const (
	PROGRAM_NAME    = "camdocs"
	PROGRAM_VERSION = "1.0.2"
)

// Set at link stage via `-ldflags "-X main.GIT_COMMIT=$(git rev-parse --short HEAD)"`
var GIT_COMMIT string

// Build signature string
var BUILD_SIGNATURE = fmt.Sprintf("%s (%s)", PROGRAM_NAME+"/"+PROGRAM_VERSION, func() string {
	if GIT_COMMIT != "" {
		return GIT_COMMIT
	}
	return "unknown"
}())
