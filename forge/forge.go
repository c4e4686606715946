// Package forge talks to a Foundry project: it runs the build, reads the
// compiler cache index to discover contracts and loads their ABIs from the
// build artifacts.
package forge

import "errors"

var (
	// ErrForgeNotFound is returned when the forge binary is not on PATH.
	ErrForgeNotFound = errors.New("forge binary not found")
	// ErrArtifactNotFound is returned when a contract has no build artifact.
	ErrArtifactNotFound = errors.New("artifact not found")
)
