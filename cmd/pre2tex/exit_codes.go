package main

import (
	"errors"
	"os"

	pre2tex "github.com/alnah/go-pre2tex"
	"github.com/alnah/go-pre2tex/internal/config"
)

// Exit codes for the pre2tex CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful transpilation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrReadInput) ||
		errors.Is(err, ErrWriteOutput) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrInvalidMarker) ||
		errors.Is(err, config.ErrInvalidMaxLevel) ||
		errors.Is(err, pre2tex.ErrMarkerNotSingleByte) ||
		errors.Is(err, pre2tex.ErrMarkersEqual) ||
		errors.Is(err, pre2tex.ErrEmptySentinel) ||
		errors.Is(err, pre2tex.ErrInvalidMaxLevel) ||
		errors.Is(err, ErrInvalidExtension) ||
		errors.Is(err, ErrOutputNotDir) {
		return ExitUsage
	}

	return ExitGeneral
}
