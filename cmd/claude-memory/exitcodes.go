package main

import (
	"errors"

	"github.com/matsen/claude-memory/internal/config"
	"github.com/matsen/claude-memory/internal/memory"
)

// Exit codes
const (
	ExitSuccess         = 0 // Success
	ExitError           = 1 // General error (invalid arguments, I/O failure)
	ExitConfigError     = 2 // Configuration error (unreadable config, no home directory)
	ExitValidationError = 3 // Invalid create input or --type value
	ExitNotFound        = 4 // Memory ID absent from the requested category
	ExitParseError      = 5 // Memory store is not valid JSON
)

// exitCode maps an error to the process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, memory.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, memory.ErrParse):
		return ExitParseError
	case errors.Is(err, memory.ErrValidation):
		return ExitValidationError
	case errors.Is(err, config.ErrInvalidConfig):
		return ExitConfigError
	default:
		return ExitError
	}
}
