package main

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Constants for output formatting.
const (
	ListDescriptionMaxLen = 60 // Description column width in list output
	RuleWidth             = 80 // Separator between conversation messages
)

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"code"`
}

// StatusResponse is a generic response for commands that return status.
type StatusResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
	Type   string `json:"type"`
}

// outputJSON writes a value as formatted JSON to stdout.
func (a *app) outputJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputHuman writes a human-readable string to stdout.
func (a *app) outputHuman(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

// warn writes a warning to stderr.
func (a *app) warn(format string, args ...interface{}) {
	fmt.Fprintf(a.errOut, "Warning: "+format+"\n", args...)
}

// reportError outputs an error in the appropriate format (human or JSON)
// and returns the exit code for it.
func (a *app) reportError(err error) int {
	code := exitCode(err)
	if a.humanOutput {
		fmt.Fprintf(a.errOut, "error: %s\n", err)
	} else {
		a.outputJSON(ErrorResponse{Error: err.Error(), Code: code})
	}
	return code
}

// truncateString truncates a string to maxLen, adding "..." if truncated.
func truncateString(s string, maxLen int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}

// rule returns a horizontal separator line.
func rule() string {
	return strings.Repeat("-", RuleWidth)
}
