package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/matsen/namenotes/internal/name"
)

// stdout and stderr are swapped out by tests.
var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

var warnPrefix = color.New(color.FgYellow, color.Bold).SprintFunc()

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// warnf writes a warning to stderr.
func warnf(format string, args ...interface{}) {
	fmt.Fprintf(stderr, "%s %s\n", warnPrefix("Warning:"), fmt.Sprintf(format, args...))
}

// reportError outputs an error in the appropriate format (human or JSON).
func reportError(err error) {
	if jsonOutput {
		outputJSON(ErrorResponse{Error: err.Error()})
		return
	}
	fmt.Fprintf(stderr, "error: %s\n", err)
}

// ErrorResponse is a JSON error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteResult is the response for the write command.
type WriteResult struct {
	Status string      `json:"status"`
	Record name.Record `json:"record"`
	Total  int         `json:"total"`
	Path   string      `json:"path"`
}

// ReadResult is the response for the read command.
type ReadResult struct {
	Count  int             `json:"count"`
	Filter string          `json:"filter,omitempty"`
	Names  name.Collection `json:"names"`
}
