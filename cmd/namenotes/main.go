// Package main provides the namenotes CLI entry point.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/matsen/namenotes/internal/config"
	"github.com/matsen/namenotes/internal/name"
	"github.com/matsen/namenotes/internal/storage"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	// storePath is the --path flag: directory containing namenotes.json
	storePath string
	// jsonOutput switches results and errors to JSON
	jsonOutput bool
)

func main() {
	os.Exit(run())
}

func run() int {
	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}
	code := exitCodeFor(err)
	reportError(err)
	return code
}

var rootCmd = &cobra.Command{
	Use:   "namenotes",
	Short: "Take notes about names",
	Long: `namenotes records facts about names: language of origin, meaning,
gender, and whether the name is fictional.

Notes are kept in namenotes.json in your home directory, or in the
directory given by --path, $NAMENOTES_PATH, or the "path" key of
~/.config/namenotes/config.yml.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Load .env file if present (ignore error if not found)
		_ = godotenv.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&storePath, "path", "p", "", "Directory containing namenotes.json (default: home directory)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.Version = Version
}

// codedError attaches an exit code to an error.
type codedError struct {
	code int
	err  error
}

func (e *codedError) Error() string { return e.err.Error() }
func (e *codedError) Unwrap() error { return e.err }

// withCode wraps err so that the process exits with code.
func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &codedError{code: code, err: err}
}

// exitCodeFor maps an error returned by a command to a process exit code.
func exitCodeFor(err error) int {
	var ce *codedError
	if errors.As(err, &ce) {
		return ce.code
	}
	switch {
	case errors.Is(err, config.ErrNoHomeDir):
		return ExitConfigError
	case errors.Is(err, storage.ErrMalformed),
		errors.Is(err, name.ErrEmptyName),
		errors.Is(err, name.ErrInvalidGender):
		return ExitDataError
	}
	return ExitError
}

// resolveLocation resolves the names file location from flags and config.
func resolveLocation() (*config.Location, error) {
	loc, err := config.Resolve(storePath)
	if err != nil {
		return nil, withCode(ExitConfigError, err)
	}
	return loc, nil
}

// openStore resolves the location and returns its file store.
func openStore() (*storage.FileStore, error) {
	loc, err := resolveLocation()
	if err != nil {
		return nil, err
	}
	return storage.NewFileStore(loc.Path), nil
}

// loadNames loads the collection from s. Truncated content is reported as a
// warning and replaced by an empty collection; malformed content is fatal.
func loadNames(s storage.Store, label string) (name.Collection, error) {
	c, err := storage.LoadCollection(s)
	switch {
	case errors.Is(err, storage.ErrTruncated):
		warnf("%s is truncated; treating it as empty", label)
		return c, nil
	case errors.Is(err, storage.ErrMalformed):
		return nil, withCode(ExitDataError, fmt.Errorf("reading %s: %w", label, err))
	case err != nil:
		return nil, withCode(ExitIOError, err)
	}
	return c, nil
}
