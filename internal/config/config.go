// Package config resolves where the names file lives.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	// StoreFile is the name of the names file inside the store directory.
	StoreFile = "namenotes.json"
	// EnvPath overrides the store directory when --path is not given.
	EnvPath = "NAMENOTES_PATH"
)

// Source says which setting decided the store directory.
type Source string

const (
	SourceFlag   Source = "flag"
	SourceEnv    Source = "env"
	SourceConfig Source = "config"
	SourceHome   Source = "home"
)

// ErrNoHomeDir is returned when no directory is configured and the home
// directory cannot be determined.
var ErrNoHomeDir = errors.New("home directory not found")

// userHomeDir is replaced in tests.
var userHomeDir = os.UserHomeDir

// Location is a resolved store location.
type Location struct {
	Dir    string `json:"dir"`
	Path   string `json:"path"`
	Source Source `json:"source"`
}

// StorePath returns the path of the names file in dir.
func StorePath(dir string) string {
	return filepath.Join(dir, StoreFile)
}

// Resolve picks the store directory from, in order: flagPath, the
// NAMENOTES_PATH environment variable, the global config, the home directory.
func Resolve(flagPath string) (*Location, error) {
	dir, src, err := resolveDir(flagPath)
	if err != nil {
		return nil, err
	}
	return &Location{Dir: dir, Path: StorePath(dir), Source: src}, nil
}

func resolveDir(flagPath string) (string, Source, error) {
	if flagPath != "" {
		return ExpandPath(flagPath), SourceFlag, nil
	}
	if env := os.Getenv(EnvPath); env != "" {
		return ExpandPath(env), SourceEnv, nil
	}

	cfg, err := LoadGlobalConfig()
	if err != nil {
		return "", "", err
	}
	if cfg.Path != "" {
		return cfg.Path, SourceConfig, nil
	}

	home, err := userHomeDir()
	if err != nil || home == "" {
		return "", "", fmt.Errorf("%w: use --path or set %s", ErrNoHomeDir, EnvPath)
	}
	return home, SourceHome, nil
}

// ExpandPath expands ~ to the user's home directory.
// Returns the original path unchanged if it doesn't start with ~.
func ExpandPath(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := userHomeDir()
	if err != nil {
		return path // Return original if we can't get home directory
	}

	return filepath.Join(home, path[1:])
}

// ValidateDir checks that path, if it exists, is a directory.
func ValidateDir(path string) error {
	info, err := os.Stat(ExpandPath(path))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}
	return nil
}
