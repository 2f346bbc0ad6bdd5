package main

// Exit codes
const (
	ExitSuccess     = 0 // Success
	ExitError       = 1 // General error (invalid arguments, runtime failure)
	ExitConfigError = 2 // Configuration error (no home directory, unreadable config)
	ExitDataError   = 3 // Data error (malformed names file, validation failure)
	ExitIOError     = 4 // Names file could not be read or written
)
