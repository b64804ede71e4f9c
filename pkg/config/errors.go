package config

import "errors"

var (
	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the configuration struct.
	ErrParsingConfig = errors.New("config: failed to parse environment variables")

	// ErrLoadingEnvFile is returned when a .env file cannot be loaded.
	ErrLoadingEnvFile = errors.New("config: failed to load env file")

	// ErrNilPointer is returned when a nil pointer is passed to Load.
	ErrNilPointer = errors.New("config: nil pointer provided to loader")
)
