package config

import (
	"errors"
	"fmt"
)

// Package-specific errors
var (
	// ErrParsingConfig is returned when environment variables cannot be parsed into the config struct
	ErrParsingConfig = errors.New("failed to parse environment variables into config")

	// ErrConfigNotLoaded is returned when attempting to access a config that hasn't been loaded
	ErrConfigNotLoaded = errors.New("configuration has not been loaded")

	// ErrNilPointer is returned when a nil pointer is provided to Load
	ErrNilPointer = errors.New("nil pointer provided to config loader")

	// ErrLoadingEnvFile is returned when an explicitly requested .env file cannot be read
	ErrLoadingEnvFile = errors.New("failed to load env file")

	// ErrMissingRequired is matched by every MissingVarError
	ErrMissingRequired = errors.New("required environment variable is not defined")
)

// MissingVarError reports a required variable that is unset or empty.
type MissingVarError struct {
	Key string
}

func (e *MissingVarError) Error() string {
	return fmt.Sprintf("required environment variable %s is not defined", e.Key)
}

// Is lets errors.Is(err, ErrMissingRequired) match any missing variable.
func (e *MissingVarError) Is(target error) bool {
	return target == ErrMissingRequired
}

// MissingKeys extracts the names of all missing variables from err,
// including errors combined with errors.Join.
func MissingKeys(err error) []string {
	if err == nil {
		return nil
	}

	var keys []string
	var walk func(error)
	walk = func(e error) {
		switch v := e.(type) {
		case *MissingVarError:
			keys = append(keys, v.Key)
		case interface{ Unwrap() []error }:
			for _, inner := range v.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := v.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return keys
}
