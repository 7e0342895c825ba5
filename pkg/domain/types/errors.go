package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrNotFound is returned when a user, repository or file does not exist on GitHub.
	ErrNotFound = goerr.New("not found")

	// ErrParseFailure is returned when a configuration file or hook argument list is malformed.
	ErrParseFailure = goerr.New("parse failure")

	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrProcessFailure is returned when a git operation or an external tool fails.
	ErrProcessFailure = goerr.New("process failure")
)
