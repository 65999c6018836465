package cli

import "errors"

var (
	// ErrInvalidState is returned by validate when at least one state fails.
	ErrInvalidState = errors.New("state validation failed")

	// ErrNoStateFiles is returned by validate when no state files are given.
	ErrNoStateFiles = errors.New("at least one state file is required")

	// ErrUnknownOutputFormat is returned for output formats other than json and yaml.
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
