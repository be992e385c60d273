package main

import "errors"

var (
	// ErrUnknownCommand occurs when the given command does not exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrWrongArgs occurs when a command receives the wrong number of arguments.
	ErrWrongArgs = errors.New("wrong number of arguments")

	// ErrInvalidFlags occurs when the flags of a command cannot be parsed.
	ErrInvalidFlags = errors.New("invalid flags")

	// ErrCheckFailed occurs when a checking command's condition does not hold.
	ErrCheckFailed = errors.New("check failed")

	// ErrNoTempDir occurs when no temporary directory is configured.
	ErrNoTempDir = errors.New("no temporary directory configured")
)
