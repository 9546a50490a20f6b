// Package errors provides custom error types for the application.
package errors

import "errors"

// Fixture errors
var (
	ErrNoFixtures        = errors.New("no audio fixtures configured")
	ErrFixtureUnreadable = errors.New("audio fixture could not be read")
)

// Config errors
var (
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Report errors
var (
	ErrReportEncode = errors.New("failed to encode run report")
	ErrChecksFailed = errors.New("one or more checks failed")
)

// Audio errors
var (
	ErrAudioNotFound = errors.New("file mapping not found")
)
