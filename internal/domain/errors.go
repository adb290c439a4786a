package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Package errors
	ErrMsgPackageNotFound = "package manifest not found"
	ErrMsgEmptyPackage    = "package contains no items"
	ErrMsgInvalidManifest = "invalid manifest"

	// Configuration errors
	ErrMsgConfigurationNotFound = "configuration not found"

	// Transfer errors
	ErrMsgDuplicateConflicts  = "duplicate items present in target"
	ErrMsgOverrideNotAllowed  = "override not allowed"
	ErrMsgItemIndexOutOfRange = "item index out of range"

	// Session errors
	ErrMsgSessionNotFound = "session not found"

	// Job errors
	ErrMsgJobNotFound = "job not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Package errors
	ErrPackageNotFound = errors.New(ErrMsgPackageNotFound)
	ErrEmptyPackage    = errors.New(ErrMsgEmptyPackage)
	ErrInvalidManifest = errors.New(ErrMsgInvalidManifest)

	// Configuration errors
	ErrConfigurationNotFound = errors.New(ErrMsgConfigurationNotFound)

	// Transfer errors
	ErrDuplicateConflicts  = errors.New(ErrMsgDuplicateConflicts)
	ErrOverrideNotAllowed  = errors.New(ErrMsgOverrideNotAllowed)
	ErrItemIndexOutOfRange = errors.New(ErrMsgItemIndexOutOfRange)

	// Session errors
	ErrSessionNotFound = errors.New(ErrMsgSessionNotFound)

	// Job errors
	ErrJobNotFound = errors.New(ErrMsgJobNotFound)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
