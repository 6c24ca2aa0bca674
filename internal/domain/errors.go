package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Item errors
	ErrMsgItemNotFound = "item not found"

	// Content errors
	ErrMsgNoSnapshot          = "no content snapshot loaded"
	ErrMsgContributorFailed   = "content contributor failed"
	ErrMsgReloadInProgress    = "reload already in progress"
	ErrMsgInvalidContentPack  = "invalid content pack"
	ErrMsgInvalidRawData      = "invalid raw data"
	ErrMsgUnsupportedSource   = "unsupported data source"
	ErrMsgInvalidPool         = "invalid pool"
	ErrMsgInvalidFlag         = "invalid flag"
	ErrMsgInvalidContext      = "invalid fishing context"
	ErrMsgInvalidPlace        = "invalid place"
	ErrMsgPredicateRegistered = "predicate already registered"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Item errors
	ErrItemNotFound = errors.New(ErrMsgItemNotFound)

	// Content errors
	ErrNoSnapshot          = errors.New(ErrMsgNoSnapshot)
	ErrContributorFailed   = errors.New(ErrMsgContributorFailed)
	ErrReloadInProgress    = errors.New(ErrMsgReloadInProgress)
	ErrInvalidContentPack  = errors.New(ErrMsgInvalidContentPack)
	ErrInvalidRawData      = errors.New(ErrMsgInvalidRawData)
	ErrUnsupportedSource   = errors.New(ErrMsgUnsupportedSource)
	ErrInvalidPool         = errors.New(ErrMsgInvalidPool)
	ErrInvalidFlag         = errors.New(ErrMsgInvalidFlag)
	ErrInvalidContext      = errors.New(ErrMsgInvalidContext)
	ErrInvalidPlace        = errors.New(ErrMsgInvalidPlace)
	ErrPredicateRegistered = errors.New(ErrMsgPredicateRegistered)

	// Database errors
	ErrDatabase = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
