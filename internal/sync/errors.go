package sync

import (
	"errors"
	"fmt"
)

// CredentialsError is returned when credentials cannot be loaded or the API
// clients cannot be built from them. Nothing has been read or written.
type CredentialsError struct {
	Err error
}

func (e *CredentialsError) Error() string {
	return fmt.Sprintf("credentials: %v", e.Err)
}

func (e *CredentialsError) Unwrap() error { return e.Err }

// SourceFetchError is returned when the member rows cannot be read.
type SourceFetchError struct {
	Err error
}

func (e *SourceFetchError) Error() string {
	return fmt.Sprintf("fetching source rows: %v", e.Err)
}

func (e *SourceFetchError) Unwrap() error { return e.Err }

// EnumerationError is returned when the record store cannot be fully listed.
// Page is the 1-based page that failed.
type EnumerationError struct {
	Page int
	Err  error
}

func (e *EnumerationError) Error() string {
	return fmt.Sprintf("enumerating records (page %d): %v", e.Page, e.Err)
}

func (e *EnumerationError) Unwrap() error { return e.Err }

// IsCredentialsError checks whether err is or wraps a CredentialsError.
func IsCredentialsError(err error) bool {
	var target *CredentialsError
	return errors.As(err, &target)
}

// IsSourceFetchError checks whether err is or wraps a SourceFetchError.
func IsSourceFetchError(err error) bool {
	var target *SourceFetchError
	return errors.As(err, &target)
}

// IsEnumerationError checks whether err is or wraps an EnumerationError.
func IsEnumerationError(err error) bool {
	var target *EnumerationError
	return errors.As(err, &target)
}
