package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ValidationError reports a missing or malformed request field. Handlers map
// it to a 400 response.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Validationf builds a *ValidationError.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// PayloadTooLargeError reports an upload over the size cap. It carries the
// user-facing message so the handler can return it verbatim.
type PayloadTooLargeError struct {
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("File size too large (max %dMB)", e.Limit/(1024*1024))
}

// UnsupportedFormatError reports an upload in a format outside the allow-list.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported file format %q", e.Format)
}

// StoreError wraps a metadata store failure, keeping the underlying message.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string { return fmt.Sprintf("store: %s: %v", e.Op, e.Err) }
func (e *StoreError) Unwrap() error { return e.Err }

// MediaError wraps a media host failure, keeping the underlying message.
type MediaError struct {
	Op  string
	Err error
}

func (e *MediaError) Error() string { return fmt.Sprintf("media: %s: %v", e.Op, e.Err) }
func (e *MediaError) Unwrap() error { return e.Err }
