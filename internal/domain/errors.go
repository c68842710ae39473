// Package domain owns the client state: the active geometry, the terrain
// identity and the lots of the last subdivision.
package domain

import (
	"errors"
	"fmt"

	"github.com/mouse-blink/parcel/internal/adapter"
	"golang.org/x/sync/semaphore"
)

// ErrBusy is returned when an operation is started while the same kind of
// operation is still in flight.
var ErrBusy = errors.New("operation already in progress")

// Fields named by ValidationError.
const (
	FieldGeometry = "geometry"
	FieldName     = "name"
	FieldID       = "id"
	FieldTerrain  = "terrain"
	FieldLotCount = "lotCount"
	FieldMethod   = "method"
	FieldLots     = "lots"
)

// Operations named by BackendError.
const (
	OpSave      = "save terrain"
	OpLoad      = "load terrain"
	OpSubdivide = "subdivide terrain"
	OpSaveLots  = "save lots"
)

// ConfigError means the process was started without a usable project.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// ValidationError reports a failed precondition. No request was sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// BackendError wraps a failed backend call.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

// Message returns the backend's own message, or "" when it sent none.
func (e *BackendError) Message() string {
	var apiErr *adapter.APIError
	if errors.As(e.Err, &apiErr) {
		return apiErr.Message
	}

	return ""
}

// TimedOut reports whether the call failed on its deadline.
func (e *BackendError) TimedOut() bool {
	return errors.Is(e.Err, adapter.ErrTimeout)
}

// guard rejects overlapping calls instead of queueing them.
type guard struct {
	sem *semaphore.Weighted
}

func newGuard() guard {
	return guard{sem: semaphore.NewWeighted(1)}
}

func (g guard) acquire() (func(), error) {
	if !g.sem.TryAcquire(1) {
		return nil, ErrBusy
	}

	return func() { g.sem.Release(1) }, nil
}
