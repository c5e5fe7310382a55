// Package errors provides the error types shared across cunnycode.
//
// Content problems (characters or tokens the alphabet cannot map) are not
// errors at all; they travel in codec.Result. The types here cover the
// two failures that do stop a run: unreadable input and bad flags.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	// ErrNoInput means no args were given and stdin is an interactive
	// terminal. The CLI treats it as a successful no-op.
	ErrNoInput = errors.New("no input available")

	// ErrInvalidUTF8 means a file or stdin did not hold UTF-8 text.
	ErrInvalidUTF8 = errors.New("stream did not contain valid UTF-8")
)

// ── Structured error types ───────────────────────────────────────────

// InputError is a read failure on an input that was already opened.
type InputError struct {
	Source string // "file" or "stdin"
	Path   string // file path, empty for stdin
	Err    error
}

func (e *InputError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("read %s %s: %v", e.Source, e.Path, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ConfigError represents an invalid flag combination.
type ConfigError struct {
	Field   string      // flag name
	Value   interface{} // the invalid value (nil if missing)
	Message string
	Hint    string // optional
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// WrapFile creates an InputError for a file read.
func WrapFile(path string, err error) *InputError {
	return &InputError{Source: "file", Path: path, Err: err}
}

// WrapStdin creates an InputError for a stdin read.
func WrapStdin(err error) *InputError {
	return &InputError{Source: "stdin", Err: err}
}

// IsFatal reports whether err should abort the process with a failure
// status. ErrNoInput is the one documented non-fatal outcome.
func IsFatal(err error) bool {
	return err != nil && !errors.Is(err, ErrNoInput)
}

// ── Re-exports for convenience ───────────────────────────────────────

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }
