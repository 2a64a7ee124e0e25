package tbptt

import (
	"errors"
	"fmt"
)

// ErrEpochDone is returned by Next when the corpus and every lane have
// been drained for the current epoch. Call Reset to begin a new epoch.
var ErrEpochDone = errors.New("tbptt: epoch done")

// ConfigurationError is returned when an Iterator cannot be constructed:
// an invalid batch or split size, an empty key list, conflicting order
// modes, or a configured key that some document does not carry. It is
// always produced at construction time, never mid-epoch.
type ConfigurationError struct {
	Err error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %v", e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

func configErrorf(format string, args ...interface{}) error {
	return &ConfigurationError{Err: fmt.Errorf(format, args...)}
}

// AlignmentError indicates that two streams that must describe the same
// time steps disagree in length. It signals corrupt input data and is
// always surfaced, never recovered from.
type AlignmentError struct {
	Err error
}

func (e *AlignmentError) Error() string {
	return fmt.Sprintf("alignment error: %v", e.Err)
}

func (e *AlignmentError) Unwrap() error {
	return e.Err
}

func alignErrorf(format string, args ...interface{}) error {
	return &AlignmentError{Err: fmt.Errorf(format, args...)}
}
