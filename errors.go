package samecontent

import (
	"context"
	"errors"
)

// ErrInvalidRead is returned when a source reports a byte count outside
// the bounds of the buffer it was given.
var ErrInvalidRead = errors.New("samecontent: reader returned invalid count")

// Source names used in SourceError.
const (
	SourceA = "a"
	SourceB = "b"
)

// SourceError records an I/O failure of one of the two sources.
// A comparison that returns a SourceError has no verdict.
type SourceError struct {
	Source string // SourceA or SourceB
	Op     string // "read", "stat" or "seek"
	Err    error
}

func (e *SourceError) Error() string {
	return "samecontent: " + e.Op + " " + e.Source + ": " + e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// sourceError wraps err for the given side. Context errors pass through
// untouched so callers can compare them directly.
func sourceError(source, op string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return &SourceError{Source: source, Op: op, Err: err}
}
