package core

import (
	"errors"
	"fmt"
)

// ChooseLeft reports whether a must be placed before, or tied with, b.
type ChooseLeft[T any] func(a, b T) bool

// Cursor is the read position over an input source.
//
// Token and Line return io.EOF once the source is exhausted.
type Cursor interface {
	Token() (string, error)
	Line() (string, error)
}

// SkipError marks a single input unit that could not be parsed.
//
// Readers drop the unit and keep going rather than failing the full read.
type SkipError struct {
	Unit   string
	Reason string
	Err    error
}

func (e *SkipError) Error() string {
	if e == nil {
		return "skipped unit"
	}
	return fmt.Sprintf("\"%s\" %s. It will be skipped", e.Unit, e.Reason)
}

func (e *SkipError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsSkippable reports whether err (or anything it wraps) is a *SkipError.
func IsSkippable(err error) bool {
	var se *SkipError
	return errors.As(err, &se)
}
