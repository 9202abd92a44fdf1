// Package datatype defines the kinds of datum the tool reads and how each
// kind is parsed and ordered.
package datatype

import (
	"context"
	"errors"
	"io"
	"strconv"

	"github.com/shpitdev/sorting-tool/pkg/pipeline/core"
)

// DataType is the capability set shared by every datum kind.
type DataType[T comparable] interface {
	// Name is the singular display name used in report text.
	Name() string
	// Next reads one datum from c. A *core.SkipError means the unit was
	// consumed but is not usable; io.EOF means the input is exhausted.
	Next(c core.Cursor) (T, error)
	ChooseLeft(a, b T) bool
	// Separator joins values in the natural report.
	Separator() string
	Format(v T) string
}

// Integer reads base-10 signed 64-bit integers.
type Integer struct{}

func (Integer) Name() string { return "number" }

func (Integer) Next(c core.Cursor) (int64, error) {
	tok, err := c.Token()
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, &core.SkipError{Unit: tok, Reason: "is not a long", Err: err}
	}
	return n, nil
}

func (Integer) ChooseLeft(a, b int64) bool { return a < b }
func (Integer) Separator() string          { return " " }
func (Integer) Format(v int64) string      { return strconv.FormatInt(v, 10) }

// Line reads whole lines.
type Line struct{}

func (Line) Name() string                       { return "line" }
func (Line) Next(c core.Cursor) (string, error) { return c.Line() }
func (Line) ChooseLeft(a, b string) bool        { return a < b }
func (Line) Separator() string                  { return "\n" }
func (Line) Format(v string) string             { return v }

// Word reads whitespace-delimited words verbatim.
type Word struct{}

func (Word) Name() string                       { return "word" }
func (Word) Next(c core.Cursor) (string, error) { return c.Token() }
func (Word) ChooseLeft(a, b string) bool        { return a < b }
func (Word) Separator() string                  { return " " }
func (Word) Format(v string) string             { return v }

// Plural is the display name used for totals.
func Plural[T comparable](dt DataType[T]) string {
	return dt.Name() + "s"
}

// ReadAll drains c into a dataset in input order.
//
// Skippable units are passed to onSkip (which may be nil) and reading continues.
// Any other error, including context cancellation, stops the read.
func ReadAll[T comparable](ctx context.Context, c core.Cursor, dt DataType[T], onSkip func(*core.SkipError)) ([]T, error) {
	var out []T
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := dt.Next(c)
		if err == nil {
			out = append(out, v)
			continue
		}
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		var skip *core.SkipError
		if errors.As(err, &skip) {
			if onSkip != nil {
				onSkip(skip)
			}
			continue
		}
		return nil, err
	}
}
