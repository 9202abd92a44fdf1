// Package casefold is a custom data type built on the public kit: words
// ordered without regard to letter case.
package casefold

import (
	"strings"

	"github.com/shpitdev/sorting-tool/pkg/pipeline/core"
)

type Word struct{}

func (Word) Name() string                       { return "word" }
func (Word) Next(c core.Cursor) (string, error) { return c.Token() }
func (Word) Separator() string                  { return " " }
func (Word) Format(v string) string             { return v }

func (Word) ChooseLeft(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
