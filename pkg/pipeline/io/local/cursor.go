package local

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode"
)

// Cursor reads whitespace-delimited tokens or whole lines from an input stream.
type Cursor struct {
	r *bufio.Reader

	// Whitespace-only lines are held back until a line with data follows them.
	pending []string
}

// NewCursor wraps r for token and line reads.
func NewCursor(r io.Reader) *Cursor {
	return &Cursor{r: bufio.NewReader(r)}
}

// Token returns the next maximal run of non-space runes.
func (c *Cursor) Token() (string, error) {
	c.pending = nil

	var sb strings.Builder
	for {
		r, _, err := c.r.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		if unicode.IsSpace(r) {
			if sb.Len() > 0 {
				return sb.String(), nil
			}
			continue
		}
		sb.WriteRune(r)
	}
}

// Line returns the next line without its terminator.
//
// Whitespace-only lines that run up to the end of input are not returned:
// the cursor reports io.EOF instead.
func (c *Cursor) Line() (string, error) {
	if len(c.pending) > 0 {
		line := c.pending[0]
		c.pending = c.pending[1:]
		return line, nil
	}

	line, err := c.readLine()
	if err != nil {
		return "", err
	}
	if !isBlank(line) {
		return line, nil
	}

	held := []string{line}
	for {
		next, err := c.readLine()
		if err != nil {
			return "", err
		}
		held = append(held, next)
		if !isBlank(next) {
			c.pending = held[1:]
			return held[0], nil
		}
	}
}

func (c *Cursor) readLine() (string, error) {
	line, err := c.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
