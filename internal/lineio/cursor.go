/*
 * Shared line-oriented input cursor.
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package lineio provides a single-cursor line reader shared by a
// producer and a lazy consumer of the same input text. Phase 1's loader
// and its READ instruction both pull from one job deck; Phase 2's command
// dispatcher pulls from one script. Neither reopens or re-scans the text.
package lineio

import "strings"

// Cursor walks a block of text one line at a time, tracking how many
// lines have been consumed so callers that need 1-based line numbers
// (Phase 2's "Command [N]") can report them without a second pass.
type Cursor struct {
	lines []string
	pos   int
}

// NewCursor splits text on newlines. A trailing newline does not produce
// a spurious empty final line.
func NewCursor(text string) *Cursor {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return &Cursor{lines: lines}
}

// Next returns the next line and true, or "" and false at end of input.
func (c *Cursor) Next() (string, bool) {
	if c.pos >= len(c.lines) {
		return "", false
	}
	line := c.lines[c.pos]
	c.pos++
	return line, true
}

// LineNumber returns the 1-based number of the line last returned by Next.
func (c *Cursor) LineNumber() int {
	return c.pos
}

// AtEOF reports whether every line has been consumed.
func (c *Cursor) AtEOF() bool {
	return c.pos >= len(c.lines)
}
