/*
 * Phase 2 - command dispatcher.
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

package phase2

import (
	"strconv"
	"strings"
	"unicode"
)

// cmdScanner is a small whitespace tokenizer over one command line,
// in the spirit of the S370 command parser's cmdLine scanner.
type cmdScanner struct {
	line string
	pos  int
}

func (s *cmdScanner) skipSpace() {
	for s.pos < len(s.line) && unicode.IsSpace(rune(s.line[s.pos])) {
		s.pos++
	}
}

func (s *cmdScanner) isEOL() bool {
	return s.pos >= len(s.line)
}

// word returns the next whitespace-delimited token, or "" at EOL.
func (s *cmdScanner) word() string {
	s.skipSpace()
	start := s.pos
	for s.pos < len(s.line) && !unicode.IsSpace(rune(s.line[s.pos])) {
		s.pos++
	}
	return s.line[start:s.pos]
}

// int parses the next token as a base-10 integer, defaulting to -1 on
// a malformed or missing token.
func (s *cmdScanner) int() int {
	tok := s.word()
	n, err := strconv.Atoi(tok)
	if err != nil {
		return -1
	}
	return n
}

// ProcessLine advances the line counter unconditionally (matching the
// original's off-by-one-flavored numbering across blanks and comments,
// see DESIGN.md), skips blank/comment lines without echoing them, and
// otherwise echoes and dispatches the command.
func (m *MMU) ProcessLine(raw string) {
	m.lineNum++

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}

	m.trace.Printf("Command [%d]: %s\n", m.lineNum, trimmed)

	s := &cmdScanner{line: trimmed}
	verb := strings.ToUpper(s.word())

	switch verb {
	case "CREATE":
		pid := s.int()
		pages := s.int()
		m.createProcess(pid, pages)

	case "ACCESS":
		pid := s.int()
		addr := s.int()
		m.accessCommand(pid, addr, false)

	case "WRITE":
		pid := s.int()
		addr := s.int()
		m.accessCommand(pid, addr, true)

	case "TERMINATE":
		pid := s.int()
		m.terminateProcess(pid)

	case "STATS":
		m.printStatistics()

	case "MEMMAP":
		m.printMemoryMap()

	default:
		m.trace.Printf("Unknown command: %s\n", trimmed)
	}
}

// accessCommand backs both ACCESS and WRITE: they share trace wording,
// differing only in the write flag threaded into Translate.
func (m *MMU) accessCommand(pid, addr int, isWrite bool) {
	m.trace.Printf("Accessing virtual address %d of process %d\n", addr, pid)
	if phys, ok := m.Translate(pid, addr, isWrite); ok {
		m.trace.Printf("Physical address: %d\n", phys)
	}
}
