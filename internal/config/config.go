/*
 * S370 - Configuration file parser
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

// Package config parses the simulator's optional tuning file: a small
// line-oriented format the same shape as the mainframe emulator's own
// configuration language (a scanner tracking a position within the
// current line, one directive per line, '#' comments, blank lines
// ignored), scaled down to the handful of constants the two engines
// allow callers to override.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Phase1 holds the tunable constants for the card VM.
type Phase1 struct {
	MemWords int // Number of 4-character memory cells. Default 100.
}

// Phase2 holds the tunable constants for the paged MMU.
type Phase2 struct {
	PageSize       int // Bytes per page. Default 1024.
	PhysicalFrames int // Physical frame count. Default 64.
	VirtualPages   int // Virtual pages per process. Default 256.
	TLBSize        int // Fully-associative TLB entry count. Default 4.
}

// Config is the set of overrides a config file may supply. Load starts
// every field at its spec default, so a key the file omits keeps it.
type Config struct {
	Phase1 Phase1
	Phase2 Phase2
}

// DefaultPhase1 returns the §6 defaults for Phase 1.
func DefaultPhase1() Phase1 {
	return Phase1{MemWords: 100}
}

// DefaultPhase2 returns the §6 defaults for Phase 2.
func DefaultPhase2() Phase2 {
	return Phase2{PageSize: 1024, PhysicalFrames: 64, VirtualPages: 256, TLBSize: 4}
}

// line is a position-tracking scanner over one config line, the same
// shape as the emulator's own optionLine/cmdLine scanners.
type line struct {
	text string
	pos  int
}

func (l *line) skipSpace() {
	for l.pos < len(l.text) && (l.text[l.pos] == ' ' || l.text[l.pos] == '\t') {
		l.pos++
	}
}

func (l *line) isEOL() bool {
	return l.pos >= len(l.text)
}

func (l *line) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && l.text[l.pos] != ' ' && l.text[l.pos] != '\t' {
		l.pos++
	}
	return l.text[start:l.pos]
}

var knownKeys = map[string]bool{
	"MEMWORDS": true, "PAGESIZE": true, "FRAMES": true, "PAGES": true, "TLB": true,
}

// Load reads name and applies KEY VALUE directives on top of the spec
// defaults. Unknown keys are an error; the file need not mention every
// key, and an empty/missing name simply returns the defaults.
func Load(name string) (*Config, error) {
	cfg := &Config{Phase1: DefaultPhase1(), Phase2: DefaultPhase2()}
	if name == "" {
		return cfg, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return cfg, parse(f, cfg)
}

func parse(r io.Reader, cfg *Config) error {
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || text[0] == '#' {
			continue
		}

		ln := &line{text: text}
		key := strings.ToUpper(ln.getWord())
		value := strings.TrimSpace(ln.getWord())

		if !knownKeys[key] {
			return fmt.Errorf("config line %d: unknown key %q", lineNum, key)
		}
		if value == "" {
			return fmt.Errorf("config line %d: %s requires a value", lineNum, key)
		}

		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("config line %d: %s value %q is not a number", lineNum, key, value)
		}
		if n <= 0 {
			return fmt.Errorf("config line %d: %s must be positive", lineNum, key)
		}

		switch key {
		case "MEMWORDS":
			cfg.Phase1.MemWords = n
		case "PAGESIZE":
			cfg.Phase2.PageSize = n
		case "FRAMES":
			cfg.Phase2.PhysicalFrames = n
		case "PAGES":
			cfg.Phase2.VirtualPages = n
		case "TLB":
			cfg.Phase2.TLBSize = n
		}
	}
	return scanner.Err()
}
