/*
 * Phase 1 - card-oriented batch virtual machine.
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

// Package phase1 simulates the small card-oriented batch machine: a
// program loader driven by $AMJ/$DTA/$END control cards, a 100-word by
// 4-character memory, one general register, a toggle register and a
// supervisor-mode trap handler servicing READ/WRITE/TERMINATE.
package phase1

import (
	"log/slog"

	"github.com/cardsim/ossim/internal/lineio"
	"github.com/cardsim/ossim/internal/tracelog"
)

// Service interrupt codes, keyed by SI.
const (
	siNone      = 0
	siRead      = 1
	siWrite     = 2
	siTerminate = 3
)

// VM holds the full state of one batch machine run. Every run gets its
// own VM rather than sharing package-level state — the fix for the
// global-cursor design flaw the original source carries (see
// DESIGN.md), applied here even though Phase 1 itself was never called
// out for it.
type VM struct {
	memory [][4]byte // Main memory, memWords cells of 4 characters each.
	ir     [4]byte   // Instruction register.
	r      [4]byte   // General-purpose register.
	c      bool      // Toggle (condition) register.
	ic     int       // Instruction counter.
	si     int       // Pending service interrupt, 0 if none.
	buffer [40]byte  // READ scratch zone.

	cursor *lineio.Cursor
	trace  *tracelog.Trace
	log    *slog.Logger
}

// NewVM creates a VM over jobText with memWords memory cells (spec
// default 100). The VM owns the cursor for the lifetime of the run:
// the loader and READ share it, so data cards are consumed lazily in
// the order they appear rather than pre-scanned.
func NewVM(jobText string, memWords int, log *slog.Logger) *VM {
	if memWords <= 0 {
		memWords = 100
	}
	if log == nil {
		log = slog.Default()
	}
	return &VM{
		memory: make([][4]byte, memWords),
		c:      true,
		cursor: lineio.NewCursor(jobText),
		trace:  &tracelog.Trace{},
		log:    log,
	}
}

// reset clears all registers and memory, as the $AMJ card requires, but
// keeps the shared cursor and trace buffer — a job boundary resets the
// machine, not the input stream or the accumulated output.
func (vm *VM) reset() {
	for i := range vm.memory {
		vm.memory[i] = [4]byte{}
	}
	vm.ir = [4]byte{}
	vm.r = [4]byte{}
	vm.c = true
	vm.ic = 0
	vm.si = siNone
	vm.buffer = [40]byte{}
}

// digit converts an ASCII decimal digit to its numeric value. Any other
// byte (including the null padding of a short token) is treated as 0,
// unlike a raw C-style `ch - '0'` conversion, which would give such a
// byte a value outside 0..9.
func digit(b byte) int {
	if b < '0' || b > '9' {
		return 0
	}
	return int(b - '0')
}

// storeToken copies up to 4 characters of tok into memory cell idx,
// truncating a longer token and null-padding a shorter one.
func (vm *VM) storeToken(idx int, tok string) {
	if idx < 0 || idx >= len(vm.memory) {
		return
	}
	var cell [4]byte
	copy(cell[:], tok)
	vm.memory[idx] = cell
}

// cellString renders all 4 raw bytes of a memory cell for the loader's
// debug echo, embedded nulls included — matching the original loader,
// which appends every character of the cell unconditionally.
func cellString(cell [4]byte) string {
	return string(cell[:])
}
