/*
 * Phase 1 - program loader.
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

package phase1

import (
	"strings"
)

// Load drives the loader/executor interleaving over the whole job
// stream: control cards reset state or kick off execution, anything
// else is a program card. Lines consumed mid-execution by READ are
// never seen here a second time, because the loader and READ share one
// cursor.
func (vm *VM) Load() {
	for {
		line, ok := vm.cursor.Next()
		if !ok {
			return
		}

		switch cardType(line) {
		case cardStartJob:
			vm.reset()
			vm.trace.Line("New Job started")

		case cardStartData:
			vm.trace.Line("Data card loading")
			vm.buffer = [40]byte{}
			vm.ic = 0
			vm.run()

		case cardEndJob:
			vm.trace.Line("END of Job")

		default:
			vm.loadProgramCard(line)
		}
	}
}

const (
	cardStartJob = iota
	cardStartData
	cardEndJob
	cardProgram
)

func cardType(line string) int {
	switch {
	case strings.HasPrefix(line, "$AMJ"):
		return cardStartJob
	case strings.HasPrefix(line, "$DTA"):
		return cardStartData
	case strings.HasPrefix(line, "$END"):
		return cardEndJob
	default:
		return cardProgram
	}
}

// loadProgramCard stores each whitespace-separated token into the next
// memory cell and echoes the accumulated instruction words, matching
// the original loader's debug trace.
func (vm *VM) loadProgramCard(line string) {
	vm.trace.Line("Program Card loading")

	for _, tok := range strings.Fields(line) {
		vm.storeToken(vm.ic, tok)
		vm.ic++
	}

	for i := 0; i < vm.ic; i++ {
		vm.trace.Printf("M[%d] %s\n", i, cellString(vm.memory[i]))
	}
}
