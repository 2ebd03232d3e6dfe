/*
 * Phase 1 - master-mode service-interrupt dispatcher (MOS).
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

// mos is the trap dispatcher keyed on SI. It always clears SI on
// return, whether or not the trap was recognized.
func (vm *VM) mos() {
	switch vm.si {
	case siRead:
		vm.read()
	case siWrite:
		vm.write()
	case siTerminate:
		vm.terminate()
	}
	vm.si = siNone
}

// read consumes the next line from the shared input stream into the
// 40-character buffer, then unpacks it into ten consecutive memory
// cells starting at 10*digit(IR[2]). Unpacking stops at the first null
// buffer byte, so trailing cells in the span keep whatever they held
// before — this mirrors the source faithfully rather than zero-filling
// the rest of the span.
func (vm *VM) read() {
	vm.trace.Line("Read function called")

	vm.buffer = [40]byte{}
	if line, ok := vm.cursor.Next(); ok {
		copy(vm.buffer[:], line)
	}

	memPtr := 10 * digit(vm.ir[2])
	buf := 0
	for buf < 40 && vm.buffer[buf] != 0 {
		if memPtr < 0 || memPtr >= len(vm.memory) {
			break
		}
		var cell [4]byte
		for i := 0; i < 4 && buf < 40; i++ {
			cell[i] = vm.buffer[buf]
			buf++
		}
		vm.memory[memPtr] = cell
		memPtr++
	}

	vm.buffer = [40]byte{}
}

// write emits the ten memory cells starting at 10*digit(IR[2]) as a
// single output line, skipping null cells.
func (vm *VM) write() {
	vm.trace.Line("Write function called")

	start := 10 * digit(vm.ir[2])
	var out []byte
	for i := start; i < start+10 && i < len(vm.memory); i++ {
		if i < 0 {
			continue
		}
		for _, b := range vm.memory[i] {
			if b != 0 {
				out = append(out, b)
			}
		}
	}
	vm.trace.Printf("%s\n", string(out))
}

// terminate ends the job's execution.
func (vm *VM) terminate() {
	vm.trace.Printf("Terminate called\n\n")
}
