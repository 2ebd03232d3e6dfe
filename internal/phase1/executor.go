/*
 * Phase 1 - slave-mode fetch/decode/execute loop.
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

// run is the slave-mode loop: fetch IR from Memory[IC], advance IC,
// then dispatch. GD/PD/H raise a service interrupt and hand off to
// MOS; LR/SR/CR/BT execute directly; anything else is silently
// skipped, per the unrecognized-opcode policy in the design notes.
func (vm *VM) run() {
	for vm.ic < len(vm.memory) && vm.ic < 99 && vm.memory[vm.ic][0] != 0 {
		vm.ir = vm.memory[vm.ic]
		vm.ic++

		switch {
		case vm.ir[0] == 'G' && vm.ir[1] == 'D':
			vm.si = siRead
			vm.mos()

		case vm.ir[0] == 'P' && vm.ir[1] == 'D':
			vm.si = siWrite
			vm.mos()

		case vm.ir[0] == 'H':
			vm.si = siTerminate
			vm.mos()
			return

		case vm.ir[0] == 'L' && vm.ir[1] == 'R':
			vm.execLoad()

		case vm.ir[0] == 'S' && vm.ir[1] == 'R':
			vm.execStore()

		case vm.ir[0] == 'C' && vm.ir[1] == 'R':
			vm.execCompare()

		case vm.ir[0] == 'B' && vm.ir[1] == 'T':
			vm.execBranch()

		default:
			// Unrecognized opcode: skip, matching the source's silent
			// fall-through rather than raising an error.
		}
	}
}

func (vm *VM) operandAddr() int {
	return digit(vm.ir[2])*10 + digit(vm.ir[3])
}

func (vm *VM) execLoad() {
	addr := vm.operandAddr()
	if addr >= 0 && addr < len(vm.memory) {
		vm.r = vm.memory[addr]
	}
}

func (vm *VM) execStore() {
	addr := vm.operandAddr()
	if addr >= 0 && addr < len(vm.memory) {
		vm.memory[addr] = vm.r
	}
}

func (vm *VM) execCompare() {
	addr := vm.operandAddr()
	vm.c = addr >= 0 && addr < len(vm.memory) && vm.memory[addr] == vm.r
}

func (vm *VM) execBranch() {
	if vm.c {
		vm.ic = vm.operandAddr()
	}
}
