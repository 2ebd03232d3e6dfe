/*
 * Phase 2 - interrupt handler.
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

// handleInterrupt reports one of the four trap conditions as a boxed
// block. A segmentation fault also marks the offending process
// TERMINATED without removing it from the process table — TERMINATE
// must still be called to reclaim its frames, per §7's error-handling
// design.
func (m *MMU) handleInterrupt(kind InterruptType, pid, addr int) {
	m.trace.Printf("\n=== INTERRUPT HANDLER ===\n")

	switch kind {
	case PageFault:
		m.trace.Printf("Type: PAGE FAULT\n")
		m.trace.Printf("Process: %d, Address: %d\n", pid, addr)

	case InvalidAccess:
		m.trace.Printf("Type: INVALID ACCESS\n")
		m.trace.Printf("Process: %d does not exist\n", pid)

	case SegFault:
		m.trace.Printf("Type: SEGMENTATION FAULT\n")
		m.trace.Printf("Process: %d, Invalid address: %d\n", pid, addr)
		if pcb, exists := m.processes[pid]; exists {
			pcb.state = StateTerminated
		}

	case TimerInterrupt:
		m.trace.Printf("Type: TIMER INTERRUPT\n")
		m.trace.Printf("Context switch triggered\n")
	}

	m.trace.Printf("=========================\n\n")
}
