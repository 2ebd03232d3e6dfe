/*
 * Phase 2 - process creation and termination.
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

// createProcess registers a new PCB with pages unmapped page-table
// entries, all initially invalid. Re-creating an existing pid is
// reported and left untouched.
func (m *MMU) createProcess(pid, pages int) {
	if _, exists := m.processes[pid]; exists {
		m.trace.Printf("Error: Process %d already exists\n", pid)
		return
	}

	pt := make([]pageTableEntry, pages)
	for i := range pt {
		pt[i] = pageTableEntry{frame: -1}
	}

	m.processes[pid] = &PCB{
		pid:            pid,
		state:          StateReady,
		allocatedPages: pages,
		pageTable:      pt,
	}

	m.trace.Printf("Process %d created with %d pages\n", pid, pages)
}

// terminateProcess frees every frame pid still holds, invalidates its
// TLB entries and drops its PCB. Victims queued for pid are left in
// fifoVictims; replacePage recognizes and skips them as stale.
func (m *MMU) terminateProcess(pid int) {
	pcb, exists := m.processes[pid]
	if !exists {
		m.trace.Printf("Error: Process %d not found\n", pid)
		return
	}

	for page := range pcb.pageTable {
		if pcb.pageTable[page].valid {
			m.freeFrame(pcb.pageTable[page].frame)
		}
	}
	m.invalidateTLBForProcess(pid)

	pcb.state = StateTerminated
	delete(m.processes, pid)

	m.trace.Printf("Process %d terminated. Page faults: %d\n", pid, pcb.pageFaults)
}
