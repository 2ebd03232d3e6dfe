/*
 * Phase 2 - page-fault handler and FIFO replacement.
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

// replacePage dequeues the oldest resident (pid, page) from the FIFO
// victim queue and evicts it. A stale entry — the victim's page is no
// longer valid, typically because its process already terminated — is
// skipped by falling back to allocateFrame rather than purged from the
// queue up front; see DESIGN.md for why this policy was chosen over
// purging on termination.
func (m *MMU) replacePage() int {
	if len(m.fifoVictims) == 0 {
		return -1
	}

	v := m.fifoVictims[0]
	m.fifoVictims = m.fifoVictims[1:]

	pcb, exists := m.processes[v.pid]
	if exists && v.page < len(pcb.pageTable) && pcb.pageTable[v.page].valid {
		frame := pcb.pageTable[v.page].frame

		m.trace.Printf("Replacing page %d of process %d", v.page, v.pid)
		if pcb.pageTable[v.page].dirty {
			m.trace.Printf(" (dirty - writing back to disk)")
		}
		m.trace.Printf("\n")

		pcb.pageTable[v.page].valid = false
		pcb.pageTable[v.page].frame = -1
		m.invalidateTLB(v.pid, v.page)

		return frame
	}

	return m.allocateFrame()
}

// handlePageFault installs page for pid, allocating a free frame or
// evicting one via FIFO replacement if none is free. Returns false if
// no page was installed: an invalid pid or bad page (reported as an
// interrupt), or no frame to be had because the free pool is empty and
// the dequeued victim is missing or stale (reported as an error line).
func (m *MMU) handlePageFault(pid, page int) bool {
	m.trace.Printf("PAGE FAULT: Process %d, Page %d\n", pid, page)

	pcb, exists := m.processes[pid]
	if !exists {
		m.handleInterrupt(InvalidAccess, pid, page)
		return false
	}

	if page < 0 || page >= pcb.allocatedPages {
		m.handleInterrupt(SegFault, pid, page)
		return false
	}

	pcb.pageFaults++

	frame := m.allocateFrame()
	if frame == -1 {
		frame = m.replacePage()
		if frame == -1 {
			m.trace.Printf("Error: Cannot allocate frame for page %d\n", page)
			return false
		}
	}

	pcb.pageTable[page] = pageTableEntry{frame: frame, valid: true, referenced: true}
	m.fifoVictims = append(m.fifoVictims, victim{pid: pid, page: page})

	m.trace.Printf("Allocated frame %d to page %d of process %d\n", frame, page, pid)
	return true
}
