/*
 * Phase 2 - address translation pipeline.
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

// Translate walks TLB -> page table -> page fault handler for one
// virtual address access. ok is false whenever the access raised an
// interrupt instead of producing a physical address.
func (m *MMU) Translate(pid, virtualAddr int, isWrite bool) (physAddr int, ok bool) {
	page := virtualAddr / m.pageSize
	offset := virtualAddr % m.pageSize

	for i := range m.tlb {
		e := &m.tlb[i]
		if !e.valid || e.pid != pid || e.page != page {
			continue
		}

		m.tlbHits++
		m.trace.Printf("TLB Hit: Process %d, Page %d\n", pid, page)

		if isWrite {
			if pcb, exists := m.processes[pid]; exists && page < len(pcb.pageTable) {
				pcb.pageTable[page].dirty = true
			}
		}
		return e.frame*m.pageSize + offset, true
	}

	m.tlbMisses++
	m.trace.Printf("TLB Miss: Process %d, Page %d\n", pid, page)

	pcb, exists := m.processes[pid]
	if !exists {
		m.handleInterrupt(InvalidAccess, pid, virtualAddr)
		return 0, false
	}

	if page < 0 || page >= pcb.allocatedPages {
		m.handleInterrupt(SegFault, pid, virtualAddr)
		return 0, false
	}

	if !pcb.pageTable[page].valid {
		if !m.handlePageFault(pid, page) {
			return 0, false
		}
	}

	frame := pcb.pageTable[page].frame
	pcb.pageTable[page].referenced = true
	if isWrite {
		pcb.pageTable[page].dirty = true
	}

	m.tlb[m.tlbNext] = tlbEntry{pid: pid, page: page, frame: frame, valid: true}
	m.tlbNext = (m.tlbNext + 1) % len(m.tlb)

	return frame*m.pageSize + offset, true
}
