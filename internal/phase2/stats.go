/*
 * Phase 2 - statistics and memory-map reporting.
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

import "sort"

// sortedPids returns the process table's keys in ascending order. Go
// maps iterate in random order; the original's std::map<int, PCB*>
// iterates sorted by key, so callers that mirror its output need this.
func (m *MMU) sortedPids() []int {
	pids := make([]int, 0, len(m.processes))
	for pid := range m.processes {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids
}

// printStatistics reports TLB hit/miss counts, free-frame count and
// active process count, matching the original's SYSTEM STATISTICS
// block.
func (m *MMU) printStatistics() {
	m.trace.Printf("\n=== SYSTEM STATISTICS ===\n")
	m.trace.Printf("TLB Hits: %d\n", m.tlbHits)
	m.trace.Printf("TLB Misses: %d\n", m.tlbMisses)

	if total := m.tlbHits + m.tlbMisses; total > 0 {
		m.trace.Printf("TLB Hit Rate: %.2f%%\n", 100*float64(m.tlbHits)/float64(total))
	}

	m.trace.Printf("Free Frames: %d/%d\n", len(m.freeFrames), m.physicalFrames)
	m.trace.Printf("Active Processes: %d\n", len(m.processes))
	m.trace.Printf("=========================\n")
}

// printMemoryMap renders every live process's state, page fault count
// and valid page -> frame mappings, in ascending pid then ascending
// page order.
func (m *MMU) printMemoryMap() {
	m.trace.Printf("\n=== MEMORY MAP ===\n")
	for _, pid := range m.sortedPids() {
		pcb := m.processes[pid]
		m.trace.Printf("Process %d (State: %s)\n", pid, pcb.state)
		m.trace.Printf("  Page Faults: %d\n", pcb.pageFaults)
		m.trace.Printf("  Valid Pages: ")

		valid := 0
		for page, pte := range pcb.pageTable {
			if pte.valid {
				m.trace.Printf("%d->%d ", page, pte.frame)
				valid++
			}
		}
		if valid == 0 {
			m.trace.Printf("None")
		}
		m.trace.Printf("\n")
	}
	m.trace.Printf("==================\n")
}
