/*
 * Phase 2 - MMU instance and frame pool.
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

import (
	"log/slog"

	"github.com/cardsim/ossim/internal/config"
	"github.com/cardsim/ossim/internal/tracelog"
)

// MMU holds everything one Phase 2 run owns: the frame pool, the TLB
// and its insertion cursor, the FIFO victim queue, and the process
// table. tlbNext lives on the instance, not as a package global — the
// design-note fix for the source's global mutable TLB cursor (see
// DESIGN.md), which would otherwise leak state between independent
// runs.
type MMU struct {
	pageSize       int
	physicalFrames int
	virtualPages   int
	tlbSize        int

	frameUsed  []bool
	freeFrames []int

	tlb     []tlbEntry
	tlbNext int

	fifoVictims []victim
	processes   map[int]*PCB

	tlbHits, tlbMisses int
	lineNum            int

	trace *tracelog.Trace
	log   *slog.Logger
}

// NewMMU builds an MMU with cfg's constants and an empty process table;
// every physical frame starts free, in ascending order.
func NewMMU(cfg config.Phase2, log *slog.Logger) *MMU {
	if log == nil {
		log = slog.Default()
	}

	m := &MMU{
		pageSize:       cfg.PageSize,
		physicalFrames: cfg.PhysicalFrames,
		virtualPages:   cfg.VirtualPages,
		tlbSize:        cfg.TLBSize,
		frameUsed:      make([]bool, cfg.PhysicalFrames),
		freeFrames:     make([]int, 0, cfg.PhysicalFrames),
		tlb:            make([]tlbEntry, cfg.TLBSize),
		processes:      make(map[int]*PCB),
		trace:          &tracelog.Trace{},
		log:            log,
	}
	for i := 0; i < cfg.PhysicalFrames; i++ {
		m.freeFrames = append(m.freeFrames, i)
	}
	return m
}

// allocateFrame dequeues a free frame, or returns -1 if the pool is
// exhausted.
func (m *MMU) allocateFrame() int {
	if len(m.freeFrames) == 0 {
		return -1
	}
	frame := m.freeFrames[0]
	m.freeFrames = m.freeFrames[1:]
	m.frameUsed[frame] = true
	return frame
}

// freeFrame returns frame to the pool, preserving invariant 1 from §3:
// a frame is in freeFrames iff frameUsed[frame] is false.
func (m *MMU) freeFrame(frame int) {
	if frame < 0 || frame >= m.physicalFrames {
		return
	}
	m.frameUsed[frame] = false
	m.freeFrames = append(m.freeFrames, frame)
}

// invalidateTLB invalidates every TLB entry matching (pid, page),
// keeping TLB coherence (invariant 3) whenever a page is evicted or a
// process terminates.
func (m *MMU) invalidateTLB(pid, page int) {
	for i := range m.tlb {
		if m.tlb[i].valid && m.tlb[i].pid == pid && m.tlb[i].page == page {
			m.tlb[i].valid = false
		}
	}
}

// invalidateTLBForProcess invalidates every TLB entry belonging to pid,
// used on termination.
func (m *MMU) invalidateTLBForProcess(pid int) {
	for i := range m.tlb {
		if m.tlb[i].valid && m.tlb[i].pid == pid {
			m.tlb[i].valid = false
		}
	}
}
