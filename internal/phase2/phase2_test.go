/*
 * Phase 2 test cases.
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
	"strings"
	"testing"

	"github.com/cardsim/ossim/internal/config"
)

func smallCfg() config.Phase2 {
	return config.Phase2{PageSize: 1024, PhysicalFrames: 64, VirtualPages: 256, TLBSize: 4}
}

// Scenario C: TLB hit after a repeated identical access.
func TestScenarioTLBHitAfterAccess(t *testing.T) {
	script := "CREATE 1 4\nACCESS 1 0\nACCESS 1 0\nSTATS\n"
	out := Run(script, smallCfg(), nil)

	if strings.Count(out, "TLB Miss:") != 1 {
		t.Errorf("expected exactly one TLB miss, trace:\n%s", out)
	}
	if strings.Count(out, "TLB Hit:") != 1 {
		t.Errorf("expected exactly one TLB hit, trace:\n%s", out)
	}
	if !strings.Contains(out, "TLB Hits: 1") || !strings.Contains(out, "TLB Misses: 1") {
		t.Errorf("expected stats hits=1 misses=1, trace:\n%s", out)
	}
}

// Scenario D: FIFO replacement evicts the oldest resident page first.
func TestScenarioFIFOReplacement(t *testing.T) {
	m := NewMMU(config.Phase2{PageSize: 1024, PhysicalFrames: 64, VirtualPages: 256, TLBSize: 4}, nil)
	m.createProcess(1, 100)

	for page := 0; page < 65; page++ {
		addr := page * m.pageSize
		if _, ok := m.Translate(1, addr, false); !ok {
			t.Fatalf("access to page %d unexpectedly failed", page)
		}
	}

	pcb := m.processes[1]
	if pcb.pageTable[0].valid {
		t.Errorf("expected page 0 evicted by FIFO after 65 distinct page faults")
	}
	if !pcb.pageTable[1].valid {
		t.Errorf("expected page 1 still resident")
	}

	if _, ok := m.Translate(1, 0, false); !ok {
		t.Errorf("expected page 0 to be re-faultable after eviction")
	}
	if !pcb.pageTable[0].valid {
		t.Errorf("expected page 0 resident again after re-fault")
	}
	if pcb.pageTable[1].valid {
		t.Errorf("expected re-faulting page 0 to evict page 1 next, per FIFO order")
	}
}

// Scenario E: an out-of-bounds virtual page raises a segmentation fault
// and marks the process terminated without removing it from the table.
func TestScenarioSegmentationFault(t *testing.T) {
	script := "CREATE 1 4\nACCESS 1 8192\n"
	out := Run(script, smallCfg(), nil)

	if !strings.Contains(out, "SEGMENTATION FAULT") {
		t.Errorf("expected segmentation fault, trace:\n%s", out)
	}
}

// Scenario F: accessing an unknown pid raises invalid access and leaves
// the process table unchanged.
func TestScenarioInvalidPid(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.ProcessLine("ACCESS 7 0")

	if len(m.processes) != 0 {
		t.Errorf("expected process table untouched, got %d entries", len(m.processes))
	}
	if !strings.Contains(m.trace.String(), "INVALID ACCESS") {
		t.Errorf("expected invalid access interrupt, trace:\n%s", m.trace.String())
	}
}

// Property 2: no double-free — free_frames plus frames held by valid
// page-table entries always equals PhysicalFrames.
func TestPropertyNoDoubleFree(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.createProcess(1, 10)
	m.createProcess(2, 10)

	for page := 0; page < 10; page++ {
		m.Translate(1, page*m.pageSize, false)
		m.Translate(2, page*m.pageSize, false)
	}
	m.terminateProcess(1)

	held := 0
	for _, pcb := range m.processes {
		for _, pte := range pcb.pageTable {
			if pte.valid {
				held++
			}
		}
	}
	if held+len(m.freeFrames) != m.physicalFrames {
		t.Errorf("expected held(%d)+free(%d) == %d", held, len(m.freeFrames), m.physicalFrames)
	}
}

// Property 3: TLB coherence — no valid TLB entry ever points at a page
// that is no longer valid in its owning process's page table.
func TestPropertyTLBCoherence(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.createProcess(1, 4)
	m.Translate(1, 0, false)
	m.terminateProcess(1)

	for _, e := range m.tlb {
		if e.valid && e.pid == 1 {
			t.Errorf("expected terminate to invalidate process 1's TLB entries")
		}
	}
}

// Property 5: dirty-bit persistence — a page written via WRITE is
// reported dirty when later replaced.
func TestPropertyDirtyBitPersistence(t *testing.T) {
	m := NewMMU(config.Phase2{PageSize: 1024, PhysicalFrames: 2, VirtualPages: 256, TLBSize: 4}, nil)
	m.createProcess(1, 4)

	m.Translate(1, 0, true) // WRITE page 0 - dirty
	m.Translate(1, 1024, false)
	m.Translate(1, 2048, false) // forces FIFO eviction of page 0

	if !strings.Contains(m.trace.String(), "dirty - writing back to disk") {
		t.Errorf("expected dirty page 0 to report write-back on eviction, trace:\n%s", m.trace.String())
	}
}

func TestCreateExistingPidLeavesPCBUnchanged(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.createProcess(1, 4)
	m.Translate(1, 0, false)
	m.createProcess(1, 99)

	if m.processes[1].allocatedPages != 4 {
		t.Errorf("expected re-creating pid 1 to leave its PCB unchanged, got allocatedPages=%d",
			m.processes[1].allocatedPages)
	}
	if !strings.Contains(m.trace.String(), "already exists") {
		t.Errorf("expected already-exists message, trace:\n%s", m.trace.String())
	}
}

func TestTerminateUnknownPid(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.terminateProcess(9)
	if !strings.Contains(m.trace.String(), "not found") {
		t.Errorf("expected not-found message, trace:\n%s", m.trace.String())
	}
}

func TestUnknownCommand(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.ProcessLine("FROBNICATE 1 2")
	if !strings.Contains(m.trace.String(), "Unknown command") {
		t.Errorf("expected unknown command message, trace:\n%s", m.trace.String())
	}
}

func TestBlankAndCommentLinesStillAdvanceLineNumber(t *testing.T) {
	m := NewMMU(smallCfg(), nil)
	m.ProcessLine("")
	m.ProcessLine("# a comment")
	m.ProcessLine("CREATE 1 4")

	if m.lineNum != 3 {
		t.Errorf("expected line counter to advance across blanks/comments, got %d", m.lineNum)
	}
	if !strings.Contains(m.trace.String(), "Command [3]: CREATE 1 4") {
		t.Errorf("expected echoed command numbered 3, trace:\n%s", m.trace.String())
	}
}

func TestFinalTraceEndsWithStatisticsAndMemoryMap(t *testing.T) {
	out := Run("CREATE 1 4\n", smallCfg(), nil)
	if !strings.Contains(out, "=== FINAL STATISTICS ===") {
		t.Errorf("expected final statistics banner, trace:\n%s", out)
	}
	if !strings.Contains(out, "=== MEMORY MAP ===") {
		t.Errorf("expected memory map banner, trace:\n%s", out)
	}
}
