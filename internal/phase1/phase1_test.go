/*
 * Phase 1 test cases.
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
	"testing"
)

// Scenario A: copy-and-halt.
func TestScenarioCopyAndHalt(t *testing.T) {
	job := "$AMJ\nGD10 PD10 H\n$DTA\nHELLO WORLD\n$END\n"
	out := Run(job, 0, nil)

	for _, want := range []string{
		"New Job started",
		"Program Card loading",
		"Data card loading",
		"Read function called",
		"Write function called",
		"HELLO WORLD",
		"Terminate called",
		"END of Job",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q, got:\n%s", want, out)
		}
	}

	order := []string{"New Job started", "Program Card loading", "Data card loading",
		"Read function called", "Write function called", "HELLO WORLD",
		"Terminate called", "END of Job"}
	last := -1
	for _, w := range order {
		idx := strings.Index(out, w)
		if idx < last {
			t.Errorf("expected %q to come after previous markers, trace:\n%s", w, out)
		}
		last = idx
	}
}

// Scenario B: conditional branch. BT jumps iff the compared cells are
// componentwise equal. Driven directly against a VM instance so memory
// can be preloaded without consuming a data card.
func TestBranchTakenOnEqual(t *testing.T) {
	vm := NewVM("$AMJ\nH\n$END\n", 0, nil)
	vm.memory[5] = [4]byte{'A', 'A', 'A', 'A'}
	vm.memory[6] = [4]byte{'B', 'B', 'B', 'B'}
	vm.memory[7] = [4]byte{'H', '\x00', '\x00', '\x00'}
	vm.memory[0] = [4]byte{'L', 'R', '0', '5'}
	vm.memory[1] = [4]byte{'C', 'R', '0', '5'}
	vm.memory[2] = [4]byte{'B', 'T', '0', '7'}
	vm.ic = 0
	vm.run()

	if !vm.c {
		t.Errorf("expected toggle true after comparing equal cells")
	}
	if vm.ic != 8 {
		t.Errorf("expected branch to jump to 7 then halt at 8, got IC=%d", vm.ic)
	}
}

func TestBranchNotTakenOnUnequal(t *testing.T) {
	vm := NewVM("$AMJ\nH\n$END\n", 0, nil)
	vm.memory[5] = [4]byte{'A', 'A', 'A', 'A'}
	vm.memory[6] = [4]byte{'B', 'B', 'B', 'B'}
	vm.memory[0] = [4]byte{'L', 'R', '0', '5'}
	vm.memory[1] = [4]byte{'C', 'R', '0', '6'}
	vm.memory[2] = [4]byte{'B', 'T', '0', '7'}
	vm.memory[3] = [4]byte{'H', 0, 0, 0}
	vm.ic = 0
	vm.run()

	if vm.c {
		t.Errorf("expected toggle false after comparing unequal cells")
	}
	if vm.ic != 4 {
		t.Errorf("expected fall-through to IC=4, got %d", vm.ic)
	}
}

// Property 1: loader idempotence across jobs — two copies of the same
// job produce identical per-job trace fragments.
func TestLoaderIdempotenceAcrossJobs(t *testing.T) {
	single := "$AMJ\nGD10 PD10 H\n$DTA\nHELLO\n$END\n"
	out := Run(single+single, 0, nil)

	jobs := strings.Split(out, "New Job started\n")
	if len(jobs) != 3 { // leading empty split + 2 jobs
		t.Fatalf("expected 2 job fragments, got %d: %q", len(jobs)-1, out)
	}
	if jobs[1] != jobs[2] {
		t.Errorf("job fragments differ:\n%q\nvs\n%q", jobs[1], jobs[2])
	}
}

func TestUnrecognizedOpcodeSkipped(t *testing.T) {
	vm := NewVM("$AMJ\nH\n$END\n", 0, nil)
	vm.memory[0] = [4]byte{'Z', 'Z', '0', '0'}
	vm.memory[1] = [4]byte{'H', 0, 0, 0}
	vm.ic = 0
	vm.run()
	if vm.ic != 2 {
		t.Errorf("expected unknown opcode to be skipped, IC=%d", vm.ic)
	}
}

func TestTokenTruncationAndPadding(t *testing.T) {
	vm := NewVM("", 0, nil)
	vm.loadProgramCard("ABCDE XY")
	if cellString(vm.memory[0]) != "ABCD" {
		t.Errorf("expected truncated token ABCD, got %q", cellString(vm.memory[0]))
	}
	if vm.memory[1] != ([4]byte{'X', 'Y', 0, 0}) {
		t.Errorf("expected padded token XY\\0\\0, got %v", vm.memory[1])
	}
}

func TestMultipleJobsResetState(t *testing.T) {
	job1 := "$AMJ\nLR50\nH\n$END\n"
	job2 := "$AMJ\nH\n$END\n"
	out := Run(job1+job2, 0, nil)
	// Second job's trace shouldn't show any trace of job 1's memory
	// content; reset happens on $AMJ, verified indirectly by counting two
	// independent "New Job started" markers.
	if strings.Count(out, "New Job started") != 2 {
		t.Errorf("expected two jobs, got trace:\n%s", out)
	}
}
