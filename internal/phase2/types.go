/*
 * Phase 2 - paged virtual-memory manager: shared types.
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

// Package phase2 simulates a paged virtual-memory manager: per-process
// page tables, a small fully-associative FIFO-replacement TLB, a FIFO
// page-replacement victim queue, and the four interrupt types the
// interrupt handler reports (no command raises the timer interrupt).
package phase2

import "fmt"

// InterruptType identifies which trap handleInterrupt is reporting.
type InterruptType int

const (
	PageFault InterruptType = iota
	InvalidAccess
	SegFault
	TimerInterrupt
)

// ProcessState is a PCB's lifecycle state.
type ProcessState int

const (
	StateNew ProcessState = iota
	StateReady
	StateRunning
	StateWaiting
	StateTerminated
)

func (s ProcessState) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateReady:
		return "READY"
	case StateRunning:
		return "RUNNING"
	case StateWaiting:
		return "WAITING"
	case StateTerminated:
		return "TERMINATED"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// pageTableEntry is one row of a PCB's page table.
type pageTableEntry struct {
	frame      int
	valid      bool
	dirty      bool
	referenced bool
}

// tlbEntry is one TLB slot.
type tlbEntry struct {
	pid, page, frame int
	valid            bool
}

// victim is a (pid, page) pair queued for FIFO replacement.
type victim struct {
	pid, page int
}

// PCB is a process control block.
type PCB struct {
	pid            int
	state          ProcessState
	programCounter int
	priority       int
	allocatedPages int
	pageFaults     int
	pageTable      []pageTableEntry
}
