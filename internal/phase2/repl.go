/*
 * Phase 2 - interactive console, adapted from the S370 command reader.
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
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/peterh/liner"

	"github.com/cardsim/ossim/internal/config"
)

var verbs = []string{"CREATE", "ACCESS", "WRITE", "TERMINATE", "STATS", "MEMMAP"}

func completeCmd(line string) []string {
	upper := strings.ToUpper(line)
	matches := make([]string, 0, len(verbs))
	for _, v := range verbs {
		if strings.HasPrefix(v, upper) {
			matches = append(matches, v)
		}
	}
	return matches
}

// RunInteractive drives an MMU from a liner prompt instead of a fixed
// script, printing each command's trace fragment as it is produced.
// It returns the accumulated trace once the session ends (EOF or
// ctrl-D), the same shape Run returns for a batch script.
func RunInteractive(cfg config.Phase2, log *slog.Logger) string {
	m := NewMMU(cfg, log)

	m.trace.Line("=== OS SIMULATOR - PHASE 2 ===")
	m.trace.Printf("Page Size: %d, Physical Frames: %d, Virtual Pages: %d, TLB Size: %d\n",
		m.pageSize, m.physicalFrames, m.virtualPages, m.tlbSize)
	fmt.Print(m.trace.String())

	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completeCmd)

	for {
		before := m.trace.String()
		command, err := line.Prompt("phase2> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				break
			}
			if m.log != nil {
				m.log.Error("error reading line: " + err.Error())
			}
			break
		}

		line.AppendHistory(command)
		m.ProcessLine(command)
		fmt.Print(strings.TrimPrefix(m.trace.String(), before))
	}

	m.trace.Line("=== FINAL STATISTICS ===")
	m.printStatistics()
	m.printMemoryMap()

	return m.trace.String()
}
