/*
 * Phase 2 - public entry point.
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
	"github.com/cardsim/ossim/internal/lineio"
)

// Run dispatches every line of scriptText against a fresh MMU and
// returns the full trace, closing with a final statistics and memory
// map dump. It is the only exported operation Phase 2 needs.
func Run(scriptText string, cfg config.Phase2, log *slog.Logger) string {
	m := NewMMU(cfg, log)

	m.trace.Line("=== OS SIMULATOR - PHASE 2 ===")
	m.trace.Printf("Page Size: %d, Physical Frames: %d, Virtual Pages: %d, TLB Size: %d\n",
		m.pageSize, m.physicalFrames, m.virtualPages, m.tlbSize)

	cursor := lineio.NewCursor(scriptText)
	for {
		line, ok := cursor.Next()
		if !ok {
			break
		}
		m.ProcessLine(line)
	}

	m.trace.Line("=== FINAL STATISTICS ===")
	m.printStatistics()
	m.printMemoryMap()

	return m.trace.String()
}
