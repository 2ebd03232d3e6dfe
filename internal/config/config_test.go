package config

import (
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load empty name returned error: %v", err)
	}
	if cfg.Phase1.MemWords != 100 {
		t.Errorf("MemWords got: %d expected: 100", cfg.Phase1.MemWords)
	}
	if cfg.Phase2.PageSize != 1024 || cfg.Phase2.PhysicalFrames != 64 ||
		cfg.Phase2.VirtualPages != 256 || cfg.Phase2.TLBSize != 4 {
		t.Errorf("Phase2 defaults not correct: %+v", cfg.Phase2)
	}
}

func TestParseOverrides(t *testing.T) {
	cfg := &Config{Phase1: DefaultPhase1(), Phase2: DefaultPhase2()}
	text := "# a comment\n\nFRAMES 8\nTLB 2\n"
	if err := parse(strings.NewReader(text), cfg); err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if cfg.Phase2.PhysicalFrames != 8 {
		t.Errorf("PhysicalFrames got: %d expected: 8", cfg.Phase2.PhysicalFrames)
	}
	if cfg.Phase2.TLBSize != 2 {
		t.Errorf("TLBSize got: %d expected: 2", cfg.Phase2.TLBSize)
	}
	if cfg.Phase2.PageSize != 1024 {
		t.Errorf("PageSize should keep default, got: %d", cfg.Phase2.PageSize)
	}
}

func TestParseUnknownKey(t *testing.T) {
	cfg := &Config{Phase1: DefaultPhase1(), Phase2: DefaultPhase2()}
	if err := parse(strings.NewReader("BOGUS 1\n"), cfg); err == nil {
		t.Errorf("expected error for unknown key")
	}
}

func TestParseBadValue(t *testing.T) {
	cfg := &Config{Phase1: DefaultPhase1(), Phase2: DefaultPhase2()}
	for _, text := range []string{"TLB abc\n", "TLB -1\n", "TLB 0\n", "TLB\n"} {
		if err := parse(strings.NewReader(text), cfg); err == nil {
			t.Errorf("expected error for input %q", text)
		}
	}
}
