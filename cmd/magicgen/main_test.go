package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hailam/chesscore/internal/board"
)

func TestSearchBishops(t *testing.T) {
	magics, err := search(false, board.NewPRNG(3))
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	for sq, m := range magics {
		if m == 0 {
			t.Errorf("no magic for %s", board.Square(sq))
		}
	}
}

func TestWriteTable(t *testing.T) {
	var magics [64]uint64
	magics[0] = 0x0002020202020200
	magics[63] = 0xABC

	var buf bytes.Buffer
	writeTable(&buf, true, magics)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")

	if len(lines) != 18 {
		t.Fatalf("got %d lines, want 18", len(lines))
	}
	if lines[0] != "var rookMagicNumbers = [64]uint64{" || lines[17] != "}" {
		t.Errorf("bad header/footer: %q %q", lines[0], lines[17])
	}
	if !strings.HasPrefix(lines[1], "\t0x0002020202020200, ") {
		t.Errorf("first row = %q", lines[1])
	}
	if !strings.HasSuffix(lines[16], "0x0000000000000ABC,") {
		t.Errorf("last row = %q", lines[16])
	}
}
