package board

import (
	"errors"
	"testing"
)

// indexPaths lists every index function this machine can build tables with.
func indexPaths() map[string]indexFunc {
	paths := map[string]indexFunc{
		"multiply":  multiplyIndex,
		"pext-soft": pextIndex(pextSoftware),
	}
	if hardwarePEXT != nil {
		paths["pext-hw"] = pextIndex(hardwarePEXT)
	}
	return paths
}

func TestSliderTablesExhaustive(t *testing.T) {
	for name, index := range indexPaths() {
		t.Run(name, func(t *testing.T) {
			tables, err := buildSliders(index)
			if err != nil {
				t.Fatalf("buildSliders: %v", err)
			}

			for sq := A1; sq <= H8; sq++ {
				ForEachSubset(tables.bishops[sq].Mask, func(occ Bitboard) {
					if got, want := tables.bishopAttacks(sq, occ), bishopAttacksSlow(sq, occ); got != want {
						t.Fatalf("bishop %s occ %#016x: got %#016x, want %#016x", sq, uint64(occ), uint64(got), uint64(want))
					}
				})
				ForEachSubset(tables.rooks[sq].Mask, func(occ Bitboard) {
					if got, want := tables.rookAttacks(sq, occ), rookAttacksSlow(sq, occ); got != want {
						t.Fatalf("rook %s occ %#016x: got %#016x, want %#016x", sq, uint64(occ), uint64(got), uint64(want))
					}
				})
			}
		})
	}
}

// Bits outside the relevant mask must not change the lookup.
func TestSliderLookupIgnoresIrrelevantBits(t *testing.T) {
	rng := NewPRNG(42)
	for i := 0; i < 20000; i++ {
		sq := Square(rng.Next() % 64)
		occ := Bitboard(rng.Next() & rng.Next())

		if got, want := BishopAttacks(sq, occ), bishopAttacksSlow(sq, occ); got != want {
			t.Fatalf("BishopAttacks(%s, %#016x) = %#016x, want %#016x", sq, uint64(occ), uint64(got), uint64(want))
		}
		if got, want := RookAttacks(sq, occ), rookAttacksSlow(sq, occ); got != want {
			t.Fatalf("RookAttacks(%s, %#016x) = %#016x, want %#016x", sq, uint64(occ), uint64(got), uint64(want))
		}
		if got, want := QueenAttacks(sq, occ), BishopAttacks(sq, occ)|RookAttacks(sq, occ); got != want {
			t.Fatalf("QueenAttacks(%s) is not the bishop/rook union", sq)
		}
	}
}

func TestSliderShiftsAndRegions(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		b, r := &sliders.bishops[sq], &sliders.rooks[sq]
		if int(b.Shift) != 64-b.Mask.PopCount() || int(r.Shift) != 64-r.Mask.PopCount() {
			t.Errorf("%s: shift does not match mask width", sq)
		}
		if 1<<b.Mask.PopCount() > bishopRegion || 1<<r.Mask.PopCount() > rookRegion {
			t.Errorf("%s: mask wider than its region", sq)
		}
	}
}

func TestPEXTSoftware(t *testing.T) {
	tests := []struct {
		src, mask, want uint64
	}{
		{0, 0, 0},
		{^uint64(0), 0, 0},
		{^uint64(0), 0xF0, 0xF},
		{0b1010, 0b1110, 0b101},
		{0x8000000000000001, 0x8000000000000001, 0b11},
		{0x0000_0000_0000_1200, 0x0000_0000_0000_FF00, 0x12},
	}

	for _, tc := range tests {
		if got := pextSoftware(tc.src, tc.mask); got != tc.want {
			t.Errorf("pextSoftware(%#x, %#x) = %#x, want %#x", tc.src, tc.mask, got, tc.want)
		}
	}
}

func TestPEXTHardwareMatchesSoftware(t *testing.T) {
	if hardwarePEXT == nil {
		t.Skip("no hardware PEXT on this machine")
	}
	if !UsingPEXT() {
		t.Error("hardware PEXT available but tables use multiply/shift")
	}

	rng := NewPRNG(7)
	for i := 0; i < 100000; i++ {
		src, mask := rng.Next(), rng.Next()
		if i%2 == 0 {
			mask = rng.Sparse()
		}
		if got, want := hardwarePEXT(src, mask), pextSoftware(src, mask); got != want {
			t.Fatalf("PEXT(%#x, %#x): hardware %#x, software %#x", src, mask, got, want)
		}
	}
}

func TestFillMagicRejectsSharedSlot(t *testing.T) {
	tests := []struct {
		name  string
		sq    Square
		magic uint64
	}{
		// Every occupancy lands in slot 0.
		{"zero multiplier", D4, 0},
		// Shares slots only between occupancies with equal attack sets.
		{"equal attack sets", A8, 0x00FFFCDDFCED714A},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := &Magic{
				Mask:    RelevantOccupancy(tc.sq, RookDirections[:]),
				Magic:   tc.magic,
				attacks: make([]Bitboard, rookRegion),
			}
			m.Shift = uint8(64 - m.Mask.PopCount())

			err := fillMagic(m, tc.sq, RookDirections[:], multiplyIndex)
			if !errors.Is(err, ErrMagicCollision) {
				t.Fatalf("fillMagic(%#x): err = %v, want ErrMagicCollision", tc.magic, err)
			}
		})
	}
}

// Each table index must belong to exactly one occupancy of its square.
func TestMagicIndexUnique(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		for _, kind := range []struct {
			mask  Bitboard
			magic uint64
		}{
			{RelevantOccupancy(sq, BishopDirections[:]), bishopMagicNumbers[sq]},
			{RelevantOccupancy(sq, RookDirections[:]), rookMagicNumbers[sq]},
		} {
			m := &Magic{Mask: kind.mask, Magic: kind.magic, Shift: uint8(64 - kind.mask.PopCount())}
			seen := make(map[uint]Bitboard)
			ForEachSubset(kind.mask, func(occ Bitboard) {
				i := multiplyIndex(m, occ)
				if prev, ok := seen[i]; ok {
					t.Fatalf("%s magic %#x: occupancies %#x and %#x share slot %d", sq, kind.magic, uint64(prev), uint64(occ), i)
				}
				seen[i] = occ
			})
			if len(seen) != 1<<kind.mask.PopCount() {
				t.Errorf("%s magic %#x: %d slots used", sq, kind.magic, len(seen))
			}
		}
	}
}

func TestFindMagic(t *testing.T) {
	rng := NewPRNG(1)
	for _, sq := range []Square{A1, D4, H8, C6} {
		t.Run(sq.String(), func(t *testing.T) {
			magic, err := FindMagic(sq, false, rng)
			if err != nil {
				t.Fatalf("FindMagic: %v", err)
			}

			m := &Magic{
				Mask:    RelevantOccupancy(sq, BishopDirections[:]),
				Magic:   magic,
				attacks: make([]Bitboard, bishopRegion),
			}
			m.Shift = uint8(64 - m.Mask.PopCount())
			if err := fillMagic(m, sq, BishopDirections[:], multiplyIndex); err != nil {
				t.Fatalf("found magic %#x fails the self-check: %v", magic, err)
			}
		})
	}
}

func TestPRNG(t *testing.T) {
	a, b := NewPRNG(99), NewPRNG(99)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatal("same seed produced different sequences")
		}
	}
	if NewPRNG(0).Next() == 0 {
		t.Error("zero seed must not stick at zero")
	}
}
