package board

import (
	"errors"
	"fmt"
	"math/bits"
)

// Magic bitboard implementation for sliding piece attacks.
// Each square owns a fixed-size region of a dense attack table; the index into
// that region is either a multiply/shift hash of the relevant occupancy or, on
// CPUs with BMI2, a parallel bit extract of it.

const (
	bishopRegion = 512  // 2^9, the largest bishop relevant-occupancy subset count
	rookRegion   = 4096 // 2^12, the largest rook relevant-occupancy subset count
)

// ErrMagicCollision reports two occupancies of one square that hash to the
// same table slot, even when their attack sets agree.
var ErrMagicCollision = errors.New("magic index collision")

// Magic holds the magic bitboard data for a single square.
type Magic struct {
	Mask  Bitboard // Relevant occupancy mask (excludes edges)
	Magic uint64   // Magic multiplier, unused on the PEXT path
	Shift uint8    // Bits to shift right, unused on the PEXT path

	attacks []Bitboard // This square's region of the shared table
}

// indexFunc maps an occupancy to a slot in a Magic's attack region.
type indexFunc func(m *Magic, occupied Bitboard) uint

// multiplyIndex is ((occupied & mask) * magic) >> shift.
func multiplyIndex(m *Magic, occupied Bitboard) uint {
	return uint((uint64(occupied&m.Mask) * m.Magic) >> m.Shift)
}

// pextIndex builds an index function from a parallel-bit-extract primitive.
// Every subset of the mask maps to a distinct value in [0, 2^popcount(mask)).
func pextIndex(pext func(src, mask uint64) uint64) indexFunc {
	return func(m *Magic, occupied Bitboard) uint {
		return uint(pext(uint64(occupied), uint64(m.Mask)))
	}
}

// pextSoftware extracts the bits of src selected by mask into the low bits of
// the result, in order. Portable reference for the BMI2 instruction.
func pextSoftware(src, mask uint64) uint64 {
	var out uint64
	for bit := uint64(1); mask != 0; bit <<= 1 {
		low := mask & -mask
		if src&low != 0 {
			out |= bit
		}
		mask ^= low
	}
	return out
}

// Pre-computed magic numbers (found through trial and error)
var bishopMagicNumbers = [64]uint64{
	0x0002020202020200, 0x0002020202020000, 0x0004010202000000, 0x0004040080000000,
	0x0001104000000000, 0x0000821040000000, 0x0000410410400000, 0x0000104104104000,
	0x0000040404040400, 0x0000020202020200, 0x0000040102020000, 0x0000040400800000,
	0x0000011040000000, 0x0000008210400000, 0x0000004104104000, 0x0000002082082000,
	0x0004000808080800, 0x0002000404040400, 0x0001000202020200, 0x0000800802004000,
	0x0000800400A00000, 0x0000200100884000, 0x0000400082082000, 0x0000200041041000,
	0x0002080010101000, 0x0001040008080800, 0x0000208004010400, 0x0000404004010200,
	0x0000840000802000, 0x0000404002011000, 0x0000808001041000, 0x0000404000820800,
	0x0001041000202000, 0x0000820800101000, 0x0000104400080800, 0x0000020080080080,
	0x0000404040040100, 0x0000808100020100, 0x0001010100020800, 0x0000808080010400,
	0x0000820820004000, 0x0000410410002000, 0x0000082088001000, 0x0000002011000800,
	0x0000080100400400, 0x0001010101000200, 0x0002020202000400, 0x0001010101000200,
	0x0000410410400000, 0x0000208208200000, 0x0000002084100000, 0x0000000020880000,
	0x0000001002020000, 0x0000040408020000, 0x0004040404040000, 0x0002020202020000,
	0x0000104104104000, 0x0000002082082000, 0x0000000020841000, 0x0000000000208800,
	0x0000000010020200, 0x0000000404080200, 0x0000040404040400, 0x0002020202020200,
}

var rookMagicNumbers = [64]uint64{
	0x0080001020400080, 0x0040001000200040, 0x0080081000200080, 0x0080040800100080,
	0x0080020400080080, 0x0080010200040080, 0x0080008001000200, 0x0080002040800100,
	0x0000800020400080, 0x0000400020005000, 0x0000801000200080, 0x0000800800100080,
	0x0000800400080080, 0x0000800200040080, 0x0000800100020080, 0x0000800040800100,
	0x0000208000400080, 0x0000404000201000, 0x0000808010002000, 0x0000808008001000,
	0x0000808004000800, 0x0000808002000400, 0x0000010100020004, 0x0000020000408104,
	0x0000208080004000, 0x0000200040005000, 0x0000100080200080, 0x0000080080100080,
	0x0000040080080080, 0x0000020080040080, 0x0000010080800200, 0x0000800080004100,
	0x0000204000800080, 0x0000200040401000, 0x0000100080802000, 0x0000080080801000,
	0x0000040080800800, 0x0000020080800400, 0x0000020001010004, 0x0000800040800100,
	0x0000204000808000, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000010002008080, 0x0000004081020004,
	0x0000204000800080, 0x0000200040008080, 0x0000100020008080, 0x0000080010008080,
	0x0000040008008080, 0x0000020004008080, 0x0000800100020080, 0x0000800041000080,
	0x840A009024810242, 0x21C48021020890C2, 0x04401080400A0022, 0x0000040810002101,
	0x0001000204080011, 0x0001000204000801, 0x0001000082000401, 0x0002091020884402,
}

// sliderTables is one complete, immutable set of bishop and rook lookups
// built with a single index function.
type sliderTables struct {
	bishops [64]Magic
	rooks   [64]Magic

	bishopTable [64][bishopRegion]Bitboard
	rookTable   [64][rookRegion]Bitboard

	index indexFunc
}

var (
	sliders   *sliderTables
	usingPEXT bool
)

// initSliders picks the index function once, from the CPU's capabilities,
// and builds the process-wide tables with it.
func initSliders() {
	index := indexFunc(multiplyIndex)
	if hardwarePEXT != nil {
		index = pextIndex(hardwarePEXT)
		usingPEXT = true
	}
	sliders = mustBuildSliders(index)
}

// UsingPEXT reports whether slider lookups use the BMI2 parallel bit extract.
func UsingPEXT() bool {
	return usingPEXT
}

func mustBuildSliders(index indexFunc) *sliderTables {
	t, err := buildSliders(index)
	if err != nil {
		panic("board: slider table self-check failed: " + err.Error())
	}
	return t
}

// buildSliders fills every square's region by enumerating all subsets of its
// relevant occupancy, then re-checks every subset against a direct ray cast.
func buildSliders(index indexFunc) (*sliderTables, error) {
	t := &sliderTables{index: index}

	for sq := A1; sq <= H8; sq++ {
		b := &t.bishops[sq]
		b.Mask = RelevantOccupancy(sq, BishopDirections[:])
		b.Magic = bishopMagicNumbers[sq]
		b.Shift = uint8(64 - b.Mask.PopCount())
		b.attacks = t.bishopTable[sq][:]
		if err := fillMagic(b, sq, BishopDirections[:], index); err != nil {
			return nil, fmt.Errorf("bishop on %s: %w", sq, err)
		}

		r := &t.rooks[sq]
		r.Mask = RelevantOccupancy(sq, RookDirections[:])
		r.Magic = rookMagicNumbers[sq]
		r.Shift = uint8(64 - r.Mask.PopCount())
		r.attacks = t.rookTable[sq][:]
		if err := fillMagic(r, sq, RookDirections[:], index); err != nil {
			return nil, fmt.Errorf("rook on %s: %w", sq, err)
		}
	}

	return t, nil
}

// fillMagic stores the ray-cast attack set of every occupancy subset at its
// index. Every subset must own its slot.
func fillMagic(m *Magic, sq Square, dirs []Direction, index indexFunc) error {
	filled := make([]bool, len(m.attacks))

	var err error
	ForEachSubset(m.Mask, func(occ Bitboard) {
		if err != nil {
			return
		}
		attacks := SlidingMoves(sq, occ, dirs)
		i := index(m, occ)
		switch {
		case i >= uint(len(m.attacks)):
			err = fmt.Errorf("index %d outside region of %d for occupancy %#016x", i, len(m.attacks), uint64(occ))
		case filled[i]:
			err = fmt.Errorf("%w: slot %d, occupancy %#016x", ErrMagicCollision, i, uint64(occ))
		default:
			m.attacks[i] = attacks
			filled[i] = true
		}
	})
	if err != nil {
		return err
	}

	return verifyMagic(m, sq, dirs, index)
}

// verifyMagic checks that every subset reads back its own ray-cast attacks.
func verifyMagic(m *Magic, sq Square, dirs []Direction, index indexFunc) error {
	var err error
	ForEachSubset(m.Mask, func(occ Bitboard) {
		if err != nil {
			return
		}
		if got, want := m.attacks[index(m, occ)], SlidingMoves(sq, occ, dirs); got != want {
			err = fmt.Errorf("occupancy %#016x reads %#016x, ray cast gives %#016x", uint64(occ), uint64(got), uint64(want))
		}
	})
	return err
}

func (t *sliderTables) bishopAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &t.bishops[sq]
	return m.attacks[t.index(m, occupied)]
}

func (t *sliderTables) rookAttacks(sq Square, occupied Bitboard) Bitboard {
	m := &t.rooks[sq]
	return m.attacks[t.index(m, occupied)]
}

// MaxMagicTries bounds FindMagic's candidate loop.
const MaxMagicTries = 100_000_000

// FindMagic searches for a multiplier for sq that hashes the relevant
// occupancy subsets one-to-one onto a table of 2^popcount(mask) slots. This is
// the offline search behind the constants above.
func FindMagic(sq Square, rook bool, rng *PRNG) (uint64, error) {
	dirs := BishopDirections[:]
	if rook {
		dirs = RookDirections[:]
	}

	mask := RelevantOccupancy(sq, dirs)
	n := mask.PopCount()
	shift := uint(64 - n)

	occupancies := Subsets(mask)
	epoch := make([]int, 1<<n)

	for try := 1; try <= MaxMagicTries; try++ {
		magic := rng.Sparse()
		// A good multiplier spreads the mask into the top byte.
		if bits.OnesCount64((uint64(mask)*magic)&0xFF00000000000000) < 6 {
			continue
		}

		ok := true
		for _, occ := range occupancies {
			idx := (uint64(occ) * magic) >> shift
			if epoch[idx] == try {
				ok = false
				break
			}
			epoch[idx] = try
		}
		if ok {
			return magic, nil
		}
	}

	return 0, fmt.Errorf("no magic found for %s after %d tries", sq, MaxMagicTries)
}
