package board

import (
	"math/bits"
	"strings"
)

// Bitboard represents a 64-bit board where each bit corresponds to a square.
// Bit 0 = A1, Bit 7 = H1, Bit 56 = A8, Bit 63 = H8 (Little-Endian Rank-File Mapping).
type Bitboard uint64

// File masks
const (
	FileA Bitboard = 0x0101010101010101
	FileB Bitboard = 0x0202020202020202
	FileC Bitboard = 0x0404040404040404
	FileD Bitboard = 0x0808080808080808
	FileE Bitboard = 0x1010101010101010
	FileF Bitboard = 0x2020202020202020
	FileG Bitboard = 0x4040404040404040
	FileH Bitboard = 0x8080808080808080
)

// Rank masks
const (
	Rank1 Bitboard = 0x00000000000000FF
	Rank2 Bitboard = 0x000000000000FF00
	Rank3 Bitboard = 0x0000000000FF0000
	Rank4 Bitboard = 0x00000000FF000000
	Rank5 Bitboard = 0x000000FF00000000
	Rank6 Bitboard = 0x0000FF0000000000
	Rank7 Bitboard = 0x00FF000000000000
	Rank8 Bitboard = 0xFF00000000000000
)

const (
	Empty    Bitboard = 0
	Universe Bitboard = 0xFFFFFFFFFFFFFFFF

	NotFileA Bitboard = ^FileA
	NotFileH Bitboard = ^FileH

	// Edges is the board rim; occupancy there can never block a slider further.
	Edges Bitboard = FileA | FileH | Rank1 | Rank8
)

// FileMask returns the file mask for a given file (0-7).
var FileMask = [8]Bitboard{FileA, FileB, FileC, FileD, FileE, FileF, FileG, FileH}

// RankMask returns the rank mask for a given rank (0-7).
var RankMask = [8]Bitboard{Rank1, Rank2, Rank3, Rank4, Rank5, Rank6, Rank7, Rank8}

// SquareBB returns a bitboard with only the given square set.
// NoSquare maps to the empty bitboard.
func SquareBB(sq Square) Bitboard {
	if sq >= NoSquare {
		return Empty
	}
	return 1 << sq
}

// Set sets a bit at the given square.
func (b Bitboard) Set(sq Square) Bitboard {
	return b | SquareBB(sq)
}

// Clear clears a bit at the given square.
func (b Bitboard) Clear(sq Square) Bitboard {
	return b &^ SquareBB(sq)
}

// IsSet returns true if the bit at the given square is set.
func (b Bitboard) IsSet(sq Square) bool {
	return b&SquareBB(sq) != 0
}

// PopCount returns the number of set bits (population count).
func (b Bitboard) PopCount() int {
	return bits.OnesCount64(uint64(b))
}

// LSB returns the least significant bit (lowest square index).
func (b Bitboard) LSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(bits.TrailingZeros64(uint64(b)))
}

// MSB returns the most significant bit (highest square index).
func (b Bitboard) MSB() Square {
	if b == 0 {
		return NoSquare
	}
	return Square(63 - bits.LeadingZeros64(uint64(b)))
}

// PopLSB removes and returns the least significant bit.
func (b *Bitboard) PopLSB() Square {
	sq := b.LSB()
	*b &= *b - 1
	return sq
}

// Nearest isolates the set bit closest to the origin of a ray walking in
// direction d: the lowest bit for increasing directions, the highest otherwise.
func (b Bitboard) Nearest(d Direction) Bitboard {
	if b == 0 {
		return Empty
	}
	if d.IsIncreasing() {
		return b & -b
	}
	return 1 << (63 - bits.LeadingZeros64(uint64(b)))
}

// Shift translates the bitboard one step in direction d. Bits that would wrap
// around a file edge or fall off the top/bottom of the board are dropped.
// Double steps are two single steps composed.
func (b Bitboard) Shift(d Direction) Bitboard {
	switch d {
	case North:
		return b << 8
	case South:
		return b >> 8
	case East:
		return (b & NotFileH) << 1
	case West:
		return (b & NotFileA) >> 1
	case NorthNorth:
		return b.Shift(North).Shift(North)
	case SouthSouth:
		return b.Shift(South).Shift(South)
	case EastEast:
		return b.Shift(East).Shift(East)
	case WestWest:
		return b.Shift(West).Shift(West)
	case NorthEast:
		return b.Shift(North).Shift(East)
	case NorthWest:
		return b.Shift(North).Shift(West)
	case SouthEast:
		return b.Shift(South).Shift(East)
	case SouthWest:
		return b.Shift(South).Shift(West)
	}
	return b
}

// String returns a visual representation of the bitboard, rank 8 first.
func (b Bitboard) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteByte(byte('1' + rank))
		sb.WriteByte(' ')
		for file := 0; file < 8; file++ {
			if b.IsSet(NewSquare(file, rank)) {
				sb.WriteString("x ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// ForEach calls the function for each set square.
func (b Bitboard) ForEach(f func(Square)) {
	for b != 0 {
		f(b.PopLSB())
	}
}

// Squares returns a slice of all squares that are set.
func (b Bitboard) Squares() []Square {
	squares := make([]Square, 0, b.PopCount())
	for b != 0 {
		squares = append(squares, b.PopLSB())
	}
	return squares
}
