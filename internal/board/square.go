// Package board implements the attack-generation and position-state core of a
// chess move engine: bitboards, precomputed attack tables, magic bitboards for
// sliders, and the check/pin aggregator that move generation consumes.
package board

import "fmt"

// Square represents a square on the chess board (0-63).
// Uses Little-Endian Rank-File Mapping: A1=0, H1=7, A8=56, H8=63.
type Square uint8

// Square constants for all 64 squares.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
	NoSquare Square = 64
)

// File returns the file (column) of the square (0-7, where 0=a, 7=h).
func (sq Square) File() int {
	return int(sq) & 7
}

// Rank returns the rank (row) of the square (0-7, where 0=1, 7=8).
func (sq Square) Rank() int {
	return int(sq) >> 3
}

// String returns the algebraic notation for the square (e.g., "e4").
func (sq Square) String() string {
	if sq >= NoSquare {
		return "-"
	}
	return fmt.Sprintf("%c%c", 'a'+sq.File(), '1'+sq.Rank())
}

// Bitboard returns the singleton set holding sq.
func (sq Square) Bitboard() Bitboard {
	return SquareBB(sq)
}

// NewSquare creates a square from file and rank (0-indexed).
func NewSquare(file, rank int) Square {
	return Square(rank*8 + file)
}

// ParseSquare parses algebraic notation (e.g., "e4") into a Square.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'

	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare, fmt.Errorf("invalid square: %q", s)
	}

	return NewSquare(file, rank), nil
}

// DistanceFromEdge returns how many single steps in direction d remain before
// falling off the board. Double-step directions count double steps. Every ray
// cast in this package is bounded by this value.
func (sq Square) DistanceFromEdge(d Direction) int {
	rank, file := sq.Rank(), sq.File()
	switch d {
	case North:
		return 7 - rank
	case South:
		return rank
	case East:
		return 7 - file
	case West:
		return file
	case NorthNorth:
		return (7 - rank) / 2
	case SouthSouth:
		return rank / 2
	case EastEast:
		return (7 - file) / 2
	case WestWest:
		return file / 2
	case NorthEast:
		return min(sq.DistanceFromEdge(North), sq.DistanceFromEdge(East))
	case NorthWest:
		return min(sq.DistanceFromEdge(North), sq.DistanceFromEdge(West))
	case SouthEast:
		return min(sq.DistanceFromEdge(South), sq.DistanceFromEdge(East))
	case SouthWest:
		return min(sq.DistanceFromEdge(South), sq.DistanceFromEdge(West))
	}
	return 0
}

// chebyshev returns the king-move distance between two squares.
func chebyshev(a, b Square) int {
	return max(abs(a.File()-b.File()), abs(a.Rank()-b.Rank()))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
