package board

// Rows of the non-sliding attack table.
const (
	whitePawnAttacks = iota
	blackPawnAttacks
	knightAttacks
	kingAttacks
)

var (
	// nonSliding holds pre-computed attacks for pieces that step rather than slide.
	nonSliding [4][64]Bitboard

	// Between and Line bitboards for pins/checks
	betweenBB [64][64]Bitboard // Squares strictly between two squares
	lineBB    [64][64]Bitboard // Full line through two squares (including endpoints)
)

var (
	knightSteps = []int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingSteps   = []int{-9, -8, -7, -1, 1, 7, 8, 9}
)

func init() {
	initNonSliding()
	initSliders() // From magic.go
	initRays()
}

// safeStep returns the square `step` indices away from sq, or the empty set
// if it is off the board or wrapped around a file edge. A wrapped step always
// lands more than two files away, so a Chebyshev bound of 2 rejects it.
func safeStep(sq Square, step int) Bitboard {
	to := int(sq) + step
	if to < 0 || to > 63 || chebyshev(sq, Square(to)) > 2 {
		return Empty
	}
	return SquareBB(Square(to))
}

func stepAttacks(sq Square, steps []int) Bitboard {
	var attacks Bitboard
	for _, step := range steps {
		attacks |= safeStep(sq, step)
	}
	return attacks
}

func initNonSliding() {
	for sq := A1; sq <= H8; sq++ {
		nonSliding[whitePawnAttacks][sq] = stepAttacks(sq, []int{int(NorthWest), int(NorthEast)})
		nonSliding[blackPawnAttacks][sq] = stepAttacks(sq, []int{int(SouthWest), int(SouthEast)})
		nonSliding[knightAttacks][sq] = stepAttacks(sq, knightSteps)
		nonSliding[kingAttacks][sq] = stepAttacks(sq, kingSteps)
	}
}

// initRays fills Between and Line from empty-board ray casts.
func initRays() {
	for from := A1; from <= H8; from++ {
		for _, d := range RayDirections {
			ray := SlidingAttacks(from, Empty, d)
			line := ray | SlidingAttacks(from, Empty, d.Opposite()) | SquareBB(from)
			ray.ForEach(func(to Square) {
				betweenBB[from][to] = SlidingAttacks(from, SquareBB(to), d) &^ SquareBB(to)
				lineBB[from][to] = line
			})
		}
	}
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return nonSliding[knightAttacks][sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return nonSliding[kingAttacks][sq]
}

// PawnAttacks returns the squares a pawn of color c on sq attacks.
func PawnAttacks(sq Square, c Color) Bitboard {
	return nonSliding[c.Index()][sq]
}

// BishopAttacks returns the bishop attack bitboard for a square with given occupancy.
func BishopAttacks(sq Square, occupied Bitboard) Bitboard {
	return sliders.bishopAttacks(sq, occupied)
}

// RookAttacks returns the rook attack bitboard for a square with given occupancy.
func RookAttacks(sq Square, occupied Bitboard) Bitboard {
	return sliders.rookAttacks(sq, occupied)
}

// QueenAttacks returns the queen attack bitboard for a square with given occupancy.
func QueenAttacks(sq Square, occupied Bitboard) Bitboard {
	return sliders.bishopAttacks(sq, occupied) | sliders.rookAttacks(sq, occupied)
}

// Attacks returns the squares piece p on from attacks, with occupied as the
// blocker set for sliders. Pawn attacks depend on the piece's color.
func Attacks(p Piece, from Square, occupied Bitboard) Bitboard {
	switch p.Type() {
	case Pawn:
		return PawnAttacks(from, p.Color())
	case Knight:
		return KnightAttacks(from)
	case Bishop:
		return BishopAttacks(from, occupied)
	case Rook:
		return RookAttacks(from, occupied)
	case Queen:
		return QueenAttacks(from, occupied)
	case King:
		return KingAttacks(from)
	}
	return Empty
}

// Between returns the bitboard of squares strictly between two squares.
// Returns empty if squares are not aligned (not on same rank, file, or diagonal).
func Between(sq1, sq2 Square) Bitboard {
	return betweenBB[sq1][sq2]
}

// Line returns the bitboard of the full line through two squares.
// Returns empty if squares are not aligned.
func Line(sq1, sq2 Square) Bitboard {
	return lineBB[sq1][sq2]
}
