package board

// SlidingAttacks walks from `from` in direction d one step at a time, at most
// DistanceFromEdge(from, d) steps, collecting every visited square. The walk
// stops on the first square that intersects occupied, which is included.
func SlidingAttacks(from Square, occupied Bitboard, d Direction) Bitboard {
	var attacks Bitboard
	bb := SquareBB(from)

	for i := 0; i < from.DistanceFromEdge(d); i++ {
		bb = bb.Shift(d)
		attacks |= bb
		if bb&occupied != 0 {
			break
		}
	}

	return attacks
}

// SlidingMoves unions SlidingAttacks over a set of directions.
func SlidingMoves(from Square, occupied Bitboard, dirs []Direction) Bitboard {
	var attacks Bitboard
	for _, d := range dirs {
		attacks |= SlidingAttacks(from, occupied, d)
	}
	return attacks
}

// bishopAttacksSlow computes bishop attacks by ray casting (used during initialization).
func bishopAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return SlidingMoves(sq, occupied, BishopDirections[:])
}

// rookAttacksSlow computes rook attacks by ray casting (used during initialization).
func rookAttacksSlow(sq Square, occupied Bitboard) Bitboard {
	return SlidingMoves(sq, occupied, RookDirections[:])
}

// RelevantOccupancy returns the squares whose occupancy can change the attack
// set of a slider on sq travelling in dirs: each empty-board ray minus its
// final square, since a blocker on the rim cannot cut the ray any shorter.
func RelevantOccupancy(sq Square, dirs []Direction) Bitboard {
	var mask Bitboard
	for _, d := range dirs {
		ray := SlidingAttacks(sq, Empty, d)
		mask |= ray &^ ray.Nearest(d.Opposite())
	}
	return mask
}

// ForEachSubset calls fn once for every subset of mask, starting with mask
// itself and ending with the empty set (carry-rippler enumeration). A mask with
// k bits yields exactly 2^k calls.
func ForEachSubset(mask Bitboard, fn func(Bitboard)) {
	subset := mask
	for {
		fn(subset)
		if subset == 0 {
			return
		}
		subset = (subset - 1) & mask
	}
}

// Subsets returns every subset of mask in carry-rippler order.
func Subsets(mask Bitboard) []Bitboard {
	subsets := make([]Bitboard, 0, 1<<mask.PopCount())
	ForEachSubset(mask, func(s Bitboard) {
		subsets = append(subsets, s)
	})
	return subsets
}
