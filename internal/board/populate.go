package board

// PopulateState recomputes the current state's attack, checker, pinner and
// blocker bitboards from the piece placement. It never touches placement.
func (b *Board) PopulateState() {
	s := b.State()
	s.clearDerived()
	b.populateAttacks(s)
	b.populatePinnersAndBlockers(s)
}

// populateAttacks unions every piece's attacks per side, sliders blocked by
// the full occupancy. A piece whose attacks reach the opposing king is
// recorded as a checker.
func (b *Board) populateAttacks(s *BoardState) {
	occupied := b.Occupied()

	for i := 0; i < NPieces; i++ {
		piece := PieceFromIndex(i)
		side := piece.Color()
		enemyKing := b.PieceBB(NewPiece(King, side.Other()))

		b.pieceBB[i].ForEach(func(sq Square) {
			attacks := Attacks(piece, sq, occupied)
			if attacks&enemyKing != 0 {
				s.Checkers |= SquareBB(sq)
			}
			s.Attacks[side.Index()] |= attacks
		})
	}
}

// populatePinnersAndBlockers casts the eight rays out of each king. When the
// first piece on a ray is the king's own and the next piece beyond it is an
// enemy slider moving along that ray, the first is a king blocker and the
// second its pinner.
func (b *Board) populatePinnersAndBlockers(s *BoardState) {
	occupied := b.Occupied()

	for _, side := range Colors {
		own := b.ColorBB(side)
		enemy := b.ColorBB(side.Other())

		b.PieceBB(NewPiece(King, side)).ForEach(func(king Square) {
			for _, d := range RayDirections {
				blocker := (SlidingAttacks(king, occupied, d) & own).Nearest(d)
				if blocker == 0 {
					continue
				}

				pinner := (SlidingAttacks(blocker.LSB(), occupied, d) & enemy).Nearest(d)
				if pinner == 0 || !b.mailbox[pinner.LSB()].CanSlide(d) {
					continue
				}

				s.Pinners[side.Index()] |= pinner
				s.KingBlockers[side.Index()] |= blocker
			}
		})
	}
}
