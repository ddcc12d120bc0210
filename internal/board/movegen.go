package board

// Castling geometry per side: king origin and, for each wing, the king's
// destination, the rook's corner, the squares that must be empty and the
// squares the king crosses or lands on.
type castleSpec struct {
	right      CastlingRights
	kingFrom   Square
	kingTo     Square
	rookFrom   Square
	mustEmpty  Bitboard
	kingTravel Bitboard
}

var castleSpecs = [2][2]castleSpec{
	{
		{WhiteKingSideCastle, E1, G1, H1, SquareBB(F1) | SquareBB(G1), SquareBB(F1) | SquareBB(G1)},
		{WhiteQueenSideCastle, E1, C1, A1, SquareBB(B1) | SquareBB(C1) | SquareBB(D1), SquareBB(C1) | SquareBB(D1)},
	},
	{
		{BlackKingSideCastle, E8, G8, H8, SquareBB(F8) | SquareBB(G8), SquareBB(F8) | SquareBB(G8)},
		{BlackQueenSideCastle, E8, C8, A8, SquareBB(B8) | SquareBB(C8) | SquareBB(D8), SquareBB(C8) | SquareBB(D8)},
	},
}

// GenerateLegalMoves generates all legal moves for the side to move from the
// populated state:
//   - the king may step to any square the enemy would not attack once the
//     king has left its origin;
//   - in double check nothing else moves;
//   - in single check every other move must capture the checker or land
//     strictly between it and the king;
//   - a king blocker may only move along the line through its king.
func (b *Board) GenerateLegalMoves() *MoveList {
	ml := NewMoveList()

	us := b.sideToMove
	them := us.Other()
	own := b.ColorBB(us)
	enemy := b.ColorBB(them)
	occupied := own | enemy
	s := b.State()

	kingBB := b.PieceBB(NewPiece(King, us))
	kingBB.ForEach(func(from Square) {
		targets := KingAttacks(from) &^ own
		targets.ForEach(func(to Square) {
			if b.attackersTo(to, them, occupied&^kingBB) == 0 {
				ml.Add(NewMove(from, to))
			}
		})
	})

	checkers := s.Checkers & enemy
	if checkers.PopCount() > 1 {
		return ml
	}

	target := ^own
	if checkers != 0 {
		checker := checkers.LSB()
		target &= checkers | Between(kingBB.LSB(), checker)
	}

	pinned := s.KingBlockers[us.Index()]
	ksq := kingBB.LSB()

	// pinLine limits a piece to its pin line, or leaves it free.
	pinLine := func(from Square) Bitboard {
		if pinned.IsSet(from) {
			return Line(ksq, from)
		}
		return Universe
	}

	for _, pt := range [...]PieceType{Knight, Bishop, Rook, Queen} {
		piece := NewPiece(pt, us)
		b.PieceBB(piece).ForEach(func(from Square) {
			moves := Attacks(piece, from, occupied) & target & pinLine(from)
			moves.ForEach(func(to Square) {
				ml.Add(NewMove(from, to))
			})
		})
	}

	b.generatePawnMoves(ml, us, target, pinLine)

	if checkers == 0 {
		b.generateCastlingMoves(ml, us)
	}

	return ml
}

// generatePawnMoves adds pushes, double pushes, captures, promotions and en
// passant for every pawn of color us.
func (b *Board) generatePawnMoves(ml *MoveList, us Color, target Bitboard, pinLine func(Square) Bitboard) {
	them := us.Other()
	enemy := b.ColorBB(them)
	occupied := b.Occupied()
	empty := ^occupied

	forward, startRank, promotionRank := North, Rank2, Rank8
	if us == Black {
		forward, startRank, promotionRank = South, Rank7, Rank1
	}

	pawns := b.PieceBB(NewPiece(Pawn, us))
	pawns.ForEach(func(from Square) {
		fromBB := SquareBB(from)
		allowed := target & pinLine(from)

		single := fromBB.Shift(forward) & empty
		moves := single
		if fromBB&startRank != 0 {
			moves |= single.Shift(forward) & empty
		}
		moves |= PawnAttacks(from, us) & enemy
		moves &= allowed

		moves.ForEach(func(to Square) {
			if SquareBB(to)&promotionRank != 0 {
				addPromotions(ml, from, to)
				return
			}
			ml.Add(NewMove(from, to))
		})
	})

	ep := b.State().EnPassant
	if ep == NoSquare {
		return
	}
	captured := SquareBB(ep).Shift(forward.Opposite())
	if captured&b.PieceBB(NewPiece(Pawn, them)) == 0 {
		return
	}

	ksq := b.KingSquare(us)
	attackers := PawnAttacks(ep, them) & pawns
	attackers.ForEach(func(from Square) {
		if ksq == NoSquare {
			ml.Add(NewEnPassant(from, ep))
			return
		}
		// Re-cast attacks on the king after both pawns leave and the capturer
		// lands: this catches pins along the rank as well as checks.
		after := occupied&^SquareBB(from)&^captured | SquareBB(ep)
		if b.attackersTo(ksq, them, after)&^captured == 0 {
			ml.Add(NewEnPassant(from, ep))
		}
	})
}

// addPromotions adds all four promotion moves.
func addPromotions(ml *MoveList, from, to Square) {
	ml.Add(NewPromotion(from, to, Queen))
	ml.Add(NewPromotion(from, to, Rook))
	ml.Add(NewPromotion(from, to, Bishop))
	ml.Add(NewPromotion(from, to, Knight))
}

// generateCastlingMoves adds castling moves; the caller has ruled out check.
func (b *Board) generateCastlingMoves(ml *MoveList, us Color) {
	them := us.Other()
	rights := b.State().CastlingRights
	occupied := b.Occupied()
	enemyAttacks := b.GetAttacks(them)
	rook := NewPiece(Rook, us)
	king := NewPiece(King, us)

	for _, cs := range castleSpecs[us.Index()] {
		if rights&cs.right == 0 ||
			b.mailbox[cs.kingFrom] != king ||
			b.mailbox[cs.rookFrom] != rook ||
			occupied&cs.mustEmpty != 0 ||
			enemyAttacks&cs.kingTravel != 0 {
			continue
		}
		ml.Add(NewCastling(cs.kingFrom, cs.kingTo))
	}
}

// HasLegalMoves returns true if the side to move has at least one legal move.
func (b *Board) HasLegalMoves() bool {
	return b.GenerateLegalMoves().Len() > 0
}

// IsCheckmate returns true if the side to move is in check with no legal moves.
func (b *Board) IsCheckmate() bool {
	return b.InCheck() && !b.HasLegalMoves()
}

// IsStalemate returns true if the side to move is not in check but has no legal moves.
func (b *Board) IsStalemate() bool {
	return !b.InCheck() && !b.HasLegalMoves()
}
