package board

import (
	"errors"
	"fmt"
)

// MoveKind distinguishes moves whose effect is not implied by origin and
// target alone.
type MoveKind uint8

const (
	KindNormal MoveKind = iota
	KindCastle
	KindEnPassant
	// KindPromotion is followed by one kind per promotion piece, knight
	// through queen.
	KindPromotion
)

// Move packs a move into 16 bits: origin in bits 0-5, target in bits 6-11 and
// the MoveKind in bits 12-15. Castling is recorded as the king's two-square
// step.
type Move uint16

// NoMove is the zero move, printed as "0000".
const NoMove Move = 0

// ErrIllegalMove is returned by ParseMove when the text names no legal move.
var ErrIllegalMove = errors.New("illegal move")

func makeMove(from, to Square, kind MoveKind) Move {
	return Move(from) | Move(to)<<6 | Move(kind)<<12
}

func NewMove(from, to Square) Move      { return makeMove(from, to, KindNormal) }
func NewCastling(from, to Square) Move  { return makeMove(from, to, KindCastle) }
func NewEnPassant(from, to Square) Move { return makeMove(from, to, KindEnPassant) }

// NewPromotion builds a pawn move to the last rank that becomes pt.
func NewPromotion(from, to Square, pt PieceType) Move {
	return makeMove(from, to, KindPromotion+MoveKind(pt-Knight))
}

func (m Move) From() Square   { return Square(m & 0x3F) }
func (m Move) To() Square     { return Square(m >> 6 & 0x3F) }
func (m Move) Kind() MoveKind { return MoveKind(m >> 12) }

func (m Move) IsPromotion() bool { return m.Kind() >= KindPromotion }
func (m Move) IsCastling() bool  { return m.Kind() == KindCastle }
func (m Move) IsEnPassant() bool { return m.Kind() == KindEnPassant }

// Promotion returns the piece a promoting pawn becomes, or NoPieceType.
func (m Move) Promotion() PieceType {
	if !m.IsPromotion() {
		return NoPieceType
	}
	return Knight + PieceType(m.Kind()-KindPromotion)
}

// String writes m in coordinate notation: "e2e4", "e1g1", "e7e8q".
func (m Move) String() string {
	if m == NoMove {
		return "0000"
	}
	s := m.From().String() + m.To().String()
	if pt := m.Promotion(); pt != NoPieceType {
		s += string("nbrq"[pt-Knight])
	}
	return s
}

// ParseMove reads a move in coordinate notation and returns the matching legal
// move of b, kind included.
func ParseMove(b *Board, s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return NoMove, fmt.Errorf("move %q: want 4 or 5 characters", s)
	}
	if _, err := ParseSquare(s[:2]); err != nil {
		return NoMove, fmt.Errorf("move %q: %w", s, err)
	}
	if _, err := ParseSquare(s[2:4]); err != nil {
		return NoMove, fmt.Errorf("move %q: %w", s, err)
	}
	if len(s) == 5 && (s[4] != 'n' && s[4] != 'b' && s[4] != 'r' && s[4] != 'q') {
		return NoMove, fmt.Errorf("move %q: bad promotion piece %q", s, s[4])
	}

	for _, m := range b.GenerateLegalMoves().Slice() {
		if m.String() == s {
			return m, nil
		}
	}
	return NoMove, fmt.Errorf("%w: %s with %s to move", ErrIllegalMove, s, b.SideToMove())
}

// MoveList holds the moves of one position without heap growth; no position
// has more than 218 legal moves.
type MoveList struct {
	buf [256]Move
	n   int
}

func NewMoveList() *MoveList { return &MoveList{} }

func (ml *MoveList) Add(m Move) {
	ml.buf[ml.n] = m
	ml.n++
}

func (ml *MoveList) Len() int      { return ml.n }
func (ml *MoveList) Slice() []Move { return ml.buf[:ml.n] }

func (ml *MoveList) Contains(m Move) bool {
	for _, x := range ml.Slice() {
		if x == m {
			return true
		}
	}
	return false
}
