package board

import (
	"fmt"
	"strings"
)

// StartFEN is the FEN string for the starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Board represents a complete chess position.
type Board struct {
	mailbox    [64]Piece          // Piece on each square, NoPiece if empty
	pieceBB    [NPieces]Bitboard  // Indexed by Piece.Index
	colorBB    [2]Bitboard        // All pieces of each color
	pieceCount [NPieces]uint8     // Indexed by Piece.Index
	sideToMove Color
	fullMove   int

	// history is the state stack, one entry per ply; the last is current.
	history []BoardState
}

// NewEmptyBoard returns a board with no pieces, white to move.
func NewEmptyBoard() *Board {
	b := &Board{
		fullMove: 1,
		history:  []BoardState{newBoardState()},
	}
	b.PopulateState()
	return b
}

// NewStartingBoard returns the standard initial position.
func NewStartingBoard() *Board {
	b := &Board{
		mailbox: [64]Piece{
			WhiteRook, WhiteKnight, WhiteBishop, WhiteQueen, WhiteKing, WhiteBishop, WhiteKnight, WhiteRook,
			WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn, WhitePawn,
			56: BlackRook, BlackKnight, BlackBishop, BlackQueen, BlackKing, BlackBishop, BlackKnight, BlackRook,
			48: BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn, BlackPawn,
		},
		pieceBB: [NPieces]Bitboard{
			0x000000000000FF00, 0x0000000000000042, 0x0000000000000024,
			0x0000000000000081, 0x0000000000000008, 0x0000000000000010,
			0x00FF000000000000, 0x4200000000000000, 0x2400000000000000,
			0x8100000000000000, 0x0800000000000000, 0x1000000000000000,
		},
		colorBB:    [2]Bitboard{0x000000000000FFFF, 0xFFFF000000000000},
		pieceCount: [NPieces]uint8{8, 2, 2, 2, 1, 1, 8, 2, 2, 2, 1, 1},
		sideToMove: White,
		fullMove:   1,
		history:    []BoardState{{CastlingRights: AllCastling, EnPassant: NoSquare}},
	}
	b.PopulateState()
	return b
}

// PieceAt returns the piece at the given square, or NoPiece if empty.
func (b *Board) PieceAt(sq Square) Piece {
	if sq >= NoSquare {
		return NoPiece
	}
	return b.mailbox[sq]
}

// PieceBB returns the squares holding piece p.
func (b *Board) PieceBB(p Piece) Bitboard {
	if p == NoPiece {
		return Empty
	}
	return b.pieceBB[p.Index()]
}

// PieceCount returns how many of piece p are on the board.
func (b *Board) PieceCount(p Piece) int {
	if p == NoPiece {
		return 0
	}
	return int(b.pieceCount[p.Index()])
}

// ColorBB returns the squares holding pieces of color c.
func (b *Board) ColorBB(c Color) Bitboard {
	return b.colorBB[c.Index()]
}

// Occupied returns every occupied square.
func (b *Board) Occupied() Bitboard {
	return b.colorBB[0] | b.colorBB[1]
}

// SideToMove returns the color to move.
func (b *Board) SideToMove() Color {
	return b.sideToMove
}

// FullMoveNumber returns the FEN full-move counter.
func (b *Board) FullMoveNumber() int {
	return b.fullMove
}

// KingSquare returns the square of c's king, NoSquare if it has none.
func (b *Board) KingSquare(c Color) Square {
	return b.PieceBB(NewPiece(King, c)).LSB()
}

// IsEmpty returns true if the square is empty.
func (b *Board) IsEmpty(sq Square) bool {
	return b.PieceAt(sq) == NoPiece
}

// State returns the current ply's state. The pointer is invalidated by
// PushState and PopState.
func (b *Board) State() *BoardState {
	return &b.history[len(b.history)-1]
}

// Ply returns the number of states pushed on top of the root.
func (b *Board) Ply() int {
	return len(b.history) - 1
}

// PushState starts a new ply whose counters are copied from the current one
// and whose derived bitboards are empty until PopulateState runs.
func (b *Board) PushState() *BoardState {
	b.history = append(b.history, b.State().next())
	return b.State()
}

// PopState discards the current ply and returns to the previous one. The root
// state is never popped; PopState reports false instead.
func (b *Board) PopState() bool {
	if len(b.history) == 1 {
		return false
	}
	b.history = b.history[:len(b.history)-1]
	return true
}

// GetAttacks returns the union of squares attacked by side c.
func (b *Board) GetAttacks(c Color) Bitboard {
	return b.State().Attacks[c.Index()]
}

// Checkers returns every piece currently attacking the opposing king.
func (b *Board) Checkers() Bitboard {
	return b.State().Checkers
}

// Pinners returns the enemy sliders pinning one of c's pieces to c's king.
func (b *Board) Pinners(c Color) Bitboard {
	return b.State().Pinners[c.Index()]
}

// KingBlockers returns c's pieces that shield c's king from an enemy slider.
func (b *Board) KingBlockers(c Color) Bitboard {
	return b.State().KingBlockers[c.Index()]
}

// InCheck returns true if the side to move is in check.
func (b *Board) InCheck() bool {
	return b.Checkers()&b.ColorBB(b.sideToMove.Other()) != 0
}

// Copy creates a deep copy of the board, history included.
func (b *Board) Copy() *Board {
	c := *b
	c.history = append([]BoardState(nil), b.history...)
	return &c
}

// Equal reports whether two boards hold the same placement, side to move and
// current state. Earlier plies are not compared.
func (b *Board) Equal(o *Board) bool {
	return b.mailbox == o.mailbox &&
		b.pieceBB == o.pieceBB &&
		b.colorBB == o.colorBB &&
		b.pieceCount == o.pieceCount &&
		b.sideToMove == o.sideToMove &&
		b.fullMove == o.fullMove &&
		*b.State() == *o.State()
}

// setPiece places a piece on an empty square.
func (b *Board) setPiece(p Piece, sq Square) {
	if p == NoPiece {
		return
	}
	bb := SquareBB(sq)

	b.mailbox[sq] = p
	b.pieceBB[p.Index()] |= bb
	b.colorBB[p.Color().Index()] |= bb
	b.pieceCount[p.Index()]++
}

// attackersTo returns every piece of color by attacking sq, with occupied as
// the blocker set.
func (b *Board) attackersTo(sq Square, by Color, occupied Bitboard) Bitboard {
	queens := b.PieceBB(NewPiece(Queen, by))
	return (PawnAttacks(sq, by.Other()) & b.PieceBB(NewPiece(Pawn, by))) |
		(KnightAttacks(sq) & b.PieceBB(NewPiece(Knight, by))) |
		(KingAttacks(sq) & b.PieceBB(NewPiece(King, by))) |
		(BishopAttacks(sq, occupied) & (b.PieceBB(NewPiece(Bishop, by)) | queens)) |
		(RookAttacks(sq, occupied) & (b.PieceBB(NewPiece(Rook, by)) | queens))
}

// IsSquareAttacked returns true if the square is attacked by the given color.
func (b *Board) IsSquareAttacked(sq Square, by Color) bool {
	return b.attackersTo(sq, by, b.Occupied()) != 0
}

// String returns a visual representation of the board and its derived state.
func (b *Board) String() string {
	const sep = "  +---+---+---+---+---+---+---+---+\n"
	var sb strings.Builder

	sb.WriteString(sep)
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d |", rank+1)
		for file := 0; file < 8; file++ {
			fmt.Fprintf(&sb, " %c |", b.mailbox[NewSquare(file, rank)].Char())
		}
		sb.WriteByte('\n')
		sb.WriteString(sep)
	}
	sb.WriteString("    a   b   c   d   e   f   g   h\n\n")

	s := b.State()
	fmt.Fprintf(&sb, "Side to move: %s\n", b.sideToMove)
	fmt.Fprintf(&sb, "Castling: %s  Half-move clock: %d  En passant: %s\n", s.CastlingRights, s.HalfMoveClock, s.EnPassant)
	fmt.Fprintf(&sb, "Checkers: %v\n", s.Checkers.Squares())
	fmt.Fprintf(&sb, "Blockers: white %v black %v\n", s.KingBlockers[0].Squares(), s.KingBlockers[1].Squares())
	fmt.Fprintf(&sb, "Pinners:  white %v black %v\n", s.Pinners[0].Squares(), s.Pinners[1].Squares())
	return sb.String()
}
