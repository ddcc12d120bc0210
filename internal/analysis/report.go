// Package analysis turns positions into serialisable reports of their
// attack, check and pin state.
package analysis

import (
	"github.com/hailam/chesscore/internal/board"
)

// Side holds the derived bitboards for one color, as square names.
type Side struct {
	Attacks  []string `json:"attacks"`
	Blockers []string `json:"blockers"`
	Pinners  []string `json:"pinners"`
}

// Report is the derived state of a single position.
type Report struct {
	FEN        string `json:"fen"`
	Hash       uint64 `json:"hash"`
	SideToMove string `json:"side_to_move"`

	InCheck   bool     `json:"in_check"`
	Checkers  []string `json:"checkers"`
	Checkmate bool     `json:"checkmate"`
	Stalemate bool     `json:"stalemate"`

	White Side `json:"white"`
	Black Side `json:"black"`

	MoveCount  int      `json:"move_count"`
	LegalMoves []string `json:"legal_moves,omitempty"`

	// Index names the slider lookup path that produced the attacks.
	Index string `json:"index"`
}

// Analyze parses fen and reports its derived state. Errors wrap
// board.ErrInvalidFEN.
func Analyze(fen string) (*Report, error) {
	b, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}
	return FromBoard(b), nil
}

// FromBoard reports the derived state of a populated board.
func FromBoard(b *board.Board) *Report {
	moves := b.GenerateLegalMoves()
	inCheck := b.InCheck()

	r := &Report{
		FEN:        b.FEN(),
		Hash:       b.Hash(),
		SideToMove: b.SideToMove().String(),
		InCheck:    inCheck,
		Checkers:   squareNames(b.Checkers()),
		Checkmate:  inCheck && moves.Len() == 0,
		Stalemate:  !inCheck && moves.Len() == 0,
		White:      sideOf(b, board.White),
		Black:      sideOf(b, board.Black),
		MoveCount:  moves.Len(),
		LegalMoves: make([]string, 0, moves.Len()),
		Index:      IndexPath(),
	}
	for _, m := range moves.Slice() {
		r.LegalMoves = append(r.LegalMoves, m.String())
	}
	return r
}

// IndexPath names the slider index function chosen at startup.
func IndexPath() string {
	if board.UsingPEXT() {
		return "pext"
	}
	return "magic"
}

func sideOf(b *board.Board, c board.Color) Side {
	return Side{
		Attacks:  squareNames(b.GetAttacks(c)),
		Blockers: squareNames(b.KingBlockers(c)),
		Pinners:  squareNames(b.Pinners(c)),
	}
}

// squareNames lists the set squares in ascending order; never nil so the
// JSON form is [] rather than null.
func squareNames(bb board.Bitboard) []string {
	names := make([]string, 0, bb.PopCount())
	bb.ForEach(func(sq board.Square) {
		names = append(names, sq.String())
	})
	return names
}
