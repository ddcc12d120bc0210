package board

// CastlingRights represents the available castling options.
type CastlingRights uint8

const (
	WhiteKingSideCastle  CastlingRights = 1 << iota // K
	WhiteQueenSideCastle                            // Q
	BlackKingSideCastle                             // k
	BlackQueenSideCastle                            // q
	NoCastling           CastlingRights = 0
	AllCastling          CastlingRights = WhiteKingSideCastle | WhiteQueenSideCastle | BlackKingSideCastle | BlackQueenSideCastle
)

// String returns the FEN castling rights string.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	s := ""
	if cr&WhiteKingSideCastle != 0 {
		s += "K"
	}
	if cr&WhiteQueenSideCastle != 0 {
		s += "Q"
	}
	if cr&BlackKingSideCastle != 0 {
		s += "k"
	}
	if cr&BlackQueenSideCastle != 0 {
		s += "q"
	}
	return s
}

// CanCastle returns true if the given side can castle in the given direction.
func (cr CastlingRights) CanCastle(c Color, kingSide bool) bool {
	if c == White {
		if kingSide {
			return cr&WhiteKingSideCastle != 0
		}
		return cr&WhiteQueenSideCastle != 0
	}
	if kingSide {
		return cr&BlackKingSideCastle != 0
	}
	return cr&BlackQueenSideCastle != 0
}

// BoardState is the per-ply record of a position: the irreversible counters
// carried from move to move plus the attack, check and pin bitboards derived
// from the piece placement by PopulateState.
type BoardState struct {
	CastlingRights CastlingRights
	HalfMoveClock  int    // Moves since last pawn move or capture (for 50-move rule)
	EnPassant      Square // Target square for en passant, NoSquare if none

	// Attacks holds, per side, the union of every square that side attacks.
	Attacks [2]Bitboard

	// Checkers holds every piece that attacks the opposing king.
	Checkers Bitboard

	// KingBlockers holds, per side, that side's pieces standing alone between
	// their own king and an enemy slider (the pinned pieces).
	KingBlockers [2]Bitboard

	// Pinners holds, per side, the enemy sliders pinning a KingBlockers piece.
	Pinners [2]Bitboard
}

func newBoardState() BoardState {
	return BoardState{EnPassant: NoSquare}
}

// next returns the starting state for the following ply: counters carry
// over, derived bitboards are left for PopulateState.
func (s *BoardState) next() BoardState {
	return BoardState{
		CastlingRights: s.CastlingRights,
		HalfMoveClock:  s.HalfMoveClock,
		EnPassant:      s.EnPassant,
	}
}

// clearDerived zeroes everything PopulateState recomputes.
func (s *BoardState) clearDerived() {
	s.Attacks = [2]Bitboard{}
	s.Checkers = Empty
	s.KingBlockers = [2]Bitboard{}
	s.Pinners = [2]Bitboard{}
}
