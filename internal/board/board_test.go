package board

import (
	"strings"
	"testing"
)

func TestStartingBoardMatchesFEN(t *testing.T) {
	fromFEN := MustParseFEN(StartFEN)
	start := NewStartingBoard()

	if !start.Equal(fromFEN) {
		t.Fatalf("NewStartingBoard differs from StartFEN:\n%s\n%s", start, fromFEN)
	}
	if start.Hash() != fromFEN.Hash() {
		t.Error("equal boards hash differently")
	}
	if got := start.PieceCount(WhitePawn); got != 8 {
		t.Errorf("white pawns = %d, want 8", got)
	}
	if start.KingSquare(White) != E1 || start.KingSquare(Black) != E8 {
		t.Errorf("king squares = %s %s", start.KingSquare(White), start.KingSquare(Black))
	}
}

func TestEmptyBoard(t *testing.T) {
	b := NewEmptyBoard()
	if b.Occupied() != Empty || b.GetAttacks(White) != Empty || b.Checkers() != Empty {
		t.Error("empty board should have no pieces, attacks or checkers")
	}
	if b.KingSquare(White) != NoSquare || b.InCheck() {
		t.Error("empty board has no king and no check")
	}
	if b.PieceAt(NoSquare) != NoPiece || b.PieceBB(NoPiece) != Empty || b.PieceCount(NoPiece) != 0 {
		t.Error("NoPiece/NoSquare lookups should be empty")
	}
}

func TestStartingAttacks(t *testing.T) {
	b := NewStartingBoard()

	// Pawns cover rank 3; every home square except the rook corners is defended.
	want := Rank3 | (Rank2 | Rank1) &^ bb(A1, H1)
	if got := b.GetAttacks(White); got != want {
		t.Errorf("white attacks = %v, want %v", got.Squares(), want.Squares())
	}
	if got := b.GetAttacks(Black); got != (Rank6 | (Rank7 | Rank8) &^ bb(A8, H8)) {
		t.Errorf("black attacks = %v", got.Squares())
	}
	if b.Checkers() != Empty || b.KingBlockers(White) != Empty || b.Pinners(Black) != Empty {
		t.Error("start position has no checks or pins")
	}
}

func TestCheckers(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		checkers Bitboard
		inCheck  bool
	}{
		{"rook on open file", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", bb(E1), true},
		{"file blocked", "4k3/8/8/8/4P3/8/8/4RK2 b - - 0 1", Empty, false},
		{"knight check", "4k3/8/3N4/8/8/8/8/5K2 b - - 0 1", bb(D6), true},
		{"pawn check", "4k3/3P4/8/8/8/8/8/5K2 b - - 0 1", bb(D7), true},
		{"double check", "4k3/8/3N4/8/8/8/8/4RK2 b - - 0 1", bb(D6, E1), true},
		{"checker while not to move", "4k3/8/8/8/8/8/8/4RK2 w - - 0 1", bb(E1), false},
		{"both kings attacked", "4k3/8/8/8/8/8/K6r/4R3 b - - 0 1", bb(E1, H2), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParseFEN(tc.fen)
			if got := b.Checkers(); got != tc.checkers {
				t.Errorf("Checkers = %v, want %v", got.Squares(), tc.checkers.Squares())
			}
			if got := b.InCheck(); got != tc.inCheck {
				t.Errorf("InCheck = %v, want %v", got, tc.inCheck)
			}
		})
	}
}

func TestPinnersAndBlockers(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		side     Color
		blockers Bitboard
		pinners  Bitboard
	}{
		{"bishop pinned on file", "4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1", White, bb(E2), bb(E4)},
		{"two pieces shield the king", "4k3/8/8/8/4r3/4N3/4B3/4K3 w - - 0 1", White, Empty, Empty},
		{"bishop cannot pin on file", "4k3/8/8/8/4b3/8/4B3/4K3 w - - 0 1", White, Empty, Empty},
		{"diagonal pin by queen", "4k3/8/8/q7/8/2N5/8/4K3 w - - 0 1", White, bb(C3), bb(A5)},
		{"rook cannot pin on diagonal", "4k3/8/8/r7/8/2N5/8/4K3 w - - 0 1", White, Empty, Empty},
		{"enemy piece is not a blocker", "4k3/8/8/8/4r3/8/4n3/4K3 w - - 0 1", White, Empty, Empty},
		{"black pinned by rook", "4k3/4n3/8/8/8/8/8/4RK2 w - - 0 1", Black, bb(E7), bb(E1)},
		{"pins on two rays", "4k3/8/8/q3r3/8/2P5/4N3/4K3 w - - 0 1", White, bb(E2, C3), bb(E5, A5)},
		{"queen pins along rank", "8/8/8/8/8/8/8/K1B2q1k w - - 0 1", White, bb(C1), bb(F1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := MustParseFEN(tc.fen)
			if got := b.KingBlockers(tc.side); got != tc.blockers {
				t.Errorf("KingBlockers(%s) = %v, want %v", tc.side, got.Squares(), tc.blockers.Squares())
			}
			if got := b.Pinners(tc.side); got != tc.pinners {
				t.Errorf("Pinners(%s) = %v, want %v", tc.side, got.Squares(), tc.pinners.Squares())
			}
		})
	}
}

func TestPopulateStateIsIdempotent(t *testing.T) {
	b := MustParseFEN("r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1")
	before := *b.State()
	b.PopulateState()
	if *b.State() != before {
		t.Error("PopulateState changed an already populated state")
	}
}

func TestStateHistory(t *testing.T) {
	b := MustParseFEN("r3k2r/8/8/3pP3/8/8/8/R3K2R w KQkq d6 7 20")
	root := *b.State()

	if b.PopState() {
		t.Fatal("popping the root state should fail")
	}

	s := b.PushState()
	if b.Ply() != 1 {
		t.Fatalf("Ply = %d, want 1", b.Ply())
	}
	if s.CastlingRights != root.CastlingRights || s.HalfMoveClock != 7 || s.EnPassant != D6 {
		t.Errorf("pushed state did not carry counters: %+v", *s)
	}
	if s.Attacks != [2]Bitboard{} || s.Checkers != Empty {
		t.Error("pushed state should start without derived bitboards")
	}

	s.CastlingRights = WhiteKingSideCastle
	s.EnPassant = NoSquare
	b.PopulateState()
	if b.GetAttacks(White) != root.Attacks[0] {
		t.Error("repopulated attacks differ for the same placement")
	}

	if !b.PopState() {
		t.Fatal("PopState failed")
	}
	if b.Ply() != 0 || *b.State() != root {
		t.Errorf("PopState did not restore the root: %+v", *b.State())
	}
}

func TestCopyIsIndependent(t *testing.T) {
	b := NewStartingBoard()
	c := b.Copy()
	c.PushState().HalfMoveClock = 99

	if b.Ply() != 0 || b.State().HalfMoveClock != 0 {
		t.Error("mutating the copy changed the original")
	}
	if c.Equal(b) {
		t.Error("copy with a different state should not be equal")
	}
}

func TestHashDistinguishesState(t *testing.T) {
	base := MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	variants := []string{
		"r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K1R1 w KQkq - 0 1",
	}

	seen := map[uint64]string{base.Hash(): base.FEN()}
	for _, fen := range variants {
		h := MustParseFEN(fen).Hash()
		if prev, ok := seen[h]; ok {
			t.Errorf("%q hashes like %q", fen, prev)
		}
		seen[h] = fen
	}

	// Counters are not part of the key.
	if MustParseFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 12 40").Hash() != base.Hash() {
		t.Error("move counters changed the hash")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	b := MustParseFEN("4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if !b.IsSquareAttacked(A8, White) || !b.IsSquareAttacked(D1, White) {
		t.Error("rook a1 should attack a8 and d1")
	}
	if !b.IsSquareAttacked(F1, White) {
		t.Error("king e1 should attack f1")
	}
	if b.IsSquareAttacked(H8, White) {
		t.Error("h8 is not attacked")
	}
}

func TestBoardString(t *testing.T) {
	s := MustParseFEN("4k3/8/8/8/4r3/8/4B3/4K3 w - - 0 1").String()
	for _, want := range []string{"| k |", "| B |", "Side to move: White", "Blockers: white [e2]", "Pinners:  white [e4]"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}
