package board

// Zobrist hash keys for position hashing.
// Uses PRNG with fixed seed for reproducibility.
var (
	zobristPiece      [NPieces][64]uint64 // [Piece.Index][Square]
	zobristEnPassant  [8]uint64           // One per file
	zobristCastling   [16]uint64          // All 16 castling combinations
	zobristSideToMove uint64              // XOR when black to move
)

func init() {
	initZobrist()
}

func initZobrist() {
	rng := NewPRNG(0x98F107A2BEEF1234)

	for i := 0; i < NPieces; i++ {
		for sq := A1; sq <= H8; sq++ {
			zobristPiece[i][sq] = rng.Next()
		}
	}

	for file := 0; file < 8; file++ {
		zobristEnPassant[file] = rng.Next()
	}

	for i := 0; i < 16; i++ {
		zobristCastling[i] = rng.Next()
	}

	zobristSideToMove = rng.Next()
}

// Hash computes the Zobrist key of the position from scratch: placement,
// side to move, castling rights and en-passant file.
func (b *Board) Hash() uint64 {
	var hash uint64

	for i := 0; i < NPieces; i++ {
		b.pieceBB[i].ForEach(func(sq Square) {
			hash ^= zobristPiece[i][sq]
		})
	}

	if b.sideToMove == Black {
		hash ^= zobristSideToMove
	}

	s := b.State()
	hash ^= zobristCastling[s.CastlingRights&AllCastling]
	if s.EnPassant != NoSquare {
		hash ^= zobristEnPassant[s.EnPassant.File()]
	}

	return hash
}
