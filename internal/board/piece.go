package board

// Color represents the color of a piece or player: false is white, true is black.
type Color bool

const (
	White Color = false
	Black Color = true
)

// Colors lists both sides in index order.
var Colors = [2]Color{White, Black}

// Other returns the opposite color.
func (c Color) Other() Color {
	return !c
}

// Index returns 0 for white and 1 for black, for per-side arrays.
func (c Color) Index() int {
	if c {
		return 1
	}
	return 0
}

// String returns the color name.
func (c Color) String() string {
	if c == Black {
		return "Black"
	}
	return "White"
}

// PieceType represents the kind of a chess piece, 1 (pawn) through 6 (king).
type PieceType int8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// String returns the piece type name.
func (pt PieceType) String() string {
	switch pt {
	case Pawn:
		return "Pawn"
	case Knight:
		return "Knight"
	case Bishop:
		return "Bishop"
	case Rook:
		return "Rook"
	case Queen:
		return "Queen"
	case King:
		return "King"
	default:
		return "None"
	}
}

// Piece is a signed piece code: the magnitude is the PieceType, the sign the
// color (positive white, negative black). Zero is an empty square.
type Piece int8

const (
	NoPiece Piece = 0

	WhitePawn   = Piece(Pawn)
	WhiteKnight = Piece(Knight)
	WhiteBishop = Piece(Bishop)
	WhiteRook   = Piece(Rook)
	WhiteQueen  = Piece(Queen)
	WhiteKing   = Piece(King)

	BlackPawn   = -WhitePawn
	BlackKnight = -WhiteKnight
	BlackBishop = -WhiteBishop
	BlackRook   = -WhiteRook
	BlackQueen  = -WhiteQueen
	BlackKing   = -WhiteKing
)

// NPieces is the number of distinct colored pieces.
const NPieces = 12

// NewPiece creates a Piece from PieceType and Color.
func NewPiece(pt PieceType, c Color) Piece {
	if pt <= NoPieceType || pt > King {
		return NoPiece
	}
	if c == Black {
		return -Piece(pt)
	}
	return Piece(pt)
}

// Type returns the PieceType of the piece, |p|.
func (p Piece) Type() PieceType {
	if p < 0 {
		return PieceType(-p)
	}
	return PieceType(p)
}

// Color returns the Color of the piece, sign(p). NoPiece reports White.
func (p Piece) Color() Color {
	return p < 0
}

// Index maps a piece to 0..11: white pawn..king, then black pawn..king.
// It must not be called on NoPiece.
func (p Piece) Index() int {
	return int(p.Type()) - 1 + 6*p.Color().Index()
}

// PieceFromIndex is the inverse of Index.
func PieceFromIndex(i int) Piece {
	return NewPiece(PieceType(i%6+1), Colors[i/6])
}

// Char returns the FEN character for the piece: uppercase for white,
// lowercase for black, a space for NoPiece.
func (p Piece) Char() byte {
	const chars = " PNBRQK"
	pt := p.Type()
	if pt <= NoPieceType || pt > King {
		return ' '
	}
	c := chars[pt]
	if p.Color() == Black {
		c += 'a' - 'A'
	}
	return c
}

// String returns the FEN character for the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a FEN character to a Piece.
func PieceFromChar(c byte) Piece {
	switch c {
	case 'P':
		return WhitePawn
	case 'N':
		return WhiteKnight
	case 'B':
		return WhiteBishop
	case 'R':
		return WhiteRook
	case 'Q':
		return WhiteQueen
	case 'K':
		return WhiteKing
	case 'p':
		return BlackPawn
	case 'n':
		return BlackKnight
	case 'b':
		return BlackBishop
	case 'r':
		return BlackRook
	case 'q':
		return BlackQueen
	case 'k':
		return BlackKing
	default:
		return NoPiece
	}
}

// IsSlider reports whether the piece attacks along rays.
func (p Piece) IsSlider() bool {
	switch p.Type() {
	case Bishop, Rook, Queen:
		return true
	}
	return false
}

// CanSlide reports whether the piece travels along rays in direction d:
// rooks and queens orthogonally, bishops and queens diagonally.
func (p Piece) CanSlide(d Direction) bool {
	switch p.Type() {
	case Rook:
		return d.IsOrthogonal()
	case Bishop:
		return d.IsDiagonal()
	case Queen:
		return d.IsOrthogonal() || d.IsDiagonal()
	}
	return false
}
