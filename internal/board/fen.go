package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidFEN is wrapped by every error ParseFEN returns.
var ErrInvalidFEN = errors.New("invalid FEN")

// ParseFEN parses a FEN string into a fully populated Board. The half-move
// clock and full-move number are optional; anything after them is rejected.
func ParseFEN(fen string) (*Board, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 {
		return nil, fmt.Errorf("%w: need at least 4 fields, got %d", ErrInvalidFEN, len(parts))
	}
	if len(parts) > 6 {
		return nil, fmt.Errorf("%w: too many fields, got %d", ErrInvalidFEN, len(parts))
	}

	b := &Board{
		fullMove: 1,
		history:  []BoardState{newBoardState()},
	}
	s := b.State()

	// Parse piece placement (field 0)
	if err := parsePiecePlacement(b, parts[0]); err != nil {
		return nil, err
	}

	// Parse side to move (field 1)
	switch parts[1] {
	case "w":
		b.sideToMove = White
	case "b":
		b.sideToMove = Black
	default:
		return nil, fmt.Errorf("%w: invalid side to move %q", ErrInvalidFEN, parts[1])
	}

	// Parse castling rights (field 2)
	cr, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	s.CastlingRights = cr

	// Parse en passant square (field 3)
	if parts[3] != "-" {
		sq, err := ParseSquare(parts[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid en passant square %q", ErrInvalidFEN, parts[3])
		}
		s.EnPassant = sq
	}

	// Parse half-move clock (field 4, optional)
	if len(parts) > 4 {
		hmc, err := parseCounter(parts[4])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid half-move clock %q", ErrInvalidFEN, parts[4])
		}
		s.HalfMoveClock = hmc
	}

	// Parse full-move number (field 5, optional)
	if len(parts) > 5 {
		fmn, err := parseCounter(parts[5])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid full-move number %q", ErrInvalidFEN, parts[5])
		}
		b.fullMove = fmn
	}

	b.PopulateState()
	return b, nil
}

// MustParseFEN is ParseFEN for known-good literals; it panics on error.
func MustParseFEN(fen string) *Board {
	b, err := ParseFEN(fen)
	if err != nil {
		panic(err)
	}
	return b
}

// parseCounter accepts only plain decimal digits; strconv alone would also
// take a sign.
func parseCounter(s string) (int, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("non-digit %q", s[i])
		}
	}
	return strconv.Atoi(s)
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(b *Board, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) > 8 {
		return fmt.Errorf("%w: too many ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	if len(ranks) < 8 {
		return fmt.Errorf("%w: too few ranks, got %d", ErrInvalidFEN, len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i // FEN starts from rank 8
		file := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]

			if c == '0' || c == '9' {
				return fmt.Errorf("%w: empty-square count %q in rank %d", ErrInvalidFEN, c, rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > 8 {
					return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
				}
				continue
			}

			piece := PieceFromChar(c)
			if piece == NoPiece {
				return fmt.Errorf("%w: invalid piece character %q in rank %d", ErrInvalidFEN, c, rank+1)
			}
			if file > 7 {
				return fmt.Errorf("%w: too many squares in rank %d", ErrInvalidFEN, rank+1)
			}
			b.setPiece(piece, NewSquare(file, rank))
			file++
		}

		if file != 8 {
			return fmt.Errorf("%w: rank %d covers %d squares, want 8", ErrInvalidFEN, rank+1, file)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights section of a FEN string.
func parseCastlingRights(castling string) (CastlingRights, error) {
	if castling == "-" {
		return NoCastling, nil
	}

	var cr CastlingRights
	for i := 0; i < len(castling); i++ {
		switch c := castling[i]; c {
		case 'K':
			cr |= WhiteKingSideCastle
		case 'Q':
			cr |= WhiteQueenSideCastle
		case 'k':
			cr |= BlackKingSideCastle
		case 'q':
			cr |= BlackQueenSideCastle
		default:
			return NoCastling, fmt.Errorf("%w: invalid castling character %q", ErrInvalidFEN, c)
		}
	}

	return cr, nil
}

// FEN returns the FEN representation of the board.
func (b *Board) FEN() string {
	var sb strings.Builder

	// Piece placement
	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			piece := b.mailbox[NewSquare(file, rank)]
			if piece == NoPiece {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(piece.Char())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	s := b.State()

	// Side to move
	sb.WriteByte(' ')
	if b.sideToMove == White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	// Castling rights
	sb.WriteByte(' ')
	sb.WriteString(s.CastlingRights.String())

	// En passant
	sb.WriteByte(' ')
	sb.WriteString(s.EnPassant.String())

	// Half-move clock and full-move number
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(s.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(b.fullMove))

	return sb.String()
}
