// Package render draws boards with their derived attack, check and pin
// state as coloured terminal text, SVG or PNG.
package render

import (
	"fmt"
	"image/color"

	"github.com/hailam/chesscore/internal/board"
)

// DefaultSize is the SVG and PNG edge length when Options.Size is zero.
const DefaultSize = 480

// Options controls what is drawn.
type Options struct {
	Size    int  // image edge length in pixels
	Flip    bool // draw from black's side
	Attacks bool // shade squares the side not to move attacks
	NoColor bool // plain terminal output
}

func (o Options) size() int {
	if o.Size <= 0 {
		return DefaultSize
	}
	return o.Size
}

// mark is the overlay drawn on one square; later marks win.
type mark int

const (
	markNone mark = iota
	markAttacked
	markBlocker
	markPinner
	markChecker
)

// marks classifies every square of b.
func marks(b *board.Board, opts Options) [64]mark {
	var m [64]mark

	set := func(bb board.Bitboard, k mark) {
		bb.ForEach(func(sq board.Square) {
			if k > m[sq] {
				m[sq] = k
			}
		})
	}

	if opts.Attacks {
		set(b.GetAttacks(b.SideToMove().Other()), markAttacked)
	}
	set(b.KingBlockers(board.White)|b.KingBlockers(board.Black), markBlocker)
	set(b.Pinners(board.White)|b.Pinners(board.Black), markPinner)
	set(b.Checkers(), markChecker)
	return m
}

// cell maps a screen position, row 0 at the top, to a square.
func cell(col, row int, flip bool) board.Square {
	if flip {
		return board.NewSquare(7-col, row)
	}
	return board.NewSquare(col, 7-row)
}

var (
	lightSquare = color.RGBA{0xf0, 0xd9, 0xb5, 0xff}
	darkSquare  = color.RGBA{0xb5, 0x88, 0x63, 0xff}

	markTint = [...]color.RGBA{
		markAttacked: {0x4a, 0x7a, 0xc8, 0xff},
		markBlocker:  {0xe8, 0xc5, 0x2a, 0xff},
		markPinner:   {0xe0, 0x7b, 0x20, 0xff},
		markChecker:  {0xd0, 0x2a, 0x2a, 0xff},
	}

	whitePiece = color.RGBA{0xff, 0xff, 0xff, 0xff}
	blackPiece = color.RGBA{0x20, 0x20, 0x20, 0xff}
)

// squareColor is the fill of sq under mark k.
func squareColor(sq board.Square, k mark) color.RGBA {
	base := darkSquare
	if (sq.File()+sq.Rank())%2 == 1 {
		base = lightSquare
	}
	if k == markNone {
		return base
	}
	return mix(base, markTint[k], 0.55)
}

// mix interpolates from a toward b by t in [0, 1].
func mix(a, b color.RGBA, t float64) color.RGBA {
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B), 0xff}
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// pieceColors returns the disc and letter colours for p.
func pieceColors(p board.Piece) (disc, letter color.RGBA) {
	if p.Color() == board.White {
		return whitePiece, blackPiece
	}
	return blackPiece, whitePiece
}

// letterOf is the uppercase letter drawn on p's disc.
func letterOf(p board.Piece) string {
	return string(board.NewPiece(p.Type(), board.White).Char())
}
