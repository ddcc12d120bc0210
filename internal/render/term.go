package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/hailam/chesscore/internal/board"
)

var termBackground = [...]color.Attribute{
	markAttacked: color.BgBlue,
	markBlocker:  color.BgYellow,
	markPinner:   color.BgMagenta,
	markChecker:  color.BgRed,
}

// Terminal writes b as an ANSI-coloured grid, rank 8 first unless flipped,
// followed by a one-line summary of the derived state.
func Terminal(w io.Writer, b *board.Board, opts Options) error {
	m := marks(b, opts)

	for row := 0; row < 8; row++ {
		rank := 8 - row
		if opts.Flip {
			rank = row + 1
		}
		if _, err := fmt.Fprintf(w, "%d ", rank); err != nil {
			return err
		}

		for col := 0; col < 8; col++ {
			sq := cell(col, row, opts.Flip)
			p := b.PieceAt(sq)
			label := " " + string(p.Char()) + " "
			if _, err := termCell(sq, p, m[sq], opts).Fprint(w, label); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}

	files := "   a  b  c  d  e  f  g  h\n"
	if opts.Flip {
		files = "   h  g  f  e  d  c  b  a\n"
	}
	if _, err := io.WriteString(w, files); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, summary(b))
	return err
}

func termCell(sq board.Square, p board.Piece, k mark, opts Options) *color.Color {
	bg := color.BgGreen
	if (sq.File()+sq.Rank())%2 == 1 {
		bg = color.BgWhite
	}
	if k != markNone {
		bg = termBackground[k]
	}

	c := color.New(bg)
	if p != board.NoPiece {
		if p.Color() == board.White {
			c.Add(color.FgHiWhite, color.Bold)
		} else {
			c.Add(color.FgBlack, color.Bold)
		}
	}
	if opts.NoColor {
		c.DisableColor()
	}
	return c
}

// summary describes side to move, check and pins in one line.
func summary(b *board.Board) string {
	var parts []string
	parts = append(parts, b.SideToMove().String()+" to move")

	if checkers := b.Checkers(); checkers != 0 {
		parts = append(parts, "checkers "+squareList(checkers))
	}
	for _, c := range board.Colors {
		if pinned := b.KingBlockers(c); pinned != 0 {
			parts = append(parts, fmt.Sprintf("%s pinned %s by %s", strings.ToLower(c.String()), squareList(pinned), squareList(b.Pinners(c))))
		}
	}
	return strings.Join(parts, "; ")
}

func squareList(bb board.Bitboard) string {
	names := make([]string, 0, bb.PopCount())
	bb.ForEach(func(sq board.Square) {
		names = append(names, sq.String())
	})
	return strings.Join(names, ",")
}
