package render

import (
	"bytes"
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/hailam/chesscore/internal/board"
)

// Drawing units per square in the SVG user space; the viewBox scales them
// to Options.Size.
const unit = 60

// SVG writes b as an SVG document. Pieces are discs carrying their FEN
// letter; overlays tint the squares.
func SVG(w io.Writer, b *board.Board, opts Options) error {
	var buf bytes.Buffer
	writeSVG(&buf, b, opts, true)
	_, err := w.Write(buf.Bytes())
	return err
}

// writeSVG emits the document. Letters are optional since the PNG path
// cannot rasterise text and draws them itself.
func writeSVG(w io.Writer, b *board.Board, opts Options, letters bool) {
	size := opts.size()
	m := marks(b, opts)

	canvas := svg.New(w)
	canvas.Startview(size, size, 0, 0, 8*unit, 8*unit)
	canvas.Title(b.FEN())

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			sq := cell(col, row, opts.Flip)
			x, y := col*unit, row*unit
			canvas.Rect(x, y, unit, unit, attr("fill", hex(squareColor(sq, m[sq]))))

			p := b.PieceAt(sq)
			if p == board.NoPiece {
				continue
			}
			disc, letter := pieceColors(p)
			canvas.Circle(x+unit/2, y+unit/2, unit*2/5,
				attr("fill", hex(disc)), attr("stroke", hex(blackPiece)), attr("stroke-width", "2"))
			if letters {
				canvas.Text(x+unit/2, y+unit/2+unit/7, letterOf(p),
					attr("fill", hex(letter)), attr("font-size", fmt.Sprint(unit*2/5)),
					attr("font-family", "sans-serif"), attr("font-weight", "bold"), attr("text-anchor", "middle"))
			}
		}
	}

	canvas.End()
}

// attr formats an attribute; svgo copies strings containing '=' verbatim.
func attr(name, value string) string {
	return fmt.Sprintf("%s=%q", name, value)
}
