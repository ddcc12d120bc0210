package render

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/hailam/chesscore/internal/board"
)

// renderScale is the supersampling factor; the board is rasterised at this
// multiple of the target size and filtered down.
const renderScale = 2

// PNG writes b as a PNG image of Options.Size pixels square.
func PNG(w io.Writer, b *board.Board, opts Options) error {
	img, err := Image(b, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Image rasterises the SVG diagram and letters the pieces.
func Image(b *board.Board, opts Options) (*image.RGBA, error) {
	size := opts.size()
	renderSize := size * renderScale

	var doc bytes.Buffer
	writeSVG(&doc, b, opts, false)

	icon, err := oksvg.ReadIconStream(&doc, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse board svg: %w", err)
	}
	icon.SetTarget(0, 0, float64(renderSize), float64(renderSize))

	// Render at higher resolution for better quality when scaled
	hi := image.NewRGBA(image.Rect(0, 0, renderSize, renderSize))
	scanner := rasterx.NewScannerGV(renderSize, renderSize, hi, hi.Bounds())
	raster := rasterx.NewDasher(renderSize, renderSize, scanner)
	icon.Draw(raster, 1.0)

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.BiLinear.Scale(img, img.Bounds(), hi, hi.Bounds(), draw.Src, nil)

	drawLetters(img, b, opts)
	return img, nil
}

// drawLetters writes each piece's letter at the centre of its disc.
func drawLetters(img *image.RGBA, b *board.Board, opts Options) {
	face := basicfont.Face7x13
	square := float64(img.Bounds().Dx()) / 8

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			p := b.PieceAt(cell(col, row, opts.Flip))
			if p == board.NoPiece {
				continue
			}

			_, letter := pieceColors(p)
			s := letterOf(p)
			cx := int(square*float64(col) + square/2)
			cy := int(square*float64(row) + square/2)
			width := font.MeasureString(face, s).Round()

			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(letter),
				Face: face,
				Dot:  fixed.P(cx-width/2, cy+face.Ascent/2-1),
			}
			d.DrawString(s)
		}
	}
}
