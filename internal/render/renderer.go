// Package render draws the current position as a PNG for UI consumers. It is
// presentation only; nothing here reads or writes game state.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/park285/talk-chess-core/internal/board"
)

const (
	squareSize = 64
	margin     = 20
	boardSpan  = squareSize * 8
)

var (
	lightSquare   = color.RGBA{R: 0xf0, G: 0xd9, B: 0xb5, A: 0xff}
	darkSquare    = color.RGBA{R: 0xb5, G: 0x88, B: 0x63, A: 0xff}
	background    = color.RGBA{R: 0x2e, G: 0x2a, B: 0x24, A: 0xff}
	highlightTint = color.RGBA{R: 0xff, G: 0xe6, B: 0x4d, A: 0x6e}
	labelColor    = color.RGBA{R: 0xd8, G: 0xd0, B: 0xc0, A: 0xff}
)

// Options adjusts a single render call.
type Options struct {
	// Highlight marks squares (typically the last move's from/to) with a
	// translucent overlay.
	Highlight []board.Square
}

// RenderPNG draws b from white's point of view and returns encoded PNG bytes.
func RenderPNG(b board.Board, opts Options) ([]byte, error) {
	total := boardSpan + margin*2
	img := image.NewRGBA(image.Rect(0, 0, total, total))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	for file := 0; file < 8; file++ {
		for rank := 0; rank < 8; rank++ {
			fill := lightSquare
			if (file+rank)%2 == 0 {
				fill = darkSquare
			}
			draw.Draw(img, squareRect(file, rank), image.NewUniform(fill), image.Point{}, draw.Src)
		}
	}

	for _, sq := range opts.Highlight {
		draw.Draw(img, squareRect(sq.File, sq.Rank), image.NewUniform(highlightTint), image.Point{}, draw.Over)
	}

	for _, sq := range b.Squares() {
		glyph, err := pieceGlyph(b[sq], squareSize)
		if err != nil {
			return nil, err
		}
		draw.Draw(img, squareRect(sq.File, sq.Rank), glyph, image.Point{}, draw.Over)
	}

	drawCoordinates(img, total)

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode board png: %w", err)
	}
	return buf.Bytes(), nil
}

// squareRect maps board coordinates to pixels; rank 8 sits at the top.
func squareRect(file, rank int) image.Rectangle {
	x := margin + file*squareSize
	y := margin + (7-rank)*squareSize
	return image.Rect(x, y, x+squareSize, y+squareSize)
}

func drawCoordinates(img *image.RGBA, total int) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: face,
	}

	for file := 0; file < 8; file++ {
		label := string(rune('a' + file))
		x := margin + file*squareSize + squareSize/2 - face.Advance/2
		d.Dot = fixed.P(x, total-margin/2+face.Height/2-2)
		d.DrawString(label)
	}
	for rank := 0; rank < 8; rank++ {
		label := string(rune('1' + rank))
		y := margin + (7-rank)*squareSize + squareSize/2 + face.Height/2 - 2
		d.Dot = fixed.P(margin/2-face.Advance/2, y)
		d.DrawString(label)
	}
}
