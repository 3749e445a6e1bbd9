package render

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/park285/talk-chess-core/internal/board"
)

func TestRenderPNGStartingPosition(t *testing.T) {
	data, err := RenderPNG(board.StartingPosition(), Options{})
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not valid PNG: %v", err)
	}
	want := squareSize*8 + margin*2
	if img.Bounds().Dx() != want || img.Bounds().Dy() != want {
		t.Fatalf("image bounds = %v, want %dx%d", img.Bounds(), want, want)
	}
}

func TestRenderPNGHighlightChangesOutput(t *testing.T) {
	b := board.StartingPosition()
	plain, err := RenderPNG(b, Options{})
	if err != nil {
		t.Fatal(err)
	}
	e2, _ := board.ParseSquare("e2")
	e4, _ := board.ParseSquare("e4")
	marked, err := RenderPNG(b, Options{Highlight: []board.Square{e2, e4}})
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(plain, marked) {
		t.Fatal("highlight produced identical image bytes")
	}
}

func TestPieceGlyphAllCodes(t *testing.T) {
	for _, c := range []board.Color{board.White, board.Black} {
		for _, k := range []board.Kind{board.Pawn, board.Knight, board.Bishop, board.Rook, board.Queen, board.King} {
			if _, err := pieceGlyph(board.Piece{Color: c, Kind: k}, squareSize); err != nil {
				t.Errorf("glyph %s%c: %v", c, k, err)
			}
		}
	}
}
