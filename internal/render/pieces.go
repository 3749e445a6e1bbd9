package render

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"sync"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/park285/talk-chess-core/internal/board"
)

//go:embed assets/pieces/*.svg
var pieceFiles embed.FS

type glyphKey struct {
	code string
	size int
}

var (
	glyphCache   = map[glyphKey]image.Image{}
	glyphCacheMu sync.RWMutex
)

// pieceGlyph rasterizes the embedded SVG for a piece at the given square
// size, caching the result per (piece, size).
func pieceGlyph(p board.Piece, size int) (image.Image, error) {
	key := glyphKey{code: p.Code(), size: size}

	glyphCacheMu.RLock()
	if img, ok := glyphCache[key]; ok {
		glyphCacheMu.RUnlock()
		return img, nil
	}
	glyphCacheMu.RUnlock()

	data, err := pieceFiles.ReadFile(fmt.Sprintf("assets/pieces/%s.svg", p.Code()))
	if err != nil {
		return nil, fmt.Errorf("read piece asset %s: %w", p.Code(), err)
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse piece svg %s: %w", p.Code(), err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, img, img.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)

	glyphCacheMu.Lock()
	glyphCache[key] = img
	glyphCacheMu.Unlock()

	return img, nil
}
