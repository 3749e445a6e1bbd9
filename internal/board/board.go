// Package board holds the pure data model for squares, pieces, and the 8x8
// position mapping. It carries no game rules and no mutable game state.
package board

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var ErrInvalidSquare = errors.New("invalid square notation")

// Color identifies a chess side.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Opponent returns the other side.
func (c Color) Opponent() Color {
	if c == White {
		return Black
	}
	return White
}

// Valid reports whether c is one of the two known sides.
func (c Color) Valid() bool { return c == White || c == Black }

// Kind is a piece type, stored as its canonical code letter.
type Kind byte

const (
	Pawn   Kind = 'P'
	Knight Kind = 'N'
	Bishop Kind = 'B'
	Rook   Kind = 'R'
	Queen  Kind = 'Q'
	King   Kind = 'K'
)

func (k Kind) String() string { return string(rune(k)) }

// KindFromName maps a lowercase piece name ("pawn", "knight", ...) to its Kind.
func KindFromName(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "pawn":
		return Pawn, true
	case "knight":
		return Knight, true
	case "bishop":
		return Bishop, true
	case "rook":
		return Rook, true
	case "queen":
		return Queen, true
	case "king":
		return King, true
	}
	return 0, false
}

// Piece is an immutable (color, kind) pair.
type Piece struct {
	Color Color
	Kind  Kind
}

// Code renders the two-character wire code, e.g. "wP" or "bK".
func (p Piece) Code() string {
	prefix := "w"
	if p.Color == Black {
		prefix = "b"
	}
	return prefix + p.Kind.String()
}

func (p Piece) String() string { return p.Code() }

// ParsePiece decodes a two-character piece code such as "wP".
func ParsePiece(code string) (Piece, error) {
	if len(code) != 2 {
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
	var c Color
	switch code[0] {
	case 'w':
		c = White
	case 'b':
		c = Black
	default:
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
	switch k := Kind(code[1]); k {
	case Pawn, Knight, Bishop, Rook, Queen, King:
		return Piece{Color: c, Kind: k}, nil
	default:
		return Piece{}, fmt.Errorf("invalid piece code %q", code)
	}
}

// Square is a board coordinate. File and Rank are zero-based: File 0 is the
// a-file, Rank 0 is rank 1. Equality and ordering are by (File, Rank).
type Square struct {
	File int
	Rank int
}

// NewSquare builds a square from zero-based coordinates. The second return is
// false when the coordinates fall outside the board.
func NewSquare(file, rank int) (Square, bool) {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return Square{}, false
	}
	return Square{File: file, Rank: rank}, true
}

// ParseSquare decodes two-character algebraic notation like "e2".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	file := int(s[0] - 'a')
	rank := int(s[1] - '1')
	sq, ok := NewSquare(file, rank)
	if !ok {
		return Square{}, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return sq, nil
}

func (s Square) String() string {
	return string(rune('a'+s.File)) + string(rune('1'+s.Rank))
}

// Less orders squares by (file, rank).
func (s Square) Less(o Square) bool {
	if s.File != o.File {
		return s.File < o.File
	}
	return s.Rank < o.Rank
}

// Offset returns the square displaced by (df, dr); ok is false off-board.
func (s Square) Offset(df, dr int) (Square, bool) {
	return NewSquare(s.File+df, s.Rank+dr)
}

// Board maps occupied squares to pieces. Absent keys are empty squares.
type Board map[Square]Piece

// PieceAt returns the piece on sq, if any.
func (b Board) PieceAt(sq Square) (Piece, bool) {
	p, ok := b[sq]
	return p, ok
}

// Clone returns an independent copy of the position.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for sq, p := range b {
		out[sq] = p
	}
	return out
}

// Squares returns the occupied squares in (file, rank) order. Map iteration is
// randomized, so every consumer that needs a stable order goes through this.
func (b Board) Squares() []Square {
	out := make([]Square, 0, len(b))
	for sq := range b {
		out = append(out, sq)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })
	return out
}

// backRank is the major-piece arrangement shared by both sides, a-file first.
var backRank = [8]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingPosition builds the standard 32-piece opening arrangement.
func StartingPosition() Board {
	b := make(Board, 32)
	for file := 0; file < 8; file++ {
		b[Square{File: file, Rank: 0}] = Piece{Color: White, Kind: backRank[file]}
		b[Square{File: file, Rank: 1}] = Piece{Color: White, Kind: Pawn}
		b[Square{File: file, Rank: 6}] = Piece{Color: Black, Kind: Pawn}
		b[Square{File: file, Rank: 7}] = Piece{Color: Black, Kind: backRank[file]}
	}
	return b
}
