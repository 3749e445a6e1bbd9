// Package rules implements the simplified move-legality evaluator: per-piece
// movement geometry, path blocking, and enemy-only capture. Check detection,
// castling, en passant, and promotion are deliberately absent; a pawn reaching
// the last rank stays a pawn.
package rules

import (
	"errors"
	"fmt"

	"github.com/park285/talk-chess-core/internal/board"
)

var ErrIllegalMove = errors.New("illegal move")

// Evaluation describes an accepted move: the intervening squares that were
// checked for blockers and the enemy piece on the destination, if any.
type Evaluation struct {
	Path     []board.Square
	Captured *board.Piece
}

// IsLegalMove reports whether piece p may travel from→to on b.
func IsLegalMove(b board.Board, p board.Piece, from, to board.Square) bool {
	_, err := EvaluateMove(b, p, from, to)
	return err == nil
}

// EvaluateMove validates piece geometry, path blocking, and the destination
// rule for a candidate move, independent of whose turn it is. The returned
// error wraps ErrIllegalMove with a piece-specific reason.
func EvaluateMove(b board.Board, p board.Piece, from, to board.Square) (Evaluation, error) {
	if from == to {
		return Evaluation{}, fmt.Errorf("%w: from and to squares must differ", ErrIllegalMove)
	}

	var captured *board.Piece
	if target, ok := b.PieceAt(to); ok {
		if target.Color == p.Color {
			return Evaluation{}, fmt.Errorf("%w: destination %s occupied by own piece", ErrIllegalMove, to)
		}
		t := target
		captured = &t
	}

	df := to.File - from.File
	dr := to.Rank - from.Rank
	adf, adr := abs(df), abs(dr)

	switch p.Kind {
	case board.Pawn:
		return evaluatePawn(b, p, from, to, df, dr, captured)

	case board.Knight:
		if (adf == 1 && adr == 2) || (adf == 2 && adr == 1) {
			return Evaluation{Captured: captured}, nil
		}
		return Evaluation{}, fmt.Errorf("%w: illegal knight move", ErrIllegalMove)

	case board.Bishop:
		if adf != adr {
			return Evaluation{}, fmt.Errorf("%w: illegal bishop move", ErrIllegalMove)
		}
		path, clear := clearPath(b, from, to)
		if !clear {
			return Evaluation{}, fmt.Errorf("%w: bishop path blocked", ErrIllegalMove)
		}
		return Evaluation{Path: path, Captured: captured}, nil

	case board.Rook:
		if df != 0 && dr != 0 {
			return Evaluation{}, fmt.Errorf("%w: illegal rook move", ErrIllegalMove)
		}
		path, clear := clearPath(b, from, to)
		if !clear {
			return Evaluation{}, fmt.Errorf("%w: rook path blocked", ErrIllegalMove)
		}
		return Evaluation{Path: path, Captured: captured}, nil

	case board.Queen:
		if adf != adr && df != 0 && dr != 0 {
			return Evaluation{}, fmt.Errorf("%w: illegal queen move", ErrIllegalMove)
		}
		path, clear := clearPath(b, from, to)
		if !clear {
			return Evaluation{}, fmt.Errorf("%w: queen path blocked", ErrIllegalMove)
		}
		return Evaluation{Path: path, Captured: captured}, nil

	case board.King:
		if adf <= 1 && adr <= 1 {
			return Evaluation{Captured: captured}, nil
		}
		return Evaluation{}, fmt.Errorf("%w: illegal king move", ErrIllegalMove)
	}

	return Evaluation{}, fmt.Errorf("%w: unsupported piece kind %q", ErrIllegalMove, p.Kind)
}

func evaluatePawn(b board.Board, p board.Piece, from, to board.Square, df, dr int, captured *board.Piece) (Evaluation, error) {
	dir := 1
	homeRank := 1
	if p.Color == board.Black {
		dir = -1
		homeRank = 6
	}

	// Single push onto an empty square.
	if df == 0 && dr == dir && captured == nil {
		if _, occupied := b.PieceAt(to); !occupied {
			return Evaluation{}, nil
		}
	}

	// Double push from the home rank; both squares must be empty.
	if df == 0 && dr == 2*dir && from.Rank == homeRank {
		between, _ := from.Offset(0, dir)
		_, blocked := b.PieceAt(between)
		_, destOccupied := b.PieceAt(to)
		if !blocked && !destOccupied {
			return Evaluation{Path: []board.Square{between}}, nil
		}
	}

	// Diagonal capture onto an enemy piece only.
	if abs(df) == 1 && dr == dir && captured != nil {
		return Evaluation{Captured: captured}, nil
	}

	return Evaluation{}, fmt.Errorf("%w: illegal pawn move", ErrIllegalMove)
}

// clearPath walks the straight or diagonal line between from and to,
// exclusive of both endpoints, and reports whether every square is empty.
func clearPath(b board.Board, from, to board.Square) ([]board.Square, bool) {
	df := sign(to.File - from.File)
	dr := sign(to.Rank - from.Rank)

	var path []board.Square
	cur := board.Square{File: from.File + df, Rank: from.Rank + dr}
	for cur != to {
		if _, occupied := b.PieceAt(cur); occupied {
			return nil, false
		}
		path = append(path, cur)
		cur = board.Square{File: cur.File + df, Rank: cur.Rank + dr}
	}
	return path, true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}
