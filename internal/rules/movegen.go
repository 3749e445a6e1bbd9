package rules

import "github.com/park285/talk-chess-core/internal/board"

// CandidateMove is one legal move discovered by enumeration.
type CandidateMove struct {
	From     board.Square
	To       board.Square
	Piece    board.Piece
	Captures *board.Piece
}

// LegalMoves enumerates every legal move for side on b. The order is
// deterministic: source squares ascend by (file, rank), and for each source
// the destinations ascend the same way. Callers rely on this for stable
// tie-breaking.
func LegalMoves(b board.Board, side board.Color) []CandidateMove {
	var out []CandidateMove
	for _, from := range b.Squares() {
		piece := b[from]
		if piece.Color != side {
			continue
		}
		for file := 0; file < 8; file++ {
			for rank := 0; rank < 8; rank++ {
				to := board.Square{File: file, Rank: rank}
				eval, err := EvaluateMove(b, piece, from, to)
				if err != nil {
					continue
				}
				out = append(out, CandidateMove{
					From:     from,
					To:       to,
					Piece:    piece,
					Captures: eval.Captured,
				})
			}
		}
	}
	return out
}
