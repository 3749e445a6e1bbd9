// Package ai picks moves for the machine-controlled side. The policy is
// intentionally shallow: prefer any capturing move, otherwise take the first
// legal move, both in enumeration order. No lookahead, no evaluation.
package ai

import (
	"errors"
	"fmt"

	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/rules"
)

var ErrNoLegalMoves = errors.New("no legal moves")

// Selector chooses one legal move for a side. It is stateless and safe for
// concurrent use.
type Selector struct{}

func NewSelector() Selector { return Selector{} }

// SelectMove returns the first capturing move in enumeration order, falling
// back to the first legal move. It fails with ErrNoLegalMoves when the side
// cannot move at all.
func (Selector) SelectMove(b board.Board, side board.Color) (rules.CandidateMove, error) {
	moves := rules.LegalMoves(b, side)
	if len(moves) == 0 {
		return rules.CandidateMove{}, fmt.Errorf("%w for %s", ErrNoLegalMoves, side)
	}
	for _, mv := range moves {
		if mv.Captures != nil {
			return mv, nil
		}
	}
	return moves[0], nil
}
