// Package command turns free-form text into structured chess commands and
// executes them against the game state store. The engine is the sole mutator
// of the store.
package command

import (
	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/store"
)

// Command is the closed set of parsed instructions. The engine dispatches
// over it exhaustively; an unhandled variant is an internal error, never a
// silent no-op.
type Command interface {
	command()
}

// NewGame resets the store unconditionally.
type NewGame struct {
	Mode      store.Mode
	HumanSide board.Color
}

// MakeMove applies one move for the side on turn.
type MakeMove struct {
	From board.Square
	To   board.Square
}

// RequestAIMove asks the selector to play the machine-controlled side.
type RequestAIMove struct{}

// QueryKind selects what a read-only query returns.
type QueryKind string

const (
	QueryBoard QueryKind = "board_state"
	QueryTurn  QueryKind = "turn"
)

// QueryState reads state without mutating anything.
type QueryState struct {
	Kind QueryKind
}

func (NewGame) command()       {}
func (MakeMove) command()      {}
func (RequestAIMove) command() {}
func (QueryState) command()    {}
