package command

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/obslog"
	"github.com/park285/talk-chess-core/internal/rules"
	"github.com/park285/talk-chess-core/internal/store"
)

// MoveSelector chooses a move for the machine-controlled side.
type MoveSelector interface {
	SelectMove(b board.Board, side board.Color) (rules.CandidateMove, error)
}

// Result is the outcome of one successfully executed command. Move and
// AIMove are set for move-producing commands; the snapshot always reflects
// the state after everything the command applied.
type Result struct {
	Command  Command
	Snapshot store.Snapshot
	Move     *store.Move
	AIMove   *store.Move
}

// Engine parses, validates, and applies commands against the store. It holds
// no game state of its own; the store does. A single mutex
// serializes command execution so that turn alternation and history remain a
// single linear sequence even under concurrent submissions.
type Engine struct {
	mu       sync.Mutex
	store    *store.Store
	selector MoveSelector
}

func NewEngine(st *store.Store, selector MoveSelector) *Engine {
	return &Engine{store: st, selector: selector}
}

// State returns the current snapshot without executing anything.
func (e *Engine) State() store.Snapshot {
	return e.store.Snapshot()
}

// Execute parses and runs one raw command. Errors are returned typed and
// never leave partial state behind: a move mutates the store only after full
// validation.
func (e *Engine) Execute(raw string) (*Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := e.store.Snapshot()
	cmd, err := Parse(raw, snap)
	if err != nil {
		obslog.L().Debug("chess_command_rejected",
			zap.String("game_id", snap.GameID.String()),
			zap.String("raw", raw),
			zap.Error(err))
		return nil, err
	}

	res, err := e.dispatch(cmd, snap)
	if err != nil {
		obslog.L().Debug("chess_command_failed",
			zap.String("game_id", snap.GameID.String()),
			zap.String("command", fmt.Sprintf("%T", cmd)),
			zap.Error(err))
		return nil, err
	}
	return res, nil
}

func (e *Engine) dispatch(cmd Command, snap store.Snapshot) (*Result, error) {
	switch c := cmd.(type) {
	case NewGame:
		return e.runNewGame(c)
	case MakeMove:
		return e.runMakeMove(c, snap)
	case RequestAIMove:
		return e.runAIMove(c, snap)
	case QueryState:
		return &Result{Command: c, Snapshot: snap}, nil
	}
	// The variant set is closed; reaching this is a programming error.
	return nil, fmt.Errorf("unhandled command variant %T", cmd)
}

func (e *Engine) runNewGame(c NewGame) (*Result, error) {
	snap := e.store.Reset(c.Mode, c.HumanSide)
	if err := verifyReset(snap); err != nil {
		return nil, err
	}
	obslog.L().Info("chess_new_game",
		zap.String("game_id", snap.GameID.String()),
		zap.String("mode", string(snap.Mode)),
		zap.String("human_side", string(snap.HumanSide)))
	return &Result{Command: c, Snapshot: snap}, nil
}

func (e *Engine) runMakeMove(c MakeMove, snap store.Snapshot) (*Result, error) {
	mv, err := e.applyValidated(snap, c.From, c.To)
	if err != nil {
		return nil, err
	}

	res := &Result{Command: c, Move: &mv}

	// In human-vs-AI mode the machine answers inline, so the caller always
	// gets the board back on the human's turn.
	after := e.store.Snapshot()
	if aiSide, ok := after.AISide(); ok && after.Turn == aiSide {
		aiMove, err := e.playAIMove(after, aiSide)
		if err != nil {
			return nil, err
		}
		res.AIMove = &aiMove
	}

	res.Snapshot = e.store.Snapshot()
	return res, nil
}

func (e *Engine) runAIMove(c RequestAIMove, snap store.Snapshot) (*Result, error) {
	aiSide, ok := snap.AISide()
	if !ok || snap.Turn != aiSide {
		return nil, fmt.Errorf("%w: %s to move", ErrNotAITurn, snap.Turn)
	}
	mv, err := e.playAIMove(snap, aiSide)
	if err != nil {
		return nil, err
	}
	return &Result{Command: c, Snapshot: e.store.Snapshot(), Move: &mv}, nil
}

// applyValidated runs the pre-checks and the legality evaluator, then
// commits the move and verifies the post-state.
func (e *Engine) applyValidated(snap store.Snapshot, from, to board.Square) (store.Move, error) {
	piece, ok := snap.Board.PieceAt(from)
	if !ok {
		return store.Move{}, fmt.Errorf("%w: %s is empty", ErrNoPieceAtSource, from)
	}
	if piece.Color != snap.Turn {
		return store.Move{}, fmt.Errorf("%w: piece at %s belongs to %s, %s to move",
			ErrWrongTurn, from, piece.Color, snap.Turn)
	}
	if _, err := rules.EvaluateMove(snap.Board, piece, from, to); err != nil {
		return store.Move{}, err
	}

	mv, err := e.store.ApplyMove(from, to)
	if err != nil {
		return store.Move{}, err
	}

	after := e.store.Snapshot()
	if err := verifyMove(snap, after, mv); err != nil {
		return store.Move{}, err
	}

	obslog.L().Info("chess_move_applied",
		zap.String("game_id", after.GameID.String()),
		zap.String("piece", mv.Piece.Code()),
		zap.String("from", mv.From.String()),
		zap.String("to", mv.To.String()),
		zap.Bool("capture", mv.Captured != nil),
		zap.String("next_turn", string(after.Turn)))
	return mv, nil
}

func (e *Engine) playAIMove(snap store.Snapshot, side board.Color) (store.Move, error) {
	choice, err := e.selector.SelectMove(snap.Board, side)
	if err != nil {
		return store.Move{}, err
	}
	return e.applyValidated(snap, choice.From, choice.To)
}

// verifyReset asserts the invariants of a fresh game before anything else
// observes it.
func verifyReset(snap store.Snapshot) error {
	if snap.Turn != board.White {
		return fmt.Errorf("state verification failed: new game should start with white to move, got %s", snap.Turn)
	}
	if len(snap.Board) != 32 {
		return fmt.Errorf("state verification failed: new game board has %d pieces, want 32", len(snap.Board))
	}
	return nil
}

// verifyMove cross-checks the store after a commit: the source square must be
// empty, the destination occupied, and the turn flipped. A failure here means
// the store and the evaluator disagree.
func verifyMove(prev, next store.Snapshot, mv store.Move) error {
	if _, occupied := next.Board.PieceAt(mv.From); occupied {
		return fmt.Errorf("state verification failed: piece still at %s after move", mv.From)
	}
	if _, occupied := next.Board.PieceAt(mv.To); !occupied {
		return fmt.Errorf("state verification failed: no piece at %s after move", mv.To)
	}
	if next.Turn != prev.Turn.Opponent() {
		return fmt.Errorf("state verification failed: turn did not flip after move")
	}
	return nil
}
