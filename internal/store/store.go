// Package store owns the single mutable game state: board, side to move,
// mode, history, and captures. All mutation flows through the command engine;
// readers get deep-copied snapshots.
package store

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/park285/talk-chess-core/internal/board"
)

// Mode selects who controls the black and white sides.
type Mode string

const (
	ModeHumanVsAI    Mode = "human_vs_ai"
	ModeHumanVsHuman Mode = "human_vs_human"
)

// Status is the game lifecycle state. Terminal states are not modeled; the
// engine has no checkmate or stalemate detection.
type Status string

const StatusInProgress Status = "in_progress"

// Move is one executed half-move, recorded in execution order and never
// mutated afterwards.
type Move struct {
	From     board.Square
	To       board.Square
	Piece    board.Piece
	Captured *board.Piece
}

// Snapshot is a deep, read-only copy of the game state. Mutating it never
// affects the store.
type Snapshot struct {
	GameID          uuid.UUID
	Board           board.Board
	Turn            board.Color
	Mode            Mode
	HumanSide       board.Color
	Status          Status
	History         []Move
	LastMove        *Move
	CapturedByWhite []board.Piece
	CapturedByBlack []board.Piece
}

// AISide returns the color the machine controls, and false in
// human-vs-human mode.
func (s Snapshot) AISide() (board.Color, bool) {
	if s.Mode != ModeHumanVsAI {
		return "", false
	}
	return s.HumanSide.Opponent(), true
}

// Store is the process-wide single instance of game state. It is explicitly
// owned and passed by reference rather than living in package globals, so the
// single-writer invariant is enforceable and testable.
type Store struct {
	mu sync.RWMutex

	gameID          uuid.UUID
	board           board.Board
	turn            board.Color
	mode            Mode
	humanSide       board.Color
	history         []Move
	capturedByWhite []board.Piece
	capturedByBlack []board.Piece
}

// New creates a store holding a fresh default game: human vs AI with the
// human playing white.
func New() *Store {
	s := &Store{}
	s.Reset(ModeHumanVsAI, board.White)
	return s
}

// Reset replaces the game wholesale: standard starting position, white to
// move, empty history and capture lists.
func (s *Store) Reset(mode Mode, humanSide board.Color) Snapshot {
	if mode != ModeHumanVsHuman {
		mode = ModeHumanVsAI
	}
	if !humanSide.Valid() {
		humanSide = board.White
	}

	s.mu.Lock()
	s.gameID = uuid.New()
	s.board = board.StartingPosition()
	s.turn = board.White
	s.mode = mode
	s.humanSide = humanSide
	s.history = nil
	s.capturedByWhite = nil
	s.capturedByBlack = nil
	s.mu.Unlock()

	return s.Snapshot()
}

// Snapshot returns a consistent deep copy of the current state. It is taken
// under the same lock that guards mutation, so no partial move is ever
// visible.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		GameID:          s.gameID,
		Board:           s.board.Clone(),
		Turn:            s.turn,
		Mode:            s.mode,
		HumanSide:       s.humanSide,
		Status:          StatusInProgress,
		History:         append([]Move(nil), s.history...),
		CapturedByWhite: append([]board.Piece(nil), s.capturedByWhite...),
		CapturedByBlack: append([]board.Piece(nil), s.capturedByBlack...),
	}
	if n := len(snap.History); n > 0 {
		last := snap.History[n-1]
		snap.LastMove = &last
	}
	return snap
}

// ApplyMove commits a move whose legality the caller has already confirmed:
// it removes any piece on the destination onto the capturing side's list,
// relocates the moving piece, appends the move record, and flips the turn.
func (s *Store) ApplyMove(from, to board.Square) (Move, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	piece, ok := s.board.PieceAt(from)
	if !ok {
		return Move{}, fmt.Errorf("apply move: no piece at %s", from)
	}

	mv := Move{From: from, To: to, Piece: piece}
	if target, occupied := s.board.PieceAt(to); occupied {
		captured := target
		mv.Captured = &captured
		if piece.Color == board.White {
			s.capturedByWhite = append(s.capturedByWhite, captured)
		} else {
			s.capturedByBlack = append(s.capturedByBlack, captured)
		}
	}

	delete(s.board, from)
	s.board[to] = piece
	s.history = append(s.history, mv)
	s.turn = s.turn.Opponent()

	return mv, nil
}

// Turn returns the side to move.
func (s *Store) Turn() board.Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.turn
}

// GameID identifies the current game for log correlation; it changes on
// every reset.
func (s *Store) GameID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.gameID
}
