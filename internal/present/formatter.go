// Package present renders engine results into chat-friendly text and the
// wire DTOs consumed by the UI layer. The core engine stays free of natural
// language; every human-visible string comes from here.
package present

import (
	"errors"
	"strings"

	"github.com/park285/talk-chess-core/internal/ai"
	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/command"
	"github.com/park285/talk-chess-core/internal/msgcat"
	"github.com/park285/talk-chess-core/internal/rules"
	"github.com/park285/talk-chess-core/internal/store"
	"github.com/park285/talk-chess-core/pkg/chessdto"
)

// Formatter renders replies through the message catalog.
type Formatter struct {
	cat *msgcat.Catalog
}

func NewFormatter(cat *msgcat.Catalog) *Formatter {
	return &Formatter{cat: cat}
}

// Reply builds the one-line summary for a successful command result.
func (f *Formatter) Reply(res *command.Result) string {
	switch res.Command.(type) {
	case command.NewGame:
		line, err := f.cat.Render("game.started", map[string]string{
			"Mode": string(res.Snapshot.Mode),
		})
		if err != nil {
			return ""
		}
		return line
	case command.QueryState:
		line, err := f.cat.Render("game.turn", map[string]string{
			"Turn": string(res.Snapshot.Turn),
		})
		if err != nil {
			return ""
		}
		return line
	}

	var parts []string
	if res.Move != nil {
		parts = append(parts, f.moveLine(*res.Move, turnAfter(res, res.Move)))
	}
	if res.AIMove != nil {
		line, err := f.cat.Render("move.ai_followup", map[string]string{
			"Line": f.moveLine(*res.AIMove, res.Snapshot.Turn),
		})
		if err == nil {
			parts = append(parts, line)
		}
	}
	return strings.Join(parts, " ")
}

func (f *Formatter) moveLine(mv store.Move, next board.Color) string {
	data := map[string]string{
		"Piece": mv.Piece.Code(),
		"From":  mv.From.String(),
		"To":    mv.To.String(),
		"Next":  string(next),
	}
	key := "move.applied"
	if mv.Captured != nil {
		key = "move.applied_capture"
		data["Captured"] = mv.Captured.Code()
	}
	line, err := f.cat.Render(key, data)
	if err != nil {
		return mv.Piece.Code() + " " + mv.From.String() + "->" + mv.To.String()
	}
	return line
}

// turnAfter reconstructs whose move it was right after mv, which matters when
// an AI follow-up has already flipped the snapshot's turn again.
func turnAfter(res *command.Result, mv *store.Move) board.Color {
	if res.AIMove != nil && mv == res.Move {
		return res.AIMove.Piece.Color
	}
	return res.Snapshot.Turn
}

// ErrorInfo maps an engine error onto its stable code and a human-readable
// message from the catalog.
func (f *Formatter) ErrorInfo(err error) chessdto.DomainError {
	code := errorCode(err)
	msg := err.Error()
	if line, rerr := f.cat.Render("errors."+code, nil); rerr == nil {
		msg = line
	}
	return chessdto.DomainError{Code: code, Message: msg}
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, command.ErrAmbiguousCommand):
		return chessdto.CodeAmbiguousCommand
	case errors.Is(err, command.ErrUnresolvedCommand):
		return chessdto.CodeUnresolvedCommand
	case errors.Is(err, board.ErrInvalidSquare):
		return chessdto.CodeInvalidSquare
	case errors.Is(err, command.ErrParse):
		return chessdto.CodeParseError
	case errors.Is(err, command.ErrNoPieceAtSource):
		return chessdto.CodeNoPieceAtSource
	case errors.Is(err, command.ErrWrongTurn):
		return chessdto.CodeWrongTurn
	case errors.Is(err, rules.ErrIllegalMove):
		return chessdto.CodeIllegalMove
	case errors.Is(err, command.ErrNotAITurn):
		return chessdto.CodeNotAITurn
	case errors.Is(err, ai.ErrNoLegalMoves):
		return chessdto.CodeNoLegalMoves
	}
	return chessdto.CodeInternal
}

// BoardText renders a fixed-width board diagram, rank 8 at the top, for
// text-only consumers.
func BoardText(b board.Board) string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		sb.WriteString(string(rune('1' + rank)))
		sb.WriteString(" ")
		for file := 0; file < 8; file++ {
			if p, ok := b.PieceAt(board.Square{File: file, Rank: rank}); ok {
				sb.WriteString(p.Code())
			} else {
				sb.WriteString("..")
			}
			if file < 7 {
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}
	sb.WriteString("  a  b  c  d  e  f  g  h")
	return sb.String()
}

// StateDTO converts a snapshot into the external wire shape. Captured lists
// are keyed by the side that lost the piece, matching the UI contract.
func StateDTO(snap store.Snapshot) *chessdto.State {
	out := &chessdto.State{
		Board:         make(map[string]string, len(snap.Board)),
		Turn:          string(snap.Turn),
		Mode:          string(snap.Mode),
		HumanSide:     string(snap.HumanSide),
		Status:        string(snap.Status),
		Winner:        nil,
		MoveHistory:   make([]chessdto.MoveRecord, 0, len(snap.History)),
		CapturedWhite: pieceCodes(snap.CapturedByBlack),
		CapturedBlack: pieceCodes(snap.CapturedByWhite),
	}
	for sq, p := range snap.Board {
		out.Board[sq.String()] = p.Code()
	}
	for _, mv := range snap.History {
		out.MoveHistory = append(out.MoveHistory, MoveDTO(mv))
	}
	if snap.LastMove != nil {
		last := MoveDTO(*snap.LastMove)
		out.LastMove = &last
	}
	return out
}

// MoveDTO converts one move record.
func MoveDTO(mv store.Move) chessdto.MoveRecord {
	rec := chessdto.MoveRecord{
		From:  mv.From.String(),
		To:    mv.To.String(),
		Piece: mv.Piece.Code(),
	}
	if mv.Captured != nil {
		code := mv.Captured.Code()
		rec.Captured = &code
	}
	return rec
}

func pieceCodes(pieces []board.Piece) []string {
	out := make([]string, 0, len(pieces))
	for _, p := range pieces {
		out = append(out, p.Code())
	}
	return out
}
