package command

import "errors"

var (
	ErrParse             = errors.New("unrecognized command")
	ErrAmbiguousCommand  = errors.New("ambiguous descriptive move")
	ErrUnresolvedCommand = errors.New("unresolved descriptive move")
	ErrNoPieceAtSource   = errors.New("no piece at source square")
	ErrWrongTurn         = errors.New("piece does not belong to the side on turn")
	ErrNotAITurn         = errors.New("it is not the AI's turn")
)
