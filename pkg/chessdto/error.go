package chessdto

// Error codes surfaced in CommandResult.Code. Stable machine identifiers;
// the chat layer maps them to human wording.
const (
	CodeParseError        = "parse_error"
	CodeAmbiguousCommand  = "ambiguous_command"
	CodeUnresolvedCommand = "unresolved_command"
	CodeInvalidSquare     = "invalid_square"
	CodeNoPieceAtSource   = "no_piece_at_source"
	CodeWrongTurn         = "wrong_turn"
	CodeIllegalMove       = "illegal_move"
	CodeNotAITurn         = "not_ai_turn"
	CodeNoLegalMoves      = "no_legal_moves"
	CodeInternal          = "internal_error"
)

type DomainError struct {
	Code      string
	Message   string
	Retryable bool
}

func (e DomainError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Code != "" {
		return e.Code
	}
	return "chess service error"
}
