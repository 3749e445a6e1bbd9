// Package chessdto defines the wire shapes consumed by the chat/UI layer.
// Field names and types are part of the external contract; do not rename.
package chessdto

// MoveRecord is one executed half-move as exposed to consumers.
type MoveRecord struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Piece    string  `json:"piece"`
	Captured *string `json:"captured,omitempty"`
}

// State is the full game snapshot. Board maps square notation ("e2") to a
// two-character piece code ("wP"); only occupied squares appear. Winner is
// always null: the engine has no terminal-state detection.
type State struct {
	Board         map[string]string `json:"board"`
	Turn          string            `json:"turn"`
	Mode          string            `json:"mode"`
	HumanSide     string            `json:"human_side"`
	Status        string            `json:"status"`
	Winner        *string           `json:"winner"`
	MoveHistory   []MoveRecord      `json:"move_history"`
	LastMove      *MoveRecord       `json:"last_move"`
	CapturedWhite []string          `json:"captured_white"`
	CapturedBlack []string          `json:"captured_black"`
}

// CommandResult is the response envelope of the command endpoint.
type CommandResult struct {
	OK     bool        `json:"ok"`
	Reply  string      `json:"reply,omitempty"`
	Error  string      `json:"error,omitempty"`
	Code   string      `json:"code,omitempty"`
	Move   *MoveRecord `json:"move,omitempty"`
	AIMove *MoveRecord `json:"ai_move,omitempty"`
	State  *State      `json:"state,omitempty"`
}

// CommandRequest is the body of the command endpoint.
type CommandRequest struct {
	Text string `json:"text"`
}
