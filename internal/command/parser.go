package command

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/park285/talk-chess-core/internal/board"
	"github.com/park285/talk-chess-core/internal/store"
)

var (
	reCourtesy  = regexp.MustCompile(`^(?:please|kindly)\s+`)
	reTrailing  = regexp.MustCompile(`[.!?]+$`)
	reSpaces    = regexp.MustCompile(`\s+`)
	reTurnQuery = regexp.MustCompile(`\bturn\b`)

	reMoveVerbose   = regexp.MustCompile(`\bfrom\s+([a-h][1-8])\s+to\s+([a-h][1-8])\b`)
	reMoveSeparated = regexp.MustCompile(`\b([a-h][1-8])\s*(?:to|->|-)\s*([a-h][1-8])\b`)
	reMoveCompact   = regexp.MustCompile(`\b([a-h][1-8])([a-h][1-8])\b`)
	reMoveSpaced    = regexp.MustCompile(`^(?:move\s+)?([a-h][1-8])\s+([a-h][1-8])$`)
	// Loose variant used solely to distinguish a malformed coordinate
	// ("e9 to e4") from text that is not a move command at all.
	reMoveLoose = regexp.MustCompile(`^(?:move\s+)?(?:from\s+)?([a-z][0-9])\s*(?:to|->|-|\s)\s*([a-z][0-9])$`)

	reDescriptive = regexp.MustCompile(`\b(pawn|knight|bishop|rook|queen|king)\s+(?:in\s+front\s+of|before)\s+(?:the\s+)?(pawn|knight|bishop|rook|queen|king)\b`)
	reKingPawn    = regexp.MustCompile(`\bking\s+pawn\b`)
	reDistance    = regexp.MustCompile(`\b(one|two|1|2)\s+(?:place|square)s?\b`)
)

// Parse converts raw text into a structured command. Descriptive moves are
// resolved against the supplied snapshot's board and side to move; state is
// never mutated here.
func Parse(raw string, snap store.Snapshot) (Command, error) {
	text := normalize(raw)
	if text == "" {
		return nil, fmt.Errorf("%w: empty input", ErrParse)
	}

	if isNewGame(text) {
		return parseNewGame(text), nil
	}

	if reTurnQuery.MatchString(text) {
		return QueryState{Kind: QueryTurn}, nil
	}
	if strings.Contains(text, "state") || strings.Contains(text, "board") {
		return QueryState{Kind: QueryBoard}, nil
	}

	if strings.Contains(text, "ai move") ||
		strings.Contains(text, "computer move") ||
		strings.Contains(text, "bot move") {
		return RequestAIMove{}, nil
	}

	if cmd, handled, err := parseDescriptiveMove(text, snap); handled {
		return cmd, err
	}

	if cmd, handled, err := parseCoordinateMove(text); handled {
		return cmd, err
	}

	return nil, fmt.Errorf("%w: try 'new game', 'e2 to e4', 'ai move', or 'show board state'", ErrParse)
}

// normalize lowercases, collapses whitespace, and strips courtesy prefixes
// and trailing punctuation before matching.
func normalize(raw string) string {
	text := strings.ToLower(strings.TrimSpace(raw))
	text = reSpaces.ReplaceAllString(text, " ")
	text = reCourtesy.ReplaceAllString(text, "")
	text = reTrailing.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

func isNewGame(text string) bool {
	for _, k := range []string{"new game", "start game", "reset"} {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}

func parseNewGame(text string) NewGame {
	cmd := NewGame{Mode: store.ModeHumanVsAI, HumanSide: board.White}
	if strings.Contains(text, "human vs human") || strings.Contains(text, "hvh") {
		cmd.Mode = store.ModeHumanVsHuman
	}
	if strings.Contains(text, "as black") {
		cmd.HumanSide = board.Black
	}
	return cmd
}

func parseCoordinateMove(text string) (Command, bool, error) {
	for _, re := range []*regexp.Regexp{reMoveVerbose, reMoveSeparated, reMoveSpaced, reMoveCompact} {
		if m := re.FindStringSubmatch(text); m != nil {
			from, _ := board.ParseSquare(m[1])
			to, _ := board.ParseSquare(m[2])
			return MakeMove{From: from, To: to}, true, nil
		}
	}

	// Looks like a move command but with a malformed square token.
	if m := reMoveLoose.FindStringSubmatch(text); m != nil {
		for _, token := range m[1:] {
			if _, err := board.ParseSquare(token); err != nil {
				return nil, true, err
			}
		}
	}
	return nil, false, nil
}

// parseDescriptiveMove resolves phrases like "move pawn in front of king two
// places" against the current board. Resolution is best-effort with explicit
// failure modes; it never guesses between candidates or distances.
func parseDescriptiveMove(text string, snap store.Snapshot) (Command, bool, error) {
	var subjectKind, anchorKind board.Kind
	if m := reDescriptive.FindStringSubmatch(text); m != nil {
		subjectKind, _ = board.KindFromName(m[1])
		anchorKind, _ = board.KindFromName(m[2])
	} else if reKingPawn.MatchString(text) {
		subjectKind, anchorKind = board.Pawn, board.King
	} else {
		return nil, false, nil
	}

	if subjectKind != board.Pawn {
		return nil, true, fmt.Errorf("%w: only pawn moves can be described this way", ErrUnresolvedCommand)
	}

	dist, err := parseDistance(text)
	if err != nil {
		return nil, true, err
	}

	side := snap.Turn
	dir := 1
	if side == board.Black {
		dir = -1
	}

	// A candidate is a pawn of the moving side directly in front of an
	// anchor piece of the same side.
	var candidates []board.Square
	for _, anchor := range snap.Board.Squares() {
		if p := snap.Board[anchor]; p.Color != side || p.Kind != anchorKind {
			continue
		}
		front, ok := anchor.Offset(0, dir)
		if !ok {
			continue
		}
		if p, ok := snap.Board.PieceAt(front); ok && p.Color == side && p.Kind == board.Pawn {
			candidates = append(candidates, front)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, true, fmt.Errorf("%w: no %s pawn in front of a %s", ErrUnresolvedCommand, side, kindName(anchorKind))
	case 1:
	default:
		return nil, true, fmt.Errorf("%w: %d pawns match", ErrAmbiguousCommand, len(candidates))
	}

	from := candidates[0]
	to, ok := from.Offset(0, dist*dir)
	if !ok {
		return nil, true, fmt.Errorf("%w: %d squares forward from %s leaves the board", ErrUnresolvedCommand, dist, from)
	}
	return MakeMove{From: from, To: to}, true, nil
}

func parseDistance(text string) (int, error) {
	if strings.Contains(text, "double step") {
		return 2, nil
	}
	m := reDistance.FindStringSubmatch(text)
	if m == nil {
		return 0, fmt.Errorf("%w: distance not specified", ErrAmbiguousCommand)
	}
	switch m[1] {
	case "one", "1":
		return 1, nil
	default:
		return 2, nil
	}
}

func kindName(k board.Kind) string {
	switch k {
	case board.Pawn:
		return "pawn"
	case board.Knight:
		return "knight"
	case board.Bishop:
		return "bishop"
	case board.Rook:
		return "rook"
	case board.Queen:
		return "queen"
	case board.King:
		return "king"
	}
	return "piece"
}
