package board

import (
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	cases := []struct {
		in   string
		want Square
		ok   bool
	}{
		{"a1", Square{0, 0}, true},
		{"h8", Square{7, 7}, true},
		{"e2", Square{4, 1}, true},
		{"i1", Square{}, false},
		{"a9", Square{}, false},
		{"a0", Square{}, false},
		{"e", Square{}, false},
		{"e22", Square{}, false},
		{"", Square{}, false},
		{"2e", Square{}, false},
	}
	for _, tc := range cases {
		sq, err := ParseSquare(tc.in)
		if tc.ok {
			if err != nil {
				t.Errorf("ParseSquare(%q): unexpected error %v", tc.in, err)
				continue
			}
			if sq != tc.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tc.in, sq, tc.want)
			}
			if got := sq.String(); got != tc.in {
				t.Errorf("Square(%v).String() = %q, want %q", sq, got, tc.in)
			}
			continue
		}
		if !errors.Is(err, ErrInvalidSquare) {
			t.Errorf("ParseSquare(%q): want ErrInvalidSquare, got %v", tc.in, err)
		}
	}
}

func TestParsePiece(t *testing.T) {
	p, err := ParsePiece("wP")
	if err != nil {
		t.Fatalf("ParsePiece(wP): %v", err)
	}
	if p.Color != White || p.Kind != Pawn {
		t.Fatalf("ParsePiece(wP) = %+v", p)
	}
	if p.Code() != "wP" {
		t.Fatalf("Code() = %q", p.Code())
	}
	for _, bad := range []string{"", "w", "xP", "wZ", "wPP"} {
		if _, err := ParsePiece(bad); err == nil {
			t.Errorf("ParsePiece(%q): expected error", bad)
		}
	}
}

func TestStartingPosition(t *testing.T) {
	b := StartingPosition()
	if len(b) != 32 {
		t.Fatalf("starting position has %d pieces, want 32", len(b))
	}

	counts := map[string]int{}
	for _, p := range b {
		counts[p.Code()]++
	}
	for code, want := range map[string]int{
		"wP": 8, "bP": 8,
		"wR": 2, "bR": 2,
		"wN": 2, "bN": 2,
		"wB": 2, "bB": 2,
		"wQ": 1, "bQ": 1,
		"wK": 1, "bK": 1,
	} {
		if counts[code] != want {
			t.Errorf("piece %s count = %d, want %d", code, counts[code], want)
		}
	}

	for sq, code := range map[string]string{
		"a1": "wR", "b1": "wN", "c1": "wB", "d1": "wQ",
		"e1": "wK", "f1": "wB", "g1": "wN", "h1": "wR",
		"e2": "wP", "e7": "bP", "e8": "bK", "d8": "bQ",
	} {
		s, err := ParseSquare(sq)
		if err != nil {
			t.Fatalf("ParseSquare(%q): %v", sq, err)
		}
		p, ok := b.PieceAt(s)
		if !ok || p.Code() != code {
			t.Errorf("square %s = %v, want %s", sq, p, code)
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := StartingPosition()
	c := b.Clone()
	e2 := Square{File: 4, Rank: 1}
	delete(c, e2)
	if _, ok := b.PieceAt(e2); !ok {
		t.Fatal("mutating the clone changed the original board")
	}
}

func TestSquaresOrdering(t *testing.T) {
	b := StartingPosition()
	squares := b.Squares()
	if len(squares) != 32 {
		t.Fatalf("Squares() returned %d entries", len(squares))
	}
	for i := 1; i < len(squares); i++ {
		if !squares[i-1].Less(squares[i]) {
			t.Fatalf("Squares() not strictly ordered at %d: %v then %v", i, squares[i-1], squares[i])
		}
	}
}
