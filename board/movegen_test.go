package board

import (
	"reflect"
	"testing"

	"github.com/4g3nt81lly/smartchess/position"
)

// destinations returns notation strings of the piece's pseudo-legal
// destinations.
func destinations(t *testing.T, fen, square string) map[string]bool {
	t.Helper()
	rec, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := rec.Board.PieceAt(mustPos(t, square))
	if p == nil {
		t.Fatalf("no piece at %s", square)
	}
	got := map[string]bool{}
	for _, to := range p.PseudoLegalDestinations(rec.Board, rec.EnPassant) {
		got[to.Notation()] = true
	}
	return got
}

func TestPseudoLegalDestinations(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		square  string
		want    []string
		exclude []string
	}{
		{
			name:   "pawn single and double step",
			fen:    DefaultStartingPositionFEN,
			square: "e2",
			want:   []string{"e3", "e4"},
		},
		{
			name:    "pawn double step blocked by intermediate piece",
			fen:     "4k3/8/8/8/8/4n3/4P3/4K3 w - - 0 1",
			square:  "e2",
			want:    []string{},
			exclude: []string{"e3", "e4"},
		},
		{
			name:    "pawn that has moved cannot double step",
			fen:     "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1",
			square:  "e3",
			want:    []string{"e4"},
			exclude: []string{"e5"},
		},
		{
			name:    "pawn diagonal capture only onto enemies",
			fen:     "4k3/8/8/3p1N2/4P3/8/8/4K3 w - - 0 1",
			square:  "e4",
			want:    []string{"e5", "d5"},
			exclude: []string{"f5"},
		},
		{
			name:    "rook stops at first occupied square",
			fen:     "4k3/8/8/4p3/8/8/8/R3K3 w - - 0 1",
			square:  "a1",
			want:    []string{"a2", "a8", "b1", "d1"},
			exclude: []string{"e1", "f1"},
		},
		{
			name:    "bishop capture included, friend excluded",
			fen:     "4k3/8/8/8/5p2/8/1P6/2B1K3 w - - 0 1",
			square:  "c1",
			want:    []string{"d2", "e3", "f4"},
			exclude: []string{"b2", "a3", "g5"},
		},
		{
			name:   "knight offsets filtered by bounds and friends",
			fen:    "4k3/8/8/8/8/8/3P4/1N2K3 w - - 0 1",
			square: "b1",
			want:   []string{"a3", "c3"},
			// d2 holds a friendly pawn
			exclude: []string{"d2"},
		},
		{
			name:    "queen combines lateral and diagonal rays",
			fen:     "4k3/8/8/8/8/8/8/Q3K3 w - - 0 1",
			square:  "a1",
			want:    []string{"a8", "h8", "d1"},
			exclude: []string{"e1", "f1"},
		},
		{
			name:   "pawn en passant target included",
			fen:    "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 2",
			square: "d4",
			want:   []string{"d3", "e3"},
		},
		{
			name:    "en passant absent without the opportunity",
			fen:     "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 2",
			square:  "d4",
			want:    []string{"d3"},
			exclude: []string{"e3"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := destinations(t, tt.fen, tt.square)
			for _, want := range tt.want {
				if !got[want] {
					t.Errorf("missing destination %s (got=%v)", want, got)
				}
			}
			for _, excl := range tt.exclude {
				if got[excl] {
					t.Errorf("unexpected destination %s", excl)
				}
			}
		})
	}
}

// legalUCIs returns the UCI strings of the legal moves from a square.
func legalUCIs(t *testing.T, fen, square string) map[string]bool {
	t.Helper()
	rec, err := ParseFEN(fen)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := map[string]bool{}
	for _, mv := range rec.Board.LegalMovesFrom(mustPos(t, square), rec.EnPassant) {
		got[mv.UCI()] = true
	}
	return got
}

func TestCastlingEligibility(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		square  string
		want    []string
		exclude []string
	}{
		{
			name:   "both wings available",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			square: "e1",
			want:   []string{"e1g1", "e1c1"},
		},
		{
			name:    "queenside right lost",
			fen:     "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1",
			square:  "e1",
			want:    []string{"e1g1"},
			exclude: []string{"e1c1"},
		},
		{
			name:    "queenside blocked",
			fen:     "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1",
			square:  "e1",
			want:    []string{"e1g1"},
			exclude: []string{"e1c1"},
		},
		{
			name:    "kingside transit square attacked",
			fen:     "r3k2r/8/8/8/5r2/8/8/R3K2R w KQkq - 0 1",
			square:  "e1",
			want:    []string{"e1c1"},
			exclude: []string{"e1g1"},
		},
		{
			name:    "king in check",
			fen:     "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1",
			square:  "e1",
			exclude: []string{"e1g1", "e1c1"},
		},
		{
			name:   "black castles",
			fen:    "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			square: "e8",
			want:   []string{"e8g8", "e8c8"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := legalUCIs(t, tt.fen, tt.square)
			for _, want := range tt.want {
				if !got[want] {
					t.Errorf("missing move %s (got=%v)", want, got)
				}
			}
			for _, excl := range tt.exclude {
				if got[excl] {
					t.Errorf("unexpected move %s", excl)
				}
			}
		})
	}
}

func TestSelfCheckExclusion(t *testing.T) {
	t.Parallel()

	// The bishop on e2 is pinned against its king by the rook on e3.
	got := legalUCIs(t, "4k3/8/8/8/8/4r3/4B3/4K3 w - - 0 1", "e2")
	if len(got) != 0 {
		t.Errorf("expected pinned bishop to have no legal moves, got=%v", got)
	}

	// The king may neither step into the rook's lines nor capture the
	// knight-defended rook.
	got = legalUCIs(t, "4k3/8/8/8/8/1n6/3r4/4K3 w - - 0 1", "e1")
	for _, bad := range []string{"e1d1", "e1d2", "e1e2", "e1f2"} {
		if got[bad] {
			t.Errorf("king stepped into attack: %s", bad)
		}
	}
	if !got["e1f1"] {
		t.Errorf("expected e1f1 to remain legal, got=%v", got)
	}
}

func TestLegalMovesDeterministic(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	first := b.LegalMoves(SideWhite, position.None)
	second := b.LegalMoves(SideWhite, position.None)
	if len(first) != 20 {
		t.Fatalf("unexpected opening move count: got=%d want=20", len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical move lists on repeated generation")
	}
}

func TestPromotionFanOut(t *testing.T) {
	t.Parallel()
	got := legalUCIs(t, "4k3/P7/8/8/8/8/8/4K3 w - - 0 1", "a7")
	for _, want := range []string{"a7a8b", "a7a8n", "a7a8r", "a7a8q"} {
		if !got[want] {
			t.Errorf("missing promotion %s (got=%v)", want, got)
		}
	}
	if got["a7a8"] {
		t.Error("promotion square must not yield a plain move")
	}
}
