package board

import (
	"errors"
	"testing"

	"github.com/4g3nt81lly/smartchess/position"
)

func mustPos(t *testing.T, n string) position.Pos {
	t.Helper()
	p, err := position.FromNotation(n)
	if err != nil {
		t.Fatalf("bad notation %q: %v", n, err)
	}
	return p
}

func TestPlace(t *testing.T) {
	t.Parallel()
	b := NewBoard()

	wk, err := b.Place(PieceKing, SideWhite, mustPos(t, "e1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.King(SideWhite); got != wk {
		t.Errorf("unexpected king: got=%v want=%v", got, wk)
	}

	// second white king is rejected, board unchanged
	if _, err := b.Place(PieceKing, SideWhite, mustPos(t, "a1")); !errors.Is(err, ErrIllegalPlacement) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrIllegalPlacement)
	}
	if got := b.PieceAt(mustPos(t, "a1")); got != nil {
		t.Errorf("expected a1 empty, got=%v", got)
	}

	// a black king is fine
	if _, err := b.Place(PieceKing, SideBlack, mustPos(t, "e8")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// placing overwrites non-king occupants
	if _, err := b.Place(PiecePawn, SideWhite, mustPos(t, "d2")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	q, err := b.Place(PieceQueen, SideBlack, mustPos(t, "d2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.PieceAt(mustPos(t, "d2")); got != q {
		t.Errorf("expected overwrite, got=%v", got)
	}
}

func TestRemove(t *testing.T) {
	t.Parallel()
	b := NewBoard()
	k, _ := b.PlaceWhite(PieceKing, mustPos(t, "e1"))

	if got := b.Remove(mustPos(t, "e1")); got != k {
		t.Fatalf("unexpected removed piece: got=%v want=%v", got, k)
	}
	if b.King(SideWhite) != nil {
		t.Error("expected king tracking cleared after removal")
	}
	if b.Remove(mustPos(t, "e1")) != nil {
		t.Error("expected removing an empty square to yield nil")
	}
}

func TestClone(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	bb := b.Clone()

	// layout matches, instances do not alias
	for _, p := range b.Pieces(SideUnknown) {
		cp := bb.PieceAt(p.Pos)
		if cp == nil || cp.Type != p.Type || cp.Side != p.Side || cp.MoveCount != p.MoveCount {
			t.Fatalf("clone layout mismatch at %s", p.Pos)
		}
		if cp == p {
			t.Fatalf("clone aliases original at %s", p.Pos)
		}
	}

	// mutating the clone leaves the original untouched
	bb.Remove(mustPos(t, "e2"))
	if b.PieceAt(mustPos(t, "e2")) == nil {
		t.Error("mutating clone affected original")
	}
	if bb.King(SideWhite) == nil || bb.King(SideWhite) == b.King(SideWhite) {
		t.Error("clone king tracking must be independent")
	}
}

func TestIsSquareAttacked(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		fen      string
		square   string
		by       Side
		attacked bool
	}{
		{
			name:     "rook attacks along rank",
			fen:      "4k3/8/8/8/r6P/8/8/4K3 w - - 0 1",
			square:   "h4",
			by:       SideBlack,
			attacked: true,
		},
		{
			name:     "rook blocked by intervening piece",
			fen:      "4k3/8/8/8/r2p3P/8/8/4K3 w - - 0 1",
			square:   "h4",
			by:       SideBlack,
			attacked: false,
		},
		{
			name:     "pawn attacks its capture diagonal even when empty",
			fen:      "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1",
			square:   "e4",
			by:       SideBlack,
			attacked: true,
		},
		{
			name:     "pawn does not attack its push square",
			fen:      "4k3/8/8/3p4/8/8/8/4K3 w - - 0 1",
			square:   "d4",
			by:       SideBlack,
			attacked: false,
		},
		{
			name:     "knight jumps over blockers",
			fen:      "4k3/8/8/8/8/5N2/PPPP4/4K3 b - - 0 1",
			square:   "e5",
			by:       SideWhite,
			attacked: true,
		},
		{
			name:     "king attacks adjacent square",
			fen:      "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
			square:   "d2",
			by:       SideWhite,
			attacked: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, err := ParseFEN(tt.fen)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := rec.Board.IsSquareAttacked(mustPos(t, tt.square), tt.by); got != tt.attacked {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.attacked)
			}
		})
	}
}

func TestPiecesScanOrder(t *testing.T) {
	t.Parallel()
	b := NewStandardBoard()
	ps := b.Pieces(SideWhite)
	if len(ps) != 16 {
		t.Fatalf("unexpected piece count: got=%d want=16", len(ps))
	}
	// rank 1 before rank 2, a-file before h-file
	if ps[0].Pos != mustPos(t, "a1") || ps[7].Pos != mustPos(t, "h1") || ps[8].Pos != mustPos(t, "a2") {
		t.Errorf("unexpected scan order: first=%s eighth=%s ninth=%s", ps[0].Pos, ps[7].Pos, ps[8].Pos)
	}
}
