package position

import (
	"errors"
	"testing"
)

func TestFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok 1",
			notation: "e4",
			want:     Pos{File: 5, Rank: 4},
			wantErr:  nil,
		},
		{
			name:     "ok 2",
			notation: "h8",
			want:     Pos{File: 8, Rank: 8},
			wantErr:  nil,
		},
		{
			name:     "ok 3",
			notation: "a1",
			want:     Pos{File: 1, Rank: 1},
			wantErr:  nil,
		},
		{
			name:     "bad 1",
			notation: "",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 2",
			notation: "a",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 3",
			notation: "4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 4",
			notation: "m4",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 5",
			notation: "e9",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 6",
			notation: "e0",
			wantErr:  ErrInvalidNotation,
		},
		{
			name:     "bad 7",
			notation: "e10",
			wantErr:  ErrInvalidNotation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := FromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
			if gotNotation := got.Notation(); gotNotation != tt.notation {
				t.Errorf("unexpected notation: got=%s want=%s", gotNotation, tt.notation)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		file, rank int8
		wantErr    error
	}{
		{name: "ok min", file: 1, rank: 1},
		{name: "ok max", file: 8, rank: 8},
		{name: "file low", file: 0, rank: 4, wantErr: ErrOutOfBounds},
		{name: "file high", file: 9, rank: 4, wantErr: ErrOutOfBounds},
		{name: "rank low", file: 4, rank: 0, wantErr: ErrOutOfBounds},
		{name: "rank high", file: 4, rank: 9, wantErr: ErrOutOfBounds},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := New(tt.file, tt.rank)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				if got != None {
					t.Errorf("expected None on error, got=%v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.IsValid() {
				t.Errorf("expected valid position, got=%v", got)
			}
		})
	}
}

func TestFiles(t *testing.T) {
	t.Parallel()
	got := Files()
	want := []rune{'a', 'b', 'c', 'd', 'e', 'f', 'g', 'h'}
	if len(got) != len(want) {
		t.Fatalf("unexpected length: got=%d want=%d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("unexpected file at %d: got=%c want=%c", i, got[i], want[i])
		}
	}
}

func TestIsDark(t *testing.T) {
	t.Parallel()
	tests := []struct {
		notation string
		dark     bool
	}{
		{notation: "a1", dark: true},
		{notation: "h1", dark: false},
		{notation: "a8", dark: false},
		{notation: "h8", dark: true},
		{notation: "e4", dark: false},
		{notation: "d4", dark: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.notation, func(t *testing.T) {
			t.Parallel()
			p, err := FromNotation(tt.notation)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := p.IsDark(); got != tt.dark {
				t.Errorf("unexpected square color: got dark=%v want dark=%v", got, tt.dark)
			}
		})
	}
}

func TestOffset(t *testing.T) {
	t.Parallel()
	e4 := Pos{File: 5, Rank: 4}

	got, ok := e4.Offset(1, 1)
	if !ok || got != (Pos{File: 6, Rank: 5}) {
		t.Errorf("unexpected offset: got=%v ok=%v", got, ok)
	}
	if _, ok := (Pos{File: 1, Rank: 1}).Offset(-1, 0); ok {
		t.Error("expected off-board offset to fail")
	}
	if _, ok := (Pos{File: 8, Rank: 8}).Offset(0, 1); ok {
		t.Error("expected off-board offset to fail")
	}
}
