package position

import (
	"errors"
)

const (
	// MinComponent and MaxComponent bound both the file and rank components.
	MinComponent int8 = 1
	MaxComponent int8 = 8
)

var (
	// ErrInvalidNotation represents an invalid algebraic notation error.
	ErrInvalidNotation = errors.New("invalid notation")

	// ErrOutOfBounds represents an out-of-bounds coordinate error.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// None is the absent position. It is not a valid board coordinate.
var None = Pos{}

// Pos is an immutable board coordinate. File and Rank are 1-based:
// file 1 is the a-file, rank 1 is White's back rank. The zero value is
// invalid and doubles as the "no position" marker.
type Pos struct {
	File, Rank int8
}

// New constructs a Pos, rejecting out-of-range components.
func New(file, rank int8) (Pos, error) {
	p := Pos{File: file, Rank: rank}
	if !p.IsValid() {
		return None, ErrOutOfBounds
	}
	return p, nil
}

// FromNotation parses algebraic notation such as "e4".
func FromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return None, ErrInvalidNotation
	}
	file := int8(n[0]-'a') + 1
	rank := int8(n[1] - '0')
	p := Pos{File: file, Rank: rank}
	if !p.IsValid() {
		return None, ErrInvalidNotation
	}
	return p, nil
}

// Files yields the ordered file letters a through h.
func Files() []rune {
	fs := make([]rune, 0, MaxComponent)
	for f := MinComponent; f <= MaxComponent; f++ {
		fs = append(fs, rune('a'+f-1))
	}
	return fs
}

func (p Pos) IsValid() bool {
	return p.File >= MinComponent && p.File <= MaxComponent &&
		p.Rank >= MinComponent && p.Rank <= MaxComponent
}

func (p Pos) String() string {
	return p.Notation()
}

// Notation returns the algebraic notation, or "" for an invalid Pos.
func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	return string(rune('a'+p.File-1)) + string(rune('0'+p.Rank))
}

// IsDark reports whether the square is dark. a1 is dark.
func (p Pos) IsDark() bool {
	return (p.File+p.Rank)%2 == 0
}

// Offset returns the position displaced by the given file and rank deltas.
// ok is false when the result falls off the board.
func (p Pos) Offset(df, dr int8) (Pos, bool) {
	q := Pos{File: p.File + df, Rank: p.Rank + dr}
	if !q.IsValid() {
		return None, false
	}
	return q, true
}
