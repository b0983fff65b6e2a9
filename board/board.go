package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/4g3nt81lly/smartchess/position"
)

const (
	Width  = int8(position.MaxComponent)
	Height = int8(position.MaxComponent)
)

var (
	// ErrIllegalPlacement represents a structurally invalid board mutation,
	// such as placing a second king of the same side.
	ErrIllegalPlacement = errors.New("illegal placement")
)

// Board is an 8x8 arena of piece records. Each occupied square exclusively
// owns its Piece; a piece's stored Pos always matches its slot. The board
// holds no turn or en-passant state, that belongs to the owning game.
type Board struct {
	cells [Width][Height]*Piece
	kings [3]*Piece // indexed by Side
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewStandardBoard creates a board with the standard starting layout.
func NewStandardBoard() *Board {
	b := NewBoard()
	backRank := []PieceType{
		PieceRook, PieceKnight, PieceBishop, PieceQueen,
		PieceKing, PieceBishop, PieceKnight, PieceRook,
	}
	for f := int8(1); f <= Width; f++ {
		_, _ = b.Place(backRank[f-1], SideWhite, position.Pos{File: f, Rank: 1})
		_, _ = b.Place(PiecePawn, SideWhite, position.Pos{File: f, Rank: 2})
		_, _ = b.Place(PiecePawn, SideBlack, position.Pos{File: f, Rank: 7})
		_, _ = b.Place(backRank[f-1], SideBlack, position.Pos{File: f, Rank: 8})
	}
	return b
}

// Place puts a new piece on the board, overwriting any occupant. Placing a
// second king of a side already tracking one fails with ErrIllegalPlacement.
func (b *Board) Place(t PieceType, s Side, pos position.Pos) (*Piece, error) {
	if !pos.IsValid() {
		return nil, fmt.Errorf("%w: %v", position.ErrOutOfBounds, pos)
	}
	if t == PieceUnknown || s == SideUnknown {
		return nil, fmt.Errorf("%w: unknown piece or side", ErrIllegalPlacement)
	}
	if t == PieceKing && b.kings[s] != nil {
		return nil, fmt.Errorf("%w: %s already has a King", ErrIllegalPlacement, s)
	}
	b.Remove(pos)
	p := &Piece{Type: t, Side: s, Pos: pos}
	b.cells[pos.File-1][pos.Rank-1] = p
	if t == PieceKing {
		b.kings[s] = p
	}
	return p, nil
}

// PlaceWhite places a white piece.
func (b *Board) PlaceWhite(t PieceType, pos position.Pos) (*Piece, error) {
	return b.Place(t, SideWhite, pos)
}

// PlaceBlack places a black piece.
func (b *Board) PlaceBlack(t PieceType, pos position.Pos) (*Piece, error) {
	return b.Place(t, SideBlack, pos)
}

// PieceAt returns the piece occupying pos, or nil. Read-only query.
func (b *Board) PieceAt(pos position.Pos) *Piece {
	if !pos.IsValid() {
		return nil
	}
	return b.cells[pos.File-1][pos.Rank-1]
}

// Remove takes the piece at pos off the board and returns it.
func (b *Board) Remove(pos position.Pos) *Piece {
	if !pos.IsValid() {
		return nil
	}
	p := b.cells[pos.File-1][pos.Rank-1]
	if p == nil {
		return nil
	}
	b.cells[pos.File-1][pos.Rank-1] = nil
	if p.Type == PieceKing && b.kings[p.Side] == p {
		b.kings[p.Side] = nil
	}
	return p
}

// Clear removes every piece.
func (b *Board) Clear() {
	*b = Board{}
}

// King returns the king of the given side, or nil if absent.
func (b *Board) King(s Side) *Piece {
	if s == SideUnknown {
		return nil
	}
	return b.kings[s]
}

// Pieces returns the pieces of a side in board scan order (rank 1 to 8,
// file a to h), keeping move lists reproducible. SideUnknown returns all.
func (b *Board) Pieces(s Side) []*Piece {
	var ps []*Piece
	for r := int8(0); r < Height; r++ {
		for f := int8(0); f < Width; f++ {
			if p := b.cells[f][r]; p != nil && (s == SideUnknown || p.Side == s) {
				ps = append(ps, p)
			}
		}
	}
	return ps
}

// Clone deep-copies the board: same layout, independent piece records.
func (b *Board) Clone() *Board {
	bb := &Board{}
	for f := int8(0); f < Width; f++ {
		for r := int8(0); r < Height; r++ {
			p := b.cells[f][r]
			if p == nil {
				continue
			}
			cp := *p
			bb.cells[f][r] = &cp
			if cp.Type == PieceKing {
				bb.kings[cp.Side] = &cp
			}
		}
	}
	return bb
}

// relocate moves a piece between squares, updating its record. The
// destination must be empty; captures are the Movement's responsibility.
func (b *Board) relocate(from, to position.Pos) error {
	p := b.PieceAt(from)
	if p == nil {
		return fmt.Errorf("%w: no piece at %s", ErrIllegalPlacement, from)
	}
	if b.PieceAt(to) != nil {
		return fmt.Errorf("%w: %s is occupied", ErrIllegalPlacement, to)
	}
	b.cells[from.File-1][from.Rank-1] = nil
	b.cells[to.File-1][to.Rank-1] = p
	p.Pos = to
	p.MoveCount++
	return nil
}

// IsSquareAttacked reports whether any piece of the given side attacks pos.
// This is the single shared primitive behind check detection, castling-path
// safety, and king-safety simulation. It never recurses into legality
// filtering.
func (b *Board) IsSquareAttacked(pos position.Pos, by Side) bool {
	for _, p := range b.Pieces(by) {
		if p.IsAttacking(b, pos) {
			return true
		}
	}
	return false
}

// IsKingChecked reports whether the side's king is currently attacked.
// A side without a king is never considered checked.
func (b *Board) IsKingChecked(s Side) bool {
	k := b.King(s)
	if k == nil {
		return false
	}
	return b.IsSquareAttacked(k.Pos, s.Opposite())
}

// Dump renders a plain ASCII diagram, mainly for debugging and logs.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for r := Height; r >= 1; r-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", r))
		for f := int8(1); f <= Width; f++ {
			sym := " "
			if p := b.cells[f-1][r-1]; p != nil {
				sym = p.Type.SymbolFEN(p.Side)
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for _, f := range position.Files() {
		_, _ = builder.WriteString(fmt.Sprintf("  %c ", f))
	}
	return builder.String()
}
