package board

import (
	"errors"
	"fmt"

	"github.com/4g3nt81lly/smartchess/position"
)

var (
	// ErrIllegalMovement represents a movement whose participants do not
	// match the board it is being applied to.
	ErrIllegalMovement = errors.New("illegal movement")
)

// MovementKind tags the closed set of movement variants.
type MovementKind uint8

const (
	MovementUnknown MovementKind = iota
	MovementMove
	MovementCapture
	MovementEnPassant
	MovementCastle
)

func (k MovementKind) String() string {
	switch k {
	case MovementMove:
		return "Move"
	case MovementCapture:
		return "Capture"
	case MovementEnPassant:
		return "EnPassant"
	case MovementCastle:
		return "Castle"
	default:
		return ""
	}
}

// ParseMovementKind is the inverse of String.
func ParseMovementKind(s string) MovementKind {
	switch s {
	case "Move":
		return MovementMove
	case "Capture":
		return MovementCapture
	case "EnPassant":
		return MovementEnPassant
	case "Castle":
		return MovementCastle
	default:
		return MovementUnknown
	}
}

// Movement is an immutable record of one pseudo-legal transition, used both
// to apply the transition and as a history entry. Kind selects the variant:
//
//   - MovementMove: Piece relocates From->To.
//   - MovementCapture: additionally removes Captured from To.
//   - MovementEnPassant: removes the captured pawn from CapturedFrom, which
//     differs from To (the mover lands behind the captured pawn).
//   - MovementCastle: the king slides From->To while the rook relocates
//     RookFrom->RookTo as one atomic unit.
//
// A non-zero Promote marks pawn promotion: applying replaces the pawn with
// the chosen piece type on To, move history preserved.
type Movement struct {
	Kind  MovementKind
	Side  Side
	Piece PieceType

	From, To position.Pos

	// Capture and en-passant variants.
	Captured     PieceType
	CapturedFrom position.Pos

	// Castle variant.
	RookFrom, RookTo position.Pos

	Promote PieceType
}

func (m Movement) String() string {
	return m.Algebra()
}

// Algebra renders the movement in algebraic notation.
func (m Movement) Algebra() string {
	if m.Kind == MovementCastle {
		if m.To.File > m.From.File {
			return "0-0"
		}
		return "0-0-0"
	}
	nt := m.Piece.SymbolAlgebra()
	if m.IsCapture() {
		if m.Piece == PiecePawn {
			nt += string(rune('a' + m.From.File - 1))
		} else {
			nt += m.From.Notation()
		}
		nt += "x"
	}
	nt += m.To.Notation()
	if m.Promote != PieceUnknown {
		nt += m.Promote.SymbolAlgebra()
	}
	if m.Kind == MovementEnPassant {
		nt += " e.p."
	}
	return nt
}

// UCI renders the movement as origin and destination squares, with a
// lowercase promotion suffix.
func (m Movement) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.Promote != PieceUnknown {
		nt += m.Promote.SymbolFEN(SideBlack)
	}
	return nt
}

// IsCapture reports whether the movement removes an enemy piece.
func (m Movement) IsCapture() bool {
	return m.Kind == MovementCapture || m.Kind == MovementEnPassant
}

// Apply performs the movement's state transition on b. Every participant is
// verified before any square is touched, so a failed Apply leaves the board
// unchanged.
func (b *Board) Apply(mv Movement) error {
	if err := b.verify(mv); err != nil {
		return err
	}

	switch mv.Kind {
	case MovementCapture:
		b.Remove(mv.To)
	case MovementEnPassant:
		b.Remove(mv.CapturedFrom)
	case MovementCastle:
		if err := b.relocate(mv.From, mv.To); err != nil {
			return err
		}
		return b.relocate(mv.RookFrom, mv.RookTo)
	}
	if err := b.relocate(mv.From, mv.To); err != nil {
		return err
	}
	if mv.Promote != PieceUnknown {
		mover := b.PieceAt(mv.To)
		moved := mover.MoveCount
		b.Remove(mv.To)
		promoted, err := b.Place(mv.Promote, mv.Side, mv.To)
		if err != nil {
			return err
		}
		promoted.MoveCount = moved
	}
	return nil
}

// verify re-resolves every piece the movement references against the board,
// failing when a referenced square is empty or holds the wrong kind of
// piece. Decoding persisted movements funnels through the same checks.
func (b *Board) verify(mv Movement) error {
	mover := b.PieceAt(mv.From)
	if mover == nil {
		return fmt.Errorf("%w: no piece at %s", ErrIllegalMovement, mv.From)
	}
	if mover.Type != mv.Piece || mover.Side != mv.Side {
		return fmt.Errorf("%w: %s holds %s %s, not %s %s",
			ErrIllegalMovement, mv.From, mover.Side, mover.Type, mv.Side, mv.Piece)
	}
	switch mv.Kind {
	case MovementMove:
		if b.PieceAt(mv.To) != nil {
			return fmt.Errorf("%w: %s is occupied", ErrIllegalMovement, mv.To)
		}
	case MovementCapture:
		victim := b.PieceAt(mv.To)
		if victim == nil || victim.Side != mv.Side.Opposite() || victim.Type != mv.Captured {
			return fmt.Errorf("%w: no %s %s at %s",
				ErrIllegalMovement, mv.Side.Opposite(), mv.Captured, mv.To)
		}
	case MovementEnPassant:
		if mv.Piece != PiecePawn || mv.Captured != PiecePawn {
			return fmt.Errorf("%w: en passant requires two pawns", ErrIllegalMovement)
		}
		victim := b.PieceAt(mv.CapturedFrom)
		if victim == nil || victim.Side != mv.Side.Opposite() || victim.Type != PiecePawn {
			return fmt.Errorf("%w: no %s Pawn at %s",
				ErrIllegalMovement, mv.Side.Opposite(), mv.CapturedFrom)
		}
		if b.PieceAt(mv.To) != nil {
			return fmt.Errorf("%w: %s is occupied", ErrIllegalMovement, mv.To)
		}
	case MovementCastle:
		if mv.Piece != PieceKing {
			return fmt.Errorf("%w: castling requires the King", ErrIllegalMovement)
		}
		rook := b.PieceAt(mv.RookFrom)
		if rook == nil || rook.Side != mv.Side || rook.Type != PieceRook {
			return fmt.Errorf("%w: no %s Rook at %s", ErrIllegalMovement, mv.Side, mv.RookFrom)
		}
		if b.PieceAt(mv.To) != nil || b.PieceAt(mv.RookTo) != nil {
			return fmt.Errorf("%w: castling path is occupied", ErrIllegalMovement)
		}
	default:
		return fmt.Errorf("%w: unknown movement kind", ErrIllegalMovement)
	}
	return nil
}

// WillCheckOpponent reports whether applying the movement leaves the
// opponent's king attacked. The simulation runs on a throwaway clone; b is
// never mutated.
func (m Movement) WillCheckOpponent(b *Board) bool {
	bb := b.Clone()
	if err := bb.Apply(m); err != nil {
		return false
	}
	return bb.IsKingChecked(m.Side.Opposite())
}

// NextEnPassant returns the en-passant opportunity created by the movement:
// the square directly behind a pawn immediately after its double step, and
// position.None for every other movement. The opportunity never survives
// more than one ply.
func NextEnPassant(mv Movement) position.Pos {
	if mv.Piece != PiecePawn || mv.Kind != MovementMove {
		return position.None
	}
	if mv.Side == SideWhite && mv.From.Rank == 2 && mv.To.Rank == 4 {
		return position.Pos{File: mv.From.File, Rank: 3}
	}
	if mv.Side == SideBlack && mv.From.Rank == 7 && mv.To.Rank == 5 {
		return position.Pos{File: mv.From.File, Rank: 6}
	}
	return position.None
}
