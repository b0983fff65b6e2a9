package board

import (
	"github.com/4g3nt81lly/smartchess/position"
)

type PieceType uint8

const (
	PieceUnknown PieceType = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
// PieceQueen is last so front ends can use it as the default choice.
var PawnPromoteCandidates = []PieceType{PieceBishop, PieceKnight, PieceRook, PieceQueen}

func (t PieceType) String() string {
	return t.Name()
}

func (t PieceType) Name() string {
	switch t {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

// ParsePieceType is the inverse of Name.
func ParsePieceType(s string) PieceType {
	switch s {
	case "Pawn":
		return PiecePawn
	case "Bishop":
		return PieceBishop
	case "Knight":
		return PieceKnight
	case "Rook":
		return PieceRook
	case "Queen":
		return PieceQueen
	case "King":
		return PieceKing
	default:
		return PieceUnknown
	}
}

func (t PieceType) SymbolAlgebra() string {
	if t == PiecePawn {
		return ""
	}
	return t.SymbolFEN(SideWhite)
}

func (t PieceType) SymbolFEN(s Side) string {
	var sym rune
	switch t {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// pieceTypeFromFEN maps a FEN symbol to its side and piece type.
func pieceTypeFromFEN(sym rune) (Side, PieceType) {
	switch sym {
	case 'P':
		return SideWhite, PiecePawn
	case 'B':
		return SideWhite, PieceBishop
	case 'N':
		return SideWhite, PieceKnight
	case 'R':
		return SideWhite, PieceRook
	case 'Q':
		return SideWhite, PieceQueen
	case 'K':
		return SideWhite, PieceKing
	case 'p':
		return SideBlack, PiecePawn
	case 'b':
		return SideBlack, PieceBishop
	case 'n':
		return SideBlack, PieceKnight
	case 'r':
		return SideBlack, PieceRook
	case 'q':
		return SideBlack, PieceQueen
	case 'k':
		return SideBlack, PieceKing
	default:
		return SideUnknown, PieceUnknown
	}
}

func (t PieceType) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch t {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch t {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// Piece is a single piece record on a board. Each piece is a distinct
// instance owned by the square it occupies; Board.Clone copies the record
// values so clones never alias.
type Piece struct {
	Type PieceType
	Side Side
	Pos  position.Pos

	// MoveCount is the number of times the piece has moved. Castling and
	// pawn double-step eligibility derive from it, and snapshots persist it.
	MoveCount int
}

// HasMoved reports whether the piece has ever moved.
func (p *Piece) HasMoved() bool {
	return p.MoveCount > 0
}
