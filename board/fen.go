package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/4g3nt81lly/smartchess/position"
)

const DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// FENRecord carries everything a FEN string encodes. The board's castling
// rights are not stored separately: parsing marks kings and rooks as moved
// where rights are absent, and serializing derives rights back from move
// counters and home squares.
type FENRecord struct {
	Board     *Board
	Turn      Side
	EnPassant position.Pos

	HalfMoveClock uint64
	FullMoveClock uint64
}

// ParseFEN decodes all six FEN segments.
func ParseFEN(fen string) (*FENRecord, error) {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return nil, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	b := NewBoard()
	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return nil, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	for r := int8(1); r <= Height; r++ {
		row := rows[Height-r]
		f := int8(1)
		for _, cell := range row {
			if f > Width {
				return nil, fmt.Errorf("%w: overfull row", ErrInvalidFEN)
			}
			if cell >= '1' && cell <= '8' {
				f += int8(cell - '0')
				continue
			}
			s, t := pieceTypeFromFEN(cell)
			if t == PieceUnknown {
				return nil, fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			p, err := b.Place(t, s, position.Pos{File: f, Rank: r})
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidFEN, err)
			}
			// A pawn off its starting rank must have moved; double-step
			// eligibility depends on it.
			if t == PiecePawn && r != pawnStartRank(s) {
				p.MoveCount = 1
			}
			f++
		}
		if f != Width+1 {
			return nil, fmt.Errorf("%w: missing cells", ErrInvalidFEN)
		}
	}

	var turn Side
	switch segments[1] {
	case "w":
		turn = SideWhite
	case "b":
		turn = SideBlack
	default:
		return nil, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if err := applyCastlingRights(b, segments[2]); err != nil {
		return nil, err
	}

	enPassant := position.None
	if segments[3] != "-" {
		var err error
		enPassant, err = position.FromNotation(segments[3])
		if err != nil {
			return nil, fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil || fullMoveClock == 0 {
		return nil, fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}

	return &FENRecord{
		Board:         b,
		Turn:          turn,
		EnPassant:     enPassant,
		HalfMoveClock: halfMoveClock,
		FullMoveClock: fullMoveClock,
	}, nil
}

func pawnStartRank(s Side) int8 {
	if s == SideWhite {
		return 2
	}
	return 7
}

// applyCastlingRights translates the FEN rights segment into move counters:
// each absent right marks its home-square rook as moved, and a side with no
// rights at all gets its home-square king marked too.
func applyCastlingRights(b *Board, segment string) error {
	if len(segment) > 4 {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	rights := map[rune]bool{}
	if segment != "-" {
		for _, e := range segment {
			switch e {
			case 'K', 'Q', 'k', 'q':
				rights[e] = true
			default:
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		}
	}
	for _, w := range []struct {
		side      Side
		kingside  rune
		queenside rune
		homeRank  int8
	}{
		{SideWhite, 'K', 'Q', 1},
		{SideBlack, 'k', 'q', 8},
	} {
		markRookMoved := func(file int8, granted bool) {
			if granted {
				return
			}
			p := b.PieceAt(position.Pos{File: file, Rank: w.homeRank})
			if p != nil && p.Type == PieceRook && p.Side == w.side {
				p.MoveCount = 1
			}
		}
		markRookMoved(8, rights[w.kingside])
		markRookMoved(1, rights[w.queenside])
		if !rights[w.kingside] && !rights[w.queenside] {
			if k := b.King(w.side); k != nil && k.Pos == (position.Pos{File: 5, Rank: w.homeRank}) {
				k.MoveCount = 1
			}
		}
	}
	return nil
}

// FEN serializes the record back into a FEN string.
func (r *FENRecord) FEN() string {
	builder := strings.Builder{}
	for rank := Height; rank >= 1; rank-- {
		skip := 0
		for f := int8(1); f <= Width; f++ {
			p := r.Board.PieceAt(position.Pos{File: f, Rank: rank})
			if p == nil {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteString(strconv.Itoa(skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.Type.SymbolFEN(p.Side))
		}
		if skip != 0 {
			_, _ = builder.WriteString(strconv.Itoa(skip))
		}
		if rank > 1 {
			_, _ = builder.WriteRune('/')
		}
	}

	if r.Turn == SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}

	rights := r.castlingRightsFEN()
	if rights == "" {
		rights = "-"
	}
	_, _ = builder.WriteString(rights)
	_, _ = builder.WriteRune(' ')

	if r.EnPassant == position.None {
		_, _ = builder.WriteRune('-')
	} else {
		_, _ = builder.WriteString(r.EnPassant.Notation())
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", r.HalfMoveClock, r.FullMoveClock))

	return builder.String()
}

func (r *FENRecord) castlingRightsFEN() string {
	var rights string
	for _, w := range []struct {
		side     Side
		symbols  [2]string
		homeRank int8
	}{
		{SideWhite, [2]string{"K", "Q"}, 1},
		{SideBlack, [2]string{"k", "q"}, 8},
	} {
		k := r.Board.King(w.side)
		if k == nil || k.HasMoved() || k.Pos != (position.Pos{File: 5, Rank: w.homeRank}) {
			continue
		}
		for i, file := range []int8{8, 1} {
			p := r.Board.PieceAt(position.Pos{File: file, Rank: w.homeRank})
			if p != nil && p.Type == PieceRook && p.Side == w.side && !p.HasMoved() {
				rights += w.symbols[i]
			}
		}
	}
	return rights
}
