package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	multierror "github.com/hashicorp/go-multierror"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/position"
)

var (
	// ErrInvalidSnapshot represents a malformed or inconsistent persisted
	// snapshot. Decoding aggregates every field-level problem behind it.
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// Snapshot is the persistable document form of a Game. It round-trips every
// attribute: board layout with per-piece move counts, player metadata,
// active side, ordered history, the outstanding en-passant square, and
// status.
type Snapshot struct {
	ID        string           `json:"id"`
	Players   []PlayerRecord   `json:"players,omitempty"`
	Pieces    []PieceRecord    `json:"pieces"`
	Turn      string           `json:"turn"`
	EnPassant string           `json:"enPassant,omitempty"`
	Status    string           `json:"status"`
	History   []MovementRecord `json:"history,omitempty"`
}

type PlayerRecord struct {
	Name  string `json:"name"`
	Side  string `json:"side"`
	Score int    `json:"score"`
}

type PieceRecord struct {
	Type      string `json:"type"`
	Side      string `json:"side"`
	Square    string `json:"square"`
	MoveCount int    `json:"moveCount,omitempty"`
}

type MovementRecord struct {
	Kind         string `json:"kind"`
	Side         string `json:"side"`
	Piece        string `json:"piece"`
	From         string `json:"from"`
	To           string `json:"to"`
	Captured     string `json:"captured,omitempty"`
	CapturedFrom string `json:"capturedFrom,omitempty"`
	RookFrom     string `json:"rookFrom,omitempty"`
	RookTo       string `json:"rookTo,omitempty"`
	Promote      string `json:"promote,omitempty"`
}

// Snapshot encodes the game. The document shares no state with the live
// game; it is built from value records only.
func (g *Game) Snapshot() *Snapshot {
	s := &Snapshot{
		ID:        g.id,
		Turn:      g.turn.String(),
		EnPassant: g.enPassant.Notation(),
		Status:    g.status.String(),
	}
	for _, side := range []board.Side{board.SideWhite, board.SideBlack} {
		if info, ok := g.players[side]; ok {
			s.Players = append(s.Players, PlayerRecord{
				Name:  info.Name,
				Side:  side.String(),
				Score: info.Score,
			})
		}
	}
	for _, p := range g.board.Pieces(board.SideUnknown) {
		s.Pieces = append(s.Pieces, PieceRecord{
			Type:      p.Type.Name(),
			Side:      p.Side.String(),
			Square:    p.Pos.Notation(),
			MoveCount: p.MoveCount,
		})
	}
	for _, mv := range g.history {
		s.History = append(s.History, MovementRecord{
			Kind:         mv.Kind.String(),
			Side:         mv.Side.String(),
			Piece:        mv.Piece.Name(),
			From:         mv.From.Notation(),
			To:           mv.To.Notation(),
			Captured:     mv.Captured.Name(),
			CapturedFrom: mv.CapturedFrom.Notation(),
			RookFrom:     mv.RookFrom.Notation(),
			RookTo:       mv.RookTo.Notation(),
			Promote:      mv.Promote.Name(),
		})
	}
	return s
}

// FromSnapshot decodes a persisted snapshot into a fully validated Game.
// Every problem found is collected; the aggregate wraps ErrInvalidSnapshot.
func FromSnapshot(s *Snapshot) (*Game, error) {
	var issues error
	collect := func(format string, args ...any) {
		issues = multierror.Append(issues, fmt.Errorf(format, args...))
	}

	if _, err := uuid.Parse(s.ID); err != nil {
		collect("id %q is not a UUID", s.ID)
	}

	g := &Game{
		id:        s.ID,
		board:     board.NewBoard(),
		enPassant: position.None,
		players:   map[board.Side]PlayerInfo{},
	}

	g.turn = board.ParseSide(s.Turn)
	if g.turn == board.SideUnknown {
		collect("unknown turn %q", s.Turn)
	}
	g.status = ParseStatus(s.Status)
	if g.status == StatusUnknown {
		collect("unknown status %q", s.Status)
	}

	for _, pr := range s.Players {
		side := board.ParseSide(pr.Side)
		if side == board.SideUnknown {
			collect("player %q has unknown side %q", pr.Name, pr.Side)
			continue
		}
		g.players[side] = PlayerInfo{Name: pr.Name, Score: pr.Score}
	}

	for i, pr := range s.Pieces {
		t := board.ParsePieceType(pr.Type)
		side := board.ParseSide(pr.Side)
		pos, err := position.FromNotation(pr.Square)
		switch {
		case t == board.PieceUnknown:
			collect("piece %d: unknown type %q", i, pr.Type)
		case side == board.SideUnknown:
			collect("piece %d: unknown side %q", i, pr.Side)
		case err != nil:
			collect("piece %d: bad square %q", i, pr.Square)
		case pr.MoveCount < 0:
			collect("piece %d: negative move count", i)
		case g.board.PieceAt(pos) != nil:
			collect("piece %d: square %s occupied twice", i, pr.Square)
		default:
			p, perr := g.board.Place(t, side, pos)
			if perr != nil {
				collect("piece %d: %v", i, perr)
				continue
			}
			p.MoveCount = pr.MoveCount
		}
	}
	if g.board.King(board.SideWhite) == nil {
		collect("White King is missing")
	}
	if g.board.King(board.SideBlack) == nil {
		collect("Black King is missing")
	}

	if s.EnPassant != "" {
		pos, err := position.FromNotation(s.EnPassant)
		if err != nil {
			collect("bad en-passant square %q", s.EnPassant)
		} else {
			g.enPassant = pos
		}
	}

	for i, mr := range s.History {
		mv, err := decodeMovement(mr)
		if err != nil {
			collect("history %d: %v", i, err)
			continue
		}
		g.history = append(g.history, mv)
	}

	if issues != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSnapshot, issues)
	}

	// Re-link the most recent movement against the decoded board: its mover
	// must stand on its destination square.
	if n := len(g.history); n > 0 {
		last := g.history[n-1]
		want := last.Piece
		if last.Promote != board.PieceUnknown {
			want = last.Promote
		}
		mover := g.board.PieceAt(last.To)
		if mover == nil || mover.Side != last.Side || mover.Type != want {
			return nil, fmt.Errorf("%w: last movement %s does not match the board",
				ErrInvalidSnapshot, last.UCI())
		}
	}

	// Status must never be stale with respect to board and active side.
	if got := g.computeStatus(); got != g.status {
		return nil, fmt.Errorf("%w: stored status %s, board implies %s",
			ErrInvalidSnapshot, g.status, got)
	}
	return g, nil
}

func isPromoteCandidate(t board.PieceType) bool {
	for _, c := range board.PawnPromoteCandidates {
		if t == c {
			return true
		}
	}
	return false
}

// decodeMovement reconstructs one history entry, enforcing the structural
// invariants of each movement kind (en passant requires two pawns, castling
// pairs the king with a home-square rook).
func decodeMovement(mr MovementRecord) (board.Movement, error) {
	var mv board.Movement

	mv.Kind = board.ParseMovementKind(mr.Kind)
	if mv.Kind == board.MovementUnknown {
		return mv, fmt.Errorf("unknown kind %q", mr.Kind)
	}
	mv.Side = board.ParseSide(mr.Side)
	if mv.Side == board.SideUnknown {
		return mv, fmt.Errorf("unknown side %q", mr.Side)
	}
	mv.Piece = board.ParsePieceType(mr.Piece)
	if mv.Piece == board.PieceUnknown {
		return mv, fmt.Errorf("unknown piece %q", mr.Piece)
	}

	var err error
	if mv.From, err = position.FromNotation(mr.From); err != nil {
		return mv, fmt.Errorf("bad origin %q", mr.From)
	}
	if mv.To, err = position.FromNotation(mr.To); err != nil {
		return mv, fmt.Errorf("bad destination %q", mr.To)
	}

	if mr.Promote != "" {
		mv.Promote = board.ParsePieceType(mr.Promote)
		if mv.Piece != board.PiecePawn || !isPromoteCandidate(mv.Promote) {
			return mv, fmt.Errorf("bad promotion %q", mr.Promote)
		}
	}

	switch mv.Kind {
	case board.MovementMove:

	case board.MovementCapture:
		mv.Captured = board.ParsePieceType(mr.Captured)
		if mv.Captured == board.PieceUnknown {
			return mv, fmt.Errorf("capture of unknown piece %q", mr.Captured)
		}
		mv.CapturedFrom = mv.To

	case board.MovementEnPassant:
		mv.Captured = board.ParsePieceType(mr.Captured)
		if mv.Piece != board.PiecePawn || mv.Captured != board.PiecePawn {
			return mv, errors.New("en passant requires two pawns")
		}
		if mv.CapturedFrom, err = position.FromNotation(mr.CapturedFrom); err != nil {
			return mv, fmt.Errorf("bad captured square %q", mr.CapturedFrom)
		}
		if mv.CapturedFrom == mv.To {
			return mv, errors.New("en passant capture square must differ from destination")
		}

	case board.MovementCastle:
		if mv.Piece != board.PieceKing {
			return mv, errors.New("castling requires the King")
		}
		if mv.RookFrom, err = position.FromNotation(mr.RookFrom); err != nil {
			return mv, fmt.Errorf("bad rook origin %q", mr.RookFrom)
		}
		if mv.RookTo, err = position.FromNotation(mr.RookTo); err != nil {
			return mv, fmt.Errorf("bad rook destination %q", mr.RookTo)
		}
		if mv.RookFrom.Rank != mv.From.Rank || (mv.RookFrom.File != 1 && mv.RookFrom.File != 8) {
			return mv, fmt.Errorf("rook origin %s does not pair with king origin %s",
				mv.RookFrom, mv.From)
		}
	}
	return mv, nil
}
