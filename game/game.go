package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/position"
)

var (
	// ErrIllegalMove represents a submitted movement that is not in the
	// active side's current legal set.
	ErrIllegalMove = errors.New("illegal move")

	// ErrGameTerminated represents a mutation attempt on a finished game.
	ErrGameTerminated = errors.New("game terminated")

	// ErrInvalidSetup represents an unplayable starting configuration.
	ErrInvalidSetup = errors.New("invalid setup")
)

// PlayerInfo is descriptive player metadata carried alongside the game.
// The engine treats it as opaque.
type PlayerInfo struct {
	Name  string
	Score int
}

// Game is the turn-by-turn state machine: active side, move history,
// status, and the single outstanding en-passant opportunity. It exclusively
// owns its Board; Copy produces a deep, alias-free clone. All methods are
// synchronous and the Game performs no internal locking, callers must
// serialize mutations.
type Game struct {
	id        string
	board     *board.Board
	turn      board.Side
	enPassant position.Pos
	history   []board.Movement
	status    Status
	players   map[board.Side]PlayerInfo
}

type gameConfig struct {
	fen     string
	brd     *board.Board
	turn    board.Side
	players map[board.Side]PlayerInfo
}

type GameOption func(*gameConfig)

// WithFEN starts the game from a FEN position instead of the standard
// starting layout.
func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

// WithBoard starts the game from a caller-supplied board and active side,
// for variant or editor setups. The game takes ownership of a deep clone.
func WithBoard(b *board.Board, turn board.Side) GameOption {
	return func(cfg *gameConfig) {
		cfg.brd = b
		cfg.turn = turn
	}
}

// WithPlayers attaches player metadata.
func WithPlayers(white, black PlayerInfo) GameOption {
	return func(cfg *gameConfig) {
		cfg.players = map[board.Side]PlayerInfo{
			board.SideWhite: white,
			board.SideBlack: black,
		}
	}
}

// NewGame creates a game on the standard starting board with White to move,
// unless options say otherwise.
func NewGame(opts ...GameOption) (*Game, error) {
	cfg := &gameConfig{}
	for _, f := range opts {
		f(cfg)
	}

	g := &Game{
		id:        uuid.NewString(),
		turn:      board.SideWhite,
		enPassant: position.None,
		players:   map[board.Side]PlayerInfo{},
	}
	switch {
	case cfg.fen != "":
		rec, err := board.ParseFEN(cfg.fen)
		if err != nil {
			return nil, err
		}
		g.board = rec.Board
		g.turn = rec.Turn
		g.enPassant = rec.EnPassant
	case cfg.brd != nil:
		if cfg.turn != board.SideWhite && cfg.turn != board.SideBlack {
			return nil, fmt.Errorf("%w: no side to move", ErrInvalidSetup)
		}
		g.board = cfg.brd.Clone()
		g.turn = cfg.turn
	default:
		g.board = board.NewStandardBoard()
	}
	for s, info := range cfg.players {
		g.players[s] = info
	}

	if g.board.King(board.SideWhite) == nil || g.board.King(board.SideBlack) == nil {
		return nil, fmt.Errorf("%w: both kings are required", ErrInvalidSetup)
	}
	g.status = g.computeStatus()
	return g, nil
}

// ID returns the game's unique identity.
func (g *Game) ID() string {
	return g.id
}

// Board exposes the live board for read-only queries. Callers must not
// mutate it; use Copy for an isolated snapshot.
func (g *Game) Board() *board.Board {
	return g.board
}

// PieceAt returns the piece occupying pos, or nil.
func (g *Game) PieceAt(pos position.Pos) *board.Piece {
	return g.board.PieceAt(pos)
}

// Turn returns the active side.
func (g *Game) Turn() board.Side {
	return g.turn
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// EnPassant returns the outstanding en-passant target square, or
// position.None. The opportunity lasts exactly one ply.
func (g *Game) EnPassant() position.Pos {
	return g.enPassant
}

// History returns a copy of the applied movements in order.
func (g *Game) History() []board.Movement {
	h := make([]board.Movement, len(g.history))
	copy(h, g.history)
	return h
}

// Player returns the metadata of the given side.
func (g *Game) Player(s board.Side) PlayerInfo {
	return g.players[s]
}

// SetPlayer replaces the metadata of the given side.
func (g *Game) SetPlayer(s board.Side, info PlayerInfo) {
	if s == board.SideWhite || s == board.SideBlack {
		g.players[s] = info
	}
}

// LegalMoves enumerates the active side's legal movements, recomputed fresh
// on every call.
func (g *Game) LegalMoves() []board.Movement {
	if g.status.IsTerminal() {
		return nil
	}
	return g.board.LegalMoves(g.turn, g.enPassant)
}

// LegalMovesFrom enumerates the legal movements of the active side's piece
// at pos. Pieces of the waiting side have no legal moves this turn.
func (g *Game) LegalMovesFrom(pos position.Pos) []board.Movement {
	if g.status.IsTerminal() {
		return nil
	}
	p := g.board.PieceAt(pos)
	if p == nil || p.Side != g.turn {
		return nil
	}
	return p.LegalMoves(g.board, g.enPassant)
}

// ParseMove resolves a UCI-style string ("e2e4", "e7e8q") against the
// current legal set.
func (g *Game) ParseMove(uci string) (board.Movement, error) {
	for _, mv := range g.LegalMoves() {
		if mv.UCI() == uci {
			return mv, nil
		}
	}
	return board.Movement{}, fmt.Errorf("%w: %s", ErrIllegalMove, uci)
}

// SubmitMove validates mv against the freshly computed legal set, applies
// it, appends it to history, flips the active side, and recomputes the
// en-passant window and status. A rejected movement leaves all state
// untouched; a terminal game rejects every movement.
func (g *Game) SubmitMove(mv board.Movement) error {
	if g.status.IsTerminal() {
		return fmt.Errorf("%w: status is %s", ErrGameTerminated, g.status)
	}
	if !g.isLegal(mv) {
		return fmt.Errorf("%w: %s", ErrIllegalMove, mv.UCI())
	}
	if err := g.board.Apply(mv); err != nil {
		// isLegal guarantees applicability; surface the inconsistency.
		return fmt.Errorf("%w: %v", ErrIllegalMove, err)
	}
	g.history = append(g.history, mv)
	g.enPassant = board.NextEnPassant(mv)
	g.turn = g.turn.Opposite()
	g.status = g.computeStatus()
	return nil
}

func (g *Game) isLegal(mv board.Movement) bool {
	for _, legal := range g.board.LegalMoves(g.turn, g.enPassant) {
		if mv == legal {
			return true
		}
	}
	return false
}

// computeStatus derives the status for the active side from the board:
// attacked king without moves is checkmate, with moves is check; no moves
// without attack is stalemate; otherwise in progress unless neither side
// can ever mate.
func (g *Game) computeStatus() Status {
	checked := g.board.IsKingChecked(g.turn)
	hasMoves := len(g.board.LegalMoves(g.turn, g.enPassant)) > 0
	switch {
	case checked && !hasMoves:
		return StatusCheckmate
	case checked:
		return StatusCheck
	case !hasMoves:
		return StatusStalemate
	case g.insufficientMaterial():
		return StatusDraw
	default:
		return StatusInProgress
	}
}

// insufficientMaterial reports the dead positions tracked here: K vs K,
// K+B vs K, and K+N vs K.
func (g *Game) insufficientMaterial() bool {
	var minors int
	for _, p := range g.board.Pieces(board.SideUnknown) {
		switch p.Type {
		case board.PieceKing:
		case board.PieceBishop, board.PieceKnight:
			minors++
		default:
			return false
		}
	}
	return minors <= 1
}

// Copy produces a fully independent deep clone: new board, new piece
// records, copied history. Safe to hand to persistence or a UI thread.
func (g *Game) Copy() *Game {
	players := make(map[board.Side]PlayerInfo, len(g.players))
	for s, info := range g.players {
		players[s] = info
	}
	return &Game{
		id:        g.id,
		board:     g.board.Clone(),
		turn:      g.turn,
		enPassant: g.enPassant,
		history:   g.History(),
		status:    g.status,
		players:   players,
	}
}

// FEN serializes the current position. The halfmove clock is reconstructed
// from history (the state machine itself does not track the fifty-move
// rule).
func (g *Game) FEN() string {
	var halfMoves uint64
	for i := len(g.history) - 1; i >= 0; i-- {
		mv := g.history[i]
		if mv.Piece == board.PiecePawn || mv.IsCapture() {
			break
		}
		halfMoves++
	}
	rec := &board.FENRecord{
		Board:         g.board,
		Turn:          g.turn,
		EnPassant:     g.enPassant,
		HalfMoveClock: halfMoves,
		FullMoveClock: uint64(len(g.history)/2) + 1,
	}
	return rec.FEN()
}
