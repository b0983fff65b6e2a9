package player

import (
	"math/rand"
	"time"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/game"
)

func init() {
	_ = Register("random", func(side board.Side) (Player, error) {
		return NewRandom(side), nil
	})
	_ = Register("greedy", func(side board.Side) (Player, error) {
		return NewGreedy(side), nil
	})
}

// Random picks uniformly from the legal list.
type Random struct {
	side board.Side
	rng  *rand.Rand
}

type RandomOption func(*Random)

// WithSeed makes the player's choices reproducible.
func WithSeed(seed int64) RandomOption {
	return func(p *Random) {
		p.rng = rand.New(rand.NewSource(seed))
	}
}

func NewRandom(side board.Side, opts ...RandomOption) *Random {
	p := &Random{
		side: side,
		rng:  rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, f := range opts {
		f(p)
	}
	return p
}

func (p *Random) Name() string {
	return "random"
}

func (p *Random) Side() board.Side {
	return p.side
}

func (p *Random) ChooseMove(_ *game.Game, legal []board.Movement) (board.Movement, error) {
	if len(legal) == 0 {
		return board.Movement{}, ErrNoLegalMoves
	}
	return legal[p.rng.Intn(len(legal))], nil
}

// Greedy prefers captures and promotions, taking the most valuable victim
// first, and falls back to a uniform choice.
type Greedy struct {
	side board.Side
	rng  *rand.Rand
}

func NewGreedy(side board.Side, opts ...RandomOption) *Greedy {
	r := NewRandom(side, opts...)
	return &Greedy{side: side, rng: r.rng}
}

func (p *Greedy) Name() string {
	return "greedy"
}

func (p *Greedy) Side() board.Side {
	return p.side
}

var victimValue = map[board.PieceType]int{
	board.PiecePawn:   1,
	board.PieceKnight: 3,
	board.PieceBishop: 3,
	board.PieceRook:   5,
	board.PieceQueen:  9,
}

func (p *Greedy) ChooseMove(_ *game.Game, legal []board.Movement) (board.Movement, error) {
	if len(legal) == 0 {
		return board.Movement{}, ErrNoLegalMoves
	}
	best := -1
	var candidates []board.Movement
	for _, mv := range legal {
		score := 0
		if mv.IsCapture() {
			score += victimValue[mv.Captured]
		}
		if mv.Promote != board.PieceUnknown {
			score += victimValue[mv.Promote]
		}
		if score > best {
			best = score
			candidates = candidates[:0]
		}
		if score == best {
			candidates = append(candidates, mv)
		}
	}
	return candidates[p.rng.Intn(len(candidates))], nil
}
