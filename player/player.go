// Package player defines the contract through which a collaborator chooses
// one movement from the engine's legal list, plus a registry mapping player
// kind names to factories. The engine makes no assumption about how the
// choice is produced.
package player

import (
	"sort"
	"sync"

	"github.com/pkg/errors"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/game"
)

var (
	// ErrNoLegalMoves indicates a player was asked to choose from an empty
	// legal list.
	ErrNoLegalMoves = errors.New("no legal moves to choose from")

	// ErrUnknownKind indicates no factory is registered under the name.
	ErrUnknownKind = errors.New("unknown player kind")
)

// Player chooses exactly one movement from the legal list it is handed. The
// game is a read-only view; players must never mutate it.
type Player interface {
	Name() string
	Side() board.Side
	ChooseMove(g *game.Game, legal []board.Movement) (board.Movement, error)
}

// Factory builds a player of a registered kind for the given side.
type Factory func(side board.Side) (Player, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register binds a kind name to a factory. Registering a taken name fails.
func Register(kind string, f Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, ok := registry[kind]; ok {
		return errors.Errorf("player kind %q already registered", kind)
	}
	registry[kind] = f
	return nil
}

// New builds a player of the named kind.
func New(kind string, side board.Side) (Player, error) {
	registryMu.RLock()
	f, ok := registry[kind]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.Wrap(ErrUnknownKind, kind)
	}
	return f(side)
}

// Kinds returns the registered kind names, sorted.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	kinds := make([]string, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
