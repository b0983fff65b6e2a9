package main

import (
	"fmt"
	"log"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/cli"
	"github.com/4g3nt81lly/smartchess/game"
	"github.com/4g3nt81lly/smartchess/player"
)

// step plays two automated players against each other until the game
// terminates, drawing each position.
func step(fen string, seed int64, whiteKind, blackKind string) error {
	log.Println("============ step")
	g, err := game.NewGame(
		game.WithFEN(fen),
		game.WithPlayers(
			game.PlayerInfo{Name: whiteKind},
			game.PlayerInfo{Name: blackKind},
		),
	)
	if err != nil {
		return err
	}

	players := map[board.Side]player.Player{}
	for s, kind := range map[board.Side]string{
		board.SideWhite: whiteKind,
		board.SideBlack: blackKind,
	} {
		p, err := buildPlayer(kind, s, seed)
		if err != nil {
			return err
		}
		players[s] = p
	}

	for ply := 0; !g.Status().IsTerminal(); ply++ {
		legal := g.LegalMoves()
		mv, err := players[g.Turn()].ChooseMove(g, legal)
		if err != nil {
			return err
		}
		if err := g.SubmitMove(mv); err != nil {
			return err
		}
		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, mv.Side, mv.Algebra())
		fmt.Println(cli.Draw(g.Board()))
		fmt.Println(g.FEN())
	}

	fmt.Println()
	fmt.Println(cli.Describe(g))
	return nil
}

// buildPlayer goes through the registry, seeding the built-ins directly so
// step runs are reproducible.
func buildPlayer(kind string, s board.Side, seed int64) (player.Player, error) {
	switch kind {
	case "random":
		return player.NewRandom(s, player.WithSeed(seed)), nil
	case "greedy":
		return player.NewGreedy(s, player.WithSeed(seed)), nil
	default:
		return player.New(kind, s)
	}
}
