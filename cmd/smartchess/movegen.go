package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/4g3nt81lly/smartchess/cli"
	"github.com/4g3nt81lly/smartchess/game"
)

// movegen dumps the legal moves of a position.
func movegen(fen string) error {
	log.Println("============ movegen")
	g, err := game.NewGame(game.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", g.Turn())
	fmt.Println(cli.Draw(g.Board()))
	fmt.Println(g.Status())

	mvs := g.LegalMoves()
	for i, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (kind=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), mv.Algebra(),
			mv.Side, mv.Piece, mv.From, mv.To, mv.Kind, mv.Promote)
	}
	return nil
}
