package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/cli"
)

const (
	exitOK  = 0
	exitErr = 1
)

var (
	storeDir = flag.String("store", "games", "directory for saved games")

	movegenRun = flag.Bool("movegen", false, "run movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode (random self-play)")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")
	stepWhite = flag.String("step.white", "random", "white player kind in step mode")
	stepBlack = flag.String("step.black", "greedy", "black player kind in step mode")

	perftRun   = flag.Bool("perft", false, "run perft mode")
	perftDepth = flag.Int("perft.depth", 4, "perft depth")
)

func main() {
	flag.Parse()

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen)
	}
	if *stepRun {
		return step(fen, *stepSeed, *stepWhite, *stepBlack)
	}
	if *perftRun {
		return perft(fen, *perftDepth)
	}

	return cli.NewInterface(os.Stdin, os.Stdout, cli.WithStoreDir(*storeDir)).Run()
}
