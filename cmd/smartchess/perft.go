package main

import (
	"fmt"
	"log"
	"sync"

	"github.com/4g3nt81lly/smartchess/bench"
)

// perft runs a parallel perft at the given depth, streaming per-move
// subtotals.
func perft(fen string, depth int) error {
	log.Println("============ perft")

	out := make(chan string, 64)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for s := range out {
			fmt.Println(s)
		}
	}()

	_, err := bench.Perft(depth, fen, true, true, out)
	close(out)
	wg.Wait()
	return err
}
