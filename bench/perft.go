// Package bench exhaustively counts move-generation nodes (perft), the
// standard way to validate a rules engine against published results.
package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/position"
)

// Counters aggregates leaf-level movement breakdowns alongside the node
// total.
type Counters struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
}

// Perft walks every legal movement sequence of the given depth from fen,
// streaming per-root-move subtotals and a summary line to out.
func Perft(depth int, fen string, parallel, verbose bool, out chan string) (*Counters, error) {
	rec, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	c := &Counters{}
	start := time.Now()
	run(rec.Board, rec.Turn, rec.EnPassant, depth, true, verbose, out, c)
	elapsed := time.Since(start)

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d chk=%d (%.3fs elapsed)",
				depth, c.Nodes, int(float64(c.Nodes)/elapsed.Seconds()),
				c.Captures, c.EnPassants, c.Castles, c.Promotions, c.Checks, elapsed.Seconds())
	}
	return c, nil
}

type perftFunc func(b *board.Board, turn board.Side, enPassant position.Pos,
	d int, root, verbose bool, out chan string, c *Counters) uint64

func countLeaf(b *board.Board, mv board.Movement, c *Counters) {
	atomic.AddUint64(&c.Nodes, 1)
	if mv.IsCapture() {
		atomic.AddUint64(&c.Captures, 1)
	}
	if mv.Kind == board.MovementEnPassant {
		atomic.AddUint64(&c.EnPassants, 1)
	}
	if mv.Kind == board.MovementCastle {
		atomic.AddUint64(&c.Castles, 1)
	}
	if mv.Promote != board.PieceUnknown {
		atomic.AddUint64(&c.Promotions, 1)
	}
	if mv.WillCheckOpponent(b) {
		atomic.AddUint64(&c.Checks, 1)
	}
}

func runPerft(b *board.Board, turn board.Side, enPassant position.Pos,
	d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	for _, mv := range b.LegalMoves(turn, enPassant) {
		var child uint64
		if d == 1 {
			countLeaf(b, mv, c)
			child = 1
		} else {
			bb := b.Clone()
			if err := bb.Apply(mv); err != nil {
				continue
			}
			child = runPerft(bb, turn.Opposite(), board.NextEnPassant(mv), d-1, false, verbose, out, c)
		}
		if verbose && root && out != nil {
			out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
		}
		sum += child
	}
	return sum
}

func runPerftParallel(b *board.Board, turn board.Side, enPassant position.Pos,
	d int, root, verbose bool, out chan string, c *Counters) uint64 {
	if d == 0 {
		atomic.AddUint64(&c.Nodes, 1)
		return 1
	}

	var sum uint64
	var wg sync.WaitGroup
	for _, mv := range b.LegalMoves(turn, enPassant) {
		mv := mv
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d == 1 {
				countLeaf(b, mv, c)
				child = 1
			} else {
				bb := b.Clone()
				if err := bb.Apply(mv); err != nil {
					return
				}
				child = runPerft(bb, turn.Opposite(), board.NextEnPassant(mv), d-1, false, verbose, out, c)
			}
			if verbose && root && out != nil {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum
}
