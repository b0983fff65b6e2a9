// Package cli implements the interactive front end: a line-oriented command
// interface over a single game, with save/load/rollback through a store.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/game"
	"github.com/4g3nt81lly/smartchess/position"
	"github.com/4g3nt81lly/smartchess/store"
)

type options struct {
	storeDir string
}

type Option func(*options)

// WithStoreDir sets the directory used by the save/load/rollback commands.
func WithStoreDir(dir string) Option {
	return func(o *options) {
		o.storeDir = dir
	}
}

// Interface drives one game per session from a command stream.
type Interface struct {
	game    *game.Game
	options options

	in  io.Reader
	out io.Writer
}

func NewInterface(in io.Reader, out io.Writer, opts ...Option) *Interface {
	i := &Interface{
		options: options{storeDir: "games"},
		in:      in,
		out:     out,
	}
	for _, f := range opts {
		f(&i.options)
	}
	return i
}

// Run reads commands until quit or EOF. Errors from individual commands are
// reported and do not end the session.
func (i *Interface) Run() error {
	if err := i.commandNew(nil); err != nil {
		return err
	}
	i.println(Draw(i.game.Board()))
	i.println(Describe(i.game))

	reader := bufio.NewReader(i.in)
	for {
		i.print("> ")
		line, err := reader.ReadString('\n')
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		args := strings.Fields(line)
		if args[0] == "quit" {
			return nil
		}
		if err := i.dispatch(args[0], args[1:]); err != nil {
			i.println("error:", err)
		}
	}
}

func (i *Interface) dispatch(cmd string, args []string) error {
	switch cmd {
	case "new":
		if err := i.commandNew(args); err != nil {
			return err
		}
		i.println(Draw(i.game.Board()))
		i.println(Describe(i.game))
		return nil
	case "move":
		return i.commandMove(args)
	case "moves":
		return i.commandMoves(args)
	case "board":
		i.println(Draw(i.game.Board()))
		return nil
	case "status":
		i.println(Describe(i.game))
		return nil
	case "fen":
		i.println(i.game.FEN())
		return nil
	case "history":
		return i.commandHistory()
	case "save":
		return i.commandSave()
	case "load":
		return i.commandLoad(args)
	case "rollback":
		return i.commandRollback(args)
	case "list":
		return i.commandList()
	case "help":
		i.printHelp()
		return nil
	default:
		return fmt.Errorf("unknown command %q, try help", cmd)
	}
}

func (i *Interface) commandNew(args []string) error {
	var opts []game.GameOption
	if len(args) > 0 {
		opts = append(opts, game.WithFEN(strings.Join(args, " ")))
	}
	g, err := game.NewGame(opts...)
	if err != nil {
		return err
	}
	i.game = g
	return nil
}

func (i *Interface) commandMove(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: move <from><to>[promotion], e.g. move e2e4")
	}
	mv, err := i.game.ParseMove(args[0])
	if err != nil {
		return err
	}
	if err := i.game.SubmitMove(mv); err != nil {
		return err
	}
	i.println(fmt.Sprintf("%s: %s", mv.Side, mv.Algebra()))
	i.println(Draw(i.game.Board()))
	i.println(Describe(i.game))
	return nil
}

func (i *Interface) commandMoves(args []string) error {
	var mvs []board.Movement
	if len(args) == 1 {
		pos, err := position.FromNotation(args[0])
		if err != nil {
			return err
		}
		mvs = i.game.LegalMovesFrom(pos)
	} else {
		mvs = i.game.LegalMoves()
	}
	if len(mvs) == 0 {
		i.println("no legal moves")
		return nil
	}
	for _, mv := range mvs {
		i.println(fmt.Sprintf("%-6s %s", mv.UCI(), mv.Algebra()))
	}
	return nil
}

func (i *Interface) commandHistory() error {
	for n, mv := range i.game.History() {
		i.println(fmt.Sprintf("%3d. %s %s", n/2+1, mv.Side, mv.Algebra()))
	}
	return nil
}

func (i *Interface) commandSave() error {
	st, err := store.New(i.options.storeDir)
	if err != nil {
		return err
	}
	if err := st.Save(i.game); err != nil {
		return err
	}
	i.println("saved", i.game.ID())
	return nil
}

func (i *Interface) commandLoad(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: load <id>")
	}
	st, err := store.New(i.options.storeDir)
	if err != nil {
		return err
	}
	g, err := st.Load(args[0])
	if err != nil {
		return err
	}
	i.game = g
	i.println(Draw(i.game.Board()))
	i.println(Describe(i.game))
	return nil
}

func (i *Interface) commandRollback(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: rollback <id>")
	}
	st, err := store.New(i.options.storeDir)
	if err != nil {
		return err
	}
	g, err := st.Rollback(args[0])
	if err != nil {
		return err
	}
	i.game = g
	i.println(Draw(i.game.Board()))
	i.println(Describe(i.game))
	return nil
}

func (i *Interface) commandList() error {
	st, err := store.New(i.options.storeDir)
	if err != nil {
		return err
	}
	ids, err := st.List()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		i.println("no saved games")
		return nil
	}
	for _, id := range ids {
		i.println(id)
	}
	return nil
}

func (i *Interface) printHelp() {
	i.println(strings.TrimSpace(`
new [fen]        start a new game, optionally from a FEN position
move <uci>       submit a move, e.g. move e2e4 or move e7e8q
moves [square]   list legal moves, optionally for one square
board            draw the board
status           show whose turn it is and the game status
fen              print the current position as FEN
history          print the applied moves
save             save the game to the store
load <id>        load a saved game
rollback <id>    restore a saved game's checkpoint
list             list saved games
quit             exit
`))
}

func (i *Interface) println(a ...any) {
	_, _ = fmt.Fprintln(i.out, a...)
}

func (i *Interface) print(a ...any) {
	_, _ = fmt.Fprint(i.out, a...)
}
