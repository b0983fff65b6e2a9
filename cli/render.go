package cli

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/4g3nt81lly/smartchess/board"
	"github.com/4g3nt81lly/smartchess/game"
	"github.com/4g3nt81lly/smartchess/position"
)

var (
	darkSquare  = color.New(color.FgBlack, color.BgGreen)
	lightSquare = color.New(color.FgBlack, color.BgHiWhite)
	edgeLabel   = color.New(color.Bold)
	checkLabel  = color.New(color.FgRed, color.Bold)
)

// Draw renders the board with rank and file labels, rank 8 on top.
func Draw(b *board.Board) string {
	builder := strings.Builder{}
	for r := board.Height; r >= 1; r-- {
		_, _ = builder.WriteString(edgeLabel.Sprintf(" %d ", r))
		for f := int8(1); f <= board.Width; f++ {
			pos := position.Pos{File: f, Rank: r}
			sym := " "
			if p := b.PieceAt(pos); p != nil {
				sym = p.Type.SymbolUnicode(p.Side)
			}
			cell := lightSquare
			if pos.IsDark() {
				cell = darkSquare
			}
			_, _ = builder.WriteString(cell.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for _, f := range position.Files() {
		_, _ = builder.WriteString(edgeLabel.Sprintf(" %c ", f))
	}
	return builder.String()
}

// Describe summarizes the game's turn and status in one line.
func Describe(g *game.Game) string {
	switch g.Status() {
	case game.StatusCheck:
		return fmt.Sprintf("%s to move, %s", g.Turn(), checkLabel.Sprint("in check"))
	case game.StatusCheckmate:
		return fmt.Sprintf("checkmate, %s wins", g.Turn().Opposite())
	case game.StatusStalemate:
		return "stalemate"
	case game.StatusDraw:
		return "draw by insufficient material"
	default:
		return fmt.Sprintf("%s to move", g.Turn())
	}
}
