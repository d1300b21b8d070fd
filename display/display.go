package display

import (
	"fmt"
	"io"
	"strings"

	"connect3/agent"
	"connect3/engine"
	"connect3/game"

	"github.com/muesli/termenv"
)

const separator = "+---+---+---+"

// Printer renders boards and match results. Colors are dropped when disabled or
// when the writer is not a terminal.
type Printer struct {
	out *termenv.Output
}

func NewPrinter(w io.Writer, color bool) *Printer {
	var options []termenv.OutputOption
	if !color {
		options = append(options, termenv.WithProfile(termenv.Ascii))
	}
	return &Printer{out: termenv.NewOutput(w, options...)}
}

func (p *Printer) token(t game.Token) string {
	switch t {
	case game.XToken:
		return p.out.String(t.String()).Foreground(termenv.ANSIRed).Bold().String()
	case game.OToken:
		return p.out.String(t.String()).Foreground(termenv.ANSIBlue).Bold().String()
	default:
		return t.String()
	}
}

func (p *Printer) PrintBoard(state game.State) {
	var sb strings.Builder
	sb.WriteString(separator + "\n")
	for r := 0; r < game.Rows; r++ {
		sb.WriteString("|")
		for c := 0; c < game.Cols; c++ {
			sb.WriteString(" " + p.token(state.At(r*game.Cols+c)) + " |")
		}
		sb.WriteString("\n" + separator + "\n")
	}
	fmt.Fprint(p.out, sb.String())
}

func (p *Printer) PrintUpdate(u engine.Update) {
	fmt.Fprintf(p.out, "Move %d: %s\n", u.Step, u.Move)
	p.PrintBoard(u.State)
}

func (p *Printer) PrintResult(result engine.Result) {
	if result.IsDraw() {
		fmt.Fprintln(p.out, "The game is a draw!")
		return
	}
	fmt.Fprintf(p.out, "%s wins the game!\n", p.token(result.Winner))
}

// PrintHistory prints every state of the match, move 0 being the initial board.
func (p *Printer) PrintHistory(history []game.State) {
	for i, state := range history {
		fmt.Fprintf(p.out, "Move %d:\n", i)
		p.PrintBoard(state)
	}
}

func (p *Printer) PrintCatalog(catalog []agent.Entry) {
	fmt.Fprintln(p.out, "All valid player types:")
	for _, entry := range catalog {
		fmt.Fprintf(p.out, "%-9s%-4s%s\n", entry.Name, "-", entry.Description)
	}
}
