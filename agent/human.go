package agent

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"connect3/game"

	"github.com/pkg/errors"
)

// Human lists the legal actions on out and reads the chosen index from in,
// one line per attempt. Two humans on one terminal share the same scanner.
type Human struct {
	token game.Token
	in    *bufio.Scanner
	out   io.Writer
}

func NewHuman(token game.Token, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{token: token, in: in, out: out}
}

func (h *Human) FindMove(state game.State) (game.Action, error) {
	actions := state.Actions(h.token)
	if len(actions) == 0 {
		return game.Action{}, errors.Wrapf(ErrNoMoves, "human %s on %q", h.token, state.String())
	}
	for i, action := range actions {
		fmt.Fprintf(h.out, "%d: %s\n", i, action)
	}

	last := len(actions) - 1
	for {
		fmt.Fprintf(h.out, "Please choose an action (a number 0-%d): ", last)
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return game.Action{}, errors.Wrap(err, "reading move")
			}
			fmt.Fprintln(h.out, "EOF, exiting.")
			return game.Action{}, errors.Wrapf(ErrAborted, "end of input for %s", h.token)
		}
		if i, ok := parseChoice(h.in.Text(), last); ok {
			return actions[i], nil
		}
		fmt.Fprint(h.out, "Error - invalid choice. ")
	}
}

// parseChoice accepts a plain non-negative integer no greater than last.
func parseChoice(line string, last int) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" || strings.IndexFunc(line, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return 0, false
	}
	i, err := strconv.Atoi(line)
	if err != nil || i > last {
		return 0, false
	}
	return i, true
}
