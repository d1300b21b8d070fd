package game

import (
	"strings"

	"github.com/pkg/errors"
)

const rowSeparator = "|"

// State is an immutable board position; Execute always returns a new copy.
// States are comparable with ==, which is cell-by-cell equality.
type State struct {
	cells [Cells]Token
}

// NewState returns the empty board.
func NewState() State {
	return State{}
}

// ParseState reads the text form produced by State.String, e.g. "X  | O |  X".
func ParseState(s string) (State, error) {
	var st State
	rows := strings.Split(s, rowSeparator)
	if len(rows) != Rows {
		return st, errors.Errorf("parse state %q: expected %d rows, got %d", s, Rows, len(rows))
	}
	for r, row := range rows {
		if len(row) != Cols {
			return st, errors.Errorf("parse state %q: row %d has %d cells, expected %d", s, r, len(row), Cols)
		}
		for c := 0; c < Cols; c++ {
			switch row[c] {
			case ' ':
				st.cells[r*Cols+c] = Empty
			case 'X', 'x':
				st.cells[r*Cols+c] = XToken
			case 'O', 'o':
				st.cells[r*Cols+c] = OToken
			default:
				return st, errors.Errorf("parse state %q: unknown cell %q in row %d", s, row[c], r)
			}
		}
	}
	return st, nil
}

// MustParseState is ParseState for fixed boards known to be valid.
func MustParseState(s string) State {
	st, err := ParseState(s)
	if err != nil {
		panic(err)
	}
	return st
}

func (s State) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteString(rowSeparator)
		}
		for c := 0; c < Cols; c++ {
			sb.WriteString(s.cells[r*Cols+c].String())
		}
	}
	return sb.String()
}

// At returns the token on cell i.
func (s State) At(i int) Token {
	return s.cells[i]
}

// Actions lists one action per empty cell, in board-scan order. A token other than
// X or O has no actions.
func (s State) Actions(token Token) []Action {
	if !token.valid() {
		return nil
	}
	actions := make([]Action, 0, Cells)
	for i, cell := range s.cells {
		if cell == Empty {
			actions = append(actions, Action{Cell: i, Token: token})
		}
	}
	return actions
}

// Execute returns the state after the action. The receiver is left untouched.
func (s State) Execute(a Action) (State, error) {
	if a.Cell < 0 || a.Cell >= Cells {
		return s, errors.Wrapf(ErrOutOfRange, "execute %v", a)
	}
	if !a.Token.valid() {
		return s, errors.Wrapf(ErrInvalidToken, "execute cell %d", a.Cell)
	}
	if s.cells[a.Cell] != Empty {
		return s, errors.Wrapf(ErrOccupied, "execute %v on %q", a, s.String())
	}
	next := s
	next.cells[a.Cell] = a.Token
	return next, nil
}

// Winner returns the token owning a full line, or Empty if there is none.
// Empty covers both an ongoing game and a draw; check IsGameOver first.
func (s State) Winner() Token {
	for _, line := range lines {
		t := s.cells[line[0]]
		if t != Empty && t == s.cells[line[1]] && t == s.cells[line[2]] {
			return t
		}
	}
	return Empty
}

func (s State) IsGameOver() bool {
	return s.Winner() != Empty || s.CountEmpties() == 0
}

func (s State) CountEmpties() int {
	n := 0
	for _, cell := range s.cells {
		if cell == Empty {
			n++
		}
	}
	return n
}

func (s State) Equal(other State) bool {
	return s.cells == other.cells
}

// Score is the terminal value of the state for player: win, loss or draw.
// It is only meaningful when IsGameOver is true.
func (s State) Score(player Token) int {
	switch s.Winner() {
	case Empty:
		return DrawScore
	case player:
		return WinScore
	default:
		return LossScore
	}
}
