package game

import "fmt"

// Action places Token on Cell. It is only meaningful for the state that generated it.
type Action struct {
	Cell  int
	Token Token
}

func (a Action) Row() int {
	return a.Cell / Cols
}

func (a Action) Col() int {
	return a.Cell % Cols
}

func (a Action) String() string {
	return fmt.Sprintf("%s -> row %d, col %d", a.Token, a.Row()+1, a.Col()+1)
}
