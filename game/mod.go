package game

import "github.com/pkg/errors"

const (
	Rows  = 3
	Cols  = 3
	Cells = Rows * Cols
)

// Token is the content of a cell. Empty doubles as the "no winner" sentinel.
type Token int8

const (
	Empty Token = iota
	XToken
	OToken
)

// Win, loss and draw scores from the searching token's perspective
const (
	WinScore  = 100
	LossScore = -WinScore
	DrawScore = 0
)

var (
	ErrOccupied     = errors.New("cell is already occupied")
	ErrOutOfRange   = errors.New("cell is out of range")
	ErrInvalidToken = errors.New("token must be X or O")
)

// lines lists every row, column and diagonal as cell indices
var lines = [...][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

func (t Token) String() string {
	switch t {
	case XToken:
		return "X"
	case OToken:
		return "O"
	default:
		return " "
	}
}

// Opponent returns the other player's token, or Empty for Empty.
func (t Token) Opponent() Token {
	switch t {
	case XToken:
		return OToken
	case OToken:
		return XToken
	default:
		return Empty
	}
}

func (t Token) valid() bool {
	return t == XToken || t == OToken
}
