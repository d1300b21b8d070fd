package agent

import (
	"connect3/game"

	"github.com/pkg/errors"
)

var (
	ErrNoMoves       = errors.New("no legal moves available")
	ErrAborted       = errors.New("move entry aborted")
	ErrUnknownPlayer = errors.New("unknown player type")
)

type Agent interface {
	// FindMove returns the action to play in state, which must not be terminal
	FindMove(state game.State) (game.Action, error)
}
