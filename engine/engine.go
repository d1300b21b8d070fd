package engine

import (
	"slices"

	"connect3/agent"
	"connect3/game"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	ErrFinished    = errors.New("match is already finished")
	ErrIllegalMove = errors.New("illegal move")
)

type Status int

const (
	NotStarted Status = iota
	InProgress
	Finished
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case InProgress:
		return "in progress"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Update is published after every applied move.
type Update struct {
	Step  int
	Move  game.Action
	State game.State
}

type Result struct {
	Winner  game.Token   // game.Empty on a draw
	History []game.State // initial state first
	Moves   []game.Action
}

func (r Result) IsDraw() bool {
	return r.Winner == game.Empty
}

type Option func(e *Engine)

func WithInitialState(state game.State) Option {
	return func(e *Engine) {
		e.state = state
	}
}

func WithObserver(observe func(Update)) Option {
	return func(e *Engine) {
		if observe != nil {
			e.observe = observe
		}
	}
}

// Engine alternates two agents, X first, until the game is over.
type Engine struct {
	agents  [2]agent.Agent
	status  Status
	state   game.State
	history []game.State
	moves   []game.Action
	observe func(Update)
}

func New(first, second agent.Agent, options ...Option) *Engine {
	e := &Engine{
		agents:  [2]agent.Agent{first, second},
		state:   game.NewState(),
		observe: func(Update) {},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Engine) Status() Status {
	return e.status
}

func (e *Engine) State() game.State {
	return e.state
}

// History returns the states seen so far, initial state first.
func (e *Engine) History() []game.State {
	return append([]game.State(nil), e.history...)
}

// toMove derives the side to move from the board, so any legal initial state works.
func (e *Engine) toMove() (game.Token, agent.Agent) {
	x, o := 0, 0
	for i := 0; i < game.Cells; i++ {
		switch e.state.At(i) {
		case game.XToken:
			x++
		case game.OToken:
			o++
		}
	}
	if x > o {
		return game.OToken, e.agents[1]
	}
	return game.XToken, e.agents[0]
}

// Run plays until the game is over. The terminal check runs after every move, so
// the side that wins is never followed by another move. An agent failure stops the
// match with the moves played so far kept intact.
func (e *Engine) Run() (Result, error) {
	switch e.status {
	case Finished:
		return e.result(), ErrFinished
	case NotStarted:
		e.history = []game.State{e.state}
		e.status = InProgress
		log.Info().Msgf("match started on %q", e.state.String())
	}

	for !e.state.IsGameOver() {
		token, current := e.toMove()
		move, err := current.FindMove(e.state)
		if err != nil {
			return e.result(), errors.Wrapf(err, "player %s on move %d", token, len(e.moves)+1)
		}
		if !slices.Contains(e.state.Actions(token), move) {
			return e.result(), errors.Wrapf(ErrIllegalMove, "player %s played %v on %q", token, move, e.state.String())
		}
		next, err := e.state.Execute(move)
		if err != nil {
			return e.result(), errors.Wrapf(err, "player %s on move %d", token, len(e.moves)+1)
		}

		e.state = next
		e.history = append(e.history, next)
		e.moves = append(e.moves, move)
		log.Debug().Msgf("move %d: %s", len(e.moves), move)
		e.observe(Update{Step: len(e.moves), Move: move, State: next})
	}

	e.status = Finished
	result := e.result()
	if result.IsDraw() {
		log.Info().Msgf("match finished in a draw after %d moves", len(e.moves))
	} else {
		log.Info().Msgf("match finished: %s wins after %d moves", result.Winner, len(e.moves))
	}
	return result, nil
}

func (e *Engine) result() Result {
	return Result{
		Winner:  e.state.Winner(),
		History: e.History(),
		Moves:   append([]game.Action(nil), e.moves...),
	}
}
