package searcher

import (
	"math"

	"connect3/game"
	"connect3/meta"
	"connect3/metrics"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInvariant marks a broken tree construction or evaluation, never bad input.
	ErrInvariant = errors.New("search invariant violated")
	ErrGameOver  = errors.New("no moves left to search")
)

type Option func(m *Minimax)

// Minimax is a depth-bounded minimax searcher, optionally with alpha-beta pruning.
// It keeps no state between searches apart from its metrics collector.
type Minimax struct {
	depth     int
	pruning   bool
	collector metrics.Collector
}

type Result struct {
	Action game.Action
	Value  int
	Metric metrics.SearchMetric
}

// WithDepth sets the ply budget of the tree.
func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

func WithPruning() Option {
	return func(m *Minimax) {
		m.pruning = true
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.collector = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:     meta.DefaultDepth,
		collector: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	return m
}

func (m *Minimax) Depth() int {
	return m.depth
}

func (m *Minimax) Pruning() bool {
	return m.pruning
}

// Search returns the action player should take in state. Ties between equally valued
// children go to the first one generated.
func (m *Minimax) Search(state game.State, player game.Token) (Result, error) {
	if state.IsGameOver() {
		return Result{}, errors.Wrapf(ErrGameOver, "search %q", state.String())
	}

	m.collector.Start(m.depth, m.pruning)
	root, err := buildTree(state, player, m.depth, m.collector)
	if err != nil {
		return Result{}, err
	}

	e := evaluator{player: player, collector: m.collector}
	var value int
	if m.pruning {
		value = e.maximizeAB(root, m.depth, math.MinInt, math.MaxInt)
	} else {
		value = e.maximize(root, m.depth)
	}

	chosen := bestChild(root, value)
	if chosen == nil {
		return Result{}, errors.Wrapf(ErrInvariant, "no child of %q has the root value %d", state.String(), value)
	}
	action, ok := recoverAction(state, player, chosen.state)
	if !ok {
		return Result{}, errors.Wrapf(ErrInvariant, "no %s action leads from %q to %q", player, state.String(), chosen.state.String())
	}

	metric := m.collector.Complete()
	log.Debug().
		Str("player", player.String()).
		Str("action", action.String()).
		Int("value", value).
		Bool("pruning", m.pruning).
		Int("nodes", metric.NodesBuilt).
		Int("evaluated", metric.NodesEvaluated).
		Int("cutoffs", metric.Cutoffs).
		Dur("duration", metric.Duration).
		Msg("search complete")

	return Result{Action: action, Value: value, Metric: metric}, nil
}

func bestChild(root *node, value int) *node {
	for _, child := range root.children {
		if child.value == value {
			return child
		}
	}
	return nil
}

// recoverAction finds the action that turns state into target.
func recoverAction(state game.State, player game.Token, target game.State) (game.Action, bool) {
	for _, action := range state.Actions(player) {
		next, err := state.Execute(action)
		if err == nil && next.Equal(target) {
			return action, true
		}
	}
	return game.Action{}, false
}
