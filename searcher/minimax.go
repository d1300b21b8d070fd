package searcher

import (
	"math"

	"connect3/game"
	"connect3/metrics"
)

// evaluator assigns values bottom-up from the perspective of player, who moves at
// every maximizing level.
type evaluator struct {
	player    game.Token
	collector metrics.Collector
}

// leaf reports whether n is scored directly instead of from its children, and its score.
// A finished game scores win/loss/draw. A node at the depth limit scores the number of
// built descendants plus its empty cells.
func (e evaluator) leaf(n *node, depth int) (int, bool) {
	if n.state.IsGameOver() {
		e.collector.AddTerminalLeaf()
		return n.state.Score(e.player), true
	}
	if depth <= 0 || n.isLeaf() {
		e.collector.AddHorizonLeaf()
		return n.descendants() + n.state.CountEmpties(), true
	}
	return 0, false
}

func (e evaluator) maximize(n *node, depth int) int {
	e.collector.AddEvaluated()
	if v, ok := e.leaf(n, depth); ok {
		n.value = v
		return v
	}

	best := math.MinInt
	for _, child := range n.children {
		best = max(best, e.minimize(child, depth-1))
	}
	n.value = best
	return best
}

func (e evaluator) minimize(n *node, depth int) int {
	e.collector.AddEvaluated()
	if v, ok := e.leaf(n, depth); ok {
		n.value = v
		return v
	}

	best := math.MaxInt
	for _, child := range n.children {
		best = min(best, e.maximize(child, depth-1))
	}
	n.value = best
	return best
}

// maximizeAB is maximize with alpha-beta cutoffs. Children after a cutoff are not
// visited and keep their default value.
func (e evaluator) maximizeAB(n *node, depth, alpha, beta int) int {
	e.collector.AddEvaluated()
	if v, ok := e.leaf(n, depth); ok {
		n.value = v
		return v
	}

	best := math.MinInt
	for _, child := range n.children {
		best = max(best, e.minimizeAB(child, depth-1, alpha, beta))
		alpha = max(alpha, best)
		if alpha >= beta {
			e.collector.AddCutoff()
			break
		}
	}
	n.value = best
	return best
}

func (e evaluator) minimizeAB(n *node, depth, alpha, beta int) int {
	e.collector.AddEvaluated()
	if v, ok := e.leaf(n, depth); ok {
		n.value = v
		return v
	}

	best := math.MaxInt
	for _, child := range n.children {
		best = min(best, e.maximizeAB(child, depth-1, alpha, beta))
		beta = min(beta, best)
		if alpha >= beta {
			e.collector.AddCutoff()
			break
		}
	}
	n.value = best
	return best
}
