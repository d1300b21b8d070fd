package searcher

import (
	"connect3/game"
	"connect3/metrics"

	"github.com/pkg/errors"
)

// buildTree expands the tree breadth-first for depth plies below root. The player
// moves at ply 1, the opponent at ply 2, and so on. Terminal states are never
// expanded, so the frontier may run dry before the ply budget does.
func buildTree(state game.State, player game.Token, depth int, collector metrics.Collector) (*node, error) {
	root := newNode(nil, state)
	collector.AddNodes(1)

	frontier := []*node{root}
	mover := player
	for ply := 1; ply <= depth && len(frontier) > 0; ply++ {
		var next []*node
		for _, parent := range frontier {
			if parent.state.IsGameOver() {
				continue
			}
			for _, action := range parent.state.Actions(mover) {
				childState, err := parent.state.Execute(action)
				if err != nil {
					return nil, errors.Wrapf(ErrInvariant, "expanding ply %d: %v", ply, err)
				}
				next = append(next, parent.addChild(childState))
			}
		}
		collector.AddNodes(len(next))
		frontier = next
		mover = mover.Opponent()
	}
	return root, nil
}
