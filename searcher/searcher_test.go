package searcher

import (
	"errors"
	"math"
	"testing"

	"connect3/game"
	"connect3/metrics"

	"github.com/stretchr/testify/require"
)

/**
- evaluation:
	- terminal: +100 / -100 / 0 from the searching token, antisymmetric
	- depth limit: descendants + empties
	- internal: max / min alternation, values stored on nodes
- search:
	- happy path: completing move, empty board regression
	- tie-break: first child in generation order
	- edge case: terminal state -> ErrGameOver
	- invariant: unmatched value / unreachable state
- alpha-beta: same root value and move, fewer evaluated nodes
*/

var positions = []string{
	"   |   |   ",
	"X  |   |   ",
	"X  | O |   ",
	"XX |OO |   ",
	"X O| X |O  ",
	"OO |X X|   ",
	"XO |OX |   ",
	"X  |XO |O  ",
	"XOX|OXO|O  ",
	" X |   |  O",
}

func toMove(s game.State) game.Token {
	if countTokens(s, game.XToken) > countTokens(s, game.OToken) {
		return game.OToken
	}
	return game.XToken
}

func TestEvaluatorLeaf(t *testing.T) {
	t.Run("terminal values are antisymmetric", func(t *testing.T) {
		for _, board := range []string{"XXX|OO |   ", "O X|XO |  O", "XOX|OXO|OXO"} {
			n := newNode(nil, game.MustParseState(board))

			x, ok := evaluator{player: game.XToken, collector: metrics.NewDummyCollector()}.leaf(n, 3)
			require.True(t, ok, "Finished game should be a leaf")
			o, ok := evaluator{player: game.OToken, collector: metrics.NewDummyCollector()}.leaf(n, 3)
			require.True(t, ok, "Finished game should be a leaf")

			require.Equal(t, -x, o, "Swapping the searching token should negate the value")
			require.Contains(t, []int{game.WinScore, game.LossScore, game.DrawScore}, x)
		}
	})

	t.Run("depth-limit leaf counts descendants and empties", func(t *testing.T) {
		n := newNode(nil, game.MustParseState("X  | O |   "))
		for _, action := range n.state.Actions(game.XToken)[:2] {
			next, err := n.state.Execute(action)
			require.NoError(t, err)
			n.addChild(next)
		}

		v, ok := evaluator{player: game.XToken, collector: metrics.NewDummyCollector()}.leaf(n, 0)

		require.True(t, ok, "Node at the depth limit should be a leaf")
		require.Equal(t, 2+7, v)
	})

	t.Run("internal node above the depth limit is not a leaf", func(t *testing.T) {
		n := newNode(nil, game.NewState())
		n.addChild(game.MustParseState("X  |   |   "))

		_, ok := evaluator{player: game.XToken, collector: metrics.NewDummyCollector()}.leaf(n, 1)

		require.False(t, ok)
	})
}

func TestEvaluatorMinimax(t *testing.T) {
	t.Run("values alternate between max and min levels", func(t *testing.T) {
		state := game.MustParseState("XOX|OXO|O  ")
		root, err := buildTree(state, game.XToken, 2, metrics.NewDummyCollector())
		require.NoError(t, err)

		value := evaluator{player: game.XToken, collector: metrics.NewDummyCollector()}.maximize(root, 2)

		require.Equal(t, game.WinScore, value, "Player should take the diagonal")
		require.Equal(t, game.DrawScore, root.children[0].value, "Cell 7 leads to a draw")
		require.Equal(t, game.WinScore, root.children[1].value, "Cell 8 wins")
		require.Equal(t, value, root.value, "Root should store its value")
	})

	t.Run("minimizing level assumes the opponent's best reply", func(t *testing.T) {
		// O threatens cell 2; X moves and O replies
		state := game.MustParseState("OO |X  |X  ")
		root, err := buildTree(state, game.XToken, 2, metrics.NewDummyCollector())
		require.NoError(t, err)

		value := evaluator{player: game.XToken, collector: metrics.NewDummyCollector()}.maximize(root, 2)

		for _, child := range root.children[1:] {
			require.Equal(t, game.LossScore, child.value, "Not blocking cell 2 should lose")
		}
		require.Greater(t, root.children[0].value, game.LossScore, "Blocking cell 2 should not lose")
		require.Equal(t, root.children[0].value, value)
	})
}

func TestMinimaxSearch(t *testing.T) {
	t.Run("completing a line is chosen", func(t *testing.T) {
		state := game.MustParseState("XX |OO |   ")

		got, err := NewMinimax().Search(state, game.XToken)

		require.NoError(t, err)
		require.Equal(t, game.Action{Cell: 2, Token: game.XToken}, got.Action)
		require.Equal(t, game.WinScore, got.Value)
	})

	t.Run("completing a line late in scan order with a one ply budget", func(t *testing.T) {
		state := game.MustParseState("OX |OX |   ")

		got, err := NewMinimax(WithDepth(1)).Search(state, game.XToken)

		require.NoError(t, err)
		require.Equal(t, game.Action{Cell: 7, Token: game.XToken}, got.Action, "Cell 7 completes the middle column")
		require.Equal(t, game.WinScore, got.Value)
	})

	t.Run("empty board explores every ply", func(t *testing.T) {
		m := NewMinimax(WithMetrics())

		got, err := m.Search(game.NewState(), game.XToken)

		require.NoError(t, err)
		require.Contains(t, game.NewState().Actions(game.XToken), got.Action)
		require.Equal(t, game.Action{Cell: 0, Token: game.XToken}, got.Action, "Ties should go to the first child")
		require.Equal(t, 5, got.Value, "Ply 4 leaves have no children and five empties")
		require.Equal(t, 1+9+72+504+3024, got.Metric.NodesBuilt)
		require.Equal(t, 1+9+72+504+3024, got.Metric.NodesEvaluated, "Every built node should be evaluated")
		require.Equal(t, 3024, got.Metric.HorizonLeaves)
		require.Zero(t, got.Metric.TerminalLeaves)
		require.Zero(t, got.Metric.Cutoffs)
		require.Equal(t, 4, got.Metric.Depth)
	})

	t.Run("loss on the last ply is seen", func(t *testing.T) {
		// Every O reply leaves X a fork, and X completes a line on ply 4
		for _, board := range []string{"X O|X  |   ", " O | XX|   "} {
			got, err := NewMinimax().Search(game.MustParseState(board), game.OToken)

			require.NoError(t, err, "board %q", board)
			require.Equal(t, game.LossScore, got.Value, "O cannot avoid losing on %q", board)
		}
	})

	t.Run("tie goes to the first child in generation order", func(t *testing.T) {
		// Cell 2 blocks and threatens two lines, so it wins by force before the immediate win at cell 4
		state := game.MustParseState("OO |X X|   ")

		got, err := NewMinimax().Search(state, game.XToken)

		require.NoError(t, err)
		require.Equal(t, game.WinScore, got.Value)
		require.Equal(t, game.Action{Cell: 2, Token: game.XToken}, got.Action)
	})

	t.Run("terminal state cannot be searched", func(t *testing.T) {
		_, err := NewMinimax().Search(game.MustParseState("XXX|OO |   "), game.OToken)
		require.True(t, errors.Is(err, ErrGameOver))

		_, err = NewMinimax().Search(game.MustParseState("XOX|OXO|OXO"), game.XToken)
		require.True(t, errors.Is(err, ErrGameOver))
	})

	t.Run("returned action is always legal", func(t *testing.T) {
		for _, board := range positions {
			state := game.MustParseState(board)
			player := toMove(state)
			for _, depth := range []int{1, 2, 3, 4} {
				got, err := NewMinimax(WithDepth(depth)).Search(state, player)
				require.NoError(t, err, "board %q depth %d", board, depth)
				require.Contains(t, state.Actions(player), got.Action, "board %q depth %d", board, depth)
			}
		}
	})

	t.Run("invalid depth keeps the default", func(t *testing.T) {
		require.Equal(t, 4, NewMinimax(WithDepth(0)).Depth())
		require.Equal(t, 4, NewMinimax(WithDepth(-3)).Depth())
		require.Equal(t, 6, NewMinimax(WithDepth(6)).Depth())
		require.False(t, NewMinimax().Pruning())
		require.True(t, NewMinimax(WithPruning()).Pruning())
	})
}

func TestActionRecovery(t *testing.T) {
	t.Run("unmatched root value finds no child", func(t *testing.T) {
		root := newNode(nil, game.NewState())
		root.addChild(game.MustParseState("X  |   |   ")).value = 3
		root.addChild(game.MustParseState(" X |   |   ")).value = 5

		require.Nil(t, bestChild(root, 7))
		require.Same(t, root.children[1], bestChild(root, 5))
	})

	t.Run("first equal child wins", func(t *testing.T) {
		root := newNode(nil, game.NewState())
		root.addChild(game.MustParseState("X  |   |   ")).value = 5
		root.addChild(game.MustParseState(" X |   |   ")).value = 5

		require.Same(t, root.children[0], bestChild(root, 5))
	})

	t.Run("unreachable state yields no action", func(t *testing.T) {
		state := game.NewState()

		_, ok := recoverAction(state, game.XToken, game.MustParseState("XX |   |   "))
		require.False(t, ok, "Two moves away should not be recoverable")

		_, ok = recoverAction(state, game.XToken, game.MustParseState("O  |   |   "))
		require.False(t, ok, "Opponent's token should not be recoverable")

		action, ok := recoverAction(state, game.XToken, game.MustParseState("   | X |   "))
		require.True(t, ok)
		require.Equal(t, game.Action{Cell: 4, Token: game.XToken}, action)
	})
}

func TestAlphaBetaSearch(t *testing.T) {
	t.Run("agrees with plain minimax on the value and the move", func(t *testing.T) {
		for _, board := range positions {
			state := game.MustParseState(board)
			player := toMove(state)
			if state.IsGameOver() {
				continue
			}

			plain, err := NewMinimax(WithMetrics()).Search(state, player)
			require.NoError(t, err, "board %q", board)
			pruned, err := NewMinimax(WithMetrics(), WithPruning()).Search(state, player)
			require.NoError(t, err, "board %q", board)

			require.Equal(t, plain.Value, pruned.Value, "Pruning should not change the root value on %q", board)
			require.Contains(t, state.Actions(player), plain.Action, "board %q", board)
			require.Contains(t, state.Actions(player), pruned.Action, "board %q", board)
			require.Equal(t, plain.Action, pruned.Action, "Both variants should pick the first best child on %q", board)
			require.LessOrEqual(t, pruned.Metric.NodesEvaluated, plain.Metric.NodesEvaluated,
				"Pruning should not evaluate more nodes on %q", board)
			require.Equal(t, plain.Metric.NodesBuilt, pruned.Metric.NodesBuilt, "Both variants build the same tree")
		}
	})

	t.Run("empty board is pruned", func(t *testing.T) {
		got, err := NewMinimax(WithMetrics(), WithPruning()).Search(game.NewState(), game.XToken)

		require.NoError(t, err)
		require.True(t, got.Metric.Pruning)
		require.Positive(t, got.Metric.Cutoffs)
		require.Less(t, got.Metric.NodesEvaluated, 1+9+72+504+3024)
		require.Equal(t, 5, got.Value)
	})

	t.Run("completing a line is chosen", func(t *testing.T) {
		got, err := NewMinimax(WithPruning()).Search(game.MustParseState("XX |OO |   "), game.XToken)

		require.NoError(t, err)
		require.Equal(t, game.Action{Cell: 2, Token: game.XToken}, got.Action)
	})

	t.Run("children after a cutoff keep the default value", func(t *testing.T) {
		state := game.NewState()
		root, err := buildTree(state, game.XToken, 4, metrics.NewDummyCollector())
		require.NoError(t, err)

		e := evaluator{player: game.XToken, collector: metrics.NewDummyCollector()}
		e.maximizeAB(root, 4, math.MinInt, math.MaxInt)

		// second ply 3 node under the first line of play is cut after its first reply
		cut := root.children[0].children[0].children[1]
		require.Equal(t, 5, cut.children[0].value)
		require.Zero(t, cut.children[1].value, "Pruned node should not be evaluated")
	})
}
