package agent

import (
	"connect3/game"
	"connect3/searcher"
)

type minimaxAgent struct {
	token    game.Token
	searcher *searcher.Minimax
}

// NewMinimax returns an agent that plays the searcher's choice for token.
func NewMinimax(token game.Token, s *searcher.Minimax) Agent {
	return minimaxAgent{token: token, searcher: s}
}

func (a minimaxAgent) FindMove(state game.State) (game.Action, error) {
	result, err := a.searcher.Search(state, a.token)
	if err != nil {
		return game.Action{}, err
	}
	return result.Action, nil
}
