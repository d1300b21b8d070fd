package agent

import (
	"connect3/game"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

// Random picks one of its legal actions uniformly.
type Random struct {
	token game.Token
	rng   *rand.Rand
}

func NewRandom(token game.Token, seed uint64) *Random {
	return &Random{token: token, rng: rand.New(rand.NewSource(seed))}
}

func (r *Random) FindMove(state game.State) (game.Action, error) {
	actions := state.Actions(r.token)
	if len(actions) == 0 {
		return game.Action{}, errors.Wrapf(ErrNoMoves, "random %s on %q", r.token, state.String())
	}
	return actions[r.rng.Intn(len(actions))], nil
}
