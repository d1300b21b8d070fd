package agent

import (
	"bufio"
	"io"
	"strings"

	"connect3/game"
	"connect3/searcher"

	"github.com/pkg/errors"
)

// Config carries what any player kind may need to be built.
type Config struct {
	Depth   int
	Seed    uint64
	Metrics bool
	In      *bufio.Scanner
	Out     io.Writer
}

type Factory func(token game.Token, cfg Config) Agent

type Entry struct {
	Name        string
	Description string
	New         Factory
}

// Catalog lists every player kind selectable by name, in display order.
var Catalog = []Entry{
	{
		Name:        "human",
		Description: "A human player. Will prompt for input given available moves and take input from stdin as an integer",
		New: func(token game.Token, cfg Config) Agent {
			return NewHuman(token, cfg.In, cfg.Out)
		},
	},
	{
		Name:        "random",
		Description: "A computer player that chooses a move at random to play.",
		New: func(token game.Token, cfg Config) Agent {
			return NewRandom(token, cfg.Seed)
		},
	},
	{
		Name:        "minimax",
		Description: "A computer player that uses the minimax algorithm to make decisions.",
		New: func(token game.Token, cfg Config) Agent {
			return NewMinimax(token, searcher.NewMinimax(cfg.searchOptions()...))
		},
	},
	{
		Name:        "minimaxalphabeta",
		Description: "A computer player that uses minimax with alpha-beta pruning to make decisions.",
		New: func(token game.Token, cfg Config) Agent {
			return NewMinimax(token, searcher.NewMinimax(append(cfg.searchOptions(), searcher.WithPruning())...))
		},
	},
}

func (cfg Config) searchOptions() []searcher.Option {
	options := []searcher.Option{searcher.WithDepth(cfg.Depth)}
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	return options
}

// Lookup finds a player kind by name, ignoring case.
func Lookup(name string) (Entry, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range Catalog {
		if entry.Name == key {
			return entry, nil
		}
	}
	return Entry{}, errors.Wrapf(ErrUnknownPlayer, "%q", name)
}
