package games

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/dev-arcade/arcade"
)

// ErrUnknownGame is returned for a game id outside the registered set
var ErrUnknownGame = errors.New("unknown game")

// ID names a game instance
type ID string

const (
	BugSquasher ID = "bugsquash"
	CodeBreaker ID = "codebreaker"
)

// Order is the switcher tab order
var Order = []ID{BugSquasher, CodeBreaker}

// Title returns the display name
func (id ID) Title() string {
	switch id {
	case BugSquasher:
		return "Bug Squasher"
	case CodeBreaker:
		return "Code Breaker"
	default:
		return string(id)
	}
}

// ParseID validates a game name from flags or env
func ParseID(s string) (ID, error) {
	for _, id := range Order {
		if string(id) == s {
			return id, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, s)
}

// Game is one playable instance wrapping an engine session
type Game interface {
	ID() ID
	Session() *arcade.Session
	Start() bool
	Reset() bool
	Close()
	// End returns the overlay text for a terminal session, zero value otherwise
	End() EndMessage
	// ShareMessage returns the text posted by the share action
	ShareMessage() string
}

// EndMessage is the end-of-game overlay
type EndMessage struct {
	Title   string
	Message string
	Button  string
}

// Factory builds a fresh game by id
type Factory func(id ID) (Game, error)

// NewFactory returns a Factory building games from the given configs
// All games share r and opts (clock, scheduler, router, logger)
func NewFactory(bugs, breaker arcade.Config, r arcade.Rand, opts ...arcade.Option) Factory {
	return func(id ID) (Game, error) {
		switch id {
		case BugSquasher:
			return NewBugSquash(bugs, r, opts...)
		case CodeBreaker:
			return NewCodeBreaker(breaker, r, opts...)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownGame, id)
		}
	}
}

func sessionOptions(r arcade.Rand, opts []arcade.Option) []arcade.Option {
	out := make([]arcade.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, arcade.WithRand(r))
}

func pick(r arcade.Rand, from []string) string {
	return from[r.IntN(len(from))]
}
