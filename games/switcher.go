package games

import (
	"fmt"
	"log/slog"
	"slices"
	"time"

	"golang.org/x/time/rate"
)

// TransitionLock is the minimum time between two switches
const TransitionLock = time.Second

// Switcher owns the active game and swaps it on request
// The outgoing game is closed; the incoming one is built fresh and started
type Switcher struct {
	order   []ID
	factory Factory
	active  Game
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewSwitcher builds and starts the game named first
func NewSwitcher(order []ID, first ID, factory Factory, logger *slog.Logger) (*Switcher, error) {
	if !slices.Contains(order, first) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGame, first)
	}
	if logger == nil {
		logger = slog.Default()
	}

	g, err := factory(first)
	if err != nil {
		return nil, err
	}
	g.Start()

	return &Switcher{
		order:   slices.Clone(order),
		factory: factory,
		active:  g,
		limiter: rate.NewLimiter(rate.Every(TransitionLock), 1),
		logger:  logger.With("component", "switcher"),
	}, nil
}

// Active returns the game on screen
func (s *Switcher) Active() Game { return s.active }

// Games returns the switchable ids in tab order
func (s *Switcher) Games() []ID { return slices.Clone(s.order) }

// Switch replaces the active game with id
// Returns false without error when id is already active or a transition is in progress
func (s *Switcher) Switch(id ID, now time.Time) (bool, error) {
	if !slices.Contains(s.order, id) {
		return false, fmt.Errorf("%w: %q", ErrUnknownGame, id)
	}
	if s.active != nil && s.active.ID() == id {
		return false, nil
	}
	if !s.limiter.AllowN(now, 1) {
		s.logger.Debug("switch refused during transition", "to", string(id))
		return false, nil
	}

	next, err := s.factory(id)
	if err != nil {
		return false, err
	}

	from := ""
	if s.active != nil {
		from = string(s.active.ID())
		s.active.Close()
	}
	s.active = next
	s.active.Start()

	s.logger.Info("game switched", "from", from, "to", string(id))
	return true, nil
}

// Next switches to the game after the active one in tab order
func (s *Switcher) Next(now time.Time) (bool, error) {
	i := slices.Index(s.order, s.active.ID())
	return s.Switch(s.order[(i+1)%len(s.order)], now)
}

// Transitioning reports whether a switch at now would be refused by the lock
func (s *Switcher) Transitioning(now time.Time) bool {
	return s.limiter.TokensAt(now) < 1
}

// Close closes the active game
func (s *Switcher) Close() {
	if s.active != nil {
		s.active.Close()
	}
}
