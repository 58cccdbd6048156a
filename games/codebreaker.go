package games

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/dev-arcade/arcade"
)

// Challenge is one Code Breaker puzzle card
type Challenge struct {
	Difficulty  string
	Description string
	Code        string
	Hint        string
	Solution    string
}

// Difficulty tiers double as the session kind table
const (
	DifficultyNoob   = "n00b"
	DifficultyHacker = "h4ck3r"
	DifficultyLeet   = "1337"
)

var challenges = []Challenge{
	{
		Difficulty:  DifficultyNoob,
		Description: "Decode the base64 string. Hint: It's what users never change",
		Code:        "const secret = '********';\nconsole.log(btoa(secret));",
		Hint:        "Base64 encoded 'password'",
		Solution:    "cGFzc3dvcmQ=",
	},
	{
		Difficulty:  DifficultyNoob,
		Description: "What does the parser print?",
		Code:        "console.log(parseInt('ff', 16));",
		Hint:        "Two hex digits, both maxed out",
		Solution:    "255",
	},
	{
		Difficulty:  DifficultyHacker,
		Description: "Which index reveals the 'ret' string?",
		Code:        "fetch('api/hack')\n  .then(r => r.json())\n  .then(({ p, k }) => p[k]);",
		Hint:        "Response: { p: ['sec','ret','key'], k: ? }",
		Solution:    "1",
	},
	{
		Difficulty:  DifficultyHacker,
		Description: "What string comes out?",
		Code:        "'kcah'.split('')\n  .reverse()\n  .join('')",
		Hint:        "Read it backwards",
		Solution:    "hack",
	},
	{
		Difficulty:  DifficultyLeet,
		Description: "How many 1's in the binary representation?",
		Code:        "0x1337.toString(2)\n  .split('')\n  .filter(x => x === '1')\n  .length",
		Hint:        "Convert hex to binary, count '1's",
		Solution:    "8",
	},
	{
		Difficulty:  DifficultyLeet,
		Description: "What is the result of the XOR?",
		Code:        "console.log(0x2a ^ 0x0f);",
		Hint:        "101010 XOR 001111",
		Solution:    "37",
	},
}

var successMessages = []string{
	"ACCESS GRANTED",
	"SYSTEM COMPROMISED",
	"FIREWALL BYPASSED",
	"HACK SUCCESSFUL",
}

var failureMessages = []string{
	"ACCESS DENIED",
	"SECURITY ALERT",
	"SYSTEM LOCKED",
	"HACK FAILED",
}

const (
	// MaxAttempts is the number of wrong answers a card tolerates
	MaxAttempts = 3
	// MaxInput caps the answer buffer
	MaxInput = 32
)

// Challenges returns a copy of the challenge deck
func Challenges() []Challenge {
	return append([]Challenge(nil), challenges...)
}

// CodeBreakerConfig returns the default Code Breaker tuning
// Cards do not move; the spawn timer deals a new card and the ceiling bounds the backlog
func CodeBreakerConfig() arcade.Config {
	kind := func(name string, weight float64) arcade.KindSpec {
		return arcade.KindSpec{Name: name, Glyph: '#', Category: arcade.CategoryCommon, Weight: weight, Points: 100}
	}
	return arcade.Config{
		Name: string(CodeBreaker),
		Kinds: []arcade.KindSpec{
			kind(DifficultyNoob, 3),
			kind(DifficultyHacker, 2),
			kind(DifficultyLeet, 1),
		},
		MaxEntities:   4,
		VictoryScore:  300,
		ComboWindow:   time.Second,
		ComboStep:     0,
		Difficulty:    1,
		SpawnPeriod:   20 * time.Second,
		InitialSpawns: 1,
	}
}

// Result reports the outcome of one submitted answer
type Result struct {
	Correct  bool
	Points   int
	Attempts int // Attempts left on the current card
	Message  string
}

// Breaker is the Code Breaker game: answer the oldest pending card
type Breaker struct {
	session *arcade.Session
	rng     arcade.Rand

	deck     map[string][]int // difficulty -> challenge indices
	dealt    map[string]int   // difficulty -> next deck position
	cards    map[int64]int    // entity id -> challenge index
	hinted   map[int64]bool
	input    []rune
	attempts int
	message  string
}

// NewCodeBreaker creates an idle Code Breaker on cfg
func NewCodeBreaker(cfg arcade.Config, r arcade.Rand, opts ...arcade.Option) (*Breaker, error) {
	s, err := arcade.NewSession(cfg, sessionOptions(r, opts)...)
	if err != nil {
		return nil, fmt.Errorf("code breaker: %w", err)
	}

	deck := make(map[string][]int)
	for i, c := range challenges {
		deck[c.Difficulty] = append(deck[c.Difficulty], i)
	}
	for _, k := range cfg.Kinds {
		if len(deck[k.Name]) == 0 {
			return nil, fmt.Errorf("code breaker: %w: no challenges for difficulty %q", arcade.ErrInvalidConfig, k.Name)
		}
	}

	b := &Breaker{
		session: s,
		rng:     r,
		deck:    deck,
	}
	b.clear()
	return b, nil
}

func (b *Breaker) ID() ID                   { return CodeBreaker }
func (b *Breaker) Session() *arcade.Session { return b.session }
func (b *Breaker) Close()                   { b.session.Close() }

// Start deals the first card
func (b *Breaker) Start() bool {
	return b.session.Start()
}

// Reset restarts a finished game with a fresh deck position and full attempts
func (b *Breaker) Reset() bool {
	if !b.session.Reset() {
		return false
	}
	b.clear()
	return true
}

func (b *Breaker) clear() {
	b.dealt = make(map[string]int)
	b.cards = make(map[int64]int)
	b.hinted = make(map[int64]bool)
	b.input = b.input[:0]
	b.attempts = MaxAttempts
	b.message = ""
}

// Current returns the oldest pending card and its challenge
func (b *Breaker) Current() (arcade.Entity, Challenge, bool) {
	ents := b.session.Entities()
	if len(ents) == 0 {
		return arcade.Entity{}, Challenge{}, false
	}
	e := ents[0]

	idx, ok := b.cards[e.ID]
	if !ok {
		deck := b.deck[e.Kind]
		idx = deck[b.dealt[e.Kind]%len(deck)]
		b.dealt[e.Kind]++
		b.cards[e.ID] = idx
	}
	return e, challenges[idx], true
}

// Pending returns the number of cards waiting, the current one included
func (b *Breaker) Pending() int {
	return len(b.session.Entities())
}

// Submit checks the typed answer against the current card
func (b *Breaker) Submit() Result {
	answer := string(b.input)
	b.input = b.input[:0]
	return b.Answer(answer)
}

// Answer checks answer against the current card
// A match scores the card; a miss costs an attempt and the last miss locks the system
func (b *Breaker) Answer(answer string) Result {
	if b.session.Phase() != arcade.PhasePlaying {
		return Result{Attempts: b.attempts}
	}
	e, ch, ok := b.Current()
	if !ok {
		return Result{Attempts: b.attempts}
	}

	if strings.TrimSpace(answer) == ch.Solution {
		points := b.session.Hit(e.ID)
		delete(b.cards, e.ID)
		delete(b.hinted, e.ID)
		b.attempts = MaxAttempts
		b.message = pick(b.rng, successMessages)
		return Result{Correct: true, Points: points, Attempts: b.attempts, Message: b.message}
	}

	b.attempts--
	b.message = fmt.Sprintf("WRONG ANSWER: %d attempt(s) left", b.attempts)
	if b.attempts <= 0 {
		b.attempts = 0
		b.message = pick(b.rng, failureMessages)
		b.session.Lose(arcade.LossLockout)
	}
	return Result{Attempts: b.attempts, Message: b.message}
}

// RevealHint shows the current card's hint and halves its value, once per card
func (b *Breaker) RevealHint() (string, bool) {
	if b.session.Phase() != arcade.PhasePlaying {
		return "", false
	}
	e, ch, ok := b.Current()
	if !ok {
		return "", false
	}
	if !b.hinted[e.ID] {
		b.hinted[e.ID] = true
		b.session.Update(e.ID, func(e *arcade.Entity) { e.Points /= 2 })
	}
	return ch.Hint, true
}

// HintShown reports whether the current card's hint is revealed
func (b *Breaker) HintShown() bool {
	e, _, ok := b.Current()
	return ok && b.hinted[e.ID]
}

// Type appends r to the answer buffer
func (b *Breaker) Type(r rune) {
	if b.session.Phase() != arcade.PhasePlaying || len(b.input) >= MaxInput || !utf8.ValidRune(r) {
		return
	}
	b.input = append(b.input, r)
}

// Backspace drops the last typed rune
func (b *Breaker) Backspace() {
	if len(b.input) > 0 {
		b.input = b.input[:len(b.input)-1]
	}
}

// Input returns the answer typed so far
func (b *Breaker) Input() string { return string(b.input) }

// Attempts returns the attempts left on the current card
func (b *Breaker) Attempts() int { return b.attempts }

// Message returns the last feedback line
func (b *Breaker) Message() string { return b.message }

// End implements Game
func (b *Breaker) End() EndMessage {
	switch b.session.Phase() {
	case arcade.PhaseWon:
		return EndMessage{
			Title:   "MASTER HACKER!",
			Message: "You've cracked all the codes! Legendary stuff!",
			Button:  "Share Victory",
		}
	case arcade.PhaseLost:
		msg := "Need more hints? The dev's got your back!"
		if b.session.Loss() == arcade.LossOverflow {
			msg = "Too many cards piled up. Crack them faster!"
		}
		return EndMessage{
			Title:   "SYSTEM LOCKED!",
			Message: msg,
			Button:  "Get Hints",
		}
	}
	return EndMessage{}
}

// ShareMessage implements Game
func (b *Breaker) ShareMessage() string {
	if b.session.Phase() == arcade.PhaseWon {
		return fmt.Sprintf("Just cracked all challenges in the Code Breaker game! Real hacker stuff! Score: %d", b.session.Score())
	}
	return fmt.Sprintf("Almost cracked the codes! Got stuck with %d points. Any hints?", b.session.Score())
}
