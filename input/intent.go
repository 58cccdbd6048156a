package input

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System
	IntentQuit       // q, Ctrl+C, Esc on the end screen
	IntentToggleMute // m
	IntentResize     // Terminal resize event

	// Game selection
	IntentSwitchNext // Tab
	IntentSwitchTo   // 1, 2 (Target holds the zero-based tab index)

	// End screen
	IntentReset // r
	IntentShare // s

	// Board
	IntentClick // Left button press at X, Y

	// Code Breaker answer entry
	IntentTextChar      // Printable character
	IntentTextBackspace // Backspace
	IntentTextConfirm   // Enter
	IntentHint          // ?
)

var intentNames = [...]string{
	IntentNone:          "none",
	IntentQuit:          "quit",
	IntentToggleMute:    "toggle_mute",
	IntentResize:        "resize",
	IntentSwitchNext:    "switch_next",
	IntentSwitchTo:      "switch_to",
	IntentReset:         "reset",
	IntentShare:         "share",
	IntentClick:         "click",
	IntentTextChar:      "text_char",
	IntentTextBackspace: "text_backspace",
	IntentTextConfirm:   "text_confirm",
	IntentHint:          "hint",
}

func (t IntentType) String() string {
	if int(t) < len(intentNames) {
		return intentNames[t]
	}
	return "unknown"
}

// Intent represents a parsed semantic action
// Pure data struct with no engine dependencies
type Intent struct {
	Type   IntentType
	Target int  // Tab index for IntentSwitchTo
	Char   rune // Typed char for IntentTextChar
	X, Y   int  // Cell for IntentClick
	Konami bool // This key completed the Konami code
}
