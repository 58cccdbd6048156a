package input

import "github.com/gdamore/tcell/v2"

// KeyEntry describes what a key does; Target is used by IntentSwitchTo
type KeyEntry struct {
	Intent IntentType
	Target int
}

// KeyTable maps keys to intents per mode
type KeyTable struct {
	// Special keys valid in every mode
	SpecialKeys map[tcell.Key]KeyEntry

	// Rune bindings on the board
	BoardRunes map[rune]KeyEntry

	// Rune bindings while typing; unbound printable runes become IntentTextChar
	TextRunes map[rune]KeyEntry

	// Special keys while typing
	TextKeys map[tcell.Key]KeyEntry

	// Bindings on the end screen
	EndRunes map[rune]KeyEntry
	EndKeys  map[tcell.Key]KeyEntry
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]KeyEntry{
			tcell.KeyCtrlC: {Intent: IntentQuit},
			tcell.KeyTab:   {Intent: IntentSwitchNext},
		},

		BoardRunes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'm': {Intent: IntentToggleMute},
			'1': {Intent: IntentSwitchTo, Target: 0},
			'2': {Intent: IntentSwitchTo, Target: 1},
		},

		// Digits and letters are answers here
		TextRunes: map[rune]KeyEntry{
			'?': {Intent: IntentHint},
		},
		TextKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEnter:      {Intent: IntentTextConfirm},
			tcell.KeyBackspace:  {Intent: IntentTextBackspace},
			tcell.KeyBackspace2: {Intent: IntentTextBackspace},
			tcell.KeyEscape:     {Intent: IntentQuit},
		},

		EndRunes: map[rune]KeyEntry{
			'q': {Intent: IntentQuit},
			'r': {Intent: IntentReset},
			's': {Intent: IntentShare},
			'm': {Intent: IntentToggleMute},
			'1': {Intent: IntentSwitchTo, Target: 0},
			'2': {Intent: IntentSwitchTo, Target: 1},
		},
		EndKeys: map[tcell.Key]KeyEntry{
			tcell.KeyEscape: {Intent: IntentQuit},
			tcell.KeyEnter:  {Intent: IntentReset},
		},
	}
}
