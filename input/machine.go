package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Machine translates tcell events into intents for the current mode
type Machine struct {
	table  *KeyTable
	mode   InputMode
	konami Konami

	// Left button state, clicks fire on press only
	buttonDown bool
}

// NewMachine creates a machine on table, DefaultKeyTable when nil
func NewMachine(table *KeyTable) *Machine {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Machine{table: table}
}

// SetMode switches the active binding set
func (m *Machine) SetMode(mode InputMode) {
	m.mode = mode
}

// Mode returns the active binding set
func (m *Machine) Mode() InputMode { return m.mode }

// Konami exposes the easter egg detector
func (m *Machine) Konami() *Konami { return &m.konami }

// Process parses one event, returning nil when it maps to nothing
func (m *Machine) Process(ev tcell.Event) *Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		return m.processMouse(ev)
	case *tcell.EventResize:
		return &Intent{Type: IntentResize}
	}
	return nil
}

func (m *Machine) processKey(ev *tcell.EventKey) *Intent {
	konami := m.konami.Feed(ev.Key(), ev.Rune())

	intent := m.lookup(ev)
	if konami {
		if intent == nil {
			intent = &Intent{}
		}
		intent.Konami = true
	}
	return intent
}

func (m *Machine) lookup(ev *tcell.EventKey) *Intent {
	if entry, ok := m.table.SpecialKeys[ev.Key()]; ok {
		return entry.intent()
	}

	switch m.mode {
	case ModeText:
		if ev.Key() == tcell.KeyRune {
			if entry, ok := m.table.TextRunes[ev.Rune()]; ok {
				return entry.intent()
			}
			if unicode.IsPrint(ev.Rune()) {
				return &Intent{Type: IntentTextChar, Char: ev.Rune()}
			}
			return nil
		}
		if entry, ok := m.table.TextKeys[ev.Key()]; ok {
			return entry.intent()
		}

	case ModeEnd:
		if ev.Key() == tcell.KeyRune {
			if entry, ok := m.table.EndRunes[ev.Rune()]; ok {
				return entry.intent()
			}
			return nil
		}
		if entry, ok := m.table.EndKeys[ev.Key()]; ok {
			return entry.intent()
		}

	default:
		if ev.Key() == tcell.KeyRune {
			if entry, ok := m.table.BoardRunes[ev.Rune()]; ok {
				return entry.intent()
			}
		}
	}
	return nil
}

func (m *Machine) processMouse(ev *tcell.EventMouse) *Intent {
	pressed := ev.Buttons()&tcell.Button1 != 0
	wasDown := m.buttonDown
	m.buttonDown = pressed

	if !pressed || wasDown || m.mode == ModeEnd {
		return nil
	}
	x, y := ev.Position()
	return &Intent{Type: IntentClick, X: x, Y: y}
}

func (e KeyEntry) intent() *Intent {
	if e.Intent == IntentNone {
		return nil
	}
	return &Intent{Type: e.Intent, Target: e.Target}
}
