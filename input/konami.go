package input

import "github.com/gdamore/tcell/v2"

// KonamiStep is one key of the Konami sequence; Rune is set only for KeyRune
type KonamiStep struct {
	Key  tcell.Key
	Rune rune
}

// KonamiCode is up up down down left right left right b a
var KonamiCode = []KonamiStep{
	{Key: tcell.KeyUp},
	{Key: tcell.KeyUp},
	{Key: tcell.KeyDown},
	{Key: tcell.KeyDown},
	{Key: tcell.KeyLeft},
	{Key: tcell.KeyRight},
	{Key: tcell.KeyLeft},
	{Key: tcell.KeyRight},
	{Key: tcell.KeyRune, Rune: 'b'},
	{Key: tcell.KeyRune, Rune: 'a'},
}

// Konami tracks progress through KonamiCode
// A wrong key drops progress to zero; completion latches Completed
type Konami struct {
	progress  int
	completed bool
}

// Feed advances on the expected key and reports whether it finished the sequence
func (k *Konami) Feed(key tcell.Key, r rune) bool {
	want := KonamiCode[k.progress]
	if key != want.Key || (key == tcell.KeyRune && r != want.Rune) {
		k.progress = 0
		return false
	}

	k.progress++
	if k.progress < len(KonamiCode) {
		return false
	}
	k.progress = 0
	k.completed = true
	return true
}

// Progress returns the number of matched keys
func (k *Konami) Progress() int { return k.progress }

// Completed reports whether the sequence was ever entered
func (k *Konami) Completed() bool { return k.completed }
