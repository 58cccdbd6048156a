package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/dev-arcade/arcade"
)

// RGB color definitions, terminal green-on-black theme
var (
	RgbBackground = tcell.NewRGBColor(10, 10, 10)    // Near black
	RgbText       = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbTextDim    = tcell.NewRGBColor(0, 110, 0)     // Dark Green
	RgbTextBright = tcell.NewRGBColor(80, 255, 80)   // Bright Green
	RgbBorder     = tcell.NewRGBColor(0, 80, 0)      // Board frame
	RgbCyan       = tcell.NewRGBColor(0, 200, 200)   // Code Breaker accent
	RgbPurple     = tcell.NewRGBColor(170, 90, 255)  // Hints and konami toast
	RgbDanger     = tcell.NewRGBColor(255, 80, 80)   // Skulls, loss title
	RgbBossShield = tcell.NewRGBColor(255, 120, 120) // Invincible boss halo
	RgbPowerUp    = tcell.NewRGBColor(100, 150, 255) // Pickups
	RgbGold       = tcell.NewRGBColor(255, 215, 0)   // Victory title

	RgbStatusBg    = tcell.NewRGBColor(0, 60, 0)
	RgbTabActiveBg = tcell.NewRGBColor(0, 160, 0)
	RgbAudioMuted  = tcell.NewRGBColor(200, 50, 50)
	RgbAudioOn     = tcell.NewRGBColor(50, 200, 50)
)

// Heat gradient endpoints for the combo counter
var (
	comboCold = colorful.Color{R: 0, G: 0.78, B: 0}
	comboHot  = colorful.Color{R: 1, G: 0.27, B: 0}
)

// comboSaturation is the streak at which the combo counter is fully hot
const comboSaturation = 8

// ComboColor blends from green to orange as the streak grows
func ComboColor(combo int) tcell.Color {
	t := float64(combo) / comboSaturation
	if t > 1 {
		t = 1
	}
	if t < 0 {
		t = 0
	}
	r, g, b := comboCold.BlendHcl(comboHot, t).Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// EntityColor picks the draw color for an entity at now
func EntityColor(e *arcade.Entity, now time.Time) tcell.Color {
	switch {
	case e.IsHazard():
		return RgbDanger
	case e.IsInvincible(now):
		return RgbBossShield
	case e.Category == arcade.CategoryBoss:
		return RgbGold
	case e.Category == arcade.CategoryRare:
		return RgbTextBright
	default:
		return RgbText
	}
}

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground).Foreground(RgbText)
}
