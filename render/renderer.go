package render

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/dev-arcade/arcade"
)

// GuideEntry is one item of the points guide row
type GuideEntry struct {
	Glyph rune
	Label string
}

// Card is the Code Breaker view of the current challenge
type Card struct {
	Difficulty  string
	Description string
	Code        string
	Hint        string // Empty until revealed
	Input       string
	Message     string
	Attempts    int
	Pending     int
}

// End is the end-of-game overlay
type End struct {
	Won      bool
	Title    string
	Message  string
	Button   string
	Score    int
	ShareURL string // Shown once the share action fired
}

// Frame is everything drawn in one pass
type Frame struct {
	Tabs   []string
	Active int

	Snapshot arcade.Snapshot
	Placed   []Placed
	Guide    []GuideEntry

	Snippet string // Bug Squasher code line
	Card    *Card  // Code Breaker challenge, nil for board games
	End     *End   // Nil while playing

	Toast         []string // Konami notification lines
	Status        string
	Muted         bool
	Transitioning bool
}

// Renderer draws frames onto a tcell screen
type Renderer struct {
	screen tcell.Screen
}

// NewRenderer creates a renderer on screen
func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Context builds the render context for the current screen size
func (r *Renderer) Context(f *Frame) RenderContext {
	w, h := r.screen.Size()
	return NewRenderContext(w, h, f.Snapshot.Now)
}

// Render draws f and shows the screen
func (r *Renderer) Render(ctx RenderContext, f *Frame) {
	s := r.screen
	s.SetStyle(baseStyle())
	s.Clear()

	r.drawTabs(ctx, f)
	r.drawHeader(ctx, f)
	if f.Card != nil {
		r.drawDescription(ctx, f.Card)
	} else {
		drawText(s, 1, 2, ctx.ScreenWidth, baseStyle().Foreground(RgbTextDim), f.Snippet)
		r.drawGuide(ctx, f.Guide)
	}

	drawFrame(s, ctx.BoardX, ctx.BoardY, ctx.BoardWidth, ctx.BoardHeight, baseStyle().Foreground(RgbBorder))
	if f.Card != nil {
		r.drawCard(ctx, f.Card)
	} else {
		r.drawBoard(ctx, f)
	}

	if f.End != nil {
		r.drawEnd(ctx, f.End)
	}
	if len(f.Toast) > 0 {
		r.drawToast(ctx, f.Toast)
	}
	r.drawStatus(ctx, f)

	s.Show()
}

func (r *Renderer) drawTabs(ctx RenderContext, f *Frame) {
	x := 0
	for i, tab := range f.Tabs {
		style := baseStyle().Foreground(RgbTextDim)
		if i == f.Active {
			style = baseStyle().Foreground(tcell.ColorBlack).Background(RgbTabActiveBg)
		}
		x = drawText(r.screen, x, 0, ctx.ScreenWidth, style, fmt.Sprintf(" %d %s ", i+1, tab))
		x++
	}
	if f.Transitioning {
		drawText(r.screen, x, 0, ctx.ScreenWidth, baseStyle().Foreground(RgbTextDim), "switching...")
	}
}

func (r *Renderer) drawHeader(ctx RenderContext, f *Frame) {
	snap := &f.Snapshot
	style := baseStyle()
	x := 1
	if f.Card != nil {
		style = style.Foreground(RgbCyan)
		x = drawText(r.screen, x, 1, ctx.ScreenWidth, style, fmt.Sprintf("LEVEL: %s   SCORE: %d   ATTEMPTS: %s",
			f.Card.Difficulty, snap.Score, strings.TrimSpace(strings.Repeat("[K] ", f.Card.Attempts))))
		drawText(r.screen, x+3, 1, ctx.ScreenWidth, style.Foreground(RgbTextDim), fmt.Sprintf("HIGH: %d", snap.HighScore))
		return
	}

	x = drawText(r.screen, x, 1, ctx.ScreenWidth, style, fmt.Sprintf("Score: %d   Speed: %.1fx   ", snap.Score, snap.Speed))
	x = drawText(r.screen, x, 1, ctx.ScreenWidth, style.Foreground(ComboColor(snap.Combo)), fmt.Sprintf("Combo: %dx", snap.Combo))
	drawText(r.screen, x, 1, ctx.ScreenWidth, style, fmt.Sprintf("   High Score: %d", snap.HighScore))
}

func (r *Renderer) drawGuide(ctx RenderContext, guide []GuideEntry) {
	var b strings.Builder
	for i, g := range guide {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteRune(g.Glyph)
		b.WriteByte(' ')
		b.WriteString(g.Label)
	}
	drawCentered(r.screen, 0, ctx.ScreenWidth, 3, baseStyle().Foreground(RgbTextDim), b.String())
}

func (r *Renderer) drawDescription(ctx RenderContext, c *Card) {
	drawText(r.screen, 1, 2, ctx.ScreenWidth, baseStyle().Foreground(RgbCyan), c.Description)
	drawText(r.screen, 1, 3, ctx.ScreenWidth, baseStyle().Foreground(RgbTextDim), fmt.Sprintf("Pending cards: %d", c.Pending))
}

func (r *Renderer) drawBoard(ctx RenderContext, f *Frame) {
	now := f.Snapshot.Now
	for _, pu := range f.Snapshot.PowerUps {
		x, y := ctx.ToCell(pu.X, pu.Y)
		r.screen.SetContent(x, y, pu.Kind.Glyph(), nil, baseStyle().Foreground(RgbPowerUp).Bold(true))
	}

	for i := range f.Placed {
		p := &f.Placed[i]
		x, y := ctx.ToCell(p.X, p.Y)
		style := baseStyle().Foreground(EntityColor(&p.Entity, now))
		if p.Entity.Size > 1 {
			style = style.Bold(true)
			if p.Entity.IsInvincible(now) {
				style = style.Blink(true)
			}
			r.screen.SetContent(x-1, y, '[', nil, style)
			r.screen.SetContent(x+2, y, ']', nil, style)
		}
		r.screen.SetContent(x, y, p.Entity.Glyph, nil, style)
	}
}

func (r *Renderer) drawCard(ctx RenderContext, c *Card) {
	s := r.screen
	x := ctx.BoardX + 1
	maxX := ctx.BoardX + ctx.BoardWidth
	y := ctx.BoardY

	if c.Description == "" && c.Code == "" {
		drawCentered(s, ctx.BoardX, maxX, ctx.BoardY+ctx.BoardHeight/2, baseStyle().Foreground(RgbTextDim), "Waiting for the next challenge...")
		return
	}

	code := baseStyle().Foreground(RgbCyan)
	for _, line := range strings.Split(c.Code, "\n") {
		drawText(s, x+1, y, maxX, code, line)
		y++
	}
	y++

	if c.Hint != "" {
		drawText(s, x, y, maxX, baseStyle().Foreground(RgbPurple), "HINT: "+c.Hint)
	} else {
		drawText(s, x, y, maxX, baseStyle().Foreground(RgbTextDim), "[?] reveal hint (half points)")
	}
	y += 2

	x = drawText(s, x, y, maxX, baseStyle().Foreground(RgbCyan), "> "+c.Input)
	s.SetContent(x, y, ' ', nil, baseStyle().Reverse(true))
	y += 2

	if c.Message != "" {
		drawText(s, ctx.BoardX+1, y, maxX, baseStyle().Foreground(RgbTextBright).Bold(true), c.Message)
	}
}

type textLine struct {
	text  string
	style tcell.Style
}

func (r *Renderer) drawEnd(ctx RenderContext, e *End) {
	s := r.screen
	x0 := ctx.BoardX
	x1 := ctx.BoardX + ctx.BoardWidth
	for y := ctx.BoardY; y < ctx.BoardY+ctx.BoardHeight; y++ {
		fillRow(s, x0, x1, y, baseStyle())
	}

	titleColor := RgbDanger
	if e.Won {
		titleColor = RgbGold
	}

	lines := []textLine{
		{e.Title, baseStyle().Foreground(titleColor).Bold(true)},
		{"", baseStyle()},
		{fmt.Sprintf("Final Score: %d", e.Score), baseStyle().Foreground(RgbTextBright)},
	}
	for _, l := range wrap(e.Message, ctx.BoardWidth-4) {
		lines = append(lines, textLine{l, baseStyle()})
	}
	lines = append(lines,
		textLine{"", baseStyle()},
		textLine{fmt.Sprintf("[r] Play Again   [s] %s   [q] Quit", e.Button), baseStyle().Foreground(RgbTextDim)},
	)
	for _, l := range wrap(e.ShareURL, ctx.BoardWidth-4) {
		if l != "" {
			lines = append(lines, textLine{l, baseStyle().Foreground(RgbPowerUp).Underline(true)})
		}
	}

	y := ctx.BoardY + (ctx.BoardHeight-len(lines))/2
	if y < ctx.BoardY {
		y = ctx.BoardY
	}
	for _, l := range lines {
		drawCentered(s, x0, x1, y, l.style, l.text)
		y++
	}
}

func (r *Renderer) drawToast(ctx RenderContext, toast []string) {
	width := 0
	for _, line := range toast {
		if len(line) > width {
			width = len(line)
		}
	}
	x := ctx.BoardX + ctx.BoardWidth - width - 2
	if x < ctx.BoardX {
		x = ctx.BoardX
	}
	style := baseStyle().Foreground(tcell.ColorBlack).Background(RgbPurple)
	for i, line := range toast {
		y := ctx.BoardY + i
		fillRow(r.screen, x, x+width+2, y, style)
		drawText(r.screen, x+1, y, ctx.ScreenWidth, style, line)
	}
}

func (r *Renderer) drawStatus(ctx RenderContext, f *Frame) {
	y := ctx.ScreenHeight - 1
	style := baseStyle().Background(RgbStatusBg).Foreground(RgbTextBright)
	fillRow(r.screen, 0, ctx.ScreenWidth, y, style)

	audio := " SND "
	bg := RgbAudioOn
	if f.Muted {
		audio = " MUTE "
		bg = RgbAudioMuted
	}
	x := drawText(r.screen, 0, y, ctx.ScreenWidth, style.Foreground(tcell.ColorBlack).Background(bg), audio)
	drawText(r.screen, x+1, y, ctx.ScreenWidth, style, f.Status)
}
