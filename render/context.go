package render

import "time"

// Screen rows reserved around the board
const (
	headerRows = 4 // Tabs, stats, snippet or description, points guide
	footerRows = 1 // Status line
	// Minimum usable board interior
	minBoardWidth  = 20
	minBoardHeight = 6
)

// RenderContext provides frame geometry for renderers, passed by value
type RenderContext struct {
	Now time.Time

	// Screen dimensions (terminal size)
	ScreenWidth  int
	ScreenHeight int

	// Board interior in screen cells, excluding the frame
	BoardX      int
	BoardY      int
	BoardWidth  int
	BoardHeight int
}

// NewRenderContext lays out the board for a screen of width x height
func NewRenderContext(width, height int, now time.Time) RenderContext {
	ctx := RenderContext{
		Now:          now,
		ScreenWidth:  width,
		ScreenHeight: height,
		BoardX:       1,
		BoardY:       headerRows + 1,
		BoardWidth:   width - 2,
		BoardHeight:  height - headerRows - footerRows - 2,
	}
	if ctx.BoardWidth < minBoardWidth {
		ctx.BoardWidth = minBoardWidth
	}
	if ctx.BoardHeight < minBoardHeight {
		ctx.BoardHeight = minBoardHeight
	}
	return ctx
}

// ToCell maps a point in the normalized 0-100 space to a board cell
func (c RenderContext) ToCell(x, y float64) (int, int) {
	cx := c.BoardX + int(clamp(x, 0, 100)/100*float64(c.BoardWidth-1)+0.5)
	cy := c.BoardY + int(clamp(y, 0, 100)/100*float64(c.BoardHeight-1)+0.5)
	return cx, cy
}

// InBoard reports whether screen cell x, y lies inside the board interior
func (c RenderContext) InBoard(x, y int) bool {
	return x >= c.BoardX && x < c.BoardX+c.BoardWidth && y >= c.BoardY && y < c.BoardY+c.BoardHeight
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
