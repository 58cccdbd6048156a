package render

import "github.com/lixenwraith/dev-arcade/arcade"

// TargetKind discriminates what a click landed on
type TargetKind uint8

const (
	TargetNone TargetKind = iota
	TargetEntity
	TargetPowerUp
)

// Target is the result of a hit test
type Target struct {
	Kind TargetKind
	ID   int64
}

// Pick hit-tests screen cell x, y against entities, then power-ups
// Later entities are drawn on top and win ties; a cell is about twice as tall
// as it is wide, so the horizontal reach is doubled
func Pick(ctx RenderContext, placed []Placed, powerUps []arcade.PowerUp, x, y int) Target {
	if !ctx.InBoard(x, y) {
		return Target{}
	}

	for i := len(placed) - 1; i >= 0; i-- {
		p := &placed[i]
		cx, cy := ctx.ToCell(p.X, p.Y)
		r := p.Entity.Size
		if r < 1 {
			r = 1
		}
		if within(x, y, cx, cy, r) {
			return Target{Kind: TargetEntity, ID: p.Entity.ID}
		}
	}

	for i := len(powerUps) - 1; i >= 0; i-- {
		cx, cy := ctx.ToCell(powerUps[i].X, powerUps[i].Y)
		if within(x, y, cx, cy, 1) {
			return Target{Kind: TargetPowerUp, ID: powerUps[i].ID}
		}
	}
	return Target{}
}

func within(x, y, cx, cy, r int) bool {
	dx := x - cx
	dy := y - cy
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= 2*r && dy <= r
}
