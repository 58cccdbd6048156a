package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// drawText writes text from x, clipped to maxX, and returns the next free column
func drawText(s tcell.Screen, x, y, maxX int, style tcell.Style, text string) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// drawCentered writes text centered between x0 and x1
func drawCentered(s tcell.Screen, x0, x1, y int, style tcell.Style, text string) {
	w := runewidth.StringWidth(text)
	x := x0 + (x1-x0-w)/2
	if x < x0 {
		x = x0
	}
	drawText(s, x, y, x1, style, text)
}

// fillRow paints a row span with spaces
func fillRow(s tcell.Screen, x0, x1, y int, style tcell.Style) {
	for x := x0; x < x1; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawFrame draws a single-line box whose interior is x, y, w, h
func drawFrame(s tcell.Screen, x, y, w, h int, style tcell.Style) {
	left, right := x-1, x+w
	top, bottom := y-1, y+h
	for cx := x; cx < right; cx++ {
		s.SetContent(cx, top, tcell.RuneHLine, nil, style)
		s.SetContent(cx, bottom, tcell.RuneHLine, nil, style)
	}
	for cy := y; cy < bottom; cy++ {
		s.SetContent(left, cy, tcell.RuneVLine, nil, style)
		s.SetContent(right, cy, tcell.RuneVLine, nil, style)
	}
	s.SetContent(left, top, tcell.RuneULCorner, nil, style)
	s.SetContent(right, top, tcell.RuneURCorner, nil, style)
	s.SetContent(left, bottom, tcell.RuneLLCorner, nil, style)
	s.SetContent(right, bottom, tcell.RuneLRCorner, nil, style)
}

// wrap splits text into lines of at most width display cells on spaces
func wrap(text string, width int) []string {
	if width <= 0 || runewidth.StringWidth(text) <= width {
		return []string{text}
	}
	var lines []string
	line := ""
	word := ""
	flush := func() {
		if line == "" {
			line = word
		} else if runewidth.StringWidth(line+" "+word) <= width {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
		word = ""
	}
	for _, r := range text {
		if r == ' ' {
			flush()
			continue
		}
		word += string(r)
	}
	flush()
	if line != "" {
		lines = append(lines, line)
	}
	return chop(lines, width)
}

// chop hard-splits lines still wider than width, such as long URLs
func chop(lines []string, width int) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		for runewidth.StringWidth(line) > width {
			head := runewidth.Truncate(line, width, "")
			if head == "" {
				break
			}
			out = append(out, head)
			line = line[len(head):]
		}
		out = append(out, line)
	}
	return out
}
