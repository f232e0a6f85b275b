package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/zyveria/internal/gamedata"
)

// echoColor is used for the player's own submitted input.
const echoColor = "#808080"

var baseStyle = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite)

// row is one screen row of wrapped output.
type row struct {
	text  []rune
	style tcell.Style
}

// render draws as much scrollback as fits above the prompt row.
func (c *Console) render(prompt, input string) {
	c.screen.Clear()
	width, height := c.screen.Size()
	if width <= 0 || height <= 0 {
		return
	}

	rows := wrapLines(c.lines, width)
	visible := height - 1
	if len(rows) > visible {
		rows = rows[len(rows)-visible:]
	}
	for y, r := range rows {
		drawRunes(c.screen, 0, y, r.text, r.style)
	}

	promptRunes := []rune(prompt + input)
	// Keep the cursor on screen by showing the tail of long input.
	if len(promptRunes) >= width {
		promptRunes = promptRunes[len(promptRunes)-width+1:]
	}
	drawRunes(c.screen, 0, height-1, promptRunes, baseStyle.Bold(true))
	c.screen.ShowCursor(len(promptRunes), height-1)

	c.screen.Show()
}

// wrapLines splits lines into rows no wider than width.
func wrapLines(lines []Line, width int) []row {
	var rows []row
	for _, l := range lines {
		style := styleFor(l)
		text := []rune(l.Text)
		if len(text) == 0 {
			rows = append(rows, row{style: style})
			continue
		}
		for len(text) > width {
			rows = append(rows, row{text: text[:width], style: style})
			text = text[width:]
		}
		rows = append(rows, row{text: text, style: style})
	}
	return rows
}

// styleFor returns the style a line is drawn with.
func styleFor(l Line) tcell.Style {
	style := baseStyle
	if color := gamedata.ColorOrDefault(l.Color); color != tcell.ColorDefault {
		style = style.Foreground(color)
	}
	if l.Bold {
		style = style.Bold(true)
	}
	return style
}

func drawRunes(s tcell.Screen, x, y int, text []rune, style tcell.Style) {
	for i, ch := range text {
		s.SetContent(x+i, y, ch, nil, style)
	}
}
