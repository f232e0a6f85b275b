package ui

import (
	"github.com/gdamore/tcell/v2"
)

// maxScrollback bounds how many lines the console remembers.
const maxScrollback = 500

// Console is a scrolling line terminal on a tcell screen. Output scrolls up
// from the bottom; the last row holds the prompt and the line being typed.
type Console struct {
	screen tcell.Screen
	lines  []Line
}

// NewConsole creates and initializes a console on the real terminal.
func NewConsole() (*Console, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewConsoleWithScreen(s)
}

// NewConsoleWithScreen initializes a console on an existing screen, such as
// a simulation screen in tests.
func NewConsoleWithScreen(s tcell.Screen) (*Console, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(baseStyle)
	s.Clear()
	return &Console{screen: s}, nil
}

// Close finalizes the screen and restores terminal state.
func (c *Console) Close() {
	c.screen.Fini()
}

// Print appends a line to the scrollback and redraws.
func (c *Console) Print(l Line) {
	c.lines = append(c.lines, l)
	if over := len(c.lines) - maxScrollback; over > 0 {
		c.lines = append(c.lines[:0], c.lines[over:]...)
	}
	c.render("", "")
}

// Clear empties the scrollback.
func (c *Console) Clear() {
	c.lines = c.lines[:0]
	c.render("", "")
}

// ReadLine blocks until the player submits a line with Enter. Escape and
// Ctrl-C return ErrQuit.
func (c *Console) ReadLine(prompt string) (string, error) {
	var input []rune
	for {
		c.render(prompt, string(input))

		switch ev := c.screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return "", ErrQuit
			case tcell.KeyEnter:
				text := string(input)
				c.lines = append(c.lines, Line{Text: prompt + text, Color: echoColor})
				return text, nil
			case tcell.KeyBackspace, tcell.KeyBackspace2:
				if len(input) > 0 {
					input = input[:len(input)-1]
				}
			case tcell.KeyRune:
				input = append(input, ev.Rune())
			}
		case *tcell.EventResize:
			c.screen.Sync()
		case nil:
			// The screen was finalized underneath us.
			return "", ErrQuit
		}
	}
}
