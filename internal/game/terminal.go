package game

import (
	"fmt"
	"strings"

	"github.com/samdwyer/zyveria/internal/ui"
)

// Terminal is what the session reads commands from and writes to.
// ReadLine returns ui.ErrQuit when the player closes the terminal.
type Terminal interface {
	Print(line ui.Line)
	ReadLine(prompt string) (string, error)
	Clear()
}

const prompt = "> "

func (g *Game) say(format string, args ...any) {
	g.term.Print(ui.Text(fmt.Sprintf(format, args...)))
}

func (g *Game) sayColored(hex, format string, args ...any) {
	g.term.Print(ui.Colored(fmt.Sprintf(format, args...), hex))
}

func (g *Game) rule() {
	g.term.Print(ui.Text(ui.Rule))
}

func (g *Game) read() (string, error) {
	line, err := g.term.ReadLine(prompt)
	return strings.TrimSpace(line), err
}
