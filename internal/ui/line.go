// Package ui provides the line-oriented terminals the game talks to: a
// tcell console and a plain reader/writer fallback.
package ui

import "errors"

// ErrQuit is returned by ReadLine when the player closes the terminal.
var ErrQuit = errors.New("quit")

// Rule separates menu blocks.
const Rule = "-------------------------"

// Line is one line of output. Color is a hex colour such as "#00FF00";
// empty means the terminal default.
type Line struct {
	Text  string
	Color string
	Bold  bool
}

// Text returns an uncoloured line.
func Text(s string) Line {
	return Line{Text: s}
}

// Colored returns a line drawn in the given hex colour.
func Colored(s, hex string) Line {
	return Line{Text: s, Color: hex}
}

// Heading returns a bold line.
func Heading(s string) Line {
	return Line{Text: s, Bold: true}
}
