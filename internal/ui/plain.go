package ui

import (
	"bufio"
	"fmt"
	"io"
)

// Plain is a terminal over any reader and writer. It ignores colour and
// never clears, which suits pipes, logs and dumb terminals.
type Plain struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPlain creates a plain terminal.
func NewPlain(r io.Reader, w io.Writer) *Plain {
	return &Plain{in: bufio.NewScanner(r), out: w}
}

// Print writes the line's text.
func (p *Plain) Print(l Line) {
	fmt.Fprintln(p.out, l.Text)
}

// Clear does nothing.
func (p *Plain) Clear() {}

// ReadLine writes the prompt and reads one line. End of input is ErrQuit.
func (p *Plain) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(p.out, prompt)
	}
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", ErrQuit
	}
	return p.in.Text(), nil
}
