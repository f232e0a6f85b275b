// Package dicetest provides scripted dice for deterministic combat tests.
package dicetest

import "testing"

// Script returns pre-arranged rolls in order and records every bound it
// was asked for. It fails the test on a non-positive bound, an exhausted
// script or a roll outside [0, n).
type Script struct {
	t      testing.TB
	rolls  []int
	Bounds []int
}

// New creates a script that will hand out rolls in order.
func New(t testing.TB, rolls ...int) *Script {
	t.Helper()
	return &Script{t: t, rolls: rolls}
}

// Intn returns the next scripted roll.
func (s *Script) Intn(n int) int {
	s.t.Helper()
	if n <= 0 {
		s.t.Fatalf("Intn called with non-positive bound %d", n)
		return 0
	}
	if len(s.rolls) == 0 {
		s.t.Fatalf("Intn(%d) called with no scripted rolls left", n)
		return 0
	}
	r := s.rolls[0]
	s.rolls = s.rolls[1:]
	if r < 0 || r >= n {
		s.t.Fatalf("scripted roll %d out of range for Intn(%d)", r, n)
		return 0
	}
	s.Bounds = append(s.Bounds, n)
	return r
}

// Remaining reports how many scripted rolls are still unused.
func (s *Script) Remaining() int {
	return len(s.rolls)
}
