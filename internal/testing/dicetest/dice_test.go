package dicetest

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// fatalRecorder captures Fatalf instead of stopping the test.
type fatalRecorder struct {
	testing.TB
	msgs []string
}

func (r *fatalRecorder) Helper() {}

func (r *fatalRecorder) Fatalf(format string, args ...any) {
	r.msgs = append(r.msgs, fmt.Sprintf(format, args...))
}

func TestScriptReturnsRollsInOrder(t *testing.T) {
	d := New(t, 3, 0, 9)

	assert.Equal(t, 3, d.Intn(4))
	assert.Equal(t, 0, d.Intn(1))
	assert.Equal(t, 1, d.Remaining())
	assert.Equal(t, 9, d.Intn(10))
	assert.Equal(t, []int{4, 1, 10}, d.Bounds)
	assert.Zero(t, d.Remaining())
}

func TestScriptFailures(t *testing.T) {
	tests := []struct {
		name  string
		rolls []int
		bound int
		want  string
	}{
		{"exhausted", nil, 5, "Intn(5) called with no scripted rolls left"},
		{"non-positive bound", []int{0}, 0, "Intn called with non-positive bound 0"},
		{"roll too high", []int{5}, 5, "scripted roll 5 out of range for Intn(5)"},
		{"negative roll", []int{-1}, 5, "scripted roll -1 out of range for Intn(5)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &fatalRecorder{}
			d := New(rec, tt.rolls...)

			d.Intn(tt.bound)

			assert.Equal(t, []string{tt.want}, rec.msgs)
			assert.Empty(t, d.Bounds)
		})
	}
}
