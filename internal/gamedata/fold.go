package gamedata

import (
	"strings"

	"golang.org/x/text/cases"
)

// Fold normalizes a player-typed token for case-insensitive matching.
// Surrounding whitespace is dropped and inner runs of spaces, underscores
// and hyphens collapse to a single space, so "mana_stone", "Mana  Stone"
// and "MANA-STONE" all fold to the same key.
func Fold(token string) string {
	fields := strings.FieldsFunc(token, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '_' || r == '-'
	})
	// Casers carry state; a fresh one per call keeps Fold safe for concurrent use.
	return cases.Fold().String(strings.Join(fields, " "))
}
