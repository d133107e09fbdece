package entities

import "strings"

// ToSentence joins items into a natural-language list using an Oxford comma:
// "A", "A and B", "A, B, and C".
func ToSentence(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2: //nolint:mnd // pair
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
