package mutation

import (
	"slices"
	"strings"
)

// joinWords space-joins the non-empty parts.
func joinWords(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part == "" {
			continue
		}
		kept = append(kept, part)
	}
	return strings.Join(kept, " ")
}

func squash(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

func reverseRunes(word string) string {
	runes := []rune(word)
	slices.Reverse(runes)
	return string(runes)
}

func halveRunes(word string) string {
	runes := []rune(word)
	return string(runes[:max(1, len(runes)/2)])
}

func pick[T any](rnd interface{ IntN(int) int }, items []T) T {
	return items[rnd.IntN(len(items))]
}
