package scoring

import "unicode/utf8"

// WordScore is the points a found word is worth: one per letter
func WordScore(word string) int {
	return utf8.RuneCountInString(word)
}

// Total sums the scores of the given words
func Total(words []string) int {
	total := 0
	for _, w := range words {
		total += WordScore(w)
	}
	return total
}
