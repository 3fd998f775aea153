// Package tokenizer splits label text into words for word-boundary matching.
package tokenizer

import (
	"regexp"
	"unicode/utf8"
)

// delimiterRegex matches runs of whitespace, hyphens, underscores and slashes.
var delimiterRegex = regexp.MustCompile(`[\s\-_/]+`)

// Word is a non-empty run of characters between delimiters.
// Offset is the rune index of the word's first character within the source text.
type Word struct {
	Text   string
	Offset int
}

// SplitWords splits text on runs of delimiters and reports each word with its rune offset.
// Leading, trailing and repeated delimiters never produce empty words.
func SplitWords(text string) []Word {
	words := make([]Word, 0) // Initialize as empty slice, not nil
	if text == "" {
		return words
	}

	start := 0
	for _, loc := range delimiterRegex.FindAllStringIndex(text, -1) {
		if loc[0] > start {
			words = append(words, Word{
				Text:   text[start:loc[0]],
				Offset: utf8.RuneCountInString(text[:start]),
			})
		}
		start = loc[1]
	}
	if start < len(text) {
		words = append(words, Word{
			Text:   text[start:],
			Offset: utf8.RuneCountInString(text[:start]),
		})
	}

	return words
}
