// Package typoutil provides edit-distance primitives used by the fuzzy matching strategy.
package typoutil

// CalculateLevenshteinDistance computes the Levenshtein distance between two strings.
// It represents the minimum number of single-character edits (insertions, deletions, or substitutions)
// required to change one string into the other.
// Characters are compared as runes with exact equality; callers fold case beforehand.
func CalculateLevenshteinDistance(a, b string) int {
	return LevenshteinRunes([]rune(a), []rune(b))
}

// LevenshteinRunes is CalculateLevenshteinDistance for callers that already hold rune slices.
func LevenshteinRunes(runesA, runesB []rune) int {
	lenA := len(runesA)
	lenB := len(runesB)

	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// matrix[i][j] is the distance between the first j runes of a and the first i runes of b.
	matrix := make([][]int, lenB+1)
	for i := range matrix {
		matrix[i] = make([]int, lenA+1)
	}

	for i := 0; i <= lenB; i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= lenA; j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= lenB; i++ {
		for j := 1; j <= lenA; j++ {
			if runesB[i-1] == runesA[j-1] {
				matrix[i][j] = matrix[i-1][j-1]
				continue
			}

			// substitution, insertion, deletion
			matrix[i][j] = 1 + min3(matrix[i-1][j-1], matrix[i][j-1], matrix[i-1][j])
		}
	}

	return matrix[lenB][lenA]
}

// min3 is a helper function to find the minimum of three integers
func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
