// Package fuzzy provides fuzzy string matching for the CLI's command- and
// flag-name suggestions (spec.md doesn't name this, but a CLI this shaped
// needs "did you mean" the way the proof tool's own CLI does).
package fuzzy

// Distance computes the Levenshtein edit distance between two strings: the
// minimum number of single-character insertions, deletions, or
// substitutions needed to turn a into b.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len([]rune(b))
	}
	if len(b) == 0 {
		return len([]rune(a))
	}

	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)

	dp := make([][]int, lenA+1)
	for i := range dp {
		dp[i] = make([]int, lenB+1)
	}
	for j := 0; j <= lenB; j++ {
		dp[0][j] = j
	}
	for i := 0; i <= lenA; i++ {
		dp[i][0] = i
	}

	for i := 1; i <= lenA; i++ {
		for j := 1; j <= lenB; j++ {
			cost := 1
			if runesA[i-1] == runesB[j-1] {
				cost = 0
			}
			dp[i][j] = min3(
				dp[i-1][j]+1,
				dp[i][j-1]+1,
				dp[i-1][j-1]+cost,
			)
		}
	}

	return dp[lenA][lenB]
}

func min3(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
