package fuzzy

import "sort"

// MatchResult is the outcome of matching input against a candidate list.
type MatchResult struct {
	Input       string
	Match       string   // best match, empty if no candidate is close enough to suggest
	Distance    int      // edit distance to the best match
	AutoCorrect bool     // true if similarity >= threshold
	Suggestions []string // other candidates worth offering, closest first
}

// suggestionWindow bounds how much worse than the best match a candidate's
// distance may be and still be offered as a suggestion.
const suggestionWindow = 2

// Match finds the best match for input among candidates. threshold is a
// similarity ratio in [0,1]; higher means stricter. Similarity is
// 1 - distance/max(len(input), len(candidate)). AutoCorrect is set when the
// best match's similarity meets threshold; otherwise up to three
// next-closest candidates (within suggestionWindow edits of the best) are
// offered as Suggestions.
func Match(input string, candidates []string, threshold float64) MatchResult {
	result := MatchResult{Input: input}
	if input == "" || len(candidates) == 0 {
		return result
	}

	type scored struct {
		name string
		dist int
	}
	scores := make([]scored, 0, len(candidates))
	for _, c := range candidates {
		scores = append(scores, scored{c, Distance(input, c)})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].dist != scores[j].dist {
			return scores[i].dist < scores[j].dist
		}
		return scores[i].name < scores[j].name
	})

	best := scores[0]
	result.Match = best.name
	result.Distance = best.dist

	maxLen := len(input)
	if len(best.name) > maxLen {
		maxLen = len(best.name)
	}
	similarity := 1.0
	if maxLen > 0 {
		similarity = 1.0 - float64(best.dist)/float64(maxLen)
	}

	if similarity >= threshold {
		result.AutoCorrect = true
		return result
	}

	result.Match = ""
	for _, s := range scores {
		if s.dist > best.dist+suggestionWindow {
			break
		}
		result.Suggestions = append(result.Suggestions, s.name)
		if len(result.Suggestions) == 3 {
			break
		}
	}
	return result
}

// SuggestCommand is a convenience wrapper over Match with the CLI's default
// threshold for command-name typo correction.
func SuggestCommand(input string, commands []string) MatchResult {
	return Match(input, commands, 0.8)
}

// SuggestFlag is SuggestCommand's counterpart for flag names: flags tend to
// be shorter, so it uses a slightly lower threshold to still catch
// single-character typos on short names.
func SuggestFlag(input string, flags []string) MatchResult {
	return Match(input, flags, 0.7)
}
