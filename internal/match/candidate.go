package match

import "sort"

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name  string
	Score float64 // Normalized Levenshtein similarity (0-1)
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every known name against target.
// Returns candidates sorted by score (descending), then by name.
func RankCandidates(target string, known []string) CandidateList {
	candidates := make(CandidateList, 0, len(known))

	for _, name := range known {
		candidates = append(candidates, Candidate{
			Name:  name,
			Score: NameScore(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name ascending for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// AboveThreshold returns candidates with a score of at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Top returns at most n names from the head of the list.
func (c CandidateList) Top(n int) []string {
	if n > len(c) {
		n = len(c)
	}

	names := make([]string, 0, n)
	for _, cand := range c[:n] {
		names = append(names, cand.Name)
	}

	return names
}

// Suggest returns up to n known names that resemble target closely enough
// to be offered as a correction.
func Suggest(target string, known []string, n int) []string {
	return RankCandidates(target, known).AboveThreshold(SuggestThreshold).Top(n)
}

// SuggestThreshold is the minimum similarity for Suggest.
const SuggestThreshold = 0.5
