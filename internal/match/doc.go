// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking used to suggest catalog names for misspelt
// machine components.
//
// Key functions:
//   - NormalizeName: normalizes component names for comparison
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names against an unknown one
package match
