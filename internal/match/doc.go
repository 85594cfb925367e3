// Package match provides name normalization, Levenshtein distance calculation,
// and "did you mean" suggestions for mask catalog names.
//
// Key functions:
//   - NormalizeName: normalizes catalog names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names by similarity to an unknown one
package match
