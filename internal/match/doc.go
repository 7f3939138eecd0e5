// Package match provides identifier normalization and Levenshtein distance
// for near-miss suggestions on unknown function names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Closest: ranks registered names against a misspelled lookup
package match
