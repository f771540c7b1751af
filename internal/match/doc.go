// Package match ranks known names against a misspelled one.
//
// It backs the "did you mean" hints attached to unknown-field and
// invalid-enum violations:
//   - NormalizeKey: folds case, camelCase and separators
//   - Levenshtein: edit distance between two strings
//   - Suggest: closest candidates above a similarity threshold
package match
