// Package match scores how close two column names are, so an unrecognised header
// column can be reported together with the field it most likely meant.
//
// Key functions:
//   - NormalizeIdent: folds case and separators of identifiers and headers
//   - Levenshtein: computes edit distance between strings
//   - Closest: picks the best candidate above a similarity threshold
package match
