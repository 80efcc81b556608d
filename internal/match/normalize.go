package match

import (
	"strings"
	"unicode"
)

// NormalizeIdent folds an identifier or header for fuzzy matching: CamelCase is split,
// tokens are lowercased and the separators _ - . and space are dropped, so
// "OrderID", "order_id" and "Order Id" all become "orderid".
func NormalizeIdent(s string) string {
	return strings.Join(Tokenize(s), "")
}

// Tokenize splits an identifier into lowercase tokens.
// Examples:
//   - "OrderID" -> ["order", "id"]
//   - "tracking_no" -> ["tracking", "no"]
//   - "XMLParser" -> ["xml", "parser"]
func Tokenize(s string) []string {
	runes := []rune(s)

	var (
		tokens []string
		start  = -1
	)
	flush := func(end int) {
		if start >= 0 {
			tokens = append(tokens, strings.ToLower(string(runes[start:end])))
		}
		start = -1
	}

	for i, r := range runes {
		if isSeparator(r) {
			flush(i)
			continue
		}
		if start >= 0 && startsToken(runes, i) {
			flush(i)
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(runes))

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// startsToken reports a lower-to-upper transition ("orderID" before 'I') or the last
// capital of an acronym followed by lowercase ("XMLParser" before 'P').
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]
	if !unicode.IsUpper(r) {
		return false
	}
	if !unicode.IsUpper(prev) {
		return true
	}
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
