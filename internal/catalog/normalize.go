// ABOUTME: Input normalization shared by the catalog and the parser.
// ABOUTME: Lowercases, trims, collapses whitespace, strips trailing punctuation.

package catalog

import "strings"

// Normalize prepares raw input for matching: lowercase, trimmed, internal
// whitespace collapsed to single spaces, trailing sentence punctuation
// removed. Diacritics are preserved; they are meaningful in the supported
// languages.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.TrimRight(s, ".!?")
	return strings.Join(strings.Fields(s), " ")
}

// ParamAfter extracts the words of raw input that follow the matched
// phrase, preserving the original casing. Extraction is word-count based so
// it stays correct when lowercasing changed byte lengths.
func ParamAfter(raw, phrase string) string {
	rawFields := strings.Fields(strings.TrimRight(strings.TrimSpace(raw), ".!?"))
	n := len(strings.Fields(phrase))
	if n >= len(rawFields) {
		return ""
	}
	return strings.Join(rawFields[n:], " ")
}
