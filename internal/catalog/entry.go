// ABOUTME: PhraseEntry and MatchMode: one language-specific phrase-to-intent mapping.
// ABOUTME: Match modes carry declared specificity; exact > prefix > contains.

package catalog

import (
	"fmt"
	"strings"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// MatchMode declares how a phrase is compared against normalized input.
// Higher values are more specific and win over lower ones.
type MatchMode int

const (
	// MatchContains matches when the phrase appears anywhere in the input
	// as a whole word or word sequence.
	MatchContains MatchMode = iota + 1
	// MatchPrefix matches when the input starts with the phrase on a word
	// boundary; trailing words become the parameter payload.
	MatchPrefix
	// MatchExact matches only the full normalized input.
	MatchExact
)

// String returns the mode name as used in phrase pack files.
func (m MatchMode) String() string {
	switch m {
	case MatchExact:
		return "exact"
	case MatchPrefix:
		return "prefix"
	case MatchContains:
		return "contains"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// parseMode maps a pack file mode string to a MatchMode.
func parseMode(s string) (MatchMode, error) {
	switch s {
	case "exact":
		return MatchExact, nil
	case "prefix":
		return MatchPrefix, nil
	case "contains":
		return MatchContains, nil
	default:
		return 0, fmt.Errorf("unknown match mode %q", s)
	}
}

// PhraseEntry is one row of the catalog: a surface phrase in one language
// mapped to a canonical intent with a declared matching mode.
type PhraseEntry struct {
	Lang   string
	Phrase string // already normalized at load time
	Intent dsl.Intent
	Mode   MatchMode

	declOrder int // position within the language pack, ranking tie-breaker
}

// Matches reports whether the entry applies to the normalized input.
func (e PhraseEntry) Matches(normalized string) bool {
	switch e.Mode {
	case MatchExact:
		return normalized == e.Phrase
	case MatchPrefix:
		return normalized == e.Phrase || strings.HasPrefix(normalized, e.Phrase+" ")
	case MatchContains:
		return containsWords(normalized, e.Phrase)
	default:
		return false
	}
}

// containsWords reports whether phrase occurs in input on word boundaries.
func containsWords(input, phrase string) bool {
	return strings.Contains(" "+input+" ", " "+phrase+" ")
}

// Match pairs an applicable entry with its specificity for ranking.
type Match struct {
	Entry       PhraseEntry
	Specificity MatchMode
}
