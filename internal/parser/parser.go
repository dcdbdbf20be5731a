// ABOUTME: Stateless DSL parser: normalizes input and resolves the best
// ABOUTME: catalog match by specificity, breaking ties by longest phrase.

package parser

import (
	"errors"

	"github.com/mauromedda/text2dsl-go/internal/catalog"
	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// Parser resolves raw input text against the phrase catalog. It holds no
// mutable state and is safe for concurrent use across sessions.
type Parser struct {
	catalog     *catalog.Catalog
	defaultLang string
}

// New creates a parser over the given catalog. defaultLang is the fallback
// when a requested language has no pack.
func New(c *catalog.Catalog, defaultLang string) *Parser {
	return &Parser{catalog: c, defaultLang: defaultLang}
}

// specificity score per match mode; exact matches carry full confidence.
func score(m catalog.MatchMode) float64 {
	switch m {
	case catalog.MatchExact:
		return 1.0
	case catalog.MatchPrefix:
		return 0.8
	case catalog.MatchContains:
		return 0.5
	default:
		return 0
	}
}

// Parse resolves one input line in the given language. Unmatched input
// yields an unrecognized result carrying the raw text verbatim; it is an
// expected case, never an error. When the language is absent from the
// catalog the parser falls back to its default language and reports the
// fallback on the result.
func (p *Parser) Parse(raw, lang string) dsl.ParseResult {
	normalized := catalog.Normalize(raw)
	result := dsl.ParseResult{Raw: raw, Lang: lang}
	if normalized == "" {
		return result
	}

	matches, err := p.catalog.Lookup(lang, normalized)
	if errors.Is(err, catalog.ErrUnsupportedLanguage) {
		// Regional tags like en-US still resolve to a pack; only truly
		// unknown languages fall back to the default.
		if code, rerr := p.catalog.ResolveTag(lang); rerr == nil {
			result.Lang = code
			matches, err = p.catalog.Lookup(code, normalized)
		} else {
			result.Lang = p.defaultLang
			result.FellBack = true
			matches, err = p.catalog.Lookup(p.defaultLang, normalized)
		}
	}
	if err != nil || len(matches) == 0 {
		return result
	}

	// Lookup already ordered by specificity, phrase length, declaration
	// order; the head is the winning entry.
	best := matches[0]
	result.Intent = best.Entry.Intent
	result.Score = score(best.Specificity)

	if best.Entry.Intent.TakesParam() && best.Specificity != catalog.MatchContains {
		result.Param = catalog.ParamAfter(raw, best.Entry.Phrase)
	}
	return result
}
