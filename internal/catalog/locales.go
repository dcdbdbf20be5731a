// ABOUTME: Locale metadata and BCP 47 language resolution over the catalog.
// ABOUTME: Maps regional tags (en-US, de-AT) onto supported pack codes.

package catalog

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is the read-only per-language metadata consumed for rendering
// labels and selecting a speech voice.
type Locale struct {
	Code        string
	DisplayName string
	Voice       string
}

// Locale returns the metadata for a supported language code.
func (c *Catalog) Locale(lang string) (Locale, error) {
	lp, ok := c.packs[strings.ToLower(lang)]
	if !ok {
		return Locale{}, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}
	return lp.locale, nil
}

// ResolveTag maps an arbitrary BCP 47 tag onto a supported pack code, so
// "en-US" or "de-AT" resolve to "en" and "de". Tags with no usable match
// return ErrUnsupportedLanguage; the caller decides whether to fall back
// to the configured default and must report that fallback.
func (c *Catalog) ResolveTag(tag string) (string, error) {
	want, err := language.Parse(tag)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}

	supported := make([]language.Tag, 0, len(c.codes))
	for _, code := range c.codes {
		supported = append(supported, language.Make(code))
	}

	matcher := language.NewMatcher(supported)
	_, index, conf := matcher.Match(want)
	if conf == language.No {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, tag)
	}
	return c.codes[index], nil
}
