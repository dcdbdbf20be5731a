// ABOUTME: Immutable multilingual phrase catalog loaded from YAML packs.
// ABOUTME: Lookup orders matches by specificity, phrase length, declaration order.

package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/text2dsl-go/internal/dsl"
)

// ErrUnsupportedLanguage is returned when the requested language has no
// pack in the catalog. It is distinct from an empty match list.
var ErrUnsupportedLanguage = errors.New("unsupported language")

// packFile is the YAML schema of one phrase pack.
type packFile struct {
	Language    string `yaml:"language"`
	DisplayName string `yaml:"display_name"`
	Voice       string `yaml:"voice"`
	Phrases     []struct {
		Intent  string   `yaml:"intent"`
		Mode    string   `yaml:"mode"`
		Phrases []string `yaml:"phrases"`
	} `yaml:"phrases"`
}

// languagePack holds the loaded entries of one language.
type languagePack struct {
	locale  Locale
	entries []PhraseEntry
	// surface guards the intra-language ambiguity invariant: one
	// normalized phrase never maps to two intents.
	surface map[string]dsl.Intent
}

// Catalog is the read-only phrase table shared by all sessions. It is
// immutable after Load and safe for concurrent readers without locking.
type Catalog struct {
	packs map[string]*languagePack
	codes []string // load order, stable
}

// Load builds a catalog from the embedded built-in packs.
func Load() (*Catalog, error) {
	c := &Catalog{packs: make(map[string]*languagePack)}
	if err := c.loadFS(builtinPacks, "packs"); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadWithUserPacks builds the built-in catalog, then merges every
// *.yaml pack found in dir. A missing dir is not an error.
func LoadWithUserPacks(dir string) (*Catalog, error) {
	c, err := Load()
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, fmt.Errorf("reading pack dir: %w", err)
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".yaml") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading pack %s: %w", e.Name(), err)
		}
		if err := c.addPack(data, e.Name()); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Catalog) loadFS(fsys fs.FS, root string) error {
	names, err := fs.Glob(fsys, root+"/*.yaml")
	if err != nil {
		return err
	}
	sort.Strings(names) // deterministic load order
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading embedded pack %s: %w", name, err)
		}
		if err := c.addPack(data, name); err != nil {
			return err
		}
	}
	return nil
}

// addPack parses and validates one pack, merging it into the catalog.
// Validation failures abort the load; a corrupt catalog must prevent
// session creation rather than surface mid-session.
func (c *Catalog) addPack(data []byte, source string) error {
	var pf packFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return fmt.Errorf("parsing pack %s: %w", source, err)
	}
	if pf.Language == "" {
		return fmt.Errorf("pack %s: missing language code", source)
	}

	code := strings.ToLower(pf.Language)
	lp := c.packs[code]
	if lp == nil {
		lp = &languagePack{
			locale:  Locale{Code: code, DisplayName: pf.DisplayName, Voice: pf.Voice},
			surface: make(map[string]dsl.Intent),
		}
		c.packs[code] = lp
		c.codes = append(c.codes, code)
	}

	for _, group := range pf.Phrases {
		intent := dsl.Intent(group.Intent)
		if !intent.Known() {
			return fmt.Errorf("pack %s: unknown intent %q", source, group.Intent)
		}
		mode, err := parseMode(group.Mode)
		if err != nil {
			return fmt.Errorf("pack %s: intent %q: %w", source, group.Intent, err)
		}
		for _, phrase := range group.Phrases {
			normalized := Normalize(phrase)
			if normalized == "" {
				return fmt.Errorf("pack %s: intent %q: empty phrase", source, group.Intent)
			}
			if prev, dup := lp.surface[normalized]; dup {
				return fmt.Errorf("pack %s: phrase %q maps to both %q and %q",
					source, normalized, prev, intent)
			}
			lp.surface[normalized] = intent
			lp.entries = append(lp.entries, PhraseEntry{
				Lang:      code,
				Phrase:    normalized,
				Intent:    intent,
				Mode:      mode,
				declOrder: len(lp.entries),
			})
		}
	}
	return nil
}

// Supported reports whether the catalog has a pack for the language code.
func (c *Catalog) Supported(lang string) bool {
	_, ok := c.packs[strings.ToLower(lang)]
	return ok
}

// Languages returns the supported language codes in load order.
func (c *Catalog) Languages() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}

// Lookup returns every entry matching the normalized input in the given
// language, ordered by descending specificity, then longest phrase, then
// declaration order. ErrUnsupportedLanguage is returned when the language
// has no pack; an empty slice with nil error means no phrase matched.
func (c *Catalog) Lookup(lang, normalized string) ([]Match, error) {
	lp, ok := c.packs[strings.ToLower(lang)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
	}

	var matches []Match
	for _, e := range lp.entries {
		if e.Matches(normalized) {
			matches = append(matches, Match{Entry: e, Specificity: e.Mode})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		a, b := matches[i], matches[j]
		if a.Specificity != b.Specificity {
			return a.Specificity > b.Specificity
		}
		if len(a.Entry.Phrase) != len(b.Entry.Phrase) {
			return len(a.Entry.Phrase) > len(b.Entry.Phrase)
		}
		return a.Entry.declOrder < b.Entry.declOrder
	})
	return matches, nil
}

// Label returns the first declared phrase for the intent in the given
// language, falling back to the intent identifier itself. Used by the
// suggestion engine to render human-readable labels.
func (c *Catalog) Label(lang string, intent dsl.Intent) string {
	if lp, ok := c.packs[strings.ToLower(lang)]; ok {
		for _, e := range lp.entries {
			if e.Intent == intent {
				return e.Phrase
			}
		}
	}
	return string(intent)
}

// Phrases returns every declared phrase of a language in declaration
// order, for completion matching. Unsupported languages yield nil.
func (c *Catalog) Phrases(lang string) []string {
	lp, ok := c.packs[strings.ToLower(lang)]
	if !ok {
		return nil
	}
	out := make([]string, len(lp.entries))
	for i, e := range lp.entries {
		out[i] = e.Phrase
	}
	return out
}
