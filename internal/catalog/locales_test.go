// ABOUTME: Tests for locale metadata and BCP 47 tag resolution
// ABOUTME: Regional tags resolve to pack codes, unknown languages error

package catalog

import (
	"errors"
	"testing"
)

func TestResolveTag(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	tests := []struct {
		tag  string
		want string
	}{
		{"de-AT", "de"},
		{"en-US", "en"},
		{"pl-PL", "pl"},
		{"en", "en"},
	}
	for _, tt := range tests {
		got, err := c.ResolveTag(tt.tag)
		if err != nil {
			t.Errorf("ResolveTag(%q): %v", tt.tag, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ResolveTag(%q) = %q, want %q", tt.tag, got, tt.want)
		}
	}
}

func TestResolveTagUnsupported(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	for _, tag := range []string{"fr", "not a tag!!"} {
		if _, err := c.ResolveTag(tag); !errors.Is(err, ErrUnsupportedLanguage) {
			t.Errorf("ResolveTag(%q): err = %v, want ErrUnsupportedLanguage", tag, err)
		}
	}
}

func TestLocaleMetadata(t *testing.T) {
	t.Parallel()

	c := mustLoad(t)
	loc, err := c.Locale("pl")
	if err != nil {
		t.Fatalf("Locale: %v", err)
	}
	if loc.DisplayName != "Polski" || loc.Voice != "pl-PL" {
		t.Errorf("Locale(pl) = %+v", loc)
	}
	upper, err := c.Locale("PL")
	if err != nil {
		t.Fatalf("Locale must normalize case: %v", err)
	}
	if upper.DisplayName != "Polski" {
		t.Errorf("Locale(PL) = %+v", upper)
	}
	if _, err := c.Locale("fr"); err == nil {
		t.Error("Locale(fr) must error")
	}
}
