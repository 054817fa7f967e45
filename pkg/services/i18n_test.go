package services

import (
	"errors"
	"net/http/httptest"
	"testing"
	"testing/fstest"

	"clinic-site/pkg/locales"
)

func newTestProvider(t *testing.T, def string) *Provider {
	t.Helper()
	p, err := NewProvider(locales.FS, def)
	if err != nil {
		t.Fatalf("NewProvider error = %v", err)
	}
	return p
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Language{"en": English, " AR ": Arabic, "tr": Turkish} {
		got, err := ParseLanguage(in)
		if err != nil || got != want {
			t.Fatalf("ParseLanguage(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLanguage("fr"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("ParseLanguage(fr) error = %v, want %v", err, ErrUnsupportedLanguage)
	}
}

func TestDirection(t *testing.T) {
	t.Parallel()

	if Arabic.Direction() != RTL {
		t.Fatalf("Arabic direction = %v, want rtl", Arabic.Direction())
	}
	if English.Direction() != LTR || Turkish.Direction() != LTR {
		t.Fatal("English and Turkish should be ltr")
	}
}

func TestBundlesAreComplete(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, "en")
	for _, lang := range SupportedLanguages {
		loc := p.Locale(lang)
		if got := len(loc.Bundle.Assessment.Questions); got != QuestionCount {
			t.Fatalf("%s has %d questions, want %d", lang, got, QuestionCount)
		}
		if got := len(loc.Bundle.Blog.Months); got != 12 {
			t.Fatalf("%s has %d month names, want 12", lang, got)
		}
		if loc.Bundle.SEO.Title == "" || loc.Bundle.SEO.Description == "" {
			t.Fatalf("%s is missing seo text", lang)
		}
	}
}

func TestNewProviderRejectsUnknownDefault(t *testing.T) {
	t.Parallel()

	if _, err := NewProvider(locales.FS, "de"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("NewProvider(de) error = %v, want %v", err, ErrUnsupportedLanguage)
	}
}

func TestNewProviderValidatesBundles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"en.yaml": {Data: []byte("seo:\n  title: x\nassessment:\n  questions:\n    - question: one\n      options: [a]\n")},
		"ar.yaml": {Data: []byte("seo:\n  title: x\n")},
		"tr.yaml": {Data: []byte("seo:\n  title: x\n")},
	}
	if _, err := NewProvider(fsys, "en"); err == nil {
		t.Fatal("NewProvider accepted a bundle with one question")
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, "en")
	tests := []struct {
		name   string
		target string
		accept string
		want   Language
	}{
		{"query wins", "/?lang=ar", "tr-TR,tr;q=0.9", Arabic},
		{"unsupported query falls through", "/?lang=fr", "tr-TR,tr;q=0.9", Turkish},
		{"accept language", "/", "ar-EG,ar;q=0.9,en;q=0.5", Arabic},
		{"unknown accept language", "/", "ja-JP", English},
		{"no hints", "/", "", English},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", tt.target, nil)
		if tt.accept != "" {
			r.Header.Set("Accept-Language", tt.accept)
		}
		loc := p.Resolve(r)
		if loc.Language != tt.want {
			t.Fatalf("%s: Resolve = %v, want %v", tt.name, loc.Language, tt.want)
		}
		if loc.Direction != tt.want.Direction() {
			t.Fatalf("%s: direction = %v, want %v", tt.name, loc.Direction, tt.want.Direction())
		}
	}
}

func TestResolveUsesConfiguredDefault(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, "tr")
	if got := p.Resolve(httptest.NewRequest("GET", "/", nil)).Language; got != Turkish {
		t.Fatalf("Resolve = %v, want %v", got, Turkish)
	}
	if got := p.Resolve(nil).Language; got != Turkish {
		t.Fatalf("Resolve(nil) = %v, want %v", got, Turkish)
	}
}

func TestSet(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, "en")
	loc, err := p.Set("ar")
	if err != nil {
		t.Fatalf("Set(ar) error = %v", err)
	}
	if loc.Direction != RTL {
		t.Fatalf("Set(ar) direction = %v, want rtl", loc.Direction)
	}
	if _, err := p.Set("xx"); !errors.Is(err, ErrUnsupportedLanguage) {
		t.Fatalf("Set(xx) error = %v", err)
	}
}

func TestOptions(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, "en")
	opts := p.Options(Arabic, "/", "blog=knee-pain&lang=en")
	if len(opts) != len(SupportedLanguages) {
		t.Fatalf("len(Options) = %d, want %d", len(opts), len(SupportedLanguages))
	}
	for _, o := range opts {
		if o.Active != (o.Code == "ar") {
			t.Fatalf("option %s active = %v", o.Code, o.Active)
		}
	}
	if got, want := opts[2].URL, "/?blog=knee-pain&lang=tr"; got != want {
		t.Fatalf("Turkish URL = %q, want %q", got, want)
	}
	if opts[0].Label != "English" {
		t.Fatalf("first label = %q, want English", opts[0].Label)
	}
}
