package services

import (
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"
	"strings"

	"clinic-site/pkg/models"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const LangParam = "lang"

type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
	Turkish Language = "tr"
)

// SupportedLanguages is the switcher order.
var SupportedLanguages = []Language{English, Arabic, Turkish}

var ErrUnsupportedLanguage = errors.New("unsupported language")

type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

func (l Language) Direction() Direction {
	if l == Arabic {
		return RTL
	}
	return LTR
}

func (l Language) Tag() language.Tag {
	return language.Make(string(l))
}

func ParseLanguage(code string) (Language, error) {
	code = strings.ToLower(strings.TrimSpace(code))
	for _, l := range SupportedLanguages {
		if string(l) == code {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
}

// Locale is the resolved language state handed to templates and API consumers.
type Locale struct {
	Language  Language       `json:"language"`
	Direction Direction      `json:"dir"`
	Bundle    *models.Bundle `json:"bundle"`
}

type LanguageOption struct {
	Code   string `json:"code"`
	Label  string `json:"label"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

type Provider struct {
	defaultLang Language
	locales     map[Language]*Locale
	matcher     language.Matcher
	order       []Language
}

// NewProvider loads one <code>.yaml bundle per supported language from fsys.
func NewProvider(fsys fs.FS, defaultCode string) (*Provider, error) {
	def, err := ParseLanguage(defaultCode)
	if err != nil {
		return nil, err
	}

	p := &Provider{
		defaultLang: def,
		locales:     make(map[Language]*Locale, len(SupportedLanguages)),
	}

	for _, lang := range SupportedLanguages {
		data, err := fs.ReadFile(fsys, string(lang)+".yaml")
		if err != nil {
			return nil, fmt.Errorf("read bundle %s: %w", lang, err)
		}
		var bundle models.Bundle
		if err := yaml.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("parse bundle %s: %w", lang, err)
		}
		if err := validateBundle(&bundle); err != nil {
			return nil, fmt.Errorf("bundle %s: %w", lang, err)
		}
		p.locales[lang] = &Locale{Language: lang, Direction: lang.Direction(), Bundle: &bundle}
	}

	// The matcher falls back to its first entry, so the default goes first.
	p.order = append(p.order, def)
	for _, lang := range SupportedLanguages {
		if lang != def {
			p.order = append(p.order, lang)
		}
	}
	tags := make([]language.Tag, len(p.order))
	for i, lang := range p.order {
		tags[i] = lang.Tag()
	}
	p.matcher = language.NewMatcher(tags)

	return p, nil
}

func validateBundle(b *models.Bundle) error {
	if len(b.Assessment.Questions) != QuestionCount {
		return fmt.Errorf("assessment needs %d questions, got %d", QuestionCount, len(b.Assessment.Questions))
	}
	for i, q := range b.Assessment.Questions {
		if q.Question == "" || len(q.Options) == 0 {
			return fmt.Errorf("assessment question %d is incomplete", i)
		}
	}
	if b.SEO.Title == "" {
		return fmt.Errorf("seo title is empty")
	}
	return nil
}

func (p *Provider) Default() Language {
	return p.defaultLang
}

// Set validates code and returns its locale.
func (p *Provider) Set(code string) (*Locale, error) {
	lang, err := ParseLanguage(code)
	if err != nil {
		return nil, err
	}
	return p.locales[lang], nil
}

// Locale returns the locale for lang, or the default locale for unknown values.
func (p *Provider) Locale(lang Language) *Locale {
	if loc, ok := p.locales[lang]; ok {
		return loc
	}
	return p.locales[p.defaultLang]
}

// Resolve picks the request language: ?lang when supported, then Accept-Language,
// then the default. Nothing is remembered between requests.
func (p *Provider) Resolve(r *http.Request) *Locale {
	if r == nil {
		return p.Locale(p.defaultLang)
	}

	if v := r.URL.Query().Get(LangParam); v != "" {
		if lang, err := ParseLanguage(v); err == nil {
			return p.locales[lang]
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			_, idx, conf := p.matcher.Match(tags...)
			if conf != language.No {
				return p.locales[p.order[idx]]
			}
		}
	}

	return p.Locale(p.defaultLang)
}

// Options builds the language switcher for the current URL.
func (p *Provider) Options(active Language, path, rawQuery string) []LanguageOption {
	options := make([]LanguageOption, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		options = append(options, LanguageOption{
			Code:   string(lang),
			Label:  p.locales[lang].Bundle.Name,
			URL:    LanguageURL(path, rawQuery, string(lang)),
			Active: lang == active,
		})
	}
	return options
}

// LanguageURL returns path with the lang query param set and other params kept.
func LanguageURL(path, rawQuery, lang string) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}
	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}
	query.Set(LangParam, lang)
	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}
