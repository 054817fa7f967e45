package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"clinic-site/pkg/models"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/yuin/goldmark"
	"gopkg.in/yaml.v3"
)

var ErrInvalidFrontMatter = errors.New("unknown front matter format")

func ParseFrontMatter(content []byte) (map[string]interface{}, string, string, error) {
	str := strings.ReplaceAll(string(content), "\r\n", "\n")
	// Check for YAML (---)
	if rest, ok := strings.CutPrefix(str, "---\n"); ok {
		if head, body, ok := splitFence(rest, "---"); ok {
			var fm map[string]interface{}
			if err := yaml.Unmarshal([]byte(head), &fm); err == nil {
				return fm, strings.TrimSpace(body), "yaml", nil
			}
		}
	}
	// Check for TOML (+++)
	if rest, ok := strings.CutPrefix(str, "+++\n"); ok {
		if head, body, ok := splitFence(rest, "+++"); ok {
			var fm map[string]interface{}
			if err := toml.Unmarshal([]byte(head), &fm); err == nil {
				return fm, strings.TrimSpace(body), "toml", nil
			}
		}
	}
	// Check for JSON ({) followed by an optional body
	if strings.HasPrefix(strings.TrimSpace(str), "{") {
		dec := json.NewDecoder(strings.NewReader(str))
		var fm map[string]interface{}
		if err := dec.Decode(&fm); err == nil {
			rest := str[dec.InputOffset():]
			return fm, strings.TrimSpace(rest), "json", nil
		}
	}

	return nil, "", "", ErrInvalidFrontMatter
}

// splitFence finds the line holding only fence and returns what comes before and
// after it. A fence inside a value, such as "a---b", does not close the block.
func splitFence(rest, fence string) (head, body string, ok bool) {
	if strings.HasPrefix(rest, fence) && (len(rest) == len(fence) || rest[len(fence)] == '\n') {
		return "", rest[len(fence):], true
	}
	offset := 0
	for {
		i := strings.Index(rest[offset:], "\n"+fence)
		if i < 0 {
			return "", "", false
		}
		start := offset + i
		end := start + 1 + len(fence)
		if end == len(rest) || rest[end] == '\n' {
			return rest[:start+1], rest[end:], true
		}
		offset = end
	}
}

// ParseMarkdownPost turns a content file into a post. The language comes from the
// front matter, then from a "name.<lang>.md" suffix, then defaults to English.
// ok is false for drafts.
func ParseMarkdownPost(relPath string, content []byte) (post models.Post, ok bool, err error) {
	fm, body, _, err := ParseFrontMatter(content)
	if err != nil {
		return models.Post{}, false, fmt.Errorf("%s: %w", relPath, err)
	}
	if draft, _ := fm["draft"].(bool); draft {
		return models.Post{}, false, nil
	}

	base := strings.TrimSuffix(filepath.Base(relPath), filepath.Ext(relPath))
	lang := string(English)
	if ext := filepath.Ext(base); ext != "" {
		if l, err := ParseLanguage(strings.TrimPrefix(ext, ".")); err == nil {
			lang = string(l)
			base = strings.TrimSuffix(base, ext)
		}
	}

	post = models.Post{
		ID:          stringField(fm, "id"),
		Slug:        stringField(fm, "slug"),
		Title:       stringField(fm, "title"),
		Description: stringField(fm, "description", "summary"),
		Language:    stringField(fm, "language", "lang"),
		Image:       stringField(fm, "image", "localImage"),
		Date:        timeField(fm, "date", "publishedAt"),
		Source:      "markdown",
	}
	if post.ID == "" {
		post.ID = uuid.NewString()
	}
	if post.Slug == "" {
		post.Slug = base
	}
	if post.Language == "" {
		post.Language = lang
	}

	html, err := RenderMarkdown(body)
	if err != nil {
		return models.Post{}, false, fmt.Errorf("%s: render: %w", relPath, err)
	}
	post.Body = html
	post.Excerpt = Excerpt(html)
	return post, true, nil
}

func RenderMarkdown(body string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(body), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func stringField(fm map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := fm[k]; ok && v != nil {
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				return s
			}
		}
	}
	return ""
}

func timeField(fm map[string]interface{}, keys ...string) time.Time {
	for _, k := range keys {
		switch v := fm[k].(type) {
		case time.Time:
			return v
		case toml.LocalDateTime:
			return v.AsTime(time.UTC)
		case toml.LocalDate:
			return v.AsTime(time.UTC)
		case string:
			if t, err := parseDate(v); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}
