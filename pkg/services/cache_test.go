package services

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"clinic-site/pkg/config"
)

const postsJSON = `[
  {"id": "1", "title": "Stroke recovery", "content": "<p>First.</p><p>Second.</p>", "date": "2024-02-01T10:00:00Z",
   "language": "en", "slug": "stroke-recovery", "originalImageUrl": "https://example.org/a.jpg", "localImage": "/blog-images/a.jpg"},
  {"id": "2", "title": "التعافي", "content": "<p>نص</p>", "date": "2024-03-01", "language": "ar", "slug": "recovery-ar",
   "originalImageUrl": "https://example.org/b.jpg", "localImage": null}
]`

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadStaticPosts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "posts.json")
	contentDir := filepath.Join(dir, "content")
	writeFile(t, jsonPath, postsJSON)
	writeFile(t, filepath.Join(contentDir, "blog", "knee-pain.tr.md"), "---\ntitle: Diz ağrısı\ndate: 2024-04-01\n---\nBirinci paragraf.\n\nİkinci.\n")
	writeFile(t, filepath.Join(contentDir, "blog", "draft.md"), "---\ntitle: Draft\ndraft: true\n---\nhidden\n")
	writeFile(t, filepath.Join(contentDir, "notes.txt"), "ignored")

	posts, err := LoadStaticPosts(jsonPath, contentDir)
	if err != nil {
		t.Fatalf("LoadStaticPosts error = %v", err)
	}
	if len(posts) != 3 {
		t.Fatalf("len(posts) = %d, want 3: %+v", len(posts), posts)
	}

	wantOrder := []string{"knee-pain", "recovery-ar", "stroke-recovery"}
	for i, slug := range wantOrder {
		if posts[i].Slug != slug {
			t.Fatalf("posts[%d].Slug = %q, want %q", i, posts[i].Slug, slug)
		}
	}

	md := posts[0]
	if md.Language != "tr" || md.Source != "markdown" || md.ID == "" {
		t.Fatalf("markdown post = %+v", md)
	}
	if md.Excerpt != "<p>Birinci paragraf.</p>" {
		t.Fatalf("markdown excerpt = %q", md.Excerpt)
	}

	if posts[2].Image != "/blog-images/a.jpg" {
		t.Fatalf("local image = %q, want /blog-images/a.jpg", posts[2].Image)
	}
	if posts[1].Image != "https://example.org/b.jpg" {
		t.Fatalf("fallback image = %q", posts[1].Image)
	}
	if posts[2].Excerpt != "<p>First.</p>" {
		t.Fatalf("json excerpt = %q", posts[2].Excerpt)
	}
}

func TestLoadStaticPostsMissingSources(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	posts, err := LoadStaticPosts(filepath.Join(dir, "none.json"), filepath.Join(dir, "none"))
	if err != nil {
		t.Fatalf("LoadStaticPosts error = %v", err)
	}
	if len(posts) != 0 {
		t.Fatalf("posts = %v, want none", posts)
	}
}

func TestLoadStaticPostsBadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "posts.json")
	writeFile(t, path, "{")
	if _, err := LoadStaticPosts(path, ""); err == nil || !strings.Contains(err.Error(), "parse") {
		t.Fatalf("LoadStaticPosts error = %v, want parse error", err)
	}
}

func TestParseFrontMatterFormats(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		format  string
	}{
		{"yaml", "---\ntitle: Hello\n---\nbody", "yaml"},
		{"toml", "+++\ntitle = \"Hello\"\n+++\nbody", "toml"},
		{"json", "{\"title\": \"Hello\"}\nbody", "json"},
	}
	for _, tt := range tests {
		fm, body, format, err := ParseFrontMatter([]byte(tt.content))
		if err != nil {
			t.Fatalf("%s: error = %v", tt.name, err)
		}
		if format != tt.format || body != "body" || fm["title"] != "Hello" {
			t.Fatalf("%s: got %v %q %q", tt.name, fm, body, format)
		}
	}

	if _, _, _, err := ParseFrontMatter([]byte("no front matter")); !errors.Is(err, ErrInvalidFrontMatter) {
		t.Fatalf("error = %v, want %v", err, ErrInvalidFrontMatter)
	}
}

func TestParseMarkdownPostTOMLDate(t *testing.T) {
	t.Parallel()

	content := "+++\ntitle = \"Back pain\"\nslug = \"back\"\nlanguage = \"ar\"\ndate = 2024-05-06\n+++\n# Heading\n\ntext\n"
	p, ok, err := ParseMarkdownPost("back.md", []byte(content))
	if err != nil || !ok {
		t.Fatalf("ParseMarkdownPost = %v, %v", ok, err)
	}
	if p.Slug != "back" || p.Language != "ar" {
		t.Fatalf("post = %+v", p)
	}
	if p.Date.Year() != 2024 || p.Date.Month() != 5 || p.Date.Day() != 6 {
		t.Fatalf("Date = %v", p.Date)
	}
	if !strings.Contains(p.Body, "<h1>Heading</h1>") {
		t.Fatalf("Body = %q", p.Body)
	}
}

func TestGetPostsCache(t *testing.T) {
	dir := t.TempDir()
	imageDir := filepath.Join(dir, "images")
	writeFile(t, filepath.Join(dir, "posts.json"), postsJSON)
	writeFile(t, filepath.Join(imageDir, "a.webp"), "webp")

	oldJSON, oldContent, oldImages := config.PostsJSONPath, config.ContentDir, config.BlogImageDir
	config.PostsJSONPath = filepath.Join(dir, "posts.json")
	config.ContentDir = ""
	config.BlogImageDir = imageDir
	InvalidateCache()
	t.Cleanup(func() {
		config.PostsJSONPath, config.ContentDir, config.BlogImageDir = oldJSON, oldContent, oldImages
		InvalidateCache()
	})

	posts, err := GetPostsCache()
	if err != nil {
		t.Fatalf("GetPostsCache error = %v", err)
	}
	if len(posts) != 2 {
		t.Fatalf("len(posts) = %d, want 2", len(posts))
	}
	if posts[1].Image != "/blog-images/a.webp" {
		t.Fatalf("Image = %q, want the webp sibling", posts[1].Image)
	}

	// Cached until invalidated.
	config.PostsJSONPath = filepath.Join(dir, "gone.json")
	if posts, _ := GetPostsCache(); len(posts) != 2 {
		t.Fatalf("cached len = %d, want 2", len(posts))
	}
	InvalidateCache()
	if posts, _ := GetPostsCache(); len(posts) != 0 {
		t.Fatalf("len after invalidate = %d, want 0", len(posts))
	}
}

func TestParseFrontMatterFenceInsideValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		title   string
		body    string
	}{
		{"yaml", "---\ntitle: \"a---b\"\nsummary: x\n---\nbody --- text", "a---b", "body --- text"},
		{"toml", "+++\ntitle = \"c+++d\"\n+++\nbody", "c+++d", "body"},
		{"fence at end of file", "---\ntitle: e---\n---", "e---", ""},
	}
	for _, tt := range tests {
		fm, body, _, err := ParseFrontMatter([]byte(tt.content))
		if err != nil {
			t.Fatalf("%s: error = %v", tt.name, err)
		}
		if fm["title"] != tt.title || body != tt.body {
			t.Fatalf("%s: title %v body %q, want %q %q", tt.name, fm["title"], body, tt.title, tt.body)
		}
	}
}

func TestParseMarkdownPostDescription(t *testing.T) {
	t.Parallel()

	p, ok, err := ParseMarkdownPost("hip.md", []byte("---\ntitle: Hip\ndescription: Hip pain basics.\n---\ntext\n"))
	if err != nil || !ok {
		t.Fatalf("ParseMarkdownPost = %v, %v", ok, err)
	}
	if p.Description != "Hip pain basics." {
		t.Fatalf("Description = %q", p.Description)
	}
}
