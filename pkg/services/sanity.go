package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clinic-site/pkg/models"

	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	queryAllPosts     = `*[_type == "medicalInsight"] | order(publishedAt desc)`
	queryPostBySlug   = `*[_type == "medicalInsight" && slug.current == $slug][0]`
	maxCMSBodyBytes   = 8 << 20
	defaultAPIVersion = "2023-12-15"
	descriptionRunes  = 160
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrCMSDisabled  = errors.New("content source is not configured")
)

// PostSource is the read-only content query surface.
type PostSource interface {
	FetchPosts(ctx context.Context) ([]models.Post, error)
	FetchPostBySlug(ctx context.Context, slug string) (*models.Post, error)
}

type SanityConfig struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	UseCDN     bool
	Token      string
	Timeout    time.Duration
	// BaseURL overrides the derived API host.
	BaseURL string
}

type SanityClient struct {
	projectID  string
	dataset    string
	endpoint   string
	httpClient *http.Client
}

func NewSanityClient(ctx context.Context, cfg SanityConfig) (*SanityClient, error) {
	if cfg.ProjectID == "" || cfg.Dataset == "" {
		return nil, ErrCMSDisabled
	}
	apiVersion := strings.TrimPrefix(cfg.APIVersion, "v")
	if apiVersion == "" {
		apiVersion = defaultAPIVersion
	}

	base := cfg.BaseURL
	if base == "" {
		host := "api"
		// Authenticated queries must bypass the CDN.
		if cfg.UseCDN && cfg.Token == "" {
			host = "apicdn"
		}
		base = fmt.Sprintf("https://%s.%s.sanity.io", cfg.ProjectID, host)
	}

	httpClient := &http.Client{}
	if cfg.Token != "" {
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token}))
	}
	httpClient.Timeout = cfg.Timeout

	return &SanityClient{
		projectID:  cfg.ProjectID,
		dataset:    cfg.Dataset,
		endpoint:   fmt.Sprintf("%s/v%s/data/query/%s", strings.TrimRight(base, "/"), apiVersion, url.PathEscape(cfg.Dataset)),
		httpClient: httpClient,
	}, nil
}

func (c *SanityClient) FetchPosts(ctx context.Context) ([]models.Post, error) {
	result, err := c.query(ctx, queryAllPosts, nil)
	if err != nil {
		return nil, err
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("sanity: expected array result, got %s", result.Type)
	}

	var posts []models.Post
	for _, doc := range result.Array() {
		posts = append(posts, c.toPost(doc))
	}
	return posts, nil
}

func (c *SanityClient) FetchPostBySlug(ctx context.Context, slug string) (*models.Post, error) {
	result, err := c.query(ctx, queryPostBySlug, map[string]string{"slug": slug})
	if err != nil {
		return nil, err
	}
	if result.Type == gjson.Null {
		return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
	}
	post := c.toPost(result)
	return &post, nil
}

func (c *SanityClient) query(ctx context.Context, groq string, params map[string]string) (gjson.Result, error) {
	q := url.Values{}
	q.Set("query", groq)
	for k, v := range params {
		encoded, err := json.Marshal(v)
		if err != nil {
			return gjson.Result{}, err
		}
		q.Set("$"+k, string(encoded))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("sanity: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxCMSBodyBytes))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("sanity: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := gjson.GetBytes(body, "error.description").String()
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return gjson.Result{}, fmt.Errorf("sanity: status %d: %s", resp.StatusCode, msg)
	}

	result := gjson.GetBytes(body, "result")
	if !result.Exists() {
		return gjson.Result{}, fmt.Errorf("sanity: response has no result")
	}
	return result, nil
}

func (c *SanityClient) toPost(doc gjson.Result) models.Post {
	blocks := doc.Get("body").Array()
	body := RenderPortableText(blocks, c.imageURL)

	date, _ := parseDate(doc.Get("publishedAt").String())
	if date.IsZero() {
		date, _ = parseDate(doc.Get("_createdAt").String())
	}

	lang := doc.Get("language").String()
	if lang == "" {
		lang = string(English)
	}

	return models.Post{
		ID:          doc.Get("_id").String(),
		Slug:        doc.Get("slug.current").String(),
		Title:       doc.Get("title").String(),
		Body:        body,
		Excerpt:     Excerpt(body),
		Description: Describe(ToPlainText(blocks), descriptionRunes),
		Date:        date,
		Language:    lang,
		Image:       c.imageURL(doc.Get("mainImage.asset._ref").String()),
		Source:      "cms",
	}
}

func (c *SanityClient) imageURL(ref string) string {
	return ImageURL(ref, c.projectID, c.dataset)
}

// ToPlainText joins the text of every block, one paragraph per block.
func ToPlainText(blocks []gjson.Result) string {
	parts := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if block.Get("_type").String() != "block" || !block.Get("children").Exists() {
			parts = append(parts, "")
			continue
		}
		var b strings.Builder
		for _, child := range block.Get("children").Array() {
			b.WriteString(child.Get("text").String())
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, "\n\n")
}

// Describe collapses whitespace in text and cuts it to at most n runes at a word
// boundary, marking the cut with an ellipsis.
func Describe(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	cut := string(runes[:n])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}

var blockTags = map[string]string{
	"normal":     "p",
	"h1":         "h2",
	"h2":         "h2",
	"h3":         "h3",
	"h4":         "h4",
	"blockquote": "blockquote",
}

var markTags = map[string]string{
	"strong":    "strong",
	"em":        "em",
	"code":      "code",
	"underline": "u",
}

// RenderPortableText renders block content to HTML. Consecutive list items are
// grouped into one <ul> or <ol>.
func RenderPortableText(blocks []gjson.Result, imageURL func(ref string) string) string {
	var b strings.Builder
	openList := ""

	closeList := func() {
		if openList != "" {
			b.WriteString("</" + openList + ">")
			openList = ""
		}
	}

	for _, block := range blocks {
		switch block.Get("_type").String() {
		case "block":
			if item := block.Get("listItem").String(); item != "" {
				tag := "ul"
				if item == "number" {
					tag = "ol"
				}
				if openList != tag {
					closeList()
					b.WriteString("<" + tag + ">")
					openList = tag
				}
				b.WriteString("<li>" + renderSpans(block) + "</li>")
				continue
			}
			closeList()
			tag, ok := blockTags[block.Get("style").String()]
			if !ok {
				tag = "p"
			}
			b.WriteString("<" + tag + ">" + renderSpans(block) + "</" + tag + ">")
		case "image":
			closeList()
			src := ""
			if imageURL != nil {
				src = imageURL(block.Get("asset._ref").String())
			}
			if src == "" {
				continue
			}
			alt := html.EscapeString(block.Get("alt").String())
			b.WriteString(`<figure><img src="` + html.EscapeString(src) + `" alt="` + alt + `" loading="lazy"></figure>`)
		default:
			closeList()
		}
	}
	closeList()
	return b.String()
}

func renderSpans(block gjson.Result) string {
	links := map[string]string{}
	for _, def := range block.Get("markDefs").Array() {
		if def.Get("_type").String() == "link" {
			links[def.Get("_key").String()] = def.Get("href").String()
		}
	}

	var b strings.Builder
	for _, child := range block.Get("children").Array() {
		text := html.EscapeString(child.Get("text").String())
		for _, mark := range child.Get("marks").Array() {
			m := mark.String()
			if tag, ok := markTags[m]; ok {
				text = "<" + tag + ">" + text + "</" + tag + ">"
			} else if href, ok := links[m]; ok && safeHref(href) {
				text = `<a href="` + html.EscapeString(href) + `" rel="noopener" target="_blank">` + text + "</a>"
			}
		}
		b.WriteString(text)
	}
	return b.String()
}

func safeHref(href string) bool {
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "mailto", "tel", "":
		return true
	}
	return false
}
