package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"clinic-site/pkg/models"

	"go.uber.org/zap"
)

const DefaultPrimaryPosts = 3

// BlogService reads posts from the hosted content source when one is configured
// and from the bundled posts otherwise. Failures are logged and never surfaced.
type BlogService struct {
	cms     PostSource
	static  func() ([]models.Post, error)
	log     *zap.Logger
	primary int
}

func NewBlogService(cms PostSource, static func() ([]models.Post, error), log *zap.Logger, primary int) *BlogService {
	if primary <= 0 {
		primary = DefaultPrimaryPosts
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &BlogService{cms: cms, static: static, log: log, primary: primary}
}

// List returns the posts for lang, newest first.
func (s *BlogService) List(ctx context.Context, lang Language) []models.Post {
	if s.cms != nil {
		posts, err := s.cms.FetchPosts(ctx)
		if err == nil {
			return PostsForLanguage(posts, lang)
		}
		s.log.Warn("cms list failed, using bundled posts", zap.Error(err))
	}
	return PostsForLanguage(s.staticPosts(), lang)
}

func (s *BlogService) Listing(ctx context.Context, lang Language) models.Listing {
	primary, hidden := SplitPrimary(s.List(ctx, lang), s.primary)
	return models.Listing{Primary: primary, Hidden: hidden}
}

// Expanded finds the post behind a deep link. It returns nil when the slug is
// unknown, the lookup failed, or the post is in another language.
func (s *BlogService) Expanded(ctx context.Context, slug string, lang Language) *models.Post {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}

	post, err := s.Find(ctx, slug)
	if err != nil {
		if !errors.Is(err, ErrPostNotFound) {
			s.log.Warn("post lookup failed", zap.String("slug", slug), zap.Error(err))
		}
		return nil
	}
	if post.Language != string(lang) {
		return nil
	}
	return post
}

// Find looks a slug up in the content source, then in the bundled posts.
func (s *BlogService) Find(ctx context.Context, slug string) (*models.Post, error) {
	if s.cms != nil {
		post, err := s.cms.FetchPostBySlug(ctx, slug)
		if err == nil {
			return post, nil
		}
		if !errors.Is(err, ErrPostNotFound) {
			s.log.Warn("cms fetch failed", zap.String("slug", slug), zap.Error(err))
		}
	}

	for _, p := range s.staticPosts() {
		if p.Slug == slug {
			post := p
			return &post, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrPostNotFound, slug)
}

func (s *BlogService) staticPosts() []models.Post {
	if s.static == nil {
		return nil
	}
	posts, err := s.static()
	if err != nil {
		s.log.Error("load bundled posts", zap.Error(err))
		return nil
	}
	return posts
}

func PostsForLanguage(posts []models.Post, lang Language) []models.Post {
	var out []models.Post
	for _, p := range posts {
		if p.Language == string(lang) {
			out = append(out, p)
		}
	}
	return out
}

// SplitPrimary returns the first n posts and the remainder.
func SplitPrimary(posts []models.Post, n int) ([]models.Post, []models.Post) {
	if n < 0 {
		n = 0
	}
	if len(posts) <= n {
		return posts, nil
	}
	return posts[:n], posts[n:]
}

// Excerpt is the body up to and including the first closing paragraph tag.
func Excerpt(body string) string {
	idx := strings.Index(body, "</p>")
	if idx < 0 {
		return body
	}
	return body[:idx] + "</p>"
}

// FormatDate renders "2 Jan 2006" style dates with localized month names.
func FormatDate(t time.Time, months []string) string {
	if t.IsZero() {
		return ""
	}
	if len(months) != 12 {
		return t.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}
