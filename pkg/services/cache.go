package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"clinic-site/pkg/config"
	"clinic-site/pkg/models"
)

var (
	postCache   []models.Post
	cacheMutex  sync.Mutex
	cacheLoaded bool
)

// GetPostsCache returns the bundled posts, loading them on first use.
func GetPostsCache() ([]models.Post, error) {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	if cacheLoaded {
		return postCache, nil
	}

	posts, err := LoadStaticPosts(config.PostsJSONPath, config.ContentDir)
	if err != nil {
		return nil, err
	}

	for i := range posts {
		posts[i].Image = ResolveLocalImage(config.BlogImageDir, config.BlogImageURL, posts[i].Image)
	}

	postCache = posts
	cacheLoaded = true
	return postCache, nil
}

func InvalidateCache() {
	cacheMutex.Lock()
	defer cacheMutex.Unlock()
	cacheLoaded = false
	postCache = nil
}

// LoadStaticPosts reads the JSON bundle and every markdown file under contentDir.
// Missing sources are skipped. Posts come back newest first.
func LoadStaticPosts(jsonPath, contentDir string) ([]models.Post, error) {
	var posts []models.Post

	if jsonPath != "" {
		bundled, err := loadJSONPosts(jsonPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		posts = append(posts, bundled...)
	}

	if contentDir != "" {
		md, err := loadMarkdownPosts(contentDir)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		posts = append(posts, md...)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})
	return posts, nil
}

func loadJSONPosts(path string) ([]models.Post, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw []models.StaticPost
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	posts := make([]models.Post, 0, len(raw))
	for _, sp := range raw {
		date, _ := parseDate(sp.Date)
		image := ""
		if sp.LocalImage != nil && *sp.LocalImage != "" {
			image = *sp.LocalImage
		} else if sp.OriginalImageURL != nil {
			image = *sp.OriginalImageURL
		}
		posts = append(posts, models.Post{
			ID:       sp.ID,
			Slug:     sp.Slug,
			Title:    sp.Title,
			Body:     sp.Content,
			Excerpt:  Excerpt(sp.Content),
			Date:     date,
			Language: sp.Language,
			Image:    image,
			Source:   "static",
		})
	}
	return posts, nil
}

func loadMarkdownPosts(dir string) ([]models.Post, error) {
	var posts []models.Post

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		relPath, _ := filepath.Rel(dir, path)

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		post, ok, err := ParseMarkdownPost(relPath, content)
		if err != nil {
			return err
		}
		if ok {
			posts = append(posts, post)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}
