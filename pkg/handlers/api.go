package handlers

import (
	"errors"
	"net/http"

	"clinic-site/pkg/models"
	"clinic-site/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type postView struct {
	models.Post
	DisplayDate string `json:"displayDate"`
}

// GetLocale returns the resolved language, its direction and its text bundle.
// An explicit but unsupported ?lang is rejected rather than resolved.
func (h *Handler) GetLocale(c *gin.Context) {
	if code := c.Query(services.LangParam); code != "" {
		loc, err := h.provider.Set(code)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, loc)
		return
	}
	c.JSON(http.StatusOK, h.provider.Resolve(c.Request))
}

func (h *Handler) ListPosts(c *gin.Context) {
	loc := h.provider.Resolve(c.Request)
	listing := h.blog.Listing(c.Request.Context(), loc.Language)
	months := loc.Bundle.Blog.Months

	c.JSON(http.StatusOK, gin.H{
		"language": loc.Language,
		"primary":  postViews(listing.Primary, months),
		"hidden":   postViews(listing.Hidden, months),
	})
}

func (h *Handler) GetPost(c *gin.Context) {
	loc := h.provider.Resolve(c.Request)
	post, err := h.blog.Find(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		h.log.Error("get post", zap.String("slug", c.Param("slug")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch post"})
		return
	}
	c.JSON(http.StatusOK, postView{Post: *post, DisplayDate: services.FormatDate(post.Date, loc.Bundle.Blog.Months)})
}

func postViews(posts []models.Post, months []string) []postView {
	out := make([]postView, 0, len(posts))
	for _, p := range posts {
		out = append(out, postView{Post: p, DisplayDate: services.FormatDate(p.Date, months)})
	}
	return out
}
