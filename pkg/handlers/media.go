package handlers

import (
	"net/http"
	"os"

	"clinic-site/pkg/services"

	"github.com/gin-gonic/gin"
)

// ServeBlogImage serves bundled article images from the image directory.
func (h *Handler) ServeBlogImage(c *gin.Context) {
	if h.imageDir == "" {
		c.Status(http.StatusNotFound)
		return
	}

	fullPath := services.SafeJoin(h.imageDir, "", c.Param("file"))
	if fullPath == "" {
		c.Status(http.StatusNotFound)
		return
	}
	info, err := os.Stat(fullPath)
	if err != nil || info.IsDir() {
		c.Status(http.StatusNotFound)
		return
	}

	c.Header("Cache-Control", "public, max-age=86400")
	c.File(fullPath)
}
