package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"time"

	"clinic-site/pkg/models"
	"clinic-site/pkg/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const blogParam = "blog"

type pageData struct {
	Lang        string
	Dir         string
	Description string
	T           *models.Bundle
	Languages   []services.LanguageOption

	Listing  models.Listing
	Expanded *models.Post
	Author   string

	Wizard   *services.Wizard
	Question *models.Question
	Step     int
	Summary  []services.SummaryLine

	WhatsAppURL string
	CallURL     template.URL
	Phone       string
	Email       string
	Schema      template.JS
	Year        int
}

// Home renders the single page. ?blog=<slug> opens that article on load.
func (h *Handler) Home(c *gin.Context) {
	loc := h.provider.Resolve(c.Request)
	ctx := c.Request.Context()

	data := pageData{
		Lang:        string(loc.Language),
		Dir:         string(loc.Direction),
		Description: loc.Bundle.SEO.Description,
		T:           loc.Bundle,
		Languages:   h.provider.Options(loc.Language, c.Request.URL.Path, c.Request.URL.RawQuery),
		Listing:     h.blog.Listing(ctx, loc.Language),
		Expanded:    h.blog.Expanded(ctx, c.Query(blogParam), loc.Language),
		Author:      h.site.Physician,
		WhatsAppURL: services.WhatsAppLink(h.contact.WhatsAppNumber, ""),
		CallURL:     template.URL(services.CallLink(h.contact.PhoneNumber)),
		Phone:       h.contact.PhoneNumber,
		Email:       h.contact.Email,
		Year:        time.Now().Year(),
	}

	if data.Expanded != nil && data.Expanded.Description != "" {
		data.Description = data.Expanded.Description
	}

	wizard := h.loadWizard(c)
	data.Wizard = wizard
	questions := loc.Bundle.Assessment.Questions
	switch wizard.State {
	case services.StateAsking:
		data.Question = &questions[wizard.Step]
		data.Step = wizard.Step + 1
	case services.StateFinished:
		data.Summary = wizard.Lines(questions)
	}

	if schema, err := services.SchemaJSON(h.site, loc); err == nil {
		data.Schema = template.JS(schema)
	} else {
		h.log.Warn("structured data", zap.Error(err))
	}

	c.HTML(http.StatusOK, "index.html", data)
}

// CloseBlog drops the blog param and sends the visitor back to the base path.
func (h *Handler) CloseBlog(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Del(blogParam)
	target := "/"
	if encoded := query.Encode(); encoded != "" {
		target += "?" + encoded
	}
	c.Redirect(http.StatusFound, target)
}

// OpenBlog turns /blog/:slug into the shareable ?blog=<slug> form.
func (h *Handler) OpenBlog(c *gin.Context) {
	query := c.Request.URL.Query()
	query.Set(blogParam, c.Param("slug"))
	c.Redirect(http.StatusFound, (&url.URL{Path: "/", RawQuery: query.Encode()}).String())
}

func (h *Handler) ContactWhatsApp(c *gin.Context) {
	c.Redirect(http.StatusFound, services.WhatsAppLink(h.contact.WhatsAppNumber, ""))
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
