package handlers

import (
	"clinic-site/pkg/models"
	"clinic-site/pkg/services"

	"go.uber.org/zap"
)

// Contact holds the outbound contact points rendered on every page.
type Contact struct {
	WhatsAppNumber string
	PhoneNumber    string
	Email          string
}

type Handler struct {
	provider *services.Provider
	blog     *services.BlogService
	site     *models.SiteConfig
	contact  Contact
	imageDir string
	log      *zap.Logger
}

func NewHandler(
	provider *services.Provider,
	blog *services.BlogService,
	site *models.SiteConfig,
	contact Contact,
	imageDir string,
	log *zap.Logger,
) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		provider: provider,
		blog:     blog,
		site:     site,
		contact:  contact,
		imageDir: imageDir,
		log:      log,
	}
}
