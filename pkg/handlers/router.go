package handlers

import (
	"errors"
	"net/http"

	"clinic-site/pkg/services"
	"clinic-site/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const sessionName = "clinic_session"

// NewRouter wires every route. Session cookies carry only the assessment state
// and expire with the browser session.
func NewRouter(h *Handler, sessionSecret string, log *zap.Logger) (*gin.Engine, error) {
	if sessionSecret == "" {
		return nil, errors.New("session secret is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}

	tmpl, err := web.Templates(services.FormatDate)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(RequestLogger(log), gin.Recovery())

	store := cookie.NewStore([]byte(sessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.SetHTMLTemplate(tmpl)
	r.StaticFS("/static", http.FS(web.Static()))
	r.GET("/blog-images/*file", h.ServeBlogImage)

	r.GET("/", h.Home)
	r.GET("/healthz", h.Healthz)
	r.GET("/blog/close", h.CloseBlog)
	r.GET("/blog/:slug", h.OpenBlog)
	r.GET("/contact/whatsapp", h.ContactWhatsApp)

	assessment := r.Group("/assessment")
	{
		assessment.POST("/open", h.AssessmentOpen)
		assessment.POST("/answer", h.AssessmentAnswer)
		assessment.POST("/restart", h.AssessmentRestart)
		assessment.POST("/close", h.AssessmentClose)
		assessment.GET("/send", h.AssessmentSend)
	}

	api := r.Group("/api")
	{
		api.GET("/locale", h.GetLocale)
		api.GET("/posts", h.ListPosts)
		api.GET("/posts/:slug", h.GetPost)
		api.GET("/assessment", h.GetAssessment)
		api.POST("/assessment/open", h.APIAssessmentOpen)
		api.POST("/assessment/answer", h.APIAssessmentAnswer)
		api.POST("/assessment/restart", h.APIAssessmentRestart)
		api.POST("/assessment/close", h.APIAssessmentClose)
		api.GET("/assessment/link", h.AssessmentLink)
	}

	return r, nil
}
