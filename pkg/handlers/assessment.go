package handlers

import (
	"errors"
	"net/http"

	"clinic-site/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const wizardSessionKey = "assessment"

func (h *Handler) loadWizard(c *gin.Context) *services.Wizard {
	session := sessions.Default(c)
	raw, _ := session.Get(wizardSessionKey).(string)
	if raw == "" {
		return services.NewWizard()
	}
	w, err := services.DecodeWizard(raw)
	if err != nil {
		h.log.Warn("discarding assessment state", zap.Error(err))
		return services.NewWizard()
	}
	return w
}

// saveWizard keeps a running wizard in the session; a closed one is dropped.
func (h *Handler) saveWizard(c *gin.Context, w *services.Wizard) error {
	session := sessions.Default(c)
	if w.State == services.StateClosed {
		session.Delete(wizardSessionKey)
		return session.Save()
	}
	raw, err := w.Encode()
	if err != nil {
		return err
	}
	session.Set(wizardSessionKey, raw)
	return session.Save()
}

type wizardAction func(c *gin.Context, w *services.Wizard) error

func (h *Handler) openWizard(_ *gin.Context, w *services.Wizard) error {
	w.Open()
	return nil
}

func (h *Handler) restartWizard(_ *gin.Context, w *services.Wizard) error {
	return w.Restart()
}

func (h *Handler) closeWizard(_ *gin.Context, w *services.Wizard) error {
	w.Close()
	return nil
}

func (h *Handler) answerWizard(option string) wizardAction {
	return func(c *gin.Context, w *services.Wizard) error {
		loc := h.provider.Resolve(c.Request)
		return w.SelectFrom(loc.Bundle.Assessment.Questions, option)
	}
}

func (h *Handler) apply(c *gin.Context, action wizardAction) (*services.Wizard, error) {
	w := h.loadWizard(c)
	if err := action(c, w); err != nil {
		return w, err
	}
	if err := h.saveWizard(c, w); err != nil {
		h.log.Error("save assessment state", zap.Error(err))
		return w, err
	}
	return w, nil
}

// Form handlers. Each one redirects back to the assessment section.

func (h *Handler) AssessmentOpen(c *gin.Context)    { h.formAction(c, h.openWizard) }
func (h *Handler) AssessmentRestart(c *gin.Context) { h.formAction(c, h.restartWizard) }
func (h *Handler) AssessmentClose(c *gin.Context)   { h.formAction(c, h.closeWizard) }

func (h *Handler) AssessmentAnswer(c *gin.Context) {
	h.formAction(c, h.answerWizard(c.PostForm("option")))
}

func (h *Handler) formAction(c *gin.Context, action wizardAction) {
	if _, err := h.apply(c, action); err != nil {
		h.log.Info("assessment action rejected", zap.String("path", c.FullPath()), zap.Error(err))
	}
	loc := h.provider.Resolve(c.Request)
	c.Redirect(http.StatusSeeOther, "/?"+services.LangParam+"="+string(loc.Language)+"#assessment")
}

// AssessmentSend hands the finished summary to the chat deep link.
func (h *Handler) AssessmentSend(c *gin.Context) {
	link, err := h.summaryLink(c)
	if err != nil {
		c.String(http.StatusConflict, err.Error())
		return
	}
	c.Redirect(http.StatusFound, link)
}

func (h *Handler) summaryLink(c *gin.Context) (string, error) {
	w := h.loadWizard(c)
	loc := h.provider.Resolve(c.Request)
	summary, err := w.Summary(loc.Bundle.Assessment.Questions)
	if err != nil {
		return "", err
	}
	return services.WhatsAppLink(h.contact.WhatsAppNumber, summary), nil
}

// JSON handlers.

type wizardView struct {
	*services.Wizard
	Progress int                    `json:"progress"`
	Question string                 `json:"question,omitempty"`
	Options  []string               `json:"options,omitempty"`
	Summary  []services.SummaryLine `json:"summary,omitempty"`
}

func (h *Handler) view(c *gin.Context, w *services.Wizard) wizardView {
	questions := h.provider.Resolve(c.Request).Bundle.Assessment.Questions
	v := wizardView{Wizard: w, Progress: w.Progress()}
	switch w.State {
	case services.StateAsking:
		v.Question = questions[w.Step].Question
		v.Options = questions[w.Step].Options
	case services.StateFinished:
		v.Summary = w.Lines(questions)
	}
	return v
}

func (h *Handler) GetAssessment(c *gin.Context) {
	c.JSON(http.StatusOK, h.view(c, h.loadWizard(c)))
}

func (h *Handler) APIAssessmentOpen(c *gin.Context)    { h.jsonAction(c, h.openWizard) }
func (h *Handler) APIAssessmentRestart(c *gin.Context) { h.jsonAction(c, h.restartWizard) }
func (h *Handler) APIAssessmentClose(c *gin.Context)   { h.jsonAction(c, h.closeWizard) }

func (h *Handler) APIAssessmentAnswer(c *gin.Context) {
	var req struct {
		Option string `json:"option"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}
	h.jsonAction(c, h.answerWizard(req.Option))
}

func (h *Handler) jsonAction(c *gin.Context, action wizardAction) {
	w, err := h.apply(c, action)
	if err != nil {
		c.JSON(wizardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.view(c, w))
}

func (h *Handler) AssessmentLink(c *gin.Context) {
	link, err := h.summaryLink(c)
	if err != nil {
		c.JSON(wizardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": link})
}

func wizardErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrInvalidOption):
		return http.StatusBadRequest
	case errors.Is(err, services.ErrWizardClosed),
		errors.Is(err, services.ErrWizardFinished),
		errors.Is(err, services.ErrWizardNotFinished):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
