package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// FeedbackController serves the ideas board
type FeedbackController struct {
	feedbackService *services.FeedbackService
}

func NewFeedbackController(feedbackService *services.FeedbackService) *FeedbackController {
	return &FeedbackController{feedbackService: feedbackService}
}

// Index lists every idea, newest first.
func (fc *FeedbackController) Index(c *gin.Context) {
	fc.renderList(c)
}

// Submit stores an idea and redirects back to the list. Rejected
// submissions render the list with the reason flashed.
func (fc *FeedbackController) Submit(c *gin.Context) {
	var form dto.FeedbackForm
	if err := middleware.BindForm(c, &form); err != nil {
		middleware.FlashErr(c, err)
		fc.renderList(c)
		return
	}

	if _, err := fc.feedbackService.Submit(c.Request.Context(), form); err != nil {
		middleware.FlashErr(c, err)
		fc.renderList(c)
		return
	}

	middleware.AddFlash(c, middleware.FlashSuccess, services.MsgFeedbackSubmitted)
	c.Redirect(http.StatusSeeOther, "/feedback")
}

func (fc *FeedbackController) renderList(c *gin.Context) {
	ideas, err := fc.feedbackService.List(c.Request.Context())
	if err != nil {
		middleware.FlashErr(c, err)
	}
	render(c, http.StatusOK, "ideas.html", "Feedback", gin.H{"Feedbacks": ideas})
}
