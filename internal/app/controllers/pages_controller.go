package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// PagesController serves the static pages, the not-found page and the
// health probe.
type PagesController struct {
	ping        func(ctx context.Context) error
	chatEnabled bool
}

func NewPagesController(ping func(ctx context.Context) error, chatEnabled bool) *PagesController {
	return &PagesController{ping: ping, chatEnabled: chatEnabled}
}

func (pc *PagesController) Home(c *gin.Context) {
	render(c, http.StatusOK, "home.html", "Home", nil)
}

func (pc *PagesController) Career(c *gin.Context) {
	render(c, http.StatusOK, "career.html", "Career", nil)
}

func (pc *PagesController) Student(c *gin.Context) {
	render(c, http.StatusOK, "student.html", "Student", nil)
}

func (pc *PagesController) NotFound(c *gin.Context) {
	render(c, http.StatusNotFound, "404.html", "Page Not Found", gin.H{"Path": c.Request.URL.Path})
}

// Health reports store reachability and whether chat has an index.
func (pc *PagesController) Health(c *gin.Context) {
	resp := dto.HealthResponse{Status: "ok", Database: "ok", Index: "disabled"}
	if pc.chatEnabled {
		resp.Index = "loaded"
	}

	if pc.ping != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := pc.ping(ctx); err != nil {
			_ = c.Error(err)
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// errorText is the message shown inline for a failed collaborator call.
func errorText(err error) string {
	return apperrors.UserMessage(err, "Something went wrong. Please try again.")
}
