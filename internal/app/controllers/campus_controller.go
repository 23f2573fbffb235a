package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// CampusController serves the map, notices and chat pages, each backed by
// an external collaborator.
type CampusController struct {
	mapService    *services.MapService
	noticeService *services.NoticeService
	chatService   *services.ChatService
}

func NewCampusController(mapService *services.MapService, noticeService *services.NoticeService, chatService *services.ChatService) *CampusController {
	return &CampusController{
		mapService:    mapService,
		noticeService: noticeService,
		chatService:   chatService,
	}
}

// Map renders the campus map. start and destination are only echoed back
// into the pickers.
func (cc *CampusController) Map(c *gin.Context) {
	var query dto.MapQuery
	_ = c.ShouldBindQuery(&query)

	artifact, err := cc.mapService.Render()
	if err != nil {
		middleware.FlashErr(c, err)
	}
	render(c, http.StatusOK, "map.html", "Campus Map", gin.H{
		"Map":         artifact,
		"Locations":   cc.mapService.Locations(),
		"Start":       cc.mapService.LocationName(query.Start),
		"Destination": cc.mapService.LocationName(query.Destination),
	})
}

// Notices never fails: an unreachable feed renders an empty list.
func (cc *CampusController) Notices(c *gin.Context) {
	render(c, http.StatusOK, "notices.html", "Notices", gin.H{
		"Notices": cc.noticeService.Latest(c.Request.Context()),
	})
}

func (cc *CampusController) ChatPage(c *gin.Context) {
	cc.renderChat(c, "", "", "")
}

// Ask forwards the question to the document index. Failures are shown on
// the page, the status stays 200.
func (cc *CampusController) Ask(c *gin.Context) {
	var form dto.ChatForm
	if err := middleware.BindForm(c, &form); err != nil {
		cc.renderChat(c, "", "", services.MsgChatEmpty)
		return
	}

	answer, err := cc.chatService.Ask(c.Request.Context(), form.Question)
	if err != nil {
		_ = c.Error(err)
		cc.renderChat(c, form.Question, "", errorText(err))
		return
	}
	cc.renderChat(c, form.Question, answer, "")
}

func (cc *CampusController) renderChat(c *gin.Context, question, answer, chatErr string) {
	render(c, http.StatusOK, "chat.html", "Ask", gin.H{
		"ChatEnabled": cc.chatService.Enabled(),
		"Question":    question,
		"Answer":      answer,
		"ChatError":   chatErr,
	})
}
