package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/middleware"
)

// render fills in the data every page layout needs and writes the template.
// Flash messages are popped here, before the body is written.
func render(c *gin.Context, status int, name, title string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["PageTitle"] = title
	data["Flashes"] = middleware.PopFlashes(c)
	if id, ok := middleware.CurrentIdentity(c); ok {
		data["CurrentUser"] = &id
	} else {
		data["CurrentUser"] = nil
	}
	c.HTML(status, name, data)
}
