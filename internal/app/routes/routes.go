package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/controllers"
	"github.com/yigit/schoolhub/internal/middleware"
)

// Controllers groups every controller the router mounts.
type Controllers struct {
	Auth      *controllers.AuthController
	Feedback  *controllers.FeedbackController
	Directory *controllers.DirectoryController
	Campus    *controllers.CampusController
	Pages     *controllers.PagesController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, ctrl Controllers, sessions *middleware.SessionMiddleware) {
	router.Use(sessions.Load())

	router.GET("/", ctrl.Pages.Home)
	router.GET("/career", ctrl.Pages.Career)
	router.GET("/student", ctrl.Pages.Student)
	router.GET("/health", ctrl.Pages.Health)

	// Auth
	router.GET("/login", ctrl.Auth.LoginPage)
	router.POST("/login", ctrl.Auth.Login)
	router.GET("/logout", ctrl.Auth.Logout)
	router.GET("/register", ctrl.Auth.RegisterPage)
	router.POST("/register", ctrl.Auth.Register)

	authenticated := router.Group("")
	authenticated.Use(middleware.RequireLogin("/login"))
	{
		authenticated.GET("/profile", ctrl.Auth.Profile)
	}

	// Directory
	router.GET("/tutors", ctrl.Directory.Tutors)
	router.GET("/subjects", ctrl.Directory.Subjects)

	// Feedback
	router.GET("/feedback", ctrl.Feedback.Index)
	router.POST("/feedback", ctrl.Feedback.Submit)

	// Collaborator-backed pages
	router.GET("/map", ctrl.Campus.Map)
	router.GET("/notices", ctrl.Campus.Notices)
	router.GET("/chat", ctrl.Campus.ChatPage)
	router.POST("/chat", ctrl.Campus.Ask)

	router.NoRoute(ctrl.Pages.NotFound)
}
