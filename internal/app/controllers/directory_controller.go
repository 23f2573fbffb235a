package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
)

// DirectoryController serves the read-only tutor and subject listings
type DirectoryController struct {
	tutorService   *services.TutorService
	subjectService *services.SubjectService
}

func NewDirectoryController(tutorService *services.TutorService, subjectService *services.SubjectService) *DirectoryController {
	return &DirectoryController{
		tutorService:   tutorService,
		subjectService: subjectService,
	}
}

func (dc *DirectoryController) Tutors(c *gin.Context) {
	tutors, err := dc.tutorService.List(c.Request.Context())
	if err != nil {
		middleware.FlashErr(c, err)
	}
	render(c, http.StatusOK, "tutors.html", "Available Tutors", gin.H{"Tutors": tutors})
}

func (dc *DirectoryController) Subjects(c *gin.Context) {
	subjects, err := dc.subjectService.List(c.Request.Context())
	if err != nil {
		middleware.FlashErr(c, err)
	}
	render(c, http.StatusOK, "subjects.html", "Subjects", gin.H{"Subjects": subjects})
}
