package dto

import "strings"

// LoginForm is posted by the login page.
type LoginForm struct {
	StudentNumber string `form:"student_number" binding:"required"`
	Password      string `form:"password" binding:"required"`
}

// RegisterForm is posted by the registration page. Subjects and Year are
// only read when the tutor box is ticked.
type RegisterForm struct {
	StudentNumber string `form:"student_number" binding:"required"`
	Password      string `form:"password" binding:"required"`
	Name          string `form:"student_name" binding:"required"`
	LastName      string `form:"student_lastname"`
	Email         string `form:"email" binding:"required"`
	IsTutor       string `form:"is_tutor"`
	Subjects      string `form:"subjects"`
	Year          string `form:"year"`
}

// FullName joins first and optional last name.
func (f RegisterForm) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(f.Name) + " " + strings.TrimSpace(f.LastName))
}

// Tutor reports whether the tutor checkbox was ticked.
func (f RegisterForm) Tutor() bool {
	switch strings.ToLower(strings.TrimSpace(f.IsTutor)) {
	case "on", "true", "1", "yes":
		return true
	}
	return false
}

// FeedbackForm is posted by the feedback board.
type FeedbackForm struct {
	StudentNumber string `form:"student_number"`
	Feedback      string `form:"feedback"`
}

// ChatForm carries one question for the document index.
type ChatForm struct {
	Question string `form:"question" binding:"required"`
}

// MapQuery holds the optional map parameters. They are echoed back only.
type MapQuery struct {
	Start       string `form:"start"`
	Destination string `form:"destination"`
}
