package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/schoolhub/internal/app/models/dto"
	"github.com/yigit/schoolhub/internal/app/services"
	"github.com/yigit/schoolhub/internal/middleware"
	"github.com/yigit/schoolhub/internal/pkg/apperrors"
)

// AuthController handles login, logout, registration and the profile page
type AuthController struct {
	authService *services.AuthService
	sessions    *middleware.SessionMiddleware
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, sessions *middleware.SessionMiddleware) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
	}
}

// LoginPage shows the login form.
func (ac *AuthController) LoginPage(c *gin.Context) {
	render(c, http.StatusOK, "login.html", "Log in", gin.H{"Error": false, "StudentNumber": ""})
}

// Login checks the credentials. A failed login re-renders the form with the
// error flag and leaves any existing session alone.
func (ac *AuthController) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := middleware.BindForm(c, &form); err != nil {
		render(c, http.StatusOK, "login.html", "Log in", gin.H{"Error": true, "StudentNumber": form.StudentNumber})
		return
	}

	session, err := ac.authService.Login(c.Request.Context(), form)
	if err != nil {
		if !errors.Is(err, apperrors.ErrInvalidCredentials) {
			middleware.FlashErr(c, err)
		}
		render(c, http.StatusOK, "login.html", "Log in", gin.H{"Error": true, "StudentNumber": form.StudentNumber})
		return
	}

	ac.sessions.Start(c, session.Token, session.Identity)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears all session state. It is idempotent.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.sessions.Clear(c)
	middleware.ClearFlashes(c)
	c.Redirect(http.StatusSeeOther, "/")
}

// RegisterPage shows the registration form.
func (ac *AuthController) RegisterPage(c *gin.Context) {
	render(c, http.StatusOK, "register.html", "Register", gin.H{"AlreadyExist": false})
}

// Register creates the student and logs them in.
func (ac *AuthController) Register(c *gin.Context) {
	var form dto.RegisterForm
	if err := middleware.BindForm(c, &form); err != nil {
		middleware.FlashErr(c, err)
		render(c, http.StatusOK, "register.html", "Register", gin.H{"AlreadyExist": false})
		return
	}

	session, err := ac.authService.Register(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateStudent) {
			render(c, http.StatusOK, "register.html", "Register", gin.H{"AlreadyExist": true})
			return
		}
		middleware.FlashErr(c, err)
		render(c, http.StatusOK, "register.html", "Register", gin.H{"AlreadyExist": false})
		return
	}

	ac.sessions.Start(c, session.Token, session.Identity)
	c.Redirect(http.StatusSeeOther, "/")
}

// Profile shows the logged-in student. Routed behind RequireLogin.
func (ac *AuthController) Profile(c *gin.Context) {
	id, _ := middleware.CurrentIdentity(c)

	profile, err := ac.authService.Profile(c.Request.Context(), id.StudentNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownStudent) {
			// the session outlived its student row
			ac.sessions.Clear(c)
			c.Redirect(http.StatusSeeOther, "/login")
			return
		}
		middleware.FlashErr(c, err)
		render(c, http.StatusOK, "profile.html", "Profile", gin.H{"Profile": nil})
		return
	}

	render(c, http.StatusOK, "profile.html", "Profile", gin.H{"Profile": profile})
}
