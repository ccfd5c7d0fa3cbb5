package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdev/jobboard/internal/logger"
	log "github.com/sirupsen/logrus"
)

type credentialsForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (s *Server) showAuth(c *gin.Context) {
	c.HTML(http.StatusOK, "auth.html", gin.H{})
}

func (s *Server) handleSignIn(c *gin.Context) {

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		c.HTML(http.StatusBadRequest, "auth.html", gin.H{"Message": "Email and password are required."})
		return
	}

	session, err := s.repositories.Sessions.SignIn(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).Errorf("sign-in failed: %v", err)
		c.HTML(http.StatusOK, "auth.html", gin.H{"Message": "Invalid email or password."})
		return
	}

	c.SetCookie(SessionCookie, session.AccessToken, 3600, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleSignUp(c *gin.Context) {

	var form credentialsForm
	if err := c.ShouldBind(&form); err != nil || form.Email == "" || form.Password == "" {
		c.HTML(http.StatusBadRequest, "auth.html", gin.H{"Message": "Email and password are required."})
		return
	}

	err := s.repositories.Sessions.SignUp(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).Errorf("sign-up failed: %v", err)
		c.HTML(http.StatusOK, "auth.html", gin.H{"Message": "Could not create the account."})
		return
	}

	c.HTML(http.StatusOK, "auth.html", gin.H{"Message": "Check your email for the confirmation link!"})
}

func (s *Server) handleSignOut(c *gin.Context) {

	// read the cookie directly: sign-out should work even when the token no
	// longer resolves to an identity
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		if err := s.repositories.Sessions.SignOut(c.Request.Context(), token); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeAuth).Errorf("sign-out failed: %v", err)
		}
	}

	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
