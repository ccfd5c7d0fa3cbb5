package web

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jobdev/jobboard/internal/domain/models"
	"github.com/jobdev/jobboard/internal/logger"
	"github.com/jobdev/jobboard/internal/metrics"
	log "github.com/sirupsen/logrus"
)

// SessionCookie carries the backend access token between page loads.
const SessionCookie = "jobboard_session"

const (
	ctxUserKey  = "currentUser"
	ctxTokenKey = "sessionToken"
)

func requestTelemetry() gin.HandlerFunc {
	return func(c *gin.Context) {

		start := time.Now()
		requestID := uuid.NewString()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := c.Writer.Status()

		metrics.RequestDuration.
			WithLabelValues(route, strconv.Itoa(status)).
			Observe(time.Since(start).Seconds())

		entry := log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Request.Method,
			"route":      route,
			"status":     status,
		})
		if status >= http.StatusInternalServerError {
			entry.WithField(logger.ErrorTypeField, logger.ErrorTypeHTTP).Error("request failed")
		} else {
			entry.Debug("request handled")
		}
	}
}

// withSession resolves the session cookie to an identity. Any failure,
// including an expired or tampered token, leaves the request anonymous.
func (s *Server) withSession(c *gin.Context) {

	token, err := c.Cookie(SessionCookie)
	if err != nil || token == "" {
		c.Next()
		return
	}

	user, err := s.repositories.Sessions.Current(c.Request.Context(), token)
	if err != nil {
		c.Next()
		return
	}

	c.Set(ctxUserKey, user)
	c.Set(ctxTokenKey, token)
	c.Next()
}

// requireAuth guards protected views: without an identity the request is
// redirected to the auth entry point before any data loading happens.
func (s *Server) requireAuth(c *gin.Context) {

	if currentUser(c) == nil {
		c.Redirect(http.StatusFound, "/auth")
		c.Abort()
		return
	}
	c.Next()
}

func currentUser(c *gin.Context) *models.User {
	if value, exists := c.Get(ctxUserKey); exists {
		return value.(*models.User)
	}
	return nil
}

func sessionToken(c *gin.Context) string {
	if value, exists := c.Get(ctxTokenKey); exists {
		return value.(string)
	}
	return ""
}
