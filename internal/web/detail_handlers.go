package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobdev/jobboard/internal/logger"
	"github.com/jobdev/jobboard/internal/repositories"
	log "github.com/sirupsen/logrus"
)

func (s *Server) showJob(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.renderNotFound(c)
		return
	}

	job, err := s.repositories.Jobs.GetByID(c.Request.Context(), id)
	if err != nil {
		// a missing row and any other failure collapse into the same
		// visible state; only the latter is worth a log line
		if !repositories.IsNotFound(err) {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).Errorf("failed to fetch job %d: %v", id, err)
		}
		s.renderNotFound(c)
		return
	}

	c.HTML(http.StatusOK, "job.html", gin.H{
		"User": currentUser(c),
		"Job":  job,
	})
}

func (s *Server) renderNotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.html", gin.H{
		"User": currentUser(c),
	})
}
