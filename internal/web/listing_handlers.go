package web

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jobdev/jobboard/internal/domain/models"
	"github.com/jobdev/jobboard/internal/logger"
	log "github.com/sirupsen/logrus"
)

func (s *Server) showListing(c *gin.Context) {

	jobs, err := s.repositories.Jobs.ListAll(c.Request.Context())
	if err != nil {
		// the view renders its empty state; nothing more is surfaced here
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).Errorf("failed to list jobs: %v", err)
		jobs = nil
	}

	criteria := models.FilterCriteria{
		Location: c.Query("location"),
		JobType:  c.Query("job_type"),
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"User":      currentUser(c),
		"Jobs":      criteria.Apply(jobs),
		"Locations": models.LocationOptions(jobs),
		"JobTypes":  models.JobTypeOptions(jobs),
		"Criteria":  criteria,
		"Filtered":  !criteria.IsZero(),
	})
}
