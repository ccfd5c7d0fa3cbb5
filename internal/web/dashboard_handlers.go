package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jobdev/jobboard/internal/domain/models"
	"github.com/jobdev/jobboard/internal/events"
	"github.com/jobdev/jobboard/internal/logger"
	"github.com/jobdev/jobboard/internal/repositories"
	log "github.com/sirupsen/logrus"
)

// dialogState keeps the job form open with its unsaved draft after a failed
// submit, so the user can retry.
type dialogState struct {
	Draft     models.JobDraft
	EditingID int64
	Message   string
}

func (s *Server) showDashboard(c *gin.Context) {
	s.renderDashboard(c, http.StatusOK, nil)
}

func (s *Server) renderDashboard(c *gin.Context, status int, dialog *dialogState) {

	user := currentUser(c)

	jobs, err := s.repositories.Jobs.ListByOwner(c.Request.Context(), sessionToken(c), user.ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).Errorf("failed to list own jobs: %v", err)
		jobs = nil
	}

	if dialog == nil {
		dialog = dialogFromQuery(c, jobs)
	}

	c.HTML(status, "dashboard.html", gin.H{
		"User":     user,
		"Jobs":     jobs,
		"Dialog":   dialog,
		"JobTypes": models.JobTypes(),
	})
}

// dialogFromQuery opens the job form when the page is requested with ?new
// or ?edit=<id>. An edit draft stages a copy of the posting's editable
// fields; identifier and owner stay out of it.
func dialogFromQuery(c *gin.Context, jobs []models.Job) *dialogState {

	if _, wantsNew := c.GetQuery("new"); wantsNew {
		return &dialogState{}
	}

	editID, err := strconv.ParseInt(c.Query("edit"), 10, 64)
	if err != nil {
		return nil
	}

	for _, job := range jobs {
		if job.ID == editID {
			return &dialogState{
				EditingID: job.ID,
				Draft: models.JobDraft{
					Title:       job.Title,
					Company:     job.Company,
					Description: job.Description,
					Location:    job.Location,
					JobType:     string(job.JobType),
				},
			}
		}
	}
	return nil
}

func (s *Server) handleCreateJob(c *gin.Context) {

	var draft models.JobDraft
	if err := c.ShouldBind(&draft); err != nil {
		s.renderDashboard(c, http.StatusBadRequest, &dialogState{Draft: draft, Message: "All fields are required."})
		return
	}
	if err := draft.Validate(); err != nil {
		s.renderDashboard(c, http.StatusBadRequest, &dialogState{Draft: draft, Message: "All fields are required."})
		return
	}

	user := currentUser(c)

	created, err := s.repositories.Jobs.Create(c.Request.Context(), sessionToken(c), draft, user.ID)
	if err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).Errorf("failed to create job: %v", err)
		s.renderDashboard(c, http.StatusOK, &dialogState{Draft: draft, Message: messageForKind(repositories.KindOf(err))})
		return
	}

	s.bus.Publish(events.JobChangedTopic, events.JobChanged{
		Action:  events.ActionCreated,
		JobID:   created.ID,
		OwnerID: user.ID,
	})

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleUpdateJob(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		s.renderNotFound(c)
		return
	}

	var draft models.JobDraft
	if err := c.ShouldBind(&draft); err != nil {
		s.renderDashboard(c, http.StatusBadRequest, &dialogState{Draft: draft, EditingID: id, Message: "All fields are required."})
		return
	}
	if err := draft.Validate(); err != nil {
		s.renderDashboard(c, http.StatusBadRequest, &dialogState{Draft: draft, EditingID: id, Message: "All fields are required."})
		return
	}

	user := currentUser(c)

	if err := s.repositories.Jobs.Update(c.Request.Context(), sessionToken(c), id, draft); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).Errorf("failed to update job %d: %v", id, err)
		s.renderDashboard(c, http.StatusOK, &dialogState{Draft: draft, EditingID: id, Message: messageForKind(repositories.KindOf(err))})
		return
	}

	s.bus.Publish(events.JobChangedTopic, events.JobChanged{
		Action:  events.ActionUpdated,
		JobID:   id,
		OwnerID: user.ID,
	})

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (s *Server) handleDeleteJob(c *gin.Context) {

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}

	user := currentUser(c)

	if err := s.repositories.Jobs.Delete(c.Request.Context(), sessionToken(c), id); err != nil {
		// the dashboard refetch will show whether the row is gone
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeSupabase).Errorf("failed to delete job %d: %v", id, err)
	} else {
		s.bus.Publish(events.JobChangedTopic, events.JobChanged{
			Action:  events.ActionDeleted,
			JobID:   id,
			OwnerID: user.ID,
		})
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func messageForKind(kind repositories.ErrorKind) string {
	switch kind {
	case repositories.KindAuthorization:
		return "Your session has expired. Sign in again to save your changes."
	case repositories.KindNetwork:
		return "Could not reach the server. Your changes were not saved."
	case repositories.KindValidation:
		return "The job could not be saved as entered."
	default:
		return "Something went wrong. Your changes were not saved."
	}
}
