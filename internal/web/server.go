package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"

	"github.com/asaskevich/EventBus"
	"github.com/gin-gonic/gin"
	"github.com/jobdev/jobboard/internal/domain/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

type jobRepository interface {
	ListAll(ctx context.Context) ([]models.Job, error)
	ListByOwner(ctx context.Context, token string, ownerID string) ([]models.Job, error)
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	Create(ctx context.Context, token string, draft models.JobDraft, ownerID string) (*models.Job, error)
	Update(ctx context.Context, token string, id int64, draft models.JobDraft) error
	Delete(ctx context.Context, token string, id int64) error
}

type sessionRepository interface {
	SignUp(ctx context.Context, email string, password string) error
	SignIn(ctx context.Context, email string, password string) (*models.Session, error)
	Current(ctx context.Context, token string) (*models.User, error)
	SignOut(ctx context.Context, token string) error
}

type Repositories struct {
	Jobs     jobRepository
	Sessions sessionRepository
}

// Server renders the job board views and drives all backend calls on behalf
// of the browser session.
type Server struct {
	engine       *gin.Engine
	repositories Repositories
	bus          EventBus.Bus
}

func NewServer(repositories Repositories, bus EventBus.Bus) (*Server, error) {

	if repositories.Jobs == nil {
		return nil, errors.New("jobs repository is nil")
	}

	if repositories.Sessions == nil {
		return nil, errors.New("sessions repository is nil")
	}

	if bus == nil {
		return nil, errors.New("bus is nil")
	}

	server := &Server{
		engine:       gin.New(),
		repositories: repositories,
		bus:          bus,
	}

	templates := template.Must(template.ParseFS(templatesFS, "templates/*.html"))
	server.engine.SetHTMLTemplate(templates)

	server.engine.Use(gin.Recovery(), requestTelemetry(), server.withSession)
	server.routes()

	return server, nil
}

func (s *Server) routes() {

	s.engine.GET("/", s.showListing)
	s.engine.GET("/jobs/:id", s.showJob)

	s.engine.GET("/auth", s.showAuth)
	s.engine.POST("/auth/signin", s.handleSignIn)
	s.engine.POST("/auth/signup", s.handleSignUp)
	s.engine.POST("/signout", s.handleSignOut)

	dashboard := s.engine.Group("/dashboard", s.requireAuth)
	dashboard.GET("", s.showDashboard)
	dashboard.POST("/jobs", s.handleCreateJob)
	dashboard.POST("/jobs/:id", s.handleUpdateJob)
	dashboard.POST("/jobs/:id/delete", s.handleDeleteJob)
}

func (s *Server) Run(port int) error {
	return s.engine.Run(fmt.Sprintf(":%d", port))
}
