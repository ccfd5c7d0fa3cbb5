package repositories

import (
	"context"

	"github.com/jobdev/jobboard/internal/clients/supabase"
	"github.com/jobdev/jobboard/internal/domain/models"
)

type authClient interface {
	SignUp(ctx context.Context, email string, password string) (*supabase.User, error)
	SignInWithPassword(ctx context.Context, email string, password string) (*supabase.Session, error)
	GetUser(ctx context.Context, token string) (*supabase.User, error)
	SignOut(ctx context.Context, token string) error
}

type Sessions struct {
	client authClient
}

func NewSessionsRepository(client authClient) *Sessions {
	return &Sessions{client: client}
}

// SignUp registers a new identity. Confirmation mail handling belongs to the
// backend; the created user is not signed in yet.
func (s *Sessions) SignUp(ctx context.Context, email string, password string) error {
	_, err := s.client.SignUp(ctx, email, password)
	return wrapError(err)
}

// SignIn exchanges credentials for a session.
func (s *Sessions) SignIn(ctx context.Context, email string, password string) (*models.Session, error) {

	session, err := s.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, wrapError(err)
	}
	return &models.Session{
		AccessToken: session.AccessToken,
		User:        models.User{ID: session.User.ID, Email: session.User.Email},
	}, nil
}

// Current resolves the identity behind a token. Callers treat any error as
// "not authenticated".
func (s *Sessions) Current(ctx context.Context, token string) (*models.User, error) {

	user, err := s.client.GetUser(ctx, token)
	if err != nil {
		return nil, wrapError(err)
	}
	return &models.User{ID: user.ID, Email: user.Email}, nil
}

// SignOut invalidates the session behind the token.
func (s *Sessions) SignOut(ctx context.Context, token string) error {
	return wrapError(s.client.SignOut(ctx, token))
}
