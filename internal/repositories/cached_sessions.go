package repositories

import (
	"context"
	"time"

	"github.com/jobdev/jobboard/internal/domain/models"
	gocache "github.com/patrickmn/go-cache"
)

type sessionSource interface {
	SignUp(ctx context.Context, email string, password string) error
	SignIn(ctx context.Context, email string, password string) (*models.Session, error)
	Current(ctx context.Context, token string) (*models.User, error)
	SignOut(ctx context.Context, token string) error
}

// CachedSessions keeps a short-lived token-to-identity cache in front of the
// auth backend, so page assets and quick navigation do not pay one identity
// round trip each. Sign-out evicts the token immediately.
type CachedSessions struct {
	repo  sessionSource
	cache *gocache.Cache
}

func NewCachedSessions(repo sessionSource, ttl time.Duration) *CachedSessions {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &CachedSessions{repo: repo, cache: gocache.New(ttl, 2*ttl)}
}

func (c *CachedSessions) SignUp(ctx context.Context, email string, password string) error {
	return c.repo.SignUp(ctx, email, password)
}

func (c *CachedSessions) SignIn(ctx context.Context, email string, password string) (*models.Session, error) {

	session, err := c.repo.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}

	c.cache.Set(session.AccessToken, &session.User, gocache.DefaultExpiration)
	return session, nil
}

func (c *CachedSessions) Current(ctx context.Context, token string) (*models.User, error) {

	if value, found := c.cache.Get(token); found {
		return value.(*models.User), nil
	}

	user, err := c.repo.Current(ctx, token)
	if err != nil {
		return nil, err
	}

	c.cache.Set(token, user, gocache.DefaultExpiration)
	return user, nil
}

func (c *CachedSessions) SignOut(ctx context.Context, token string) error {
	c.cache.Delete(token)
	return c.repo.SignOut(ctx, token)
}
