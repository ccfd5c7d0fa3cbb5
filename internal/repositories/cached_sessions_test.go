package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/jobdev/jobboard/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockSessionSource struct {
	mock.Mock
}

func (m *mockSessionSource) SignUp(ctx context.Context, email string, password string) error {
	return m.Called(ctx, email, password).Error(0)
}

func (m *mockSessionSource) SignIn(ctx context.Context, email string, password string) (*models.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *mockSessionSource) Current(ctx context.Context, token string) (*models.User, error) {
	args := m.Called(ctx, token)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockSessionSource) SignOut(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func Test_CachedSessions_CurrentHitsBackendOnlyOnce(t *testing.T) {

	user := &models.User{ID: "owner-1", Email: "dev@example.com"}

	source := &mockSessionSource{}
	source.On("Current", mock.Anything, "token").Return(user, nil).Once()

	cached := NewCachedSessions(source, time.Minute)

	first, err := cached.Current(context.Background(), "token")
	assert.NoError(t, err)
	second, err := cached.Current(context.Background(), "token")
	assert.NoError(t, err)

	assert.Equal(t, user, first)
	assert.Equal(t, user, second)
	source.AssertExpectations(t)
}

func Test_CachedSessions_SignInPrimesTheCache(t *testing.T) {

	session := &models.Session{
		AccessToken: "token",
		User:        models.User{ID: "owner-1", Email: "dev@example.com"},
	}

	source := &mockSessionSource{}
	source.On("SignIn", mock.Anything, "dev@example.com", "secret").Return(session, nil)

	cached := NewCachedSessions(source, time.Minute)

	_, err := cached.SignIn(context.Background(), "dev@example.com", "secret")
	assert.NoError(t, err)

	user, err := cached.Current(context.Background(), "token")
	assert.NoError(t, err)
	assert.Equal(t, "owner-1", user.ID)
	source.AssertNotCalled(t, "Current", mock.Anything, mock.Anything)
}

func Test_CachedSessions_SignOutEvictsTheToken(t *testing.T) {

	user := &models.User{ID: "owner-1"}

	source := &mockSessionSource{}
	source.On("Current", mock.Anything, "token").Return(user, nil).Twice()
	source.On("SignOut", mock.Anything, "token").Return(nil)

	cached := NewCachedSessions(source, time.Minute)

	_, err := cached.Current(context.Background(), "token")
	assert.NoError(t, err)

	assert.NoError(t, cached.SignOut(context.Background(), "token"))

	_, err = cached.Current(context.Background(), "token")
	assert.NoError(t, err)
	source.AssertExpectations(t)
}

func Test_CachedSessions_FailedLookupIsNotCached(t *testing.T) {

	source := &mockSessionSource{}
	source.On("Current", mock.Anything, "bad-token").Return(nil, assert.AnError).Twice()

	cached := NewCachedSessions(source, time.Minute)

	_, err := cached.Current(context.Background(), "bad-token")
	assert.Error(t, err)
	_, err = cached.Current(context.Background(), "bad-token")
	assert.Error(t, err)
	source.AssertExpectations(t)
}
